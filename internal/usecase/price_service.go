package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/pricepulse/backend/internal/catalog"
	"github.com/pricepulse/backend/internal/domain"
)

// PriceServiceConfig holds configuration for the price service.
type PriceServiceConfig struct {
	CacheTTL               time.Duration
	RefreshTimeout         time.Duration
	MaxConcurrentDownloads int
	FuzzyMatchLimit        int
	EnableDebugLogging     bool
}

// PriceService owns the crawl pipeline and the in-memory price snapshot.
//
// The snapshot maps catalog product ids to their matched records and is
// replaced wholesale on every successful crawl; readers never observe a
// partially-updated mapping. Stale reads are served immediately while a
// refresh runs in the background (stale-while-revalidate), and refreshes
// are single-flight: concurrent callers share one crawl.
type PriceService struct {
	source          domain.PriceSource
	products        []domain.CatalogProduct
	matchingService *MatchingService

	cacheTTL       time.Duration
	refreshTimeout time.Duration
	maxConcurrent  int

	mu        sync.RWMutex
	snapshot  map[string][]domain.RawRecord
	lastCrawl time.Time

	refreshGroup singleflight.Group
}

// NewPriceService creates a price service over the given source and catalog.
func NewPriceService(source domain.PriceSource, products []domain.CatalogProduct, config PriceServiceConfig) *PriceService {
	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}

	refreshTimeout := config.RefreshTimeout
	if refreshTimeout <= 0 {
		refreshTimeout = 5 * time.Minute
	}

	maxConcurrent := config.MaxConcurrentDownloads
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}

	return &PriceService{
		source:   source,
		products: products,
		matchingService: NewMatchingService(MatchConfig{
			FuzzyMatchLimit:    config.FuzzyMatchLimit,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		cacheTTL:       cacheTTL,
		refreshTimeout: refreshTimeout,
		maxConcurrent:  maxConcurrent,
	}
}

// GetProducts returns the full catalog joined with price data.
//
// With useFallback set, crawling is skipped entirely and every product
// carries the static estimates. Otherwise the cache-aware flow applies:
// an empty cache blocks on a first crawl (falling back on failure), a
// fresh cache is served directly, and a stale cache is served immediately
// while a background refresh runs. Every path returns a normally-shaped
// product list; degradation is carried in each product's Source field.
func (s *PriceService) GetProducts(ctx context.Context, useFallback bool) []domain.Product {
	if useFallback {
		return s.fallbackProducts()
	}

	s.mu.RLock()
	snapshot, lastCrawl := s.snapshot, s.lastCrawl
	s.mu.RUnlock()

	if snapshot == nil {
		// Nothing has ever been crawled; the first reader pays for it.
		if err := s.Refresh(ctx); err != nil {
			log.Printf("[CRAWL] initial refresh failed, serving fallback: %v", err)
			return s.fallbackProducts()
		}
		s.mu.RLock()
		snapshot, lastCrawl = s.snapshot, s.lastCrawl
		s.mu.RUnlock()
		if snapshot == nil {
			return s.fallbackProducts()
		}
	} else if time.Since(lastCrawl) > s.cacheTTL {
		// Stale: serve what we have, refresh off the request path. The
		// singleflight group collapses concurrent triggers into one crawl.
		go func() {
			if err := s.Refresh(context.Background()); err != nil {
				log.Printf("[CRAWL] background refresh failed, keeping stale snapshot: %v", err)
			}
		}()
	}

	return s.productsFromSnapshot(snapshot, lastCrawl)
}

// GetProduct returns a single product by catalog id via the same
// cache-aware flow as GetProducts.
func (s *PriceService) GetProduct(ctx context.Context, id string, useFallback bool) (domain.Product, error) {
	for _, p := range s.GetProducts(ctx, useFallback) {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Refresh runs one crawl pipeline and atomically replaces the snapshot on
// success. Concurrent calls share a single in-flight crawl.
func (s *PriceService) Refresh(ctx context.Context) error {
	_, err, _ := s.refreshGroup.Do("refresh", func() (interface{}, error) {
		snapshot, err := s.crawl(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.snapshot = snapshot
		s.lastCrawl = time.Now()
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

// crawl executes Locate -> Fetch -> Parse -> Dedupe -> Match and returns
// the new snapshot. Individual file failures are isolated; the crawl only
// fails when no file yields data at all.
func (s *PriceService) crawl(ctx context.Context) (map[string][]domain.RawRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.refreshTimeout)
	defer cancel()

	urls, err := s.source.LocateFiles(ctx)
	if err != nil {
		// Discovery failure degrades to "no files", it is not a crawl error
		// in itself.
		log.Printf("[LOCATE] discovery failed: %v", err)
		urls = nil
	}
	if len(urls) == 0 {
		return nil, domain.ErrNoFilesFound
	}

	var (
		recordsMu sync.Mutex
		records   []domain.RawRecord
		fetched   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	for _, fileURL := range urls {
		g.Go(func() error {
			text, err := s.source.FetchFile(gctx, fileURL)
			if err != nil {
				// One file's failure never aborts the batch.
				log.Printf("[FETCH] %s failed: %v", fileURL, err)
				return nil
			}

			parsed := s.source.ParseRecords(text)

			recordsMu.Lock()
			records = append(records, parsed...)
			fetched++
			recordsMu.Unlock()
			return nil
		})
	}
	// Workers never return errors; Wait is for completion only.
	_ = g.Wait()

	if fetched == 0 {
		return nil, fmt.Errorf("%w: all %d downloads failed", domain.ErrNoUsableData, len(urls))
	}

	deduped := Dedupe(records)
	if len(deduped) == 0 {
		return nil, fmt.Errorf("%w: %d files fetched, zero valid records", domain.ErrNoUsableData, fetched)
	}
	ordered := SortedByIdentifier(deduped)

	snapshot := make(map[string][]domain.RawRecord)
	matchedProducts := 0
	for _, product := range s.products {
		if matched := s.matchingService.Match(product, ordered); len(matched) > 0 {
			snapshot[product.ID] = matched
			matchedProducts++
		}
	}

	log.Printf("[CRAWL] %d files located, %d fetched, %d records parsed, %d after dedupe, %d/%d products matched",
		len(urls), fetched, len(records), len(deduped), matchedProducts, len(s.products))

	return snapshot, nil
}

// productsFromSnapshot joins the catalog with a crawled snapshot. Products
// the crawl did not cover fall back to their static estimates.
func (s *PriceService) productsFromSnapshot(snapshot map[string][]domain.RawRecord, lastCrawl time.Time) []domain.Product {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		summary := Summarize(snapshot[p.ID])
		if summary.IsZero() {
			out = append(out, buildProduct(p, catalog.FallbackEstimate(p.ID), domain.SourceFallback, nil))
			continue
		}
		updated := lastCrawl
		out = append(out, buildProduct(p, summary, domain.SourceCrawled, &updated))
	}
	return out
}

// fallbackProducts returns the whole catalog priced from static estimates.
func (s *PriceService) fallbackProducts() []domain.Product {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, buildProduct(p, catalog.FallbackEstimate(p.ID), domain.SourceFallback, nil))
	}
	return out
}

func buildProduct(p domain.CatalogProduct, summary domain.PriceSummary, source string, lastUpdated *time.Time) domain.Product {
	return domain.Product{
		ID:            p.ID,
		DisplayName:   p.DisplayName,
		LocalizedName: p.LocalizedName,
		Category:      p.Category,
		Unit:          p.Unit,
		Icon:          p.Icon,
		Average:       summary.Average,
		Low:           summary.Low,
		High:          summary.High,
		Source:        source,
		LastUpdated:   lastUpdated,
	}
}
