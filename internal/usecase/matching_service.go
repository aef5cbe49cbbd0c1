package usecase

import (
	"log"
	"strings"

	"github.com/pricepulse/backend/internal/domain"
)

// defaultFuzzyLimit bounds the fuzzy fallback's sample size; the aggregator
// only needs a representative sample, and the cap limits the influence of
// false positives.
const defaultFuzzyLimit = 5

// MatchConfig holds configuration for the matching service.
type MatchConfig struct {
	FuzzyMatchLimit    int
	EnableDebugLogging bool
}

// MatchingService selects, for each catalog product, the raw records that
// correspond to it. Identifiers are authoritative; free-text matching is a
// noisy fallback.
type MatchingService struct {
	fuzzyMatchLimit    int
	enableDebugLogging bool
}

// NewMatchingService creates a new matching service with the given configuration.
func NewMatchingService(config MatchConfig) *MatchingService {
	limit := config.FuzzyMatchLimit
	if limit <= 0 {
		limit = defaultFuzzyLimit
	}
	return &MatchingService{
		fuzzyMatchLimit:    limit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Match returns the records corresponding to the catalog product.
//
// Exact identifier matches always win: if any record's identifier is in the
// product's identifier set, fuzzy matching is not attempted at all. Only
// when the exact tier yields nothing does the fuzzy fallback run, returning
// at most fuzzyMatchLimit records in encounter order.
func (s *MatchingService) Match(product domain.CatalogProduct, records []domain.RawRecord) []domain.RawRecord {
	exact := s.matchByIdentifier(product, records)
	if len(exact) > 0 {
		if s.enableDebugLogging {
			log.Printf("[MATCH] %s: %d exact identifier matches", product.ID, len(exact))
		}
		return exact
	}

	fuzzy := s.matchBySearchTerms(product, records)
	if s.enableDebugLogging && len(fuzzy) > 0 {
		log.Printf("[MATCH] %s: %d fuzzy matches (no exact)", product.ID, len(fuzzy))
	}
	return fuzzy
}

// matchByIdentifier returns every record whose identifier is in the
// product's identifier set.
func (s *MatchingService) matchByIdentifier(product domain.CatalogProduct, records []domain.RawRecord) []domain.RawRecord {
	ids := make(map[string]bool, len(product.Identifiers))
	for _, id := range product.Identifiers {
		ids[id] = true
	}

	var matched []domain.RawRecord
	for _, r := range records {
		if ids[r.Identifier] {
			matched = append(matched, r)
		}
	}
	return matched
}

// matchBySearchTerms returns records whose identifier equals or contains a
// search term, or whose lower-cased name contains a term (case-insensitive
// substring test), capped at the configured limit.
func (s *MatchingService) matchBySearchTerms(product domain.CatalogProduct, records []domain.RawRecord) []domain.RawRecord {
	var matched []domain.RawRecord
	for _, r := range records {
		if s.recordMatchesTerms(r, product.SearchTerms) {
			matched = append(matched, r)
			if len(matched) >= s.fuzzyMatchLimit {
				break
			}
		}
	}
	return matched
}

func (s *MatchingService) recordMatchesTerms(record domain.RawRecord, terms []string) bool {
	name := strings.ToLower(record.Name)
	for _, term := range terms {
		if record.Identifier == term || strings.Contains(record.Identifier, term) {
			return true
		}
		if strings.Contains(name, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
