package domain

import "time"

// Category classifies catalog products for the presentation layer's filters.
type Category string

const (
	CategoryDairy     Category = "dairy"
	CategoryProduce   Category = "produce"
	CategoryMeat      Category = "meat"
	CategoryBakery    Category = "bakery"
	CategoryPantry    Category = "pantry"
	CategoryBeverages Category = "beverages"
	CategorySnacks    Category = "snacks"
	CategoryFrozen    Category = "frozen"
	CategoryHousehold Category = "household"
)

// CatalogProduct is a curated product the system tracks. Immutable,
// loaded once at process start.
type CatalogProduct struct {
	ID            string   `json:"id"`
	DisplayName   string   `json:"displayName"`
	LocalizedName string   `json:"localizedName"`
	Category      Category `json:"category"`
	Unit          string   `json:"unit"`
	Identifiers   []string `json:"identifiers"` // retailer item codes; exact match is authoritative
	SearchTerms   []string `json:"searchTerms"` // ordered, used only for the fuzzy fallback
	Icon          string   `json:"icon"`
}

// RawRecord is one item record extracted from a retailer price file.
// Ephemeral: produced per crawl, never persisted.
type RawRecord struct {
	Identifier string    `json:"identifier"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`     // lowest observed price after dedupe
	HighPrice  float64   `json:"highPrice"` // highest observed price for the same identifier
	Quantity   float64   `json:"quantity"`
	UnitInfo   string    `json:"unitInfo,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// PriceSummary holds aggregated price statistics for one catalog product,
// each rounded to one decimal place. The all-zero summary is a sentinel
// meaning "no usable data" - callers fall back to static estimates, it is
// never a real price of zero.
type PriceSummary struct {
	Average float64 `json:"average"`
	Low     float64 `json:"low"`
	High    float64 `json:"high"`
}

// IsZero reports whether the summary is the "no data" sentinel.
func (s PriceSummary) IsZero() bool {
	return s.Average == 0 && s.Low == 0 && s.High == 0
}

// Product source discriminators.
const (
	SourceCrawled  = "crawled"
	SourceFallback = "fallback"
)

// Product is the only entity exposed across the system boundary: catalog
// fields joined with the freshest price summary (or fallback estimates).
type Product struct {
	ID            string     `json:"id"`
	DisplayName   string     `json:"displayName"`
	LocalizedName string     `json:"localizedName"`
	Category      Category   `json:"category"`
	Unit          string     `json:"unit"`
	Icon          string     `json:"icon"`
	Average       float64    `json:"average"`
	Low           float64    `json:"low"`
	High          float64    `json:"high"`
	Source        string     `json:"source"` // "crawled" or "fallback"
	LastUpdated   *time.Time `json:"lastUpdated,omitempty"`
}

// Rating describes how an observed price compares to the market range.
type Rating string

const (
	RatingGreat     Rating = "great"
	RatingGood      Rating = "good"
	RatingAverage   Rating = "average"
	RatingHigh      Rating = "high"
	RatingExpensive Rating = "expensive"
)
