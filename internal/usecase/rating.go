package usecase

import "github.com/pricepulse/backend/internal/domain"

// Rating boundaries over the normalized position of a price within the
// product's [low, high] range.
const (
	greatBoundary   = 0.10
	goodBoundary    = 0.35
	averageBoundary = 0.65
	highBoundary    = 0.85
)

// Rate compares an observed price against a product's market range.
// Pure function, no I/O.
//
// The position is (price - low) / (high - low); boundaries are inclusive,
// so a price sitting exactly on a boundary takes the cheaper rating. When
// the range is degenerate (high == low) there is nothing to normalize
// against and the answer is always "average".
func Rate(price float64, product domain.Product) domain.Rating {
	spread := product.High - product.Low
	if spread <= 0 {
		return domain.RatingAverage
	}

	position := (price - product.Low) / spread
	switch {
	case position <= greatBoundary:
		return domain.RatingGreat
	case position <= goodBoundary:
		return domain.RatingGood
	case position <= averageBoundary:
		return domain.RatingAverage
	case position <= highBoundary:
		return domain.RatingHigh
	default:
		return domain.RatingExpensive
	}
}

// Position returns the normalized position of a price within the product's
// range, for callers that want to display where the price falls. The value
// is not clamped. Degenerate ranges report 0.5.
func Position(price float64, product domain.Product) float64 {
	spread := product.High - product.Low
	if spread <= 0 {
		return 0.5
	}
	return (price - product.Low) / spread
}
