package usecase

import (
	"math"

	"github.com/pricepulse/backend/internal/domain"
)

// Summarize converts a matched record set into price statistics.
//
// Records with non-positive prices are ignored. If nothing remains, the
// all-zero sentinel summary is returned and callers fall back to static
// estimates. A zero range (low == high) is a valid state, not an error.
func Summarize(records []domain.RawRecord) domain.PriceSummary {
	var sum, low, high float64
	count := 0

	for _, r := range records {
		if r.Price <= 0 {
			continue
		}
		if count == 0 || r.Price < low {
			low = r.Price
		}
		sum += r.Price
		count++

		h := r.HighPrice
		if h < r.Price {
			h = r.Price
		}
		if h > high {
			high = h
		}
	}

	if count == 0 {
		return domain.PriceSummary{}
	}

	return domain.PriceSummary{
		Average: round1(sum / float64(count)),
		Low:     round1(low),
		High:    round1(high),
	}
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
