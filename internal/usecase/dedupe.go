package usecase

import (
	"sort"

	"github.com/pricepulse/backend/internal/domain"
)

// Dedupe merges records sharing an identifier into one representative each.
//
// Multiple branches and files report the same item at different prices; the
// kept representative carries the lowest observed price (the best-case lower
// bound) while HighPrice tracks the maximum observed price for spread
// calculations. The reduction is pure and order-independent: shuffling the
// input never changes the resulting mapping.
func Dedupe(records []domain.RawRecord) map[string]domain.RawRecord {
	byID := make(map[string]domain.RawRecord, len(records))

	for _, r := range records {
		existing, ok := byID[r.Identifier]
		if !ok {
			byID[r.Identifier] = r
			continue
		}

		if r.HighPrice > existing.HighPrice {
			existing.HighPrice = r.HighPrice
		}
		// Strictly lower price replaces the representative; on a tie the
		// lexicographically smaller name wins so ordering cannot matter.
		if r.Price < existing.Price || (r.Price == existing.Price && r.Name < existing.Name) {
			high := existing.HighPrice
			existing = r
			existing.HighPrice = high
		}
		byID[r.Identifier] = existing
	}

	return byID
}

// SortedByIdentifier flattens a deduped mapping into a deterministic
// sequence; the matcher's "encounter order" is defined over this ordering.
func SortedByIdentifier(byID map[string]domain.RawRecord) []domain.RawRecord {
	records := make([]domain.RawRecord, 0, len(byID))
	for _, r := range byID {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Identifier < records[j].Identifier
	})
	return records
}
