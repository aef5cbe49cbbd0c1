package usecase

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/pricepulse/backend/internal/domain"
)

func TestDedupe(t *testing.T) {
	t.Run("keeps the lowest price per identifier", func(t *testing.T) {
		records := []domain.RawRecord{
			{Identifier: "729100", Name: "branch a", Price: 7.9, HighPrice: 7.9},
			{Identifier: "729100", Name: "branch b", Price: 6.5, HighPrice: 6.5},
			{Identifier: "729100", Name: "branch c", Price: 8.9, HighPrice: 8.9},
		}

		byID := Dedupe(records)
		if len(byID) != 1 {
			t.Fatalf("len = %d, want 1", len(byID))
		}

		kept := byID["729100"]
		if kept.Price != 6.5 {
			t.Errorf("Price = %v, want 6.5 (lowest)", kept.Price)
		}
		if kept.HighPrice != 8.9 {
			t.Errorf("HighPrice = %v, want 8.9 (highest observed)", kept.HighPrice)
		}
		if kept.Name != "branch b" {
			t.Errorf("Name = %q, want the lowest-price record's name", kept.Name)
		}
	})

	t.Run("distinct identifiers stay separate", func(t *testing.T) {
		records := []domain.RawRecord{
			{Identifier: "a", Price: 1, HighPrice: 1},
			{Identifier: "b", Price: 2, HighPrice: 2},
			{Identifier: "c", Price: 3, HighPrice: 3},
		}

		byID := Dedupe(records)
		if len(byID) != 3 {
			t.Fatalf("len = %d, want 3", len(byID))
		}
	})

	t.Run("empty input yields empty mapping", func(t *testing.T) {
		if got := Dedupe(nil); len(got) != 0 {
			t.Errorf("Dedupe(nil) = %v, want empty", got)
		}
	})
}

func TestDedupe_OrderIndependent(t *testing.T) {
	records := []domain.RawRecord{
		{Identifier: "x", Name: "aleph", Price: 5.5, HighPrice: 5.5},
		{Identifier: "x", Name: "bet", Price: 5.5, HighPrice: 5.5},
		{Identifier: "x", Name: "gimel", Price: 9.9, HighPrice: 9.9},
		{Identifier: "y", Name: "north", Price: 12.0, HighPrice: 12.0},
		{Identifier: "y", Name: "south", Price: 11.0, HighPrice: 11.0},
		{Identifier: "z", Name: "only", Price: 3.2, HighPrice: 3.2},
	}

	want := Dedupe(records)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := make([]domain.RawRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Dedupe(shuffled)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("shuffle %d changed the output:\ngot  %+v\nwant %+v", i, got, want)
		}
	}
}

func TestSortedByIdentifier(t *testing.T) {
	byID := map[string]domain.RawRecord{
		"c": {Identifier: "c", Price: 3},
		"a": {Identifier: "a", Price: 1},
		"b": {Identifier: "b", Price: 2},
	}

	ordered := SortedByIdentifier(byID)
	ids := make([]string, len(ordered))
	for i, r := range ordered {
		ids[i] = r.Identifier
	}

	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Errorf("order = %v, want [a b c]", ids)
	}
}
