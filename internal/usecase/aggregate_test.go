package usecase

import (
	"testing"

	"github.com/pricepulse/backend/internal/domain"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.RawRecord
		want    domain.PriceSummary
	}{
		{
			name:    "empty set returns the no-data sentinel",
			records: nil,
			want:    domain.PriceSummary{},
		},
		{
			name: "two records",
			records: []domain.RawRecord{
				{Identifier: "a", Price: 5, HighPrice: 5},
				{Identifier: "b", Price: 15, HighPrice: 15},
			},
			want: domain.PriceSummary{Average: 10.0, Low: 5.0, High: 15.0},
		},
		{
			name: "single record yields a zero range",
			records: []domain.RawRecord{
				{Identifier: "a", Price: 7.9, HighPrice: 7.9},
			},
			want: domain.PriceSummary{Average: 7.9, Low: 7.9, High: 7.9},
		},
		{
			name: "non-positive prices are filtered",
			records: []domain.RawRecord{
				{Identifier: "a", Price: 0},
				{Identifier: "b", Price: -3},
				{Identifier: "c", Price: 12, HighPrice: 12},
			},
			want: domain.PriceSummary{Average: 12, Low: 12, High: 12},
		},
		{
			name: "only non-positive prices returns the sentinel",
			records: []domain.RawRecord{
				{Identifier: "a", Price: 0},
				{Identifier: "b", Price: -1},
			},
			want: domain.PriceSummary{},
		},
		{
			name: "average rounds half away from zero",
			records: []domain.RawRecord{
				{Identifier: "a", Price: 4.5, HighPrice: 4.5},
				{Identifier: "b", Price: 6, HighPrice: 6},
			},
			// mean 5.25 -> 5.3, not 5.2
			want: domain.PriceSummary{Average: 5.3, Low: 4.5, High: 6},
		},
		{
			name: "deduped high spread feeds the high",
			records: []domain.RawRecord{
				{Identifier: "a", Price: 6, HighPrice: 9},
				{Identifier: "b", Price: 8, HighPrice: 8},
			},
			want: domain.PriceSummary{Average: 7, Low: 6, High: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.records)
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarize_InvariantLowAverageHigh(t *testing.T) {
	records := []domain.RawRecord{
		{Identifier: "a", Price: 3.3, HighPrice: 4.1},
		{Identifier: "b", Price: 9.7, HighPrice: 9.7},
		{Identifier: "c", Price: 5.2, HighPrice: 6.8},
	}

	s := Summarize(records)
	if s.Low > s.Average || s.Average > s.High {
		t.Errorf("invariant low <= average <= high violated: %+v", s)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{5.04, 5.0},
		{5.25, 5.3}, // half rounds away from zero
		{-5.25, -5.3},
		{5.26, 5.3},
		{5.0, 5.0},
		{0.349999, 0.3},
	}

	for _, tt := range tests {
		if got := round1(tt.in); got != tt.want {
			t.Errorf("round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
