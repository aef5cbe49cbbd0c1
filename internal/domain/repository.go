package domain

import "context"

// PriceSource defines the interface for the retailer's price-transparency
// publication: a listing page of compressed price files plus per-file
// downloads. Implemented by the transparency client; faked in tests.
type PriceSource interface {
	// LocateFiles discovers the currently published price-file URLs.
	// It fails softly: errors degrade to an empty slice at the call site,
	// never a crawl abort.
	LocateFiles(ctx context.Context) ([]string, error)

	// FetchFile downloads one price file and returns its decompressed text.
	FetchFile(ctx context.Context, fileURL string) (string, error)

	// ParseRecords extracts item records from a downloaded file's text.
	// Malformed records are dropped, never returned as errors.
	ParseRecords(text string) []RawRecord
}
