package domain

import "errors"

var (
	// ErrNoFilesFound is returned when the locator discovers no published price files
	ErrNoFilesFound = errors.New("no price files found on listing page")

	// ErrDownloadFailed is returned when a single price file cannot be downloaded
	ErrDownloadFailed = errors.New("price file download failed")

	// ErrNoUsableData is returned when zero records survived the crawl pipeline
	ErrNoUsableData = errors.New("no usable price data")

	// ErrProductNotFound is returned when a product id is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
