package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrMissingTitle is returned when a scraped record has no usable title
	ErrMissingTitle = errors.New("product record has no title")

	// ErrScrapeFailed is returned when the product page could not be scraped
	ErrScrapeFailed = errors.New("product page scrape failed")

	// ErrSearchFailed is returned when a marketplace search request fails
	ErrSearchFailed = errors.New("marketplace search failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
