package domain

import (
	"context"
	"time"
)

// ProductScraper defines the interface for fetching a product record from an
// e-commerce page URL
type ProductScraper interface {
	ScrapeProduct(ctx context.Context, pageURL string) (*ProductRecord, error)
}

// ListingSearcher defines the interface for second-hand marketplace search.
// The query is the cleaned search phrase produced by the estimation core;
// returned listings are treated as opaque and passed through to the caller.
type ListingSearcher interface {
	SearchListings(ctx context.Context, query string, maxResults int) ([]Listing, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
