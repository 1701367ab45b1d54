package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ProductSource defines the interface for fetching product data from the
// external food-product database.
type ProductSource interface {
	Search(ctx context.Context, query string) ([]ProductRecord, error)
	GetProduct(ctx context.Context, code string) (*ProductRecord, error)
}
