package usecase

import "context"

// Cache is the read-through cache seam the usecases depend on; satisfied
// by cache.Redis. A nil Cache disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
