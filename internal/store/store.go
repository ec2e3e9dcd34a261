// Package store provides the key-value store adapter used by the catalog
// repository: hash records, a name index hash, an insertion-ordered id list
// and an integer counter.
package store

import "context"

// Store is the contract over the backing key-value store. Implementations
// must bound every call with a finite timeout; callers never retry.
type Store interface {
	// Hash operations, used for product records and the name index.
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGet(ctx context.Context, key, field string) (string, error)
	HDel(ctx context.Context, key string, fields ...string) error

	// List operations, used for the insertion-ordered id list.
	RPush(ctx context.Context, key string, values ...string) error
	LRem(ctx context.Context, key, value string) error
	LRange(ctx context.Context, key string) ([]string, error)

	// Counter operations.
	Incr(ctx context.Context, key string) (int64, error)
	Decr(ctx context.Context, key string) (int64, error)
	GetInt(ctx context.Context, key string) (int64, error)
	Set(ctx context.Context, key, value string) error

	Del(ctx context.Context, keys ...string) error
	Keys(ctx context.Context, pattern string) ([]string, error)

	Ping(ctx context.Context) error
	Close() error
}
