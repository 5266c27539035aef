package repository

import "context"

// KeyValueStore is the local device storage boundary: string keys, opaque values.
type KeyValueStore interface {
	// Get returns domain.ErrKeyNotFound for missing keys.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key owned by the store.
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
