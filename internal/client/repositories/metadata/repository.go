// Package metadata is the client's durable key-value store, used to keep the
// session token (and any future per-install settings) across runs.
package metadata

import "context"

// Repository is a small key-value contract over the local database.
// Get returns (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
