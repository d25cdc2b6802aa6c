// Package metadata is the durable local key-value store backing the session
// store and the registration-draft store.
package metadata

import "context"

// Repository is a byte-valued key-value store. Get returns (nil, nil) for a
// missing key; Delete and Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
