package store

import "context"

// Store is a string key-value backend holding serialized carts.
// Get reports ok=false when no value exists for key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
