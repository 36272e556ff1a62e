package app

import "context"

// Store is the slice of the key/value store the cart mirrors itself into.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
