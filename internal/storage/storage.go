// Package storage provides the durable string key/value store the shopper
// state managers mirror themselves into. Values are opaque strings; each
// manager owns one key and overwrites it wholesale on every mutation.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Scoped namespaces every key of the underlying store so that several
// sessions can share one backend without colliding.
type Scoped struct {
	store     Store
	namespace string
}

func NewScoped(store Store, namespace string) *Scoped {
	return &Scoped{store: store, namespace: namespace}
}

func (s *Scoped) key(k string) string {
	if s.namespace == "" {
		return k
	}
	return s.namespace + ":" + k
}

func (s *Scoped) Get(ctx context.Context, key string) (string, error) {
	return s.store.Get(ctx, s.key(key))
}

func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.key(key), value)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.key(key))
}

// Close is a no-op; the shared backend is closed by its owner.
func (s *Scoped) Close() error { return nil }
