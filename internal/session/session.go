// Package session identifies shopper sessions and keeps one hydrated state
// manager per session.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var ErrInvalid = errors.New("invalid session id")

func New() string {
	return uuid.NewString()
}

// Parse normalizes a session id. Only UUIDs are accepted.
func Parse(id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", ErrInvalid
	}
	return u.String(), nil
}

// Registry lazily opens and caches one T per session.
type Registry[T any] struct {
	mu    sync.Mutex
	items map[string]T
	open  func(ctx context.Context, id string) (T, error)
}

func NewRegistry[T any](open func(ctx context.Context, id string) (T, error)) *Registry[T] {
	return &Registry[T]{items: make(map[string]T), open: open}
}

// GetOrCreate returns the cached value for id or opens a new one. A failed
// open is not cached so the next call retries.
func (r *Registry[T]) GetOrCreate(ctx context.Context, id string) (T, error) {
	var zero T
	id, err := Parse(id)
	if err != nil {
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.items[id]; ok {
		return v, nil
	}
	v, err := r.open(ctx, id)
	if err != nil {
		return zero, err
	}
	r.items[id] = v
	return v, nil
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Each calls fn for every open session.
func (r *Registry[T]) Each(fn func(id string, v T)) {
	r.mu.Lock()
	snapshot := make(map[string]T, len(r.items))
	for k, v := range r.items {
		snapshot[k] = v
	}
	r.mu.Unlock()

	for k, v := range snapshot {
		fn(k, v)
	}
}
