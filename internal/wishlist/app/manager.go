package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Biz-Hub01/pureez/internal/notify"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/Biz-Hub01/pureez/internal/wishlist/domain"
)

const storeKey = "wishlist"

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type Manager struct {
	mu       sync.Mutex
	store    Store
	notifier notify.Notifier
	log      *slog.Logger
	entries  []domain.Entry
}

func NewManager(store Store, notifier notify.Notifier, log *slog.Logger) *Manager {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = slog.Default()
	}
	return &Manager{store: store, notifier: notifier, log: log}
}

func (m *Manager) Load(ctx context.Context) error {
	raw, err := m.store.Get(ctx, storeKey)
	if errors.Is(err, storage.ErrNotFound) {
		m.replace(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load wishlist: %w", err)
	}

	entries, err := decodeEntries(raw)
	if err != nil {
		m.log.WarnContext(ctx, "stored wishlist is corrupt, starting empty", slog.Any("err", err))
		entries = nil
	}
	m.replace(entries)
	return nil
}

func (m *Manager) replace(entries []domain.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = entries
}

// AddToWishlist saves entry unless its id is already saved or empty. Unlike
// the cart, a repeated add changes nothing.
func (m *Manager) AddToWishlist(ctx context.Context, entry domain.Entry) bool {
	if entry.ID == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(entry.ID) >= 0 {
		return false
	}
	m.entries = append(m.entries, entry)

	m.persist(ctx)
	m.notifier.Notify(ctx, notify.Event{
		Kind:    notify.KindWishlistAdded,
		Message: fmt.Sprintf("%s saved to wishlist", entry.Name),
		Payload: entry,
	})
	return true
}

func (m *Manager) RemoveFromWishlist(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	removed := m.entries[i]
	m.entries = slices.Delete(m.entries, i, i+1)

	m.persist(ctx)
	m.notifier.Notify(ctx, notify.Event{
		Kind:    notify.KindWishlistRemoved,
		Message: fmt.Sprintf("%s removed from wishlist", removed.Name),
		Payload: removed,
	})
	return true
}

func (m *Manager) IsInWishlist(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexOf(id) >= 0
}

func (m *Manager) Entries() []domain.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.entries)
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.entries, func(e domain.Entry) bool { return e.ID == id })
}

func (m *Manager) persist(ctx context.Context) {
	entries := m.entries
	if entries == nil {
		entries = []domain.Entry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		m.log.ErrorContext(ctx, "encode wishlist failed", slog.Any("err", err))
		return
	}
	if err := m.store.Set(ctx, storeKey, string(b)); err != nil {
		m.log.ErrorContext(ctx, "persist wishlist failed", slog.Any("err", err))
	}
}

func decodeEntries(raw string) ([]domain.Entry, error) {
	var stored []domain.Entry
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("decode wishlist: %w", err)
	}
	entries := make([]domain.Entry, 0, len(stored))
	seen := make(map[string]struct{}, len(stored))
	for _, e := range stored {
		if _, dup := seen[e.ID]; dup || e.ID == "" {
			continue
		}
		seen[e.ID] = struct{}{}
		entries = append(entries, e)
	}
	return entries, nil
}
