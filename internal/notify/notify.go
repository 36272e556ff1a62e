// Package notify carries the user-visible notifications the state managers
// emit after each mutation.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	KindCartAdded       = "cart.added"
	KindCartRemoved     = "cart.removed"
	KindCartUpdated     = "cart.updated"
	KindCartCleared     = "cart.cleared"
	KindWishlistAdded   = "wishlist.added"
	KindWishlistRemoved = "wishlist.removed"
	KindCurrencyChanged = "currency.changed"
	KindRatesRefreshed  = "currency.rates"
)

// Event is delivered to the session named by Session, or to every subscriber
// when Session is empty.
type Event struct {
	Session string    `json:"session,omitempty"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, ev Event)

func (f NotifierFunc) Notify(ctx context.Context, ev Event) { f(ctx, ev) }

// Discard drops every event.
var Discard Notifier = NotifierFunc(func(context.Context, Event) {})

type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, ev Event) {
	n.log.DebugContext(ctx, "notification",
		slog.String("session", ev.Session),
		slog.String("kind", ev.Kind),
		slog.String("message", ev.Message),
	)
}

// Multi fans an event out to several notifiers in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, ev Event) {
	for _, n := range m {
		n.Notify(ctx, ev)
	}
}

// Scoped stamps the session and time on events before forwarding them.
func Scoped(n Notifier, session string) Notifier {
	return NotifierFunc(func(ctx context.Context, ev Event) {
		if ev.Session == "" {
			ev.Session = session
		}
		if ev.At.IsZero() {
			ev.At = time.Now().UTC()
		}
		n.Notify(ctx, ev)
	})
}

type subscriber struct {
	session string
	ch      chan Event
}

// Hub fans events out to live subscribers. A subscriber that is not keeping
// up loses events rather than blocking the publisher.
type Hub struct {
	mu      sync.RWMutex
	subs    map[*subscriber]struct{}
	buffer  int
	dropped int
	closed  bool
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{subs: make(map[*subscriber]struct{}), buffer: buffer}
}

// Subscribe registers interest in one session's events plus broadcasts. The
// returned cancel func must be called to release the subscription.
func (h *Hub) Subscribe(session string) (<-chan Event, func()) {
	sub := &subscriber{session: session, ch: make(chan Event, h.buffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[sub]; ok {
				delete(h.subs, sub)
				close(sub.ch)
			}
		})
	}
	return sub.ch, cancel
}

func (h *Hub) Notify(_ context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		if ev.Session != "" && sub.session != ev.Session {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			h.dropped++
		}
	}
}

// Dropped reports how many deliveries were skipped because a subscriber was full.
func (h *Hub) Dropped() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dropped
}

// Close ends every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		close(sub.ch)
		delete(h.subs, sub)
	}
}
