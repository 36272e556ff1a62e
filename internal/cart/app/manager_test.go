package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Biz-Hub01/pureez/internal/cart/domain"
	"github.com/Biz-Hub01/pureez/internal/notify"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/Biz-Hub01/pureez/pkg/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

type recorder struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recorder) Notify(_ context.Context, ev notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

type failingStore struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingStore) Get(context.Context, string) (string, error) { return "", f.getErr }
func (f *failingStore) Set(context.Context, string, string) error {
	f.sets++
	return f.setErr
}

func item(id string, price int64) domain.Item {
	return domain.Item{ID: id, Title: "Product " + id, Image: id + ".jpg", Seller: "acme", Price: decimal.NewFromInt(price)}
}

func newManager(t *testing.T, store Store) (*Manager, *recorder) {
	t.Helper()
	rec := &recorder{}
	m := NewManager(store, rec, logger.Discard())
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m, rec
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated adds increment a single line", func(t *testing.T) {
		m, _ := newManager(t, storage.NewMemory())

		m.AddToCart(ctx, item("p1", 100), 0)
		line := m.AddToCart(ctx, item("p1", 100), 2)

		if line.Quantity != 3 {
			t.Fatalf("expected quantity 3, got %d", line.Quantity)
		}
		lines := m.Lines()
		if len(lines) != 1 || lines[0].ID != "p1" {
			t.Fatalf("expected one line for p1, got %+v", lines)
		}
		if m.ItemCount() != 3 {
			t.Fatalf("expected item count 3, got %d", m.ItemCount())
		}
	})

	t.Run("sum of supplied quantities", func(t *testing.T) {
		m, _ := newManager(t, storage.NewMemory())
		quantities := []int{1, 4, 0, -2, 7}
		want := 0
		for _, q := range quantities {
			m.AddToCart(ctx, item("p1", 10), q)
			if q < 1 {
				q = 1
			}
			want += q
		}
		if got, _ := m.Line("p1"); got.Quantity != want {
			t.Fatalf("quantity = %d, want %d", got.Quantity, want)
		}
	})

	t.Run("snapshot is kept from first add", func(t *testing.T) {
		m, _ := newManager(t, storage.NewMemory())
		m.AddToCart(ctx, item("p1", 100), 1)
		m.AddToCart(ctx, item("p1", 250), 1)
		got, _ := m.Line("p1")
		if !got.Price.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("price must not be refreshed, got %s", got.Price)
		}
	})

	t.Run("new ids append in order", func(t *testing.T) {
		m, rec := newManager(t, storage.NewMemory())
		m.AddToCart(ctx, item("a", 1), 1)
		m.AddToCart(ctx, item("b", 2), 1)
		m.AddToCart(ctx, item("a", 1), 1)

		lines := m.Lines()
		if len(lines) != 2 || lines[0].ID != "a" || lines[1].ID != "b" {
			t.Fatalf("unexpected order: %+v", lines)
		}
		if diff := cmp.Diff([]string{notify.KindCartAdded, notify.KindCartAdded, notify.KindCartAdded}, rec.kinds()); diff != "" {
			t.Fatalf("notifications (-want +got):\n%s", diff)
		}
	})
}

func TestAddToCartIgnoresEmptyID(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	m, rec := newManager(t, store)

	m.AddToCart(ctx, item("p1", 10), 1)
	if line := m.AddToCart(ctx, item("", 10), 2); line.ID != "" || line.Quantity != 0 {
		t.Fatalf("expected zero line, got %+v", line)
	}

	reloaded, _ := newManager(t, store)
	if diff := cmp.Diff(m.Lines(), reloaded.Lines(), decimalEqual); diff != "" {
		t.Fatalf("round trip mismatch (-mem +stored):\n%s", diff)
	}
	if len(m.Lines()) != 1 || len(rec.kinds()) != 1 {
		t.Fatalf("empty id must not change the cart: %+v %v", m.Lines(), rec.kinds())
	}
}

func TestDeduct(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	m, rec := newManager(t, store)
	m.AddToCart(ctx, item("a", 10), 2)
	m.AddToCart(ctx, item("b", 20), 3)
	m.AddToCart(ctx, item("c", 30), 1)

	if !m.Deduct(ctx, map[string]int{"a": 2, "b": 1, "gone": 4}) {
		t.Fatal("deduct should report a change")
	}

	lines := m.Lines()
	if len(lines) != 2 || lines[0].ID != "b" || lines[0].Quantity != 2 || lines[1].ID != "c" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
	reloaded, _ := newManager(t, store)
	if diff := cmp.Diff(lines, reloaded.Lines(), decimalEqual); diff != "" {
		t.Fatalf("deduct not persisted (-mem +stored):\n%s", diff)
	}
	if kinds := rec.kinds(); kinds[len(kinds)-1] != notify.KindCartUpdated {
		t.Fatalf("expected a cart.updated event, got %v", kinds)
	}

	if m.Deduct(ctx, map[string]int{"zzz": 1}) {
		t.Fatal("unknown ids must not count as a change")
	}
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()
	m, rec := newManager(t, storage.NewMemory())
	m.AddToCart(ctx, item("p1", 100), 2)
	m.AddToCart(ctx, item("p2", 50), 1)

	if !m.RemoveFromCart(ctx, "p1") {
		t.Fatal("expected p1 to be removed")
	}
	if m.IsInCart("p1") {
		t.Fatal("p1 still in cart")
	}

	before := m.Lines()
	if m.RemoveFromCart(ctx, "missing") {
		t.Fatal("removing a missing id must be a no-op")
	}
	if diff := cmp.Diff(before, m.Lines(), decimalEqual); diff != "" {
		t.Fatalf("cart changed (-before +after):\n%s", diff)
	}
	if m.ItemCount() != 1 {
		t.Fatalf("item count = %d", m.ItemCount())
	}
	if got := rec.kinds(); got[len(got)-1] != notify.KindCartRemoved {
		t.Fatalf("no-op remove must not notify, got %v", got)
	}
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t, storage.NewMemory())
	m.AddToCart(ctx, item("p1", 100), 2)

	for _, q := range []int{0, -1} {
		if m.UpdateQuantity(ctx, "p1", q) {
			t.Fatalf("UpdateQuantity(%d) must be ignored", q)
		}
		if got, _ := m.Line("p1"); got.Quantity != 2 {
			t.Fatalf("quantity changed to %d", got.Quantity)
		}
	}

	if m.UpdateQuantity(ctx, "nope", 5) {
		t.Fatal("unknown id must be ignored")
	}

	if !m.UpdateQuantity(ctx, "p1", 5) {
		t.Fatal("expected update to apply")
	}
	if m.ItemCount() != 5 {
		t.Fatalf("item count = %d", m.ItemCount())
	}
}

func TestClearCartAndTotals(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t, storage.NewMemory())
	m.AddToCart(ctx, item("p1", 100), 2)
	m.AddToCart(ctx, domain.Item{ID: "p2", Price: decimal.RequireFromString("19.99")}, 3)

	if want := decimal.RequireFromString("259.97"); !m.Subtotal().Equal(want) {
		t.Fatalf("subtotal = %s, want %s", m.Subtotal(), want)
	}

	m.ClearCart(ctx)
	if len(m.Lines()) != 0 || m.ItemCount() != 0 || !m.Subtotal().IsZero() {
		t.Fatalf("cart not empty: %+v", m.Lines())
	}
}

func TestItemCountInvariant(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t, storage.NewMemory())

	check := func(step string) {
		t.Helper()
		sum := 0
		for _, l := range m.Lines() {
			sum += l.Quantity
		}
		if m.ItemCount() != sum {
			t.Fatalf("%s: item count %d != sum %d", step, m.ItemCount(), sum)
		}
	}

	m.AddToCart(ctx, item("a", 1), 3)
	check("add a")
	m.AddToCart(ctx, item("b", 1), 1)
	check("add b")
	m.UpdateQuantity(ctx, "a", 10)
	check("update a")
	m.UpdateQuantity(ctx, "b", 0)
	check("ignored update")
	m.RemoveFromCart(ctx, "a")
	check("remove a")
	m.ClearCart(ctx)
	check("clear")
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	m, _ := newManager(t, store)

	stock := 4
	m.AddToCart(ctx, item("p3", 30), 1)
	m.AddToCart(ctx, domain.Item{ID: "p1", Title: "Kikoy", Price: decimal.RequireFromString("1250.50"), Stock: &stock}, 2)
	m.AddToCart(ctx, item("p2", 15), 5)
	m.UpdateQuantity(ctx, "p3", 9)

	restored, _ := newManager(t, store)
	if diff := cmp.Diff(m.Lines(), restored.Lines(), decimalEqual); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt value degrades to empty cart", func(t *testing.T) {
		store := storage.NewMemory()
		_ = store.Set(ctx, storeKey, "{not json")
		m, _ := newManager(t, store)
		if len(m.Lines()) != 0 {
			t.Fatalf("expected empty cart, got %+v", m.Lines())
		}
	})

	t.Run("stored duplicates and bad quantities are normalized", func(t *testing.T) {
		store := storage.NewMemory()
		_ = store.Set(ctx, storeKey, `[{"id":"a","price":"1","quantity":1},{"id":"b","price":"1","quantity":0},{"id":"a","price":"1","quantity":2}]`)
		m, _ := newManager(t, store)
		lines := m.Lines()
		if len(lines) != 1 || lines[0].Quantity != 3 {
			t.Fatalf("got %+v", lines)
		}
	})

	t.Run("store failure is returned", func(t *testing.T) {
		m := NewManager(&failingStore{getErr: errors.New("disk gone")}, nil, logger.Discard())
		if err := m.Load(ctx); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{getErr: storage.ErrNotFound, setErr: errors.New("read-only")}
	m, _ := newManager(t, store)

	m.AddToCart(ctx, item("p1", 100), 1)
	if !m.IsInCart("p1") || store.sets != 1 {
		t.Fatalf("in-memory state must apply even when the write fails (sets=%d)", store.sets)
	}
}
