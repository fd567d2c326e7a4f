package cart_test

import (
	"testing"

	"github.com/theLastOfCats/bookstore-go/internal/cart"
	"github.com/theLastOfCats/bookstore-go/internal/model"
	"github.com/theLastOfCats/bookstore-go/internal/testutil"
)

func TestAddSameBookTwiceIncrementsQty(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := &cart.Manager{Store: store}

	book := model.Book{ID: 1, Title: "Go in Action", Price: 29.99}
	if err := m.Add(book); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := m.Add(book); err != nil {
		t.Fatalf("Add: %v", err)
	}

	lines := m.Lines()
	if len(lines) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(lines))
	}
	if lines[0].Qty != 2 {
		t.Errorf("line qty = %d, want 2", lines[0].Qty)
	}
	if m.Count() != 2 {
		t.Errorf("Count = %d, want 2", m.Count())
	}
}

func TestAddDifferentBooks(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := &cart.Manager{Store: store}

	if err := m.Add(model.Book{ID: 1, Title: "A", Price: 5}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := m.Add(model.Book{ID: 2, Title: "B", Price: 10}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := m.Add(model.Book{ID: 2, Title: "B", Price: 10}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if m.Count() != 3 {
		t.Errorf("Count = %d, want 3", m.Count())
	}
	if got := m.Total(); got != 25 {
		t.Errorf("Total = %v, want 25", got)
	}
}

func TestAddRequiresSession(t *testing.T) {
	store := testutil.SetupTestStore(t)

	var session *model.User
	m := &cart.Manager{
		Store:          store,
		RequireSession: true,
		Session:        func() *model.User { return session },
	}

	err := m.Add(model.Book{ID: 1, Title: "A", Price: 5})
	if err != cart.ErrLoginRequired {
		t.Fatalf("Add without session = %v, want ErrLoginRequired", err)
	}
	if len(m.Lines()) != 0 {
		t.Errorf("cart = %v after refused add, want empty", m.Lines())
	}

	session = &model.User{ID: 1, Username: "ann"}
	if err := m.Add(model.Book{ID: 1, Title: "A", Price: 5}); err != nil {
		t.Fatalf("Add with session: %v", err)
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestGuardDisabledAllowsAnonymousAdd(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := &cart.Manager{Store: store, RequireSession: false}

	if err := m.Add(model.Book{ID: 1, Title: "A", Price: 5}); err != nil {
		t.Fatalf("Add without guard: %v", err)
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestClear(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := &cart.Manager{Store: store}

	if err := m.Add(model.Book{ID: 1, Title: "A", Price: 5}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if m.Count() != 0 {
		t.Errorf("Count after clear = %d, want 0", m.Count())
	}
	if _, ok := store.GetRaw("cart"); ok {
		t.Error("cart record still present after clear")
	}
}

func TestCartPersistsAcrossManagers(t *testing.T) {
	store := testutil.SetupTestStore(t)

	first := &cart.Manager{Store: store}
	if err := first.Add(model.Book{ID: 1, Title: "A", Price: 5}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// A second manager over the same store sees the same lines, like a
	// second page controller would.
	second := &cart.Manager{Store: store}
	if second.Count() != 1 {
		t.Errorf("Count from second manager = %d, want 1", second.Count())
	}
}
