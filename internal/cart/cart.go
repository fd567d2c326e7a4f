// Package cart maintains the quantity-keyed line-item list. The full cart
// is persisted after every mutation; lines are never partially removed, only
// cleared wholesale.
package cart

import (
	"errors"

	"github.com/theLastOfCats/bookstore-go/internal/model"
	"github.com/theLastOfCats/bookstore-go/internal/storage"
)

var ErrLoginRequired = errors.New("please login to add items to cart")

// SessionFunc reports the active session, nil when logged out.
type SessionFunc func() *model.User

type Manager struct {
	Store *storage.Store
	// RequireSession makes Add fail without an active session. The source
	// pages disagreed on this guard, so it is an explicit switch.
	RequireSession bool
	Session        SessionFunc
}

// Add increments the quantity of the existing line for the book id, or
// appends a new line with quantity 1.
func (m *Manager) Add(book model.Book) error {
	if m.RequireSession {
		if m.Session == nil || m.Session() == nil {
			return ErrLoginRequired
		}
	}

	lines := m.Store.Cart()
	for i := range lines {
		if lines[i].ID == book.ID {
			lines[i].Qty++
			return m.Store.SetCart(lines)
		}
	}

	lines = append(lines, model.CartLine{
		ID:    book.ID,
		Title: book.Title,
		Price: book.Price,
		Qty:   1,
	})
	return m.Store.SetCart(lines)
}

func (m *Manager) Lines() []model.CartLine {
	return m.Store.Cart()
}

// Count is the displayed item count: the sum of quantities across lines.
func (m *Manager) Count() int {
	var n int
	for _, l := range m.Store.Cart() {
		n += l.Qty
	}
	return n
}

func (m *Manager) Total() float64 {
	var total float64
	for _, l := range m.Store.Cart() {
		total += l.LineTotal()
	}
	return total
}

// Clear removes the persisted cart record entirely.
func (m *Manager) Clear() error {
	return m.Store.RemoveCart()
}
