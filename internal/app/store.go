package app

import (
	"context"
	"fmt"

	"github.com/theLastOfCats/bookstore-go/internal/cart"
	"github.com/theLastOfCats/bookstore-go/internal/catalog"
	"github.com/theLastOfCats/bookstore-go/internal/identity"
	"github.com/theLastOfCats/bookstore-go/internal/model"
)

// StorePage is the authenticated page. It requires a session at entry and
// additionally offers book deletion.
type StorePage struct {
	Page
}

func NewStorePage(ui UI, ident *identity.Manager, loader *catalog.Loader, mutator *catalog.Mutator, cartMgr *cart.Manager) *StorePage {
	return &StorePage{Page: newPage(ui, ident, loader, mutator, cartMgr)}
}

// Open loads the page when a session exists. Without one it reports false
// and the caller bounces back to the landing page.
func (s *StorePage) Open(ctx context.Context) bool {
	if s.identity.Current() == nil {
		return false
	}
	s.Load(ctx)
	return true
}

// DeleteBook removes the book from the view after confirmation. Whether the
// persisted user-book record changes too is the mutator's DeletePersists
// switch.
func (s *StorePage) DeleteBook(book model.Book) {
	if !s.ui.Confirm(fmt.Sprintf("Delete %q?", book.Title)) {
		return
	}
	view, err := s.mutator.Delete(s.books, book.ID)
	if err != nil {
		s.ui.Alert(fmt.Sprintf("Could not delete book: %v", err))
		return
	}
	s.books = view
	s.ui.ShowBooks(s.books)
}
