package app

import (
	"github.com/theLastOfCats/bookstore-go/internal/cart"
	"github.com/theLastOfCats/bookstore-go/internal/catalog"
	"github.com/theLastOfCats/bookstore-go/internal/identity"
)

// Landing is the public catalog page. All shared operations apply; nothing
// requires a session up front.
type Landing struct {
	Page
}

func NewLanding(ui UI, ident *identity.Manager, loader *catalog.Loader, mutator *catalog.Mutator, cartMgr *cart.Manager) *Landing {
	return &Landing{Page: newPage(ui, ident, loader, mutator, cartMgr)}
}
