// Package app binds the identity, catalog and cart services to the two
// page controllers. Pages hold no state beyond the in-memory catalog view;
// everything durable lives in the storage records.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/theLastOfCats/bookstore-go/internal/cart"
	"github.com/theLastOfCats/bookstore-go/internal/catalog"
	"github.com/theLastOfCats/bookstore-go/internal/identity"
	"github.com/theLastOfCats/bookstore-go/internal/model"
)

// UI is the set of blocking render and dialog primitives a page needs. The
// surrounding shell (console, tests) provides the implementation.
type UI interface {
	Alert(msg string)
	Confirm(msg string) bool
	ShowBooks(books []model.Book)
	ShowSession(user *model.User)
	ShowCartCount(n int)
}

// Page wires the shared operations both pages expose. Landing and StorePage
// add their page-specific behavior on top.
type Page struct {
	ui       UI
	identity *identity.Manager
	loader   *catalog.Loader
	mutator  *catalog.Mutator
	cart     *cart.Manager

	books []model.Book
}

func newPage(ui UI, ident *identity.Manager, loader *catalog.Loader, mutator *catalog.Mutator, cartMgr *cart.Manager) Page {
	return Page{ui: ui, identity: ident, loader: loader, mutator: mutator, cart: cartMgr}
}

// Load recomputes the merged catalog view and renders the initial state:
// book list, cart count and session controls.
func (p *Page) Load(ctx context.Context) {
	p.books = p.loader.Load(ctx)
	p.ui.ShowBooks(p.books)
	p.ui.ShowCartCount(p.cart.Count())
	p.ui.ShowSession(p.identity.Current())
}

// Books exposes the current in-memory catalog view.
func (p *Page) Books() []model.Book {
	return p.books
}

func (p *Page) Session() *model.User {
	return p.identity.Current()
}

// Search renders the filtered view without touching the underlying list.
func (p *Page) Search(query string) {
	p.ui.ShowBooks(catalog.Filter(p.books, query))
}

func (p *Page) AddToCart(book model.Book) {
	if err := p.cart.Add(book); err != nil {
		if errors.Is(err, cart.ErrLoginRequired) {
			p.ui.Alert("Please login to add items to cart")
		} else {
			p.ui.Alert(fmt.Sprintf("Could not add to cart: %v", err))
		}
		return
	}
	p.ui.ShowCartCount(p.cart.Count())
	p.ui.Alert(fmt.Sprintf("Added %q to cart.", book.Title))
}

// ViewCart presents the cart lines and grand total, then clears the cart if
// the user confirms. Declining leaves everything untouched.
func (p *Page) ViewCart() {
	lines := p.cart.Lines()
	if len(lines) == 0 {
		p.ui.Alert("Cart is empty")
		return
	}

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s — %d × $%.2f = $%.2f", l.Title, l.Qty, l.Price, l.LineTotal())
	}
	fmt.Fprintf(&sb, "\n\nTotal: $%.2f\n\nClear cart?", p.cart.Total())

	if !p.ui.Confirm(sb.String()) {
		return
	}
	if err := p.cart.Clear(); err != nil {
		p.ui.Alert(fmt.Sprintf("Could not clear cart: %v", err))
		return
	}
	p.ui.ShowCartCount(0)
}

// CreateBook adds a user book and re-renders the grown view.
func (p *Page) CreateBook(ctx context.Context, in catalog.BookInput) {
	view, _, err := p.mutator.Create(ctx, p.books, in)
	if err != nil {
		p.ui.Alert(fmt.Sprintf("Could not add book: %v", err))
		return
	}
	p.books = view
	p.ui.ShowBooks(p.books)
}

func (p *Page) ShowDetails(book model.Book) {
	desc := book.Description
	if desc == "" {
		desc = "No description."
	}
	p.ui.Alert(fmt.Sprintf("%s\n\nAuthor: %s\n\n%s", book.Title, book.Author, desc))
}

func (p *Page) Login(username, password string) {
	if _, err := p.identity.Login(username, password); err != nil {
		p.ui.Alert("Invalid username or password")
		return
	}
	p.ui.Alert("Login successful!")
	p.ui.ShowSession(p.identity.Current())
}

func (p *Page) Register(name, username, password string) {
	if _, err := p.identity.Register(name, username, password); err != nil {
		if errors.Is(err, identity.ErrUsernameTaken) {
			p.ui.Alert("Username already taken")
		} else {
			p.ui.Alert(fmt.Sprintf("Could not register: %v", err))
		}
		return
	}
	p.ui.Alert("Registration successful!")
	p.ui.ShowSession(p.identity.Current())
}

func (p *Page) Logout() {
	if err := p.identity.Logout(); err != nil {
		p.ui.Alert(fmt.Sprintf("Could not log out: %v", err))
		return
	}
	p.ui.ShowSession(nil)
}
