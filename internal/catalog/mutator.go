package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/theLastOfCats/bookstore-go/internal/model"
	"github.com/theLastOfCats/bookstore-go/internal/storage"
)

// UserBookIDBase offsets user-created book ids into their own namespace so
// they can never collide with ids assigned by the remote catalog.
const UserBookIDBase = 1 << 30

// BookInput carries raw form fields for book creation.
type BookInput struct {
	Title       string
	Author      string
	Price       string
	Cover       string
	Description string
}

type Mutator struct {
	Store *storage.Store
	// DeletePersists controls whether Delete also rewrites the persisted
	// user-book record. When false a deleted user book reappears on the
	// next load.
	DeletePersists bool
}

// Create trims the input, coerces the price, allocates the next user-book
// id and pushes the book onto the front of both the in-memory view and the
// persisted user-book record. Empty titles and authors are allowed.
func (m *Mutator) Create(ctx context.Context, view []model.Book, in BookInput) ([]model.Book, model.Book, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil || price < 0 {
		price = 0
	}

	seq, err := m.Store.NextBookSeq(ctx)
	if err != nil {
		return view, model.Book{}, err
	}

	book := model.Book{
		ID:          UserBookIDBase + seq,
		Title:       strings.TrimSpace(in.Title),
		Author:      strings.TrimSpace(in.Author),
		Price:       price,
		Cover:       strings.TrimSpace(in.Cover),
		Description: strings.TrimSpace(in.Description),
	}

	userBooks := m.Store.UserBooks()
	userBooks = append([]model.Book{book}, userBooks...)
	if err := m.Store.SetUserBooks(userBooks); err != nil {
		return view, model.Book{}, err
	}

	view = append([]model.Book{book}, view...)
	return view, book, nil
}

// Delete removes the book from the in-memory view and, when DeletePersists
// is set, from the persisted user-book record as well.
func (m *Mutator) Delete(view []model.Book, id int64) ([]model.Book, error) {
	out := make([]model.Book, 0, len(view))
	for _, b := range view {
		if b.ID != id {
			out = append(out, b)
		}
	}

	if m.DeletePersists {
		userBooks := m.Store.UserBooks()
		kept := make([]model.Book, 0, len(userBooks))
		for _, b := range userBooks {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		if len(kept) != len(userBooks) {
			if err := m.Store.SetUserBooks(kept); err != nil {
				return out, err
			}
		}
	}

	return out, nil
}
