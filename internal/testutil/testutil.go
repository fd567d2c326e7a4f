package testutil

import (
	"testing"

	"github.com/theLastOfCats/bookstore-go/internal/model"
	"github.com/theLastOfCats/bookstore-go/internal/storage"
)

// SetupTestStore creates a fresh in-memory sqlite store.
func SetupTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.New("file::memory:")
	if err != nil {
		t.Fatalf("Failed to init in-memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// ScriptedUI records every page render and dialog, and answers confirms
// from a queue (defaulting to decline when the queue is empty).
type ScriptedUI struct {
	Alerts         []string
	Confirms       []string
	ConfirmAnswers []bool
	BookViews      [][]model.Book
	SessionViews   []*model.User
	CartCounts     []int
}

func (u *ScriptedUI) Alert(msg string) {
	u.Alerts = append(u.Alerts, msg)
}

func (u *ScriptedUI) Confirm(msg string) bool {
	u.Confirms = append(u.Confirms, msg)
	if len(u.ConfirmAnswers) == 0 {
		return false
	}
	answer := u.ConfirmAnswers[0]
	u.ConfirmAnswers = u.ConfirmAnswers[1:]
	return answer
}

func (u *ScriptedUI) ShowBooks(books []model.Book) {
	u.BookViews = append(u.BookViews, books)
}

func (u *ScriptedUI) ShowSession(user *model.User) {
	u.SessionViews = append(u.SessionViews, user)
}

func (u *ScriptedUI) ShowCartCount(n int) {
	u.CartCounts = append(u.CartCounts, n)
}

// LastBooks is the most recent rendered list, nil when nothing rendered.
func (u *ScriptedUI) LastBooks() []model.Book {
	if len(u.BookViews) == 0 {
		return nil
	}
	return u.BookViews[len(u.BookViews)-1]
}

// LastAlert is the most recent alert text, empty when none.
func (u *ScriptedUI) LastAlert() string {
	if len(u.Alerts) == 0 {
		return ""
	}
	return u.Alerts[len(u.Alerts)-1]
}
