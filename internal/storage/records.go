package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/theLastOfCats/bookstore-go/internal/model"
)

// getJSON decodes the record stored under key into dst. Malformed records
// are swallowed and read as absent, so every caller falls back to its
// default value.
func (s *Store) getJSON(key string, dst any) bool {
	raw, ok := s.GetRaw(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false
	}
	return true
}

func (s *Store) setJSON(key string, v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.SetRaw(key, string(buf))
}

func (s *Store) Users() []model.User {
	var users []model.User
	if !s.getJSON(KeyUsers, &users) || users == nil {
		return []model.User{}
	}
	return users
}

func (s *Store) SetUsers(users []model.User) error {
	return s.setJSON(KeyUsers, users)
}

func (s *Store) Cart() []model.CartLine {
	var lines []model.CartLine
	if !s.getJSON(KeyCart, &lines) || lines == nil {
		return []model.CartLine{}
	}
	return lines
}

func (s *Store) SetCart(lines []model.CartLine) error {
	return s.setJSON(KeyCart, lines)
}

func (s *Store) RemoveCart() error {
	return s.Remove(KeyCart)
}

func (s *Store) UserBooks() []model.Book {
	var books []model.Book
	if !s.getJSON(KeyUserBooks, &books) || books == nil {
		return []model.Book{}
	}
	return books
}

func (s *Store) SetUserBooks(books []model.Book) error {
	return s.setJSON(KeyUserBooks, books)
}

// The session record is stored as raw text: either a JSON user snapshot or a
// signed token, depending on how the identity manager was configured.

func (s *Store) CurrentUserRaw() (string, bool) {
	return s.GetRaw(KeyCurrentUser)
}

func (s *Store) SetCurrentUserRaw(value string) error {
	return s.SetRaw(KeyCurrentUser, value)
}

func (s *Store) RemoveCurrentUser() error {
	return s.Remove(KeyCurrentUser)
}

// NextBookSeq increments and returns the user-book id counter. The
// read-modify-write runs in a transaction so two sequential creates can
// never observe the same value.
func (s *Store) NextBookSeq(ctx context.Context) (int64, error) {
	var next int64
	err := s.WithTx(ctx, func(tx *sql.Tx) error {
		var cur int64
		var raw string
		err := tx.QueryRowContext(ctx, "SELECT v FROM kv WHERE k = ?", KeyBookSeq).Scan(&raw)
		if err == nil {
			// Malformed counters restart from zero, like every other record.
			json.Unmarshal([]byte(raw), &cur)
		} else if err != sql.ErrNoRows {
			return err
		}

		next = cur + 1
		buf, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, s.upsertSQL(), KeyBookSeq, string(buf))
		return err
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}
