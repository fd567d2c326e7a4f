// Package catalog loads the merged book catalog and applies ad-hoc
// mutations to it. The merged view is in-memory only and recomputed on
// every load; only user-created books are persisted.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/theLastOfCats/bookstore-go/internal/model"
	"github.com/theLastOfCats/bookstore-go/internal/storage"
)

// Fallback returns the fixed offline sample used when the catalog resource
// cannot be loaded.
func Fallback() []model.Book {
	return []model.Book{
		{
			ID:          1,
			Title:       "Fallback Book A",
			Author:      "Author A",
			Price:       9.99,
			Description: "Offline sample book.",
		},
	}
}

type Loader struct {
	// Source is an http(s) URL or a local file path holding a
	// {"books": [...]} payload.
	Source string
	Store  *storage.Store
	Client *http.Client
}

// Load fetches the catalog resource, substituting the offline sample on any
// failure, and prepends persisted user books (newest first). Fetch failures
// are logged, never surfaced.
func (l *Loader) Load(ctx context.Context) []model.Book {
	books, err := l.fetch(ctx)
	if err != nil {
		log.Printf("catalog: using offline sample: %v", err)
		books = Fallback()
	}

	if userBooks := l.Store.UserBooks(); len(userBooks) > 0 {
		merged := make([]model.Book, 0, len(userBooks)+len(books))
		merged = append(merged, userBooks...)
		merged = append(merged, books...)
		return merged
	}
	return books
}

func (l *Loader) fetch(ctx context.Context) ([]model.Book, error) {
	if strings.HasPrefix(l.Source, "http://") || strings.HasPrefix(l.Source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
		if err != nil {
			return nil, err
		}
		// Always bypass intermediary caches.
		req.Header.Set("Cache-Control", "no-store")
		req.Header.Set("Pragma", "no-cache")

		client := l.Client
		if client == nil {
			client = &http.Client{Timeout: 10 * time.Second}
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, l.Source)
		}

		var payload model.CatalogPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
		return payload.Books, nil
	}

	raw, err := os.ReadFile(l.Source)
	if err != nil {
		return nil, err
	}
	var payload model.CatalogPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file: %w", err)
	}
	return payload.Books, nil
}

// Filter returns the books whose title and author contain the query as a
// case-insensitive substring, preserving order. An empty query returns the
// input unchanged.
func Filter(books []model.Book, query string) []model.Book {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return books
	}

	var out []model.Book
	for _, b := range books {
		haystack := strings.ToLower(b.Title + " " + b.Author)
		if strings.Contains(haystack, q) {
			out = append(out, b)
		}
	}
	return out
}
