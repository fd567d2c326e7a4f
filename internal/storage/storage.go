package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQLite string

//go:embed schema_mysql.sql
var schemaMySQL string

// Logical record keys. Each key holds exactly one JSON-encoded value.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyCart        = "cart"
	KeyUserBooks   = "userBooks"
	KeyBookSeq     = "bookSeq"
)

// Store is a small key-value store over SQL. Keys are written independently;
// there is no transactional guarantee across keys.
type Store struct {
	*sql.DB
	dialect string
}

func New(dsn string) (*Store, error) {
	var db *sql.DB
	var err error
	var dialect string

	// Determine database type based on DSN format.
	// MySQL DSN examples: user:password@tcp(host:port)/dbname, user:password@/dbname
	// SQLite DSN: file path (e.g., data/bookstore.db, :memory:)
	isMySQL := strings.Contains(dsn, "@")

	if isMySQL {
		dialect = "mysql"
		db, err = sql.Open("mysql", dsn)
	} else {
		// SQLite database - ensure directory exists (unless it's :memory:)
		dialect = "sqlite"
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			dir := filepath.Dir(dsn)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}

		// Add SQLite pragmas via DSN to ensure they apply to all connections
		if !strings.Contains(dsn, "?") {
			dsn += "?"
		} else {
			dsn += "&"
		}
		pragmas := []string{
			"_pragma=journal_mode(WAL)",
			"_pragma=busy_timeout(30000)",
			"_pragma=synchronous(NORMAL)",
		}
		dsn += strings.Join(pragmas, "&")

		db, err = sql.Open("sqlite", dsn)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if dialect == "sqlite" {
		// A single connection keeps :memory: databases coherent and is plenty
		// for one-record-at-a-time key-value access.
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(db, dialect); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{DB: db, dialect: dialect}, nil
}

func initSchema(db *sql.DB, dialect string) error {
	var schema string
	if dialect == "mysql" {
		schema = schemaMySQL
	} else {
		schema = schemaSQLite
	}

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) upsertSQL() string {
	if s.dialect == "mysql" {
		return "INSERT INTO kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)"
	}
	return "INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v"
}

// GetRaw returns the stored text for a key. Absent keys and read errors both
// report false; a missing record is never an error for callers.
func (s *Store) GetRaw(key string) (string, bool) {
	var v string
	err := s.QueryRow("SELECT v FROM kv WHERE k = ?", key).Scan(&v)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("storage: read %q: %v", key, err)
		}
		return "", false
	}
	return v, true
}

func (s *Store) SetRaw(key, value string) error {
	if _, err := s.Exec(s.upsertSQL(), key, value); err != nil {
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(key string) error {
	if _, err := s.Exec("DELETE FROM kv WHERE k = ?", key); err != nil {
		return fmt.Errorf("storage: remove %q: %w", key, err)
	}
	return nil
}
