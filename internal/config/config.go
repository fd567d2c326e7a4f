package config

import (
	"os"
	"strconv"
)

// Config holds the runtime settings, read once at startup from the
// environment (with .env support via godotenv in main).
type Config struct {
	// DBPath is the key-value store DSN: a sqlite file path, :memory:,
	// or a MySQL DSN.
	DBPath string
	// CatalogURL is the catalog resource: an http(s) URL or a local file.
	CatalogURL string
	// SessionSecret enables signed session records when non-empty.
	SessionSecret string
	// RequireLoginForCart guards add-to-cart behind an active session.
	RequireLoginForCart bool
	// PersistDeletes makes book deletion rewrite the persisted user-book
	// record instead of only the in-memory view.
	PersistDeletes bool
}

func FromEnv() *Config {
	cfg := &Config{
		DBPath:              "data/bookstore.db",
		CatalogURL:          "db.json",
		RequireLoginForCart: true,
		PersistDeletes:      false,
	}

	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CATALOG_URL"); v != "" {
		cfg.CatalogURL = v
	}
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	cfg.RequireLoginForCart = envBool("REQUIRE_LOGIN_FOR_CART", cfg.RequireLoginForCart)
	cfg.PersistDeletes = envBool("PERSIST_DELETES", cfg.PersistDeletes)

	return cfg
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
