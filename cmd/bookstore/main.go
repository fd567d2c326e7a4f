package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/theLastOfCats/bookstore-go/internal/app"
	"github.com/theLastOfCats/bookstore-go/internal/cart"
	"github.com/theLastOfCats/bookstore-go/internal/catalog"
	"github.com/theLastOfCats/bookstore-go/internal/cli"
	"github.com/theLastOfCats/bookstore-go/internal/config"
	"github.com/theLastOfCats/bookstore-go/internal/identity"
	"github.com/theLastOfCats/bookstore-go/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	store, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	ident := identity.New(store, []byte(cfg.SessionSecret))
	loader := &catalog.Loader{
		Source: cfg.CatalogURL,
		Store:  store,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
	mutator := &catalog.Mutator{Store: store, DeletePersists: cfg.PersistDeletes}
	cartMgr := &cart.Manager{
		Store:          store,
		RequireSession: cfg.RequireLoginForCart,
		Session:        ident.Current,
	}

	ui := cli.New(os.Stdin, os.Stdout)
	landing := app.NewLanding(ui, ident, loader, mutator, cartMgr)
	storePage := app.NewStorePage(ui, ident, loader, mutator, cartMgr)

	log.Printf("Bookstore starting (db=%s, catalog=%s)...", cfg.DBPath, cfg.CatalogURL)
	cli.Run(context.Background(), ui, landing, storePage)
}
