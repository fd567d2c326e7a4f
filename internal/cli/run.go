package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/theLastOfCats/bookstore-go/internal/app"
	"github.com/theLastOfCats/bookstore-go/internal/catalog"
	"github.com/theLastOfCats/bookstore-go/internal/model"
)

// Run drives the two pages until the user quits. Each page entry reloads
// the merged catalog, like a browser page load would.
func Run(ctx context.Context, ui *UI, landing *app.Landing, store *app.StorePage) {
	for {
		landing.Load(ctx)
		if !landingLoop(ctx, ui, landing) {
			return
		}
		if !store.Open(ctx) {
			ui.Alert("Please login first")
			continue
		}
		if !storeLoop(ctx, ui, store) {
			return
		}
	}
}

// landingLoop returns false to quit, true to move to the store page.
func landingLoop(ctx context.Context, ui *UI, page *app.Landing) bool {
	for {
		fmt.Fprintln(ui.out, "\n=== Bookstore ===")
		fmt.Fprintln(ui.out, "1) List books")
		fmt.Fprintln(ui.out, "2) Search")
		fmt.Fprintln(ui.out, "3) Book details")
		fmt.Fprintln(ui.out, "4) Add to cart")
		fmt.Fprintln(ui.out, "5) View cart")
		fmt.Fprintln(ui.out, "6) Add a book")
		fmt.Fprintln(ui.out, "7) Login")
		fmt.Fprintln(ui.out, "8) Register")
		fmt.Fprintln(ui.out, "9) Logout")
		fmt.Fprintln(ui.out, "s) Go to store page")
		fmt.Fprintln(ui.out, "0) Quit")
		fmt.Fprint(ui.out, "> ")

		switch ui.readLine() {
		case "1":
			ui.ShowBooks(page.Books())
		case "2":
			page.Search(ui.Prompt("Search"))
		case "3":
			if b, ok := chooseBook(ui, page.Books()); ok {
				page.ShowDetails(b)
			}
		case "4":
			if b, ok := chooseBook(ui, page.Books()); ok {
				page.AddToCart(b)
			}
		case "5":
			page.ViewCart()
		case "6":
			page.CreateBook(ctx, promptBook(ui))
		case "7":
			page.Login(ui.Prompt("Username"), ui.Prompt("Password"))
		case "8":
			page.Register(ui.Prompt("Name"), ui.Prompt("Username"), ui.Prompt("Password"))
		case "9":
			page.Logout()
		case "s":
			return true
		case "0":
			return false
		}
	}
}

// storeLoop returns false to quit, true to go back to the landing page.
func storeLoop(ctx context.Context, ui *UI, page *app.StorePage) bool {
	for {
		fmt.Fprintln(ui.out, "\n=== Store ===")
		fmt.Fprintln(ui.out, "1) List books")
		fmt.Fprintln(ui.out, "2) Search")
		fmt.Fprintln(ui.out, "3) Book details")
		fmt.Fprintln(ui.out, "4) Add to cart")
		fmt.Fprintln(ui.out, "5) View cart")
		fmt.Fprintln(ui.out, "6) Add a book")
		fmt.Fprintln(ui.out, "7) Delete a book")
		fmt.Fprintln(ui.out, "8) Logout")
		fmt.Fprintln(ui.out, "b) Back to landing page")
		fmt.Fprintln(ui.out, "0) Quit")
		fmt.Fprint(ui.out, "> ")

		switch ui.readLine() {
		case "1":
			ui.ShowBooks(page.Books())
		case "2":
			page.Search(ui.Prompt("Search"))
		case "3":
			if b, ok := chooseBook(ui, page.Books()); ok {
				page.ShowDetails(b)
			}
		case "4":
			if b, ok := chooseBook(ui, page.Books()); ok {
				page.AddToCart(b)
			}
		case "5":
			page.ViewCart()
		case "6":
			page.CreateBook(ctx, promptBook(ui))
		case "7":
			if b, ok := chooseBook(ui, page.Books()); ok {
				page.DeleteBook(b)
			}
		case "8":
			page.Logout()
			return true
		case "b":
			return true
		case "0":
			return false
		}
	}
}

func chooseBook(ui *UI, books []model.Book) (model.Book, bool) {
	raw := ui.Prompt("Book id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		ui.Alert("Not a valid book id")
		return model.Book{}, false
	}
	for _, b := range books {
		if b.ID == id {
			return b, true
		}
	}
	ui.Alert("No such book")
	return model.Book{}, false
}

func promptBook(ui *UI) catalog.BookInput {
	return catalog.BookInput{
		Title:       ui.Prompt("Title"),
		Author:      ui.Prompt("Author"),
		Price:       ui.Prompt("Price"),
		Cover:       ui.Prompt("Cover URL"),
		Description: ui.Prompt("Description"),
	}
}
