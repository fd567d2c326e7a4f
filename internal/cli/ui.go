// Package cli is the console shell: it renders the catalog and drives the
// page controllers through blocking prompts, standing in for the page forms
// and modal dialogs of a browser front end.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/theLastOfCats/bookstore-go/internal/model"
)

type UI struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *UI {
	return &UI{in: bufio.NewReader(in), out: out}
}

func (u *UI) Alert(msg string) {
	fmt.Fprintf(u.out, "\n%s\n", msg)
}

func (u *UI) Confirm(msg string) bool {
	fmt.Fprintf(u.out, "\n%s [y/N] ", msg)
	answer := strings.ToLower(strings.TrimSpace(u.readLine()))
	return answer == "y" || answer == "yes"
}

func (u *UI) Prompt(label string) string {
	fmt.Fprintf(u.out, "%s: ", label)
	return strings.TrimSpace(u.readLine())
}

func (u *UI) ShowBooks(books []model.Book) {
	if len(books) == 0 {
		fmt.Fprintln(u.out, "\nNo books found.")
		return
	}
	fmt.Fprintln(u.out)
	for _, b := range books {
		fmt.Fprintf(u.out, "[%d] %s — %s  $%.2f\n", b.ID, b.Title, b.Author, b.Price)
	}
}

func (u *UI) ShowSession(user *model.User) {
	if user != nil {
		fmt.Fprintf(u.out, "\nLogged in as %s\n", user.Name)
		return
	}
	fmt.Fprintln(u.out, "\nNot logged in. Use Login or Register.")
}

func (u *UI) ShowCartCount(n int) {
	fmt.Fprintf(u.out, "Cart: %d item(s)\n", n)
}

func (u *UI) readLine() string {
	s, _ := u.in.ReadString('\n')
	return strings.TrimRight(s, "\r\n")
}
