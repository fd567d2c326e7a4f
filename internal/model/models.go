package model

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Book struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Cover       string  `json:"cover,omitempty"`
	Description string  `json:"description,omitempty"`
}

// CartLine references a Book by id together with the quantity in the cart.
type CartLine struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

func (l CartLine) LineTotal() float64 {
	return float64(l.Qty) * l.Price
}

// CatalogPayload is the shape of the remote catalog resource.
type CatalogPayload struct {
	Books []Book `json:"books"`
}
