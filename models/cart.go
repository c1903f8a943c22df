package models

// CartLine is a frozen copy of a Product plus a quantity. Catalog changes
// after the add never affect lines already in the cart.
type CartLine struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
	Quantity    int     `json:"quantity"`
}

func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      p.Rating,
		Quantity:    quantity,
	}
}

// LineTotal is price times quantity for one line.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartSnapshot is the read view returned to callers: the ordered lines plus
// the aggregates the screens render as badges and totals.
type CartSnapshot struct {
	Items      []CartLine `json:"items"`
	TotalItems int        `json:"total_items"`
	Subtotal   float64    `json:"subtotal"`
}
