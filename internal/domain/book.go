package domain

// Book is a catalog record. The cart only reads ID, Price and Discount;
// the rest is carried along so a persisted cart can render without the catalog.
type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"` // fraction in [0,1)
	CoverImage  string  `json:"coverImage,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	Description string  `json:"description,omitempty"`
	Pages       int     `json:"pages,omitempty"`
	Year        int     `json:"year,omitempty"`
}

// FinalPrice applies the discount. The result is never rounded here;
// rounding happens only when a price is displayed.
func FinalPrice(price, discount float64) float64 {
	return price * (1 - discount)
}

// FinalPrice returns the discounted price of the book
func (b Book) FinalPrice() float64 {
	return FinalPrice(b.Price, b.Discount)
}
