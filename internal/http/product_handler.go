package http

import (
	"errors"
	"math"
	"net/http"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type Catalog interface {
	All() []domain.Book
	ByID(id string) (domain.Book, error)
	BySlug(slug string) (domain.Book, error)
}

type ProductHandler struct {
	catalog Catalog
}

func NewProductHandler(c Catalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

type BookResponse struct {
	ID                 string  `json:"id"`
	Slug               string  `json:"slug"`
	Title              string  `json:"title"`
	Author             string  `json:"author"`
	Price              string  `json:"price"`
	FinalPrice         string  `json:"final_price"`
	DiscountPercentage int     `json:"discount_percentage"`
	CoverImage         string  `json:"cover_image"`
	Rating             float64 `json:"rating"`
	Genre              string  `json:"genre"`
	Description        string  `json:"description,omitempty"`
	Pages              int     `json:"pages,omitempty"`
	Year               int     `json:"year,omitempty"`
}

type BooksResponse struct {
	Books []BookResponse `json:"books"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	books := h.catalog.All()
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = toBookResponse(b)
		// descriptions only on the detail view
		out[i].Description = ""
	}
	respondJSON(w, http.StatusOK, &BooksResponse{Books: out})
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	h.respondBook(w, func() (domain.Book, error) {
		return h.catalog.ByID(chi.URLParam(r, "id"))
	})
}

func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	h.respondBook(w, func() (domain.Book, error) {
		return h.catalog.BySlug(chi.URLParam(r, "slug"))
	})
}

func (h *ProductHandler) respondBook(w http.ResponseWriter, find func() (domain.Book, error)) {
	book, err := find()
	if errors.Is(err, catalog.ErrBookNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "book not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, toBookResponse(book))
}

func toBookResponse(b domain.Book) BookResponse {
	return BookResponse{
		ID:                 b.ID,
		Slug:               catalog.Slugify(b.Title),
		Title:              b.Title,
		Author:             b.Author,
		Price:              cart.FormatPrice(decimal.NewFromFloat(b.Price)),
		FinalPrice:         cart.FormatPrice(decimal.NewFromFloat(b.FinalPrice())),
		DiscountPercentage: int(math.Round(b.Discount * 100)),
		CoverImage:         b.CoverImage,
		Rating:             b.Rating,
		Genre:              b.Genre,
		Description:        b.Description,
		Pages:              b.Pages,
		Year:               b.Year,
	}
}
