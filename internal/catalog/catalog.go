package catalog

import (
	"errors"
	"regexp"
	"strings"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

var ErrBookNotFound = errors.New("book not found")

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and joins its alphanumeric runs with dashes
func Slugify(s string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	return strings.Trim(slug, "-")
}

// Catalog is a read-only, ordered list of books
type Catalog struct {
	books  []domain.Book
	byID   map[string]int
	bySlug map[string]int
}

func New(books []domain.Book) *Catalog {
	c := &Catalog{
		books:  make([]domain.Book, len(books)),
		byID:   make(map[string]int, len(books)),
		bySlug: make(map[string]int, len(books)),
	}
	copy(c.books, books)
	for i, b := range c.books {
		c.byID[b.ID] = i
		// first title wins when two books slugify the same
		if _, exists := c.bySlug[Slugify(b.Title)]; !exists {
			c.bySlug[Slugify(b.Title)] = i
		}
	}
	return c
}

// Default returns the catalog seeded with the built-in books
func Default() *Catalog {
	return New(seedBooks)
}

func (c *Catalog) All() []domain.Book {
	out := make([]domain.Book, len(c.books))
	copy(out, c.books)
	return out
}

func (c *Catalog) ByID(id string) (domain.Book, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Book{}, ErrBookNotFound
	}
	return c.books[i], nil
}

func (c *Catalog) BySlug(slug string) (domain.Book, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Book{}, ErrBookNotFound
	}
	return c.books[i], nil
}
