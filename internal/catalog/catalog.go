package catalog

import (
	"errors"
	"strings"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

var (
	ErrDuplicateISBN = errors.New("book with this ISBN already exists")
	ErrNotFound      = errors.New("no book with this ISBN")
)

// Catalog is the in-memory book collection, keyed by ISBN. Insert order
// is preserved for display.
type Catalog struct {
	books []models.Book
	index map[string]int
}

func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// NewFromBooks builds a catalog from loaded records. Duplicate ISBNs
// resolve last-write-wins, each replacement is logged.
func NewFromBooks(books []models.Book) *Catalog {
	c := New()
	for _, b := range books {
		b.Normalize()
		if i, ok := c.index[b.ISBN]; ok {
			logger.Info.Printf("Duplicate ISBN %s in data file, keeping the later entry", b.ISBN)
			c.books[i] = b
			continue
		}
		c.index[b.ISBN] = len(c.books)
		c.books = append(c.books, b)
	}
	return c
}

// Add inserts a book, enforcing ISBN uniqueness.
func (c *Catalog) Add(b models.Book) error {
	b.Normalize()
	if _, ok := c.index[b.ISBN]; ok {
		return ErrDuplicateISBN
	}
	if err := b.Validate(); err != nil {
		return err
	}
	c.index[b.ISBN] = len(c.books)
	c.books = append(c.books, b)
	return nil
}

// Find returns the book with the exact ISBN.
func (c *Catalog) Find(isbn string) (models.Book, bool) {
	i, ok := c.index[strings.TrimSpace(isbn)]
	if !ok {
		return models.Book{}, false
	}
	return c.books[i], true
}

// SearchTitle returns books whose title contains the query,
// case-insensitive.
func (c *Catalog) SearchTitle(query string) []models.Book {
	q := strings.ToLower(strings.TrimSpace(query))
	var found []models.Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), q) {
			found = append(found, b)
		}
	}
	return found
}

// Issue marks the book as issued. The catalog is unchanged when the
// ISBN is unknown or the book is already out.
func (c *Catalog) Issue(isbn string) error {
	i, ok := c.index[strings.TrimSpace(isbn)]
	if !ok {
		return ErrNotFound
	}
	return c.books[i].Issue()
}

// Return marks the book as available again.
func (c *Catalog) Return(isbn string) error {
	i, ok := c.index[strings.TrimSpace(isbn)]
	if !ok {
		return ErrNotFound
	}
	return c.books[i].Return()
}

// Books returns a copy of the collection in insert order.
func (c *Catalog) Books() []models.Book {
	out := make([]models.Book, len(c.books))
	copy(out, c.books)
	return out
}

func (c *Catalog) Len() int {
	return len(c.books)
}
