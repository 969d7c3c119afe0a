package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

func testBook() models.Book {
	return models.NewBook("978-0134190440", "The Go Programming Language", "Donovan & Kernighan")
}

func TestCatalog_AddRejectsDuplicateISBN(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(testBook()))

	err := c.Add(models.NewBook("978-0134190440", "Different Title", "Someone Else"))
	assert.ErrorIs(t, err, ErrDuplicateISBN)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_IssueAndReturn(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(testBook()))

	require.NoError(t, c.Issue("978-0134190440"))
	b, found := c.Find("978-0134190440")
	require.True(t, found)
	assert.Equal(t, models.StatusIssued, b.Status)

	// issuing an already-issued book fails without changing state
	err := c.Issue("978-0134190440")
	assert.ErrorIs(t, err, models.ErrAlreadyIssued)
	b, _ = c.Find("978-0134190440")
	assert.Equal(t, models.StatusIssued, b.Status)

	require.NoError(t, c.Return("978-0134190440"))
	b, _ = c.Find("978-0134190440")
	assert.Equal(t, models.StatusAvailable, b.Status)

	// returning an available book fails without changing state
	err = c.Return("978-0134190440")
	assert.ErrorIs(t, err, models.ErrNotIssued)
	b, _ = c.Find("978-0134190440")
	assert.Equal(t, models.StatusAvailable, b.Status)
}

func TestCatalog_UnknownISBN(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Issue("missing"), ErrNotFound)
	assert.ErrorIs(t, c.Return("missing"), ErrNotFound)
}

func TestCatalog_SearchTitle(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(models.NewBook("1", "The Go Programming Language", "Donovan")))
	require.NoError(t, c.Add(models.NewBook("2", "Learning Python", "Lutz")))

	results := c.SearchTitle("go programming")
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].ISBN)

	assert.Empty(t, c.SearchTitle("haskell"))
}

func TestNewFromBooks_LastWriteWins(t *testing.T) {
	books := []models.Book{
		{ISBN: "1", Title: "First", Author: "A", Status: models.StatusAvailable},
		{ISBN: "1", Title: "Second", Author: "B", Status: models.StatusIssued},
	}

	c := NewFromBooks(books)

	assert.Equal(t, 1, c.Len())
	b, found := c.Find("1")
	require.True(t, found)
	assert.Equal(t, "Second", b.Title)
	assert.Equal(t, models.StatusIssued, b.Status)
}

func TestNewFromBooks_NormalizesUnknownStatus(t *testing.T) {
	c := NewFromBooks([]models.Book{
		{ISBN: "1", Title: "T", Author: "A", Status: "lost"},
	})

	b, found := c.Find("1")
	require.True(t, found)
	assert.Equal(t, models.StatusAvailable, b.Status)
}
