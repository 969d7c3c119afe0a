package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books_catalog.json")
	store := NewFileStore(path)

	books := []models.Book{
		{ISBN: "1", Title: "First", Author: "A", Status: models.StatusAvailable},
		{ISBN: "2", Title: "Second", Author: "B", Status: models.StatusIssued},
	}
	require.NoError(t, store.Save(books))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, books, loaded)
}

func TestFileStore_MissingFileIsEmptyCatalog(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	books, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books_catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books_catalog.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save([]models.Book{
		{ISBN: "1", Title: "First", Author: "A", Status: models.StatusAvailable},
	}))
	require.NoError(t, store.Save(nil))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
