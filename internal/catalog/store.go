package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

// Store persists the whole collection at once. There is no partial or
// incremental persistence, a Save always rewrites everything.
type Store interface {
	Load() ([]models.Book, error)
	Save(books []models.Book) error
}

// FileStore keeps the catalog in a single indented JSON file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the full catalog file. A missing file is an empty catalog,
// not an error.
func (s *FileStore) Load() ([]models.Book, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		logger.Info.Printf("Data file %s not found, starting with empty catalog", s.Path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var books []models.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", s.Path, err)
	}

	logger.Info.Printf("Loaded %d books from %s", len(books), s.Path)
	return books, nil
}

// Save rewrites the catalog file wholesale.
func (s *FileStore) Save(books []models.Book) error {
	if books == nil {
		books = []models.Book{}
	}
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize catalog: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	logger.Debug.Printf("Saved %d books to %s", len(books), s.Path)
	return nil
}
