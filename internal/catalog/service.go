package catalog

import (
	"fmt"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
)

// Service ties a catalog to its store: every successful mutation is
// persisted immediately, failed mutations leave the file untouched.
type Service struct {
	store   Store
	catalog *Catalog
}

// NewService loads the persisted collection. A corrupt data file is
// reported and the service starts with an empty catalog, matching how
// the catalog always behaved.
func NewService(store Store) *Service {
	books, err := store.Load()
	if err != nil {
		logger.Error.Printf("Failed to load catalog, starting empty: %v", err)
		books = nil
	}
	return &Service{
		store:   store,
		catalog: NewFromBooks(books),
	}
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

func (s *Service) Add(b models.Book) error {
	if err := s.catalog.Add(b); err != nil {
		return err
	}
	if err := s.store.Save(s.catalog.Books()); err != nil {
		return fmt.Errorf("book added but save failed: %w", err)
	}
	return nil
}

func (s *Service) Issue(isbn string) error {
	if err := s.catalog.Issue(isbn); err != nil {
		return err
	}
	if err := s.store.Save(s.catalog.Books()); err != nil {
		return fmt.Errorf("book issued but save failed: %w", err)
	}
	return nil
}

func (s *Service) Return(isbn string) error {
	if err := s.catalog.Return(isbn); err != nil {
		return err
	}
	if err := s.store.Save(s.catalog.Books()); err != nil {
		return fmt.Errorf("book returned but save failed: %w", err)
	}
	return nil
}

// Close persists the collection one last time on exit.
func (s *Service) Close() error {
	return s.store.Save(s.catalog.Books())
}
