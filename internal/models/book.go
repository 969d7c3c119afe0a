package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type BookStatus string

const (
	StatusAvailable BookStatus = "available"
	StatusIssued    BookStatus = "issued"
)

var (
	ErrAlreadyIssued = errors.New("book is already issued")
	ErrNotIssued     = errors.New("book is not issued")
)

// Book is one catalog entry. ISBN is the unique key, status only ever
// moves available -> issued -> available.
type Book struct {
	ISBN   string     `json:"isbn" validate:"required"`
	Title  string     `json:"title" validate:"required"`
	Author string     `json:"author" validate:"required"`
	Status BookStatus `json:"status" validate:"oneof=available issued"`
}

// NewBook trims the fields and starts the book as available.
func NewBook(isbn, title, author string) Book {
	return Book{
		ISBN:   strings.TrimSpace(isbn),
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Status: StatusAvailable,
	}
}

func (b *Book) Validate() error {
	validate := validator.New()
	return validate.Struct(b)
}

// Normalize trims fields and resets an unknown status to available,
// matching what the catalog does when loading old data files.
func (b *Book) Normalize() {
	b.ISBN = strings.TrimSpace(b.ISBN)
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	if b.Status != StatusAvailable && b.Status != StatusIssued {
		b.Status = StatusAvailable
	}
}

// Issue moves the book to issued. Fails without changing state if the
// book is not currently available.
func (b *Book) Issue() error {
	if b.Status != StatusAvailable {
		return ErrAlreadyIssued
	}
	b.Status = StatusIssued
	return nil
}

// Return moves the book back to available. Fails without changing state
// if the book is not currently issued.
func (b *Book) Return() error {
	if b.Status != StatusIssued {
		return ErrNotIssued
	}
	b.Status = StatusAvailable
	return nil
}

func (b Book) String() string {
	return fmt.Sprintf("%s by %s (ISBN: %s) - %s", b.Title, b.Author, b.ISBN, b.Status)
}
