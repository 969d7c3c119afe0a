package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/app"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/catalog"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/cli"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/models"
	"github.com/kunalyadav41200-dotcom/krmu-labs/internal/report"
)

const menu = `
Library Inventory Manager
-------------------------
1) Add Book
2) Issue Book
3) Return Book
4) View All Books
5) Search by Title
6) Search by ISBN
7) Exit
`

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	config, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}

	service := catalog.NewService(catalog.NewFileStore(config.Library.DataFile))
	prompter := cli.NewPrompter(os.Stdin, os.Stdout)

	for {
		fmt.Print(menu)
		choice, ok := prompter.IntRange("Enter choice (1-7): ", 1, 7)
		if !ok {
			shutdown(service)
			return
		}

		switch choice {
		case 1:
			addBook(prompter, service)
		case 2:
			issueBook(prompter, service)
		case 3:
			returnBook(prompter, service)
		case 4:
			viewAll(service)
		case 5:
			searchTitle(prompter, service)
		case 6:
			searchISBN(prompter, service)
		case 7:
			fmt.Println("Goodbye — saving catalog and exiting.")
			shutdown(service)
			return
		}
	}
}

func shutdown(service *catalog.Service) {
	if err := service.Close(); err != nil {
		logger.Error.Printf("Failed to save catalog on exit: %v", err)
	}
}

func addBook(prompter *cli.Prompter, service *catalog.Service) {
	title, ok := prompter.NonEmpty("Title: ")
	if !ok {
		return
	}
	author, ok := prompter.NonEmpty("Author: ")
	if !ok {
		return
	}
	isbn, ok := prompter.NonEmpty("ISBN: ")
	if !ok {
		return
	}

	err := service.Add(models.NewBook(isbn, title, author))
	switch {
	case errors.Is(err, catalog.ErrDuplicateISBN):
		fmt.Println("Book with that ISBN already exists.")
	case err != nil:
		logger.Error.Printf("Failed to add book: %v", err)
		fmt.Println("Could not add the book, see the log for details.")
	default:
		fmt.Println("Book added.")
	}
}

func issueBook(prompter *cli.Prompter, service *catalog.Service) {
	isbn, ok := prompter.NonEmpty("ISBN to issue: ")
	if !ok {
		return
	}

	err := service.Issue(isbn)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Println("No book found with that ISBN.")
	case errors.Is(err, models.ErrAlreadyIssued):
		fmt.Println("That book is already issued.")
	case err != nil:
		logger.Error.Printf("Failed to issue book: %v", err)
		fmt.Println("Could not issue the book, see the log for details.")
	default:
		fmt.Println("Book issued successfully.")
	}
}

func returnBook(prompter *cli.Prompter, service *catalog.Service) {
	isbn, ok := prompter.NonEmpty("ISBN to return: ")
	if !ok {
		return
	}

	err := service.Return(isbn)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Println("No book found with that ISBN.")
	case errors.Is(err, models.ErrNotIssued):
		fmt.Println("That book is not currently issued.")
	case err != nil:
		logger.Error.Printf("Failed to return book: %v", err)
		fmt.Println("Could not return the book, see the log for details.")
	default:
		fmt.Println("Book returned successfully.")
	}
}

func viewAll(service *catalog.Service) {
	books := service.Catalog().Books()
	if len(books) == 0 {
		fmt.Println("No books in the catalog.")
		return
	}
	report.RenderCatalogTable(os.Stdout, books)
}

func searchTitle(prompter *cli.Prompter, service *catalog.Service) {
	query, ok := prompter.NonEmpty("Title search query: ")
	if !ok {
		return
	}

	results := service.Catalog().SearchTitle(query)
	if len(results) == 0 {
		fmt.Println("No books matched your title query.")
		return
	}
	fmt.Printf("Found %d result(s):\n", len(results))
	for _, b := range results {
		fmt.Println(b)
	}
}

func searchISBN(prompter *cli.Prompter, service *catalog.Service) {
	isbn, ok := prompter.NonEmpty("ISBN to search: ")
	if !ok {
		return
	}

	book, found := service.Catalog().Find(isbn)
	if !found {
		fmt.Println("No book found with that ISBN.")
		return
	}
	fmt.Println(book)
}
