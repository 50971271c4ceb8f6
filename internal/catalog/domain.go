// internal/catalog/domain.go
package catalog

import "errors"

// Book represents one title in the library's inventory.
type Book struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	PublishedYear   int    `json:"published_year"`
	CopiesAvailable int    `json:"copies_available"`
}

var (
	// ErrBookNotFound is returned when an id is absent from the book store.
	ErrBookNotFound = errors.New("book not found")

	// ErrNoCopies is returned when a decrement would take the availability
	// counter below zero.
	ErrNoCopies = errors.New("book not available")
)
