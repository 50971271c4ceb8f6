// internal/catalog/implementation.go
package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"bibliotek/internal/store"
)

// service implements the Service interface.
type service struct {
	books *store.Table[Book]
}

// NewService creates a new catalog service instance backed by the given table.
func NewService(books *store.Table[Book]) Service {
	return &service{books: books}
}

// AddBook assigns the next id and stores the full record.
func (s *service) AddBook(ctx context.Context, book Book) (Book, error) {
	created := s.books.Insert(func(id int) Book {
		book.ID = id
		return book
	})
	return created, nil
}

// GetBook retrieves a book by its id.
func (s *service) GetBook(ctx context.Context, id int) (Book, error) {
	book, ok := s.books.Get(id)
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return book, nil
}

// ListBooks returns every book keyed by id.
func (s *service) ListBooks(ctx context.Context) map[int]Book {
	return s.books.All()
}

// SearchBooks matches the keyword case-insensitively against the id and the
// string form of every field. Results come back in ascending id order; there
// is no ranking.
func (s *service) SearchBooks(ctx context.Context, keyword string) []Book {
	q := strings.ToLower(keyword)
	results := []Book{}
	for _, id := range s.books.IDs() {
		book, ok := s.books.Get(id)
		if !ok {
			continue
		}
		if bookMatches(id, book, q) {
			results = append(results, book)
		}
	}
	return results
}

func bookMatches(id int, book Book, q string) bool {
	fields := []string{
		strconv.Itoa(id),
		book.Title,
		book.Author,
		book.ISBN,
		strconv.Itoa(book.PublishedYear),
		strconv.Itoa(book.CopiesAvailable),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// UpdateBook replaces the whole record. There is no field-level partial update.
func (s *service) UpdateBook(ctx context.Context, id int, book Book) (Book, error) {
	book.ID = id
	if !s.books.Replace(id, book) {
		return Book{}, ErrBookNotFound
	}
	return book, nil
}

// RemoveBook deletes the record. Loans referencing it are left dangling;
// readers resolve missing titles to "Unknown".
func (s *service) RemoveBook(ctx context.Context, id int) error {
	if !s.books.Delete(id) {
		return ErrBookNotFound
	}
	return nil
}

// DecrementCopies takes one copy off the shelf. The availability check runs
// inside the table's locked update, so two concurrent borrows cannot both
// take the last copy.
func (s *service) DecrementCopies(ctx context.Context, id int) error {
	_, err := s.books.Update(id, func(book Book) (Book, error) {
		if book.CopiesAvailable <= 0 {
			return book, ErrNoCopies
		}
		book.CopiesAvailable--
		return book, nil
	})
	if errors.Is(err, store.ErrNoRecord) {
		return ErrBookNotFound
	}
	return err
}

// IncrementCopies puts one copy back.
func (s *service) IncrementCopies(ctx context.Context, id int) error {
	_, err := s.books.Update(id, func(book Book) (Book, error) {
		book.CopiesAvailable++
		return book, nil
	})
	if errors.Is(err, store.ErrNoRecord) {
		return ErrBookNotFound
	}
	return err
}
