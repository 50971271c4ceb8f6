// internal/catalog/service.go
package catalog

import "context"

// Service defines the interface for the catalog service.
type Service interface {
	AddBook(ctx context.Context, book Book) (Book, error)
	GetBook(ctx context.Context, id int) (Book, error)
	ListBooks(ctx context.Context) map[int]Book
	SearchBooks(ctx context.Context, keyword string) []Book
	UpdateBook(ctx context.Context, id int, book Book) (Book, error)
	RemoveBook(ctx context.Context, id int) error

	// DecrementCopies and IncrementCopies exist for the lending service,
	// which is the only other writer allowed to touch the copies counter.
	DecrementCopies(ctx context.Context, id int) error
	IncrementCopies(ctx context.Context, id int) error
}
