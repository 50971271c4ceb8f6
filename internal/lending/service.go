// internal/lending/service.go
package lending

import (
	"context"

	"bibliotek/internal/catalog"
)

// Service defines the interface for the lending service.
type Service interface {
	Borrow(ctx context.Context, bookID, userID int) (Loan, error)
	Return(ctx context.Context, loanID int) (Loan, error)
	Track(ctx context.Context, userID, bookID int) []Loan
	ListBorrowed(ctx context.Context) []BorrowedBook
	Availability(ctx context.Context, bookID int) (Availability, error)
}

// Inventory is the capability the lending service holds over the catalog.
// It is the only seam through which loans touch the copies counter, keeping
// mutation rights explicit instead of incidental.
type Inventory interface {
	GetBook(ctx context.Context, id int) (catalog.Book, error)
	DecrementCopies(ctx context.Context, id int) error
	IncrementCopies(ctx context.Context, id int) error
}
