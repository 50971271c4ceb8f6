// internal/lending/domain.go
package lending

import "errors"

// Loan statuses. A loan is created active and transitions to returned
// exactly once; returned is terminal.
const (
	StatusActive   = "active"
	StatusReturned = "returned"
)

// DateFormat is the calendar-date wire format for loan, due, and return dates.
const DateFormat = "2006-01-02"

// LoanPeriodDays is how long a borrowed book is out before it is due.
const LoanPeriodDays = 14

// Loan records one book lent to one user. Book and user ids are not
// validated against their stores; a dangling reference is tolerated.
type Loan struct {
	ID         int     `json:"loan_id"`
	BookID     int     `json:"book_id"`
	UserID     int     `json:"user_id"`
	LoanDate   string  `json:"loan_date"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date"`
	Status     string  `json:"status"`
}

// BorrowedBook is an active loan enriched with its book's title.
type BorrowedBook struct {
	Loan
	BookTitle string `json:"book_title"`
}

// Availability reports whether a book can currently be borrowed.
type Availability struct {
	BookID          int    `json:"book_id"`
	Title           string `json:"title"`
	CopiesAvailable int    `json:"copies_available"`
	IsAvailable     bool   `json:"is_available"`
}

var (
	// ErrLoanNotFound is returned when an id is absent from the loan store.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrAlreadyReturned is returned on a second return attempt for the
	// same loan.
	ErrAlreadyReturned = errors.New("book already returned")
)
