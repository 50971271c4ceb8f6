// internal/reports/domain.go
package reports

import (
	"errors"

	"bibliotek/internal/lending"
)

// OverdueLoan is an active loan whose due date has passed, enriched with
// resolved names and the whole-day overdue count.
type OverdueLoan struct {
	lending.Loan
	BookTitle   string `json:"book_title"`
	UserName    string `json:"user_name"`
	DaysOverdue int    `json:"days_overdue"`
}

// HistoryEntry is a loan enriched with its resolved book title and user name.
type HistoryEntry struct {
	lending.Loan
	BookTitle string `json:"book_title"`
	UserName  string `json:"user_name"`
}

// BookStats counts how often one book has been borrowed.
type BookStats struct {
	BookID        int    `json:"book_id"`
	Title         string `json:"title"`
	TimesBorrowed int    `json:"times_borrowed"`
}

// MostBorrowed reports the single most borrowed book plus the full ranking.
type MostBorrowed struct {
	BookID        int         `json:"book_id"`
	Title         string      `json:"title"`
	Author        string      `json:"author"`
	TimesBorrowed int         `json:"times_borrowed"`
	AllBooksStats []BookStats `json:"all_books_stats"`
}

// HistoryFilter narrows History. Zero values mean no filter; supplied
// filters combine with AND semantics.
type HistoryFilter struct {
	UserID int
	BookID int
	Status string
}

// Dashboard carries the aggregate counters for the admin view.
type Dashboard struct {
	TotalBooks    int `json:"total_books"`
	TotalUsers    int `json:"total_users"`
	TotalLoans    int `json:"total_loans"`
	ActiveLoans   int `json:"active_loans"`
	OverdueLoans  int `json:"overdue_loans"`
	ReturnedLoans int `json:"returned_loans"`
}

// Receipt is the rendered loan receipt and where it was written.
type Receipt struct {
	Filename string `json:"filename"`
	Filepath string `json:"filepath"`
	Content  string `json:"receipt_content"`
}

var (
	// ErrUnauthorized is returned on bad login credentials.
	ErrUnauthorized = errors.New("invalid username or password")

	// ErrRateLimited is returned when login attempts exceed the limiter.
	ErrRateLimited = errors.New("rate limit exceeded")
)
