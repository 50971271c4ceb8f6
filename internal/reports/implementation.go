// internal/reports/implementation.go
package reports

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"bibliotek/internal/catalog"
	"bibliotek/internal/lending"
	"bibliotek/internal/membership"
	"bibliotek/internal/store"
)

// Config carries the admin credential and side-effect settings.
type Config struct {
	ReceiptsDir   string
	AdminUsername string
	AdminPassword string
	TokenSecret   string
}

// service implements the Service interface.
type service struct {
	books *store.Table[catalog.Book]
	users *store.Table[membership.User]
	loans *store.Table[lending.Loan]

	receiptsDir   string
	adminUsername string
	adminHash     string
	adminSalt     string
	tokenSecret   []byte
	loginLimiter  *rate.Limiter

	now func() time.Time
}

// NewService creates a new reporting service instance. The admin password is
// hashed once at construction and only the hash is kept.
func NewService(books *store.Table[catalog.Book], users *store.Table[membership.User], loans *store.Table[lending.Loan], cfg Config) (Service, error) {
	hash, salt, err := hashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &service{
		books:         books,
		users:         users,
		loans:         loans,
		receiptsDir:   cfg.ReceiptsDir,
		adminUsername: cfg.AdminUsername,
		adminHash:     hash,
		adminSalt:     salt,
		tokenSecret:   []byte(cfg.TokenSecret),
		loginLimiter:  rate.NewLimiter(rate.Every(1*time.Minute), 5), // 5 attempts per minute
		now:           time.Now,
	}, nil
}

// today returns the current calendar date with no time-of-day component.
func (s *service) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overdue lists every active loan whose due date is strictly before today.
// Loans with unparseable due dates are skipped.
func (s *service) Overdue(ctx context.Context) []OverdueLoan {
	today := s.today()
	results := []OverdueLoan{}

	for _, id := range s.loans.IDs() {
		loan, ok := s.loans.Get(id)
		if !ok || loan.Status != lending.StatusActive {
			continue
		}

		due, err := time.Parse(lending.DateFormat, loan.DueDate)
		if err != nil {
			log.Printf("loan %d has unparseable due date %q", id, loan.DueDate)
			continue
		}
		if !due.Before(today) {
			continue
		}

		results = append(results, OverdueLoan{
			Loan:        loan,
			BookTitle:   s.bookTitle(loan.BookID),
			UserName:    s.userName(loan.UserID),
			DaysOverdue: int(today.Sub(due).Hours() / 24),
		})
	}
	return results
}

// MostBorrowed frequency-counts loans by book. Loans are scanned in
// ascending loan-id order; ties keep the order in which a book was first
// seen, which makes the ranking deterministic. The second return value is
// false when there is no borrowing history at all.
func (s *service) MostBorrowed(ctx context.Context) (MostBorrowed, bool) {
	counts := map[int]int{}
	firstSeen := []int{}

	for _, id := range s.loans.IDs() {
		loan, ok := s.loans.Get(id)
		if !ok {
			continue
		}
		if _, seen := counts[loan.BookID]; !seen {
			firstSeen = append(firstSeen, loan.BookID)
		}
		counts[loan.BookID]++
	}

	if len(counts) == 0 {
		return MostBorrowed{}, false
	}

	stats := make([]BookStats, 0, len(counts))
	for _, bookID := range firstSeen {
		stats = append(stats, BookStats{
			BookID:        bookID,
			Title:         s.bookTitle(bookID),
			TimesBorrowed: counts[bookID],
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TimesBorrowed > stats[j].TimesBorrowed
	})

	top := stats[0]
	author := "Unknown"
	if book, ok := s.books.Get(top.BookID); ok {
		author = book.Author
	}

	return MostBorrowed{
		BookID:        top.BookID,
		Title:         top.Title,
		Author:        author,
		TimesBorrowed: top.TimesBorrowed,
		AllBooksStats: stats,
	}, true
}

// History returns the filtered loan list enriched with resolved names.
func (s *service) History(ctx context.Context, filter HistoryFilter) []HistoryEntry {
	results := []HistoryEntry{}
	for _, id := range s.loans.IDs() {
		loan, ok := s.loans.Get(id)
		if !ok {
			continue
		}
		if filter.UserID != 0 && loan.UserID != filter.UserID {
			continue
		}
		if filter.BookID != 0 && loan.BookID != filter.BookID {
			continue
		}
		if filter.Status != "" && loan.Status != filter.Status {
			continue
		}

		results = append(results, HistoryEntry{
			Loan:      loan,
			BookTitle: s.bookTitle(loan.BookID),
			UserName:  s.userName(loan.UserID),
		})
	}
	return results
}

// Dashboard recomputes the aggregate counters. Overdue uses the same date
// comparison as Overdue.
func (s *service) Dashboard(ctx context.Context) Dashboard {
	today := s.today()
	active := 0
	overdue := 0

	for _, loan := range s.loans.All() {
		if loan.Status != lending.StatusActive {
			continue
		}
		active++
		due, err := time.Parse(lending.DateFormat, loan.DueDate)
		if err == nil && due.Before(today) {
			overdue++
		}
	}

	total := s.loans.Len()
	return Dashboard{
		TotalBooks:    s.books.Len(),
		TotalUsers:    s.users.Len(),
		TotalLoans:    total,
		ActiveLoans:   active,
		OverdueLoans:  overdue,
		ReturnedLoans: total - active,
	}
}

// GenerateReceipt renders the printable receipt for a loan, writes it under
// the receipts directory, and returns it inline.
func (s *service) GenerateReceipt(ctx context.Context, loanID int) (Receipt, error) {
	loan, ok := s.loans.Get(loanID)
	if !ok {
		return Receipt{}, lending.ErrLoanNotFound
	}

	if err := os.MkdirAll(s.receiptsDir, 0o755); err != nil {
		return Receipt{}, fmt.Errorf("failed to create receipts directory: %w", err)
	}

	content := s.renderReceipt(loanID, loan)
	filename := fmt.Sprintf("receipt_loan_%d_%s.txt", loanID, uuid.New())
	path := filepath.Join(s.receiptsDir, filename)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Receipt{}, fmt.Errorf("failed to write receipt: %w", err)
	}

	return Receipt{Filename: filename, Filepath: path, Content: content}, nil
}

func (s *service) renderReceipt(loanID int, loan lending.Loan) string {
	book, _ := s.books.Get(loan.BookID)
	user, _ := s.users.Get(loan.UserID)

	returnDate := "Not returned yet"
	if loan.ReturnDate != nil {
		returnDate = *loan.ReturnDate
	}

	rule := strings.Repeat("=", 50)
	return fmt.Sprintf(`
%s
           LIBRARY MANAGEMENT SYSTEM
              BORROWING RECEIPT
%s

Receipt ID: RCPT-%04d
Date: %s

MEMBER INFORMATION:
- Member ID: %d
- Name: %s
- Email: %s

BOOK INFORMATION:
- Book ID: %d
- Title: %s
- Author: %s
- ISBN: %s

LOAN DETAILS:
- Loan Date: %s
- Due Date: %s
- Return Date: %s
- Status: %s

%s
Thank you for using our library service!
%s
`,
		rule, rule,
		loanID,
		s.now().Format("2006-01-02 15:04:05"),
		loan.UserID, orUnknown(user.Name), orUnknown(user.Email),
		loan.BookID, orUnknown(book.Title), orUnknown(book.Author), orUnknown(book.ISBN),
		loan.LoanDate, loan.DueDate, returnDate, strings.ToUpper(loan.Status),
		rule, rule,
	)
}

// Login verifies the static admin credential and issues a signed demo token.
// Attempts are rate limited before the credential is even looked at.
func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	if !s.loginLimiter.Allow() {
		return "", ErrRateLimited
	}

	if username != s.adminUsername {
		return "", ErrUnauthorized
	}
	ok, err := verifyPassword(password, s.adminSalt, s.adminHash)
	if err != nil || !ok {
		return "", ErrUnauthorized
	}

	claims := jwt.MapClaims{
		"user": username,
		"role": membership.RoleAdmin,
		"exp":  s.now().Add(24 * time.Hour).Unix(),
		"iat":  s.now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.tokenSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *service) bookTitle(bookID int) string {
	if book, ok := s.books.Get(bookID); ok {
		return book.Title
	}
	return "Unknown"
}

func (s *service) userName(userID int) string {
	if user, ok := s.users.Get(userID); ok {
		return user.Name
	}
	return "Unknown"
}

func orUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}
