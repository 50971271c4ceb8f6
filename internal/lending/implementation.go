// internal/lending/implementation.go
package lending

import (
	"context"
	"errors"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"bibliotek/internal/catalog"
	"bibliotek/internal/store"
)

// service implements the Service interface.
type service struct {
	loans     *store.Table[Loan]
	inventory Inventory

	tracer        trace.Tracer
	borrowCounter metric.Int64Counter
	returnCounter metric.Int64Counter

	now func() time.Time
}

// NewService creates a new lending service instance. The catalog is reached
// only through the Inventory capability.
func NewService(loans *store.Table[Loan], inventory Inventory) Service {
	meter := otel.Meter("bibliotek/lending")

	return &service{
		loans:         loans,
		inventory:     inventory,
		tracer:        otel.Tracer("bibliotek/lending"),
		borrowCounter: int64Counter(meter, "lending.borrows"),
		returnCounter: int64Counter(meter, "lending.returns"),
		now:           time.Now,
	}
}

// int64Counter substitutes a noop instrument when the meter cannot build
// one, so recording never panics on a misconfigured metrics pipeline.
func int64Counter(meter metric.Meter, name string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name)
	if err != nil {
		log.Printf("failed to create counter %s: %v", name, err)
		counter, _ = noop.Meter{}.Int64Counter(name)
	}
	return counter
}

// Borrow takes one copy off the shelf and records a new active loan due in
// 14 days. The availability check and the decrement are a single atomic step,
// so the loan insert that follows cannot leave the counter short. The user id
// is stored as given; it is not checked against the membership store.
func (s *service) Borrow(ctx context.Context, bookID, userID int) (Loan, error) {
	ctx, span := s.tracer.Start(ctx, "lending.borrow",
		trace.WithAttributes(
			attribute.Int("book.id", bookID),
			attribute.Int("user.id", userID),
		))
	defer span.End()

	if err := s.inventory.DecrementCopies(ctx, bookID); err != nil {
		return Loan{}, err
	}

	now := s.now()
	loan := s.loans.Insert(func(id int) Loan {
		return Loan{
			ID:       id,
			BookID:   bookID,
			UserID:   userID,
			LoanDate: now.Format(DateFormat),
			DueDate:  now.AddDate(0, 0, LoanPeriodDays).Format(DateFormat),
			Status:   StatusActive,
		}
	})

	s.borrowCounter.Add(ctx, 1)
	return loan, nil
}

// Return closes an active loan and puts the copy back. The status guard
// runs inside the loan table's locked update, so a double return cannot
// slip through and inflate the counter. When the book has since been
// deleted the loan still closes, but the increment is skipped rather than
// counting copies for a record that no longer exists.
func (s *service) Return(ctx context.Context, loanID int) (Loan, error) {
	ctx, span := s.tracer.Start(ctx, "lending.return",
		trace.WithAttributes(attribute.Int("loan.id", loanID)))
	defer span.End()

	loan, err := s.loans.Update(loanID, func(loan Loan) (Loan, error) {
		if loan.Status == StatusReturned {
			return loan, ErrAlreadyReturned
		}
		returned := s.now().Format(DateFormat)
		loan.ReturnDate = &returned
		loan.Status = StatusReturned
		return loan, nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			return Loan{}, ErrLoanNotFound
		}
		return Loan{}, err
	}

	if err := s.inventory.IncrementCopies(ctx, loan.BookID); err != nil {
		if !errors.Is(err, catalog.ErrBookNotFound) {
			return Loan{}, err
		}
		log.Printf("loan %d returned against deleted book %d, skipping increment", loan.ID, loan.BookID)
	}

	s.returnCounter.Add(ctx, 1)
	return loan, nil
}

// Track returns loans matching the optional user and book filters. A zero
// id means no filter; both given means both must match.
func (s *service) Track(ctx context.Context, userID, bookID int) []Loan {
	results := []Loan{}
	for _, id := range s.loans.IDs() {
		loan, ok := s.loans.Get(id)
		if !ok {
			continue
		}
		if userID != 0 && loan.UserID != userID {
			continue
		}
		if bookID != 0 && loan.BookID != bookID {
			continue
		}
		results = append(results, loan)
	}
	return results
}

// ListBorrowed returns every active loan with its book title resolved,
// falling back to "Unknown" when the book has been deleted.
func (s *service) ListBorrowed(ctx context.Context) []BorrowedBook {
	results := []BorrowedBook{}
	for _, id := range s.loans.IDs() {
		loan, ok := s.loans.Get(id)
		if !ok || loan.Status != StatusActive {
			continue
		}

		title := "Unknown"
		if book, err := s.inventory.GetBook(ctx, loan.BookID); err == nil {
			title = book.Title
		}
		results = append(results, BorrowedBook{Loan: loan, BookTitle: title})
	}
	return results
}

// Availability reports the remaining copies for a book.
func (s *service) Availability(ctx context.Context, bookID int) (Availability, error) {
	book, err := s.inventory.GetBook(ctx, bookID)
	if err != nil {
		return Availability{}, err
	}

	return Availability{
		BookID:          bookID,
		Title:           book.Title,
		CopiesAvailable: book.CopiesAvailable,
		IsAvailable:     book.CopiesAvailable > 0,
	}, nil
}
