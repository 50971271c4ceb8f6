// internal/reports/service.go
package reports

import "context"

// Service defines the interface for the reporting and admin service. All
// report operations are read-only over the three entity stores; the receipt
// is the single file-writing side effect.
type Service interface {
	Overdue(ctx context.Context) []OverdueLoan
	MostBorrowed(ctx context.Context) (MostBorrowed, bool)
	History(ctx context.Context, filter HistoryFilter) []HistoryEntry
	Dashboard(ctx context.Context) Dashboard
	GenerateReceipt(ctx context.Context, loanID int) (Receipt, error)
	Login(ctx context.Context, username, password string) (string, error)
}
