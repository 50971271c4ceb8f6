// internal/lending/seed.go
package lending

import "bibliotek/internal/store"

// SeedSample loads the demo loan fixtures.
func SeedSample(loans *store.Table[Loan]) {
	returned := "2025-11-14"
	loans.Seed(map[int]Loan{
		1: {ID: 1, BookID: 1, UserID: 1, LoanDate: "2025-11-01", DueDate: "2025-11-15", ReturnDate: &returned, Status: StatusReturned},
		2: {ID: 2, BookID: 2, UserID: 2, LoanDate: "2025-11-10", DueDate: "2025-11-24", Status: StatusActive},
		3: {ID: 3, BookID: 3, UserID: 1, LoanDate: "2025-11-15", DueDate: "2025-11-29", Status: StatusActive},
	})
}
