// internal/catalog/seed.go
package catalog

import "bibliotek/internal/store"

// SeedSample loads the demo book fixtures.
func SeedSample(books *store.Table[Book]) {
	books.Seed(map[int]Book{
		1: {ID: 1, Title: "1984", Author: "George Orwell", ISBN: "9780451524935", PublishedYear: 1949, CopiesAvailable: 4},
		2: {ID: 2, Title: "To Kill a Mockingbird", Author: "Harper Lee", ISBN: "9780060935467", PublishedYear: 1960, CopiesAvailable: 2},
		3: {ID: 3, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", ISBN: "9780743273565", PublishedYear: 1925, CopiesAvailable: 5},
		4: {ID: 4, Title: "Pride and Prejudice", Author: "Jane Austen", ISBN: "9780141439518", PublishedYear: 1813, CopiesAvailable: 3},
		5: {ID: 5, Title: "The Catcher in the Rye", Author: "J.D. Salinger", ISBN: "9780316769488", PublishedYear: 1951, CopiesAvailable: 6},
	})
}
