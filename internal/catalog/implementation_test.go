package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bibliotek/internal/store"
)

func newTestService(t *testing.T) (Service, *store.Table[Book]) {
	t.Helper()
	books := store.NewTable[Book]()
	return NewService(books), books
}

func TestAddGetUpdateRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddBook(ctx, Book{Title: "1984", Author: "George Orwell", ISBN: "9780451524935", PublishedYear: 1949, CopiesAvailable: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	got, err := svc.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.UpdateBook(ctx, created.ID, Book{Title: "Nineteen Eighty-Four", Author: "George Orwell", ISBN: "9780451524935", PublishedYear: 1949, CopiesAvailable: 3})
	require.NoError(t, err)

	got, err = svc.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, "Nineteen Eighty-Four", got.Title)
}

func TestGetUpdateRemoveMissingBook(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetBook(ctx, 42)
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = svc.UpdateBook(ctx, 42, Book{Title: "x"})
	assert.ErrorIs(t, err, ErrBookNotFound)

	assert.ErrorIs(t, svc.RemoveBook(ctx, 42), ErrBookNotFound)
}

func TestSearchMatchesAnyFieldCaseInsensitively(t *testing.T) {
	svc, books := newTestService(t)
	SeedSample(books)
	ctx := context.Background()

	byYear := svc.SearchBooks(ctx, "1949")
	require.Len(t, byYear, 1)
	assert.Equal(t, "1984", byYear[0].Title)

	byAuthor := svc.SearchBooks(ctx, "orwell")
	require.Len(t, byAuthor, 1)
	assert.Equal(t, 1, byAuthor[0].ID)

	byTitle := svc.SearchBooks(ctx, "gatsby")
	require.Len(t, byTitle, 1)
	assert.Equal(t, 3, byTitle[0].ID)

	assert.Empty(t, svc.SearchBooks(ctx, "no such keyword"))
}

func TestSearchResultsComeBackInIDOrder(t *testing.T) {
	svc, books := newTestService(t)
	SeedSample(books)

	results := svc.SearchBooks(context.Background(), "the")
	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.Less(t, results[i-1].ID, results[i].ID)
	}
}

func TestDecrementCopiesStopsAtZero(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddBook(ctx, Book{Title: "x", CopiesAvailable: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DecrementCopies(ctx, created.ID))
	assert.ErrorIs(t, svc.DecrementCopies(ctx, created.ID), ErrNoCopies)

	got, err := svc.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CopiesAvailable)

	require.NoError(t, svc.IncrementCopies(ctx, created.ID))
	got, _ = svc.GetBook(ctx, created.ID)
	assert.Equal(t, 1, got.CopiesAvailable)
}

func TestCounterCapabilityOnMissingBook(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DecrementCopies(ctx, 42), ErrBookNotFound)
	assert.ErrorIs(t, svc.IncrementCopies(ctx, 42), ErrBookNotFound)
}
