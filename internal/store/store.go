// Package store provides the in-memory keyed tables backing every service.
// Each table owns a monotonic id counter, so identifiers are never reused
// after a delete and concurrent inserts are well-defined.
package store

import (
	"sort"
	"sync"
)

// Table is a mutex-guarded map of integer ids to records of type T.
type Table[T any] struct {
	mu     sync.RWMutex
	recs   map[int]T
	nextID int
}

// NewTable creates an empty table whose first assigned id is 1.
func NewTable[T any]() *Table[T] {
	return &Table[T]{recs: make(map[int]T)}
}

// Insert assigns the next id, builds the record with it, and stores it.
func (t *Table[T]) Insert(build func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	rec := build(t.nextID)
	t.recs[t.nextID] = rec
	return rec
}

// Get returns the record for id, if present.
func (t *Table[T]) Get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.recs[id]
	return rec, ok
}

// Replace overwrites an existing record. It reports false when id is absent;
// it never creates a new entry.
func (t *Table[T]) Replace(id int, rec T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.recs[id]; !ok {
		return false
	}
	t.recs[id] = rec
	return true
}

// Update applies fn to the record for id under the table lock and stores the
// result. The record is left untouched when fn returns an error.
func (t *Table[T]) Update(id int, fn func(T) (T, error)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.recs[id]
	if !ok {
		var zero T
		return zero, ErrNoRecord
	}

	updated, err := fn(rec)
	if err != nil {
		var zero T
		return zero, err
	}
	t.recs[id] = updated
	return updated, nil
}

// Delete removes the record for id and reports whether it existed. The id
// counter is not rewound.
func (t *Table[T]) Delete(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.recs[id]; !ok {
		return false
	}
	delete(t.recs, id)
	return true
}

// All returns a copy of the table contents keyed by id.
func (t *Table[T]) All() map[int]T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[int]T, len(t.recs))
	for id, rec := range t.recs {
		out[id] = rec
	}
	return out
}

// IDs returns all ids in ascending order. Scans that need a stable
// iteration order go through this.
func (t *Table[T]) IDs() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int, 0, len(t.recs))
	for id := range t.recs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of records.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.recs)
}

// Seed bulk-loads records with fixed ids and moves the counter past the
// highest of them. Meant for startup fixtures and tests.
func (t *Table[T]) Seed(recs map[int]T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, rec := range recs {
		t.recs[id] = rec
		if id > t.nextID {
			t.nextID = id
		}
	}
}
