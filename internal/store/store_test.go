package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	ID   int
	Name string
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	table := NewTable[rec]()

	first := table.Insert(func(id int) rec { return rec{ID: id, Name: "a"} })
	second := table.Insert(func(id int) rec { return rec{ID: id, Name: "b"} })

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 2, table.Len())
}

func TestIDsAreNotReusedAfterDelete(t *testing.T) {
	table := NewTable[rec]()

	table.Insert(func(id int) rec { return rec{ID: id} })
	second := table.Insert(func(id int) rec { return rec{ID: id} })

	require.True(t, table.Delete(second.ID))

	third := table.Insert(func(id int) rec { return rec{ID: id} })
	assert.Equal(t, 3, third.ID)
}

func TestReplaceOnlyOverwritesExisting(t *testing.T) {
	table := NewTable[rec]()
	table.Insert(func(id int) rec { return rec{ID: id, Name: "old"} })

	assert.True(t, table.Replace(1, rec{ID: 1, Name: "new"}))
	assert.False(t, table.Replace(42, rec{ID: 42}))

	got, ok := table.Get(1)
	require.True(t, ok)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, 1, table.Len())
}

func TestUpdateLeavesRecordUntouchedOnError(t *testing.T) {
	table := NewTable[rec]()
	table.Insert(func(id int) rec { return rec{ID: id, Name: "keep"} })

	boom := errors.New("boom")
	_, err := table.Update(1, func(r rec) (rec, error) {
		r.Name = "mutated"
		return r, boom
	})
	require.ErrorIs(t, err, boom)

	got, _ := table.Get(1)
	assert.Equal(t, "keep", got.Name)

	_, err = table.Update(42, func(r rec) (rec, error) { return r, nil })
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestSeedMovesCounterPastHighestID(t *testing.T) {
	table := NewTable[rec]()
	table.Seed(map[int]rec{
		3: {ID: 3},
		7: {ID: 7},
	})

	next := table.Insert(func(id int) rec { return rec{ID: id} })
	assert.Equal(t, 8, next.ID)
	assert.Equal(t, []int{3, 7, 8}, table.IDs())
}

func TestConcurrentInsertsGetUniqueIDs(t *testing.T) {
	table := NewTable[rec]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			table.Insert(func(id int) rec { return rec{ID: id} })
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, table.Len())
	ids := table.IDs()
	assert.Equal(t, 1, ids[0])
	assert.Equal(t, 100, ids[len(ids)-1])
}
