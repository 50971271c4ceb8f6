package store

import "errors"

// ErrNoRecord is returned by Update when the id is not in the table.
var ErrNoRecord = errors.New("record not found")
