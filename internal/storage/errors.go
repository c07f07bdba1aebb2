package storage

import "errors"

// ErrDuplicateEntry is returned when a completion is logged for a
// (habit, day) pair that already has an entry. The reward engine never
// sees duplicate completions.
var ErrDuplicateEntry = errors.New("completion already logged for this habit and day")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")
