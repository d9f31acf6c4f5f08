// Package counter supply the click counter and its persisted record
package counter

import (
	"errors"
)

// ErrInvalidRecord the persisted record can't be parsed as a non-negative integer
var ErrInvalidRecord = errors.New("invalid counter record")

// Counter is a single shared, monotonically increasing counter
type Counter interface {
	// Incr increase the counter by one and return the new value
	Incr() int64
	// Value return the current value without changing it
	Value() int64
}

// Persist stores the counter value to the persist storage
type Persist interface {
	// Load the value from persist storage, exist is false when nothing was stored
	Load() (value int64, exist bool, err error)

	// Store overwrite the stored value with value
	Store(value int64) error
}
