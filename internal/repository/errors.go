package repository

import "errors"

var (
	// ErrNotFound is returned when a statement addressed a row that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert collides with an existing primary key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInsufficientStock is returned by the guarded stock decrement.
	ErrInsufficientStock = errors.New("insufficient stock")
)
