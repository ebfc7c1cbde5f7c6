package storage

import "errors"

// Common storage errors
var (
	// ErrRowNotFound indicates that no row has the given key
	ErrRowNotFound = errors.New("row not found")

	// ErrUnknownTable indicates a table outside the served schema
	ErrUnknownTable = errors.New("unknown table")

	// ErrInvalidRow indicates a row that cannot be stored
	ErrInvalidRow = errors.New("invalid row")
)
