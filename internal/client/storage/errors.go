package storage

import "errors"

// Common client storage errors
var (
	// ErrEntryNotFound indicates that outbox entry was not found
	ErrEntryNotFound = errors.New("outbox entry not found")

	// ErrEntryAlreadySynced indicates that entry was already applied remotely
	// and can no longer be cancelled or edited
	ErrEntryAlreadySynced = errors.New("outbox entry already synced")

	// ErrEntryInFlight indicates that entry is being sent right now and its
	// payload is frozen until the remote answers
	ErrEntryInFlight = errors.New("outbox entry in flight")

	// ErrRowNotFound indicates that local row was not found
	ErrRowNotFound = errors.New("row not found")

	// ErrDeadLetterNotFound indicates that dead letter was not found
	ErrDeadLetterNotFound = errors.New("dead letter not found")

	// ErrInvalidIdentifier indicates a table or column name outside the local schema
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
