package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing sync engine metadata
type MetadataStorage interface {
	// SaveLastSyncAt saves the completion time of the last cycle that applied an entry
	SaveLastSyncAt(ctx context.Context, t time.Time) error

	// GetLastSyncAt returns nil if no sync has been performed yet
	GetLastSyncAt(ctx context.Context) (*time.Time, error)
}
