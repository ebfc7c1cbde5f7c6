package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/iudanet/depotsync/internal/models"
)

//go:generate moq -out outbox_mock.go . OutboxStorage

// PendingFilter narrows ListPending. Zero value selects every pending entry.
type PendingFilter struct {
	RecordID   string
	TableNames []string
	Operations []models.Operation
}

// OutboxStorage defines the durable sync_queue contract
type OutboxStorage interface {
	// Append stores a new pending entry and returns its id.
	// CreatedAt is filled in when zero.
	Append(ctx context.Context, entry *models.OutboxEntry) (int64, error)

	// ListPending returns pending entries ordered by created_at, then id (FIFO)
	ListPending(ctx context.Context, filter PendingFilter) ([]*models.OutboxEntry, error)

	// GetEntry returns ErrEntryNotFound if entry doesn't exist
	GetEntry(ctx context.Context, id int64) (*models.OutboxEntry, error)

	// MarkSynced is idempotent
	MarkSynced(ctx context.Context, id int64) error

	// Claim marks a pending entry as in flight and returns its current state.
	// Returns ErrEntryNotFound or ErrEntryAlreadySynced when there is nothing to send.
	Claim(ctx context.Context, id int64) (*models.OutboxEntry, error)

	// Release drops the claim of an entry that stays pending
	Release(ctx context.Context, id int64) error

	// ReleaseClaims drops all claims, used on startup
	ReleaseClaims(ctx context.Context) (int64, error)

	// Remove deletes an entry. Used only for cancel-before-sync.
	// Returns ErrEntryInFlight while the entry is claimed.
	Remove(ctx context.Context, id int64) error

	// UpdatePayload rewrites the payload of a pending entry.
	// Returns ErrEntryInFlight while the entry is claimed.
	UpdatePayload(ctx context.Context, id int64, payload json.RawMessage) error

	// CountPending returns number of entries with synced = false
	CountPending(ctx context.Context) (int, error)

	// PruneSynced deletes synced entries created before the given time
	PruneSynced(ctx context.Context, before time.Time) (int64, error)
}
