package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
	"github.com/iudanet/depotsync/internal/validation"
)

// AddToSyncQueue appends a mutation to the outbox and, when the remote is
// ready, triggers a cycle. payload may be json.RawMessage, []byte or any
// value that marshals to a JSON object.
func (e *Engine) AddToSyncQueue(ctx context.Context, table string, op models.Operation, recordID string, payload any) (int64, error) {
	entry, err := NewEntry(table, op, recordID, payload)
	if err != nil {
		return 0, err
	}

	id, err := e.outbox.Append(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("failed to append to sync queue: %w", err)
	}

	e.Enqueued(ctx)
	return id, nil
}

// Enqueued refreshes the pending count after entries were appended outside
// the engine (e.g. inside a local transaction) and triggers a cycle when ready.
func (e *Engine) Enqueued(ctx context.Context) {
	e.refreshPending(ctx)
	if e.readiness.GetStatus().Ready() {
		e.Trigger()
	}
}

// RemoveFromQueue cancels a pending entry before it is synced.
func (e *Engine) RemoveFromQueue(ctx context.Context, id int64) error {
	if err := e.outbox.Remove(ctx, id); err != nil {
		return err
	}
	e.refreshPending(ctx)
	return nil
}

// ListQueue returns pending entries in the order they will be sent.
func (e *Engine) ListQueue(ctx context.Context, filter storage.PendingFilter) ([]*models.OutboxEntry, error) {
	return e.outbox.ListPending(ctx, filter)
}

func (e *Engine) refreshPending(ctx context.Context) {
	count, err := e.outbox.CountPending(ctx)
	if err != nil {
		e.logger.Warn("Failed to count pending entries", "error", err)
		return
	}
	e.status.Publish(models.StatusUpdate{PendingCount: models.Ptr(count)})
}

// NewEntry validates the arguments and builds an outbox entry ready to append.
func NewEntry(table string, op models.Operation, recordID string, payload any) (*models.OutboxEntry, error) {
	if err := validation.ValidateIdentifier(table); err != nil {
		return nil, fmt.Errorf("invalid table name: %w", err)
	}
	if !op.Valid() {
		return nil, fmt.Errorf("unknown operation %q", op)
	}
	if err := validation.ValidateRecordID(recordID, op == models.OperationInsert || op == models.OperationUpsert); err != nil {
		return nil, err
	}

	raw, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}
	if _, err := models.DecodeFields(raw); err != nil {
		return nil, err
	}

	return &models.OutboxEntry{
		TableName: table,
		Operation: op,
		RecordID:  recordID,
		Payload:   raw,
	}, nil
}

func encodePayload(payload any) (json.RawMessage, error) {
	switch p := payload.(type) {
	case nil:
		return json.RawMessage(`{}`), nil
	case json.RawMessage:
		return p, nil
	case []byte:
		return json.RawMessage(p), nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}
	return raw, nil
}
