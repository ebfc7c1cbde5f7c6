package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/depotsync/internal/models"
)

// ErrDeadLettersDisabled returned when the engine runs without an archive
var ErrDeadLettersDisabled = errors.New("dead letter archive is not configured")

// DeadLetters returns archived entries, oldest first.
func (e *Engine) DeadLetters(ctx context.Context) ([]*models.DeadLetter, error) {
	if e.deadLetters == nil {
		return nil, ErrDeadLettersDisabled
	}
	return e.deadLetters.ListDeadLetters(ctx)
}

// RequeueDeadLetter puts an archived entry back at the tail of the outbox
// as a new entry and removes it from the archive.
func (e *Engine) RequeueDeadLetter(ctx context.Context, id uint64) (int64, error) {
	if e.deadLetters == nil {
		return 0, ErrDeadLettersDisabled
	}

	dl, err := e.deadLetters.GetDeadLetter(ctx, id)
	if err != nil {
		return 0, err
	}

	entry := &models.OutboxEntry{
		TableName: dl.Entry.TableName,
		Operation: dl.Entry.Operation,
		RecordID:  dl.Entry.RecordID,
		Payload:   dl.Entry.Payload,
	}

	newID, err := e.outbox.Append(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue dead letter %d: %w", id, err)
	}

	if err := e.deadLetters.DeleteDeadLetter(ctx, id); err != nil {
		e.logger.Warn("Failed to delete requeued dead letter", "id", id, "error", err)
	}

	e.logger.Info("Dead letter requeued", "id", id, "entry_id", newID)
	e.Enqueued(ctx)
	return newID, nil
}

// DiscardDeadLetter removes an archived entry for good.
func (e *Engine) DiscardDeadLetter(ctx context.Context, id uint64) error {
	if e.deadLetters == nil {
		return ErrDeadLettersDisabled
	}
	if _, err := e.deadLetters.GetDeadLetter(ctx, id); err != nil {
		return err
	}
	return e.deadLetters.DeleteDeadLetter(ctx, id)
}
