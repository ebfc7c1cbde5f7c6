package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/depotsync/internal/client/api"
	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

// CycleResult содержит результат одного цикла синхронизации
type CycleResult struct {
	LastError string // последняя ошибка цикла, пусто если не было
	Applied   int    // применено на удаленной стороне
	Dropped   int    // перемещено в dead letters
	Pending   int    // осталось в очереди после цикла
	Aborted   bool   // цикл прерван временной ошибкой
	Skipped   bool   // нет учетных данных или сети
}

// RunOnce drains the outbox in FIFO order. Transient failures stop the cycle
// and leave the failing entry first in line. Permanent failures are archived
// as dead letters and the cycle moves on.
func (e *Engine) RunOnce(ctx context.Context) (*CycleResult, error) {
	if !e.cycleMu.TryLock() {
		return nil, ErrCycleInProgress
	}
	defer e.cycleMu.Unlock()

	if !e.readiness.GetStatus().Ready() {
		e.status.Publish(models.StatusUpdate{Syncing: models.Ptr(false)})
		return &CycleResult{Skipped: true}, nil
	}

	e.draining.Store(true)
	defer e.draining.Store(false)

	e.status.Publish(models.StatusUpdate{Syncing: models.Ptr(true)})

	result, err := e.drain(ctx)
	e.finish(ctx, result)
	if err != nil {
		return result, err
	}

	e.logger.Info("Sync cycle completed",
		"applied", result.Applied,
		"dropped", result.Dropped,
		"pending", result.Pending,
		"aborted", result.Aborted)

	return result, nil
}

func (e *Engine) drain(ctx context.Context) (*CycleResult, error) {
	result := &CycleResult{}

	entries, err := e.outbox.ListPending(ctx, storage.PendingFilter{})
	if err != nil {
		return result, fmt.Errorf("failed to list pending entries: %w", err)
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			result.Aborted = true
			return result, nil
		}

		// claim замораживает payload: локальные правки пока идут новыми записями
		claimed, err := e.outbox.Claim(ctx, entry.ID)
		switch {
		case errors.Is(err, storage.ErrEntryNotFound), errors.Is(err, storage.ErrEntryAlreadySynced):
			continue
		case err != nil:
			return result, fmt.Errorf("failed to claim entry %d: %w", entry.ID, err)
		}
		entry = claimed

		row, applyErr := e.apply(ctx, entry)

		switch {
		case applyErr == nil:
			if err := e.markSynced(ctx, entry); err != nil {
				e.release(ctx, entry)
				return result, err
			}
			result.Applied++
			result.LastError = ""
			e.status.Publish(models.StatusUpdate{LastError: models.Ptr("")})

			if e.onApplied != nil {
				e.onApplied(ctx, entry, row)
			}

		case api.IsPermanent(applyErr):
			// сначала архив, потом отметка: запись не теряется
			if err := e.archive(ctx, entry, applyErr); err != nil {
				e.release(ctx, entry)
				return result, fmt.Errorf("failed to archive entry %d: %w", entry.ID, err)
			}
			if err := e.markSynced(ctx, entry); err != nil {
				e.release(ctx, entry)
				return result, err
			}
			result.Dropped++
			result.LastError = applyErr.Error()
			e.status.Publish(models.StatusUpdate{LastError: models.Ptr(result.LastError)})

			e.logger.Error("Sync entry dropped",
				"entry_id", entry.ID,
				"table", entry.TableName,
				"operation", entry.Operation,
				"error", applyErr)

		default:
			e.release(ctx, entry)

			result.Aborted = true
			result.LastError = applyErr.Error()
			e.status.Publish(models.StatusUpdate{LastError: models.Ptr(result.LastError)})

			e.logger.Warn("Sync cycle aborted",
				"entry_id", entry.ID,
				"table", entry.TableName,
				"operation", entry.Operation,
				"error", applyErr)
			return result, nil
		}
	}

	return result, nil
}

// markSynced closes an entry the remote has answered for. An entry that
// disappeared meanwhile is logged and skipped.
func (e *Engine) markSynced(ctx context.Context, entry *models.OutboxEntry) error {
	// ответ удаленной стороны уже получен, отмена цикла не должна его потерять
	err := e.outbox.MarkSynced(context.WithoutCancel(ctx), entry.ID)
	if errors.Is(err, storage.ErrEntryNotFound) {
		e.logger.Warn("Sync entry vanished before it was marked synced",
			"entry_id", entry.ID,
			"table", entry.TableName,
			"operation", entry.Operation)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to mark entry %d synced: %w", entry.ID, err)
	}
	return nil
}

// release returns a claimed entry to the queue, it stays first in line
func (e *Engine) release(ctx context.Context, entry *models.OutboxEntry) {
	if err := e.outbox.Release(context.WithoutCancel(ctx), entry.ID); err != nil {
		e.logger.Warn("Failed to release entry", "entry_id", entry.ID, "error", err)
	}
}

// apply sends one entry to the remote. Returns the stored row when the
// remote answers with one.
func (e *Engine) apply(ctx context.Context, entry *models.OutboxEntry) (map[string]any, error) {
	payload, err := models.DecodePayload(entry.TableName, entry.Payload)
	if err != nil {
		return nil, err
	}

	table := models.RemoteTable(entry.TableName)

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.RemoteTimeout)
	defer cancel()

	switch entry.Operation {
	case models.OperationInsert, models.OperationUpsert:
		return e.remote.Upsert(callCtx, table, entry.RecordID, payload.Fields())
	case models.OperationUpdate:
		return e.remote.Update(callCtx, table, entry.RecordID, payload.Fields())
	case models.OperationDelete:
		return nil, e.remote.Delete(callCtx, table, entry.RecordID)
	}
	return nil, fmt.Errorf("%w: unknown operation %q", models.ErrMalformedPayload, entry.Operation)
}

func (e *Engine) archive(ctx context.Context, entry *models.OutboxEntry, cause error) error {
	if e.deadLetters == nil {
		return nil
	}
	archived := entry.Clone()
	archived.InFlight = false
	_, err := e.deadLetters.AddDeadLetter(ctx, &models.DeadLetter{
		Entry:    *archived,
		Error:    cause.Error(),
		FailedAt: e.now().UTC(),
	})
	return err
}

// finish publishes the end-of-cycle status and prunes old synced entries.
func (e *Engine) finish(ctx context.Context, result *CycleResult) {
	// финальные операции не должны зависеть от отмены цикла
	ctx = context.WithoutCancel(ctx)

	update := models.StatusUpdate{Syncing: models.Ptr(false)}

	count, err := e.outbox.CountPending(ctx)
	if err != nil {
		e.logger.Error("Failed to count pending entries", "error", err)
	} else {
		result.Pending = count
		update.PendingCount = models.Ptr(count)
	}

	if result.Applied > 0 {
		now := e.now().UTC()
		update.LastSyncAt = &now
		if e.metadata != nil {
			if err := e.metadata.SaveLastSyncAt(ctx, now); err != nil {
				e.logger.Warn("Failed to save last sync time", "error", err)
			}
		}
	}

	e.status.Publish(update)

	if e.cfg.Retention > 0 && (result.Applied > 0 || result.Dropped > 0) {
		e.prune(ctx)
	}
}

func (e *Engine) prune(ctx context.Context) {
	before := e.now().Add(-e.cfg.Retention)
	n, err := e.outbox.PruneSynced(ctx, before)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			e.logger.Warn("Failed to prune synced entries", "error", err)
		}
		return
	}
	if n > 0 {
		e.logger.Debug("Pruned synced entries", "count", n, "before", before.Format(time.RFC3339))
	}
}
