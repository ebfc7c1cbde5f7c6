package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
	"github.com/iudanet/depotsync/internal/validation"
)

const outboxColumns = "id, table_name, operation, record_id, payload, created_at, synced, in_flight"

// Append stores a new pending entry. created_at never goes below the newest
// existing entry, so FIFO order survives a clock step backwards.
func (s *Storage) Append(ctx context.Context, entry *models.OutboxEntry) (int64, error) {
	if err := validation.ValidateIdentifier(entry.TableName); err != nil {
		return 0, fmt.Errorf("%w: %v", storage.ErrInvalidIdentifier, err)
	}
	if !entry.Operation.Valid() {
		return 0, fmt.Errorf("unknown operation %q", entry.Operation)
	}

	payload := entry.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	var newest int64
	err := s.q.QueryRowContext(ctx, "SELECT COALESCE(MAX(created_at), 0) FROM sync_queue").Scan(&newest)
	if err != nil {
		return 0, fmt.Errorf("failed to read queue head: %w", err)
	}
	if createdAt.UnixNano() < newest {
		createdAt = time.Unix(0, newest)
	}

	res, err := s.q.ExecContext(ctx,
		`INSERT INTO sync_queue (table_name, operation, record_id, payload, created_at, synced)
		 VALUES (?, ?, ?, ?, ?, 0)`,
		entry.TableName,
		string(entry.Operation),
		entry.RecordID,
		string(payload),
		createdAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to append outbox entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get entry id: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = createdAt
	entry.Payload = payload
	entry.Synced = false
	return id, nil
}

// ListPending returns pending entries oldest first
func (s *Storage) ListPending(ctx context.Context, filter storage.PendingFilter) ([]*models.OutboxEntry, error) {
	var (
		conds = []string{"synced = 0"}
		args  []any
	)

	if len(filter.TableNames) > 0 {
		conds = append(conds, "table_name IN ("+placeholders(len(filter.TableNames))+")")
		for _, t := range filter.TableNames {
			args = append(args, t)
		}
	}
	if len(filter.Operations) > 0 {
		conds = append(conds, "operation IN ("+placeholders(len(filter.Operations))+")")
		for _, op := range filter.Operations {
			args = append(args, string(op))
		}
	}
	if filter.RecordID != "" {
		conds = append(conds, "record_id = ?")
		args = append(args, filter.RecordID)
	}

	query := fmt.Sprintf("SELECT %s FROM sync_queue WHERE %s ORDER BY created_at ASC, id ASC",
		outboxColumns, strings.Join(conds, " AND "))

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.OutboxEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}
	return entries, nil
}

// GetEntry retrieves an entry by id
func (s *Storage) GetEntry(ctx context.Context, id int64) (*models.OutboxEntry, error) {
	row := s.q.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM sync_queue WHERE id = ?", outboxColumns), id)

	entry, err := scanEntry(row)
	if isNoRows(err) {
		return nil, storage.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// MarkSynced is idempotent: synced_at keeps the first marking time.
// The claim is released with it.
func (s *Storage) MarkSynced(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx,
		"UPDATE sync_queue SET synced = 1, in_flight = 0, synced_at = COALESCE(synced_at, ?) WHERE id = ?",
		s.now().UnixNano(), id)
	if err != nil {
		return fmt.Errorf("failed to mark entry synced: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrEntryNotFound
	}
	return nil
}

// Claim marks a pending entry as being sent and returns its current state.
// A claimed entry can be neither removed nor rewritten until MarkSynced or
// Release.
func (s *Storage) Claim(ctx context.Context, id int64) (*models.OutboxEntry, error) {
	res, err := s.q.ExecContext(ctx,
		"UPDATE sync_queue SET in_flight = 1 WHERE id = ? AND synced = 0", id)
	if err != nil {
		return nil, fmt.Errorf("failed to claim entry: %w", err)
	}
	if err := s.checkPendingAffected(ctx, res, id); err != nil {
		return nil, err
	}
	return s.GetEntry(ctx, id)
}

// Release drops the claim of an entry that stays pending
func (s *Storage) Release(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, "UPDATE sync_queue SET in_flight = 0 WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to release entry: %w", err)
	}
	return nil
}

// ReleaseClaims drops every claim left by a previous process
func (s *Storage) ReleaseClaims(ctx context.Context) (int64, error) {
	res, err := s.q.ExecContext(ctx, "UPDATE sync_queue SET in_flight = 0 WHERE in_flight = 1")
	if err != nil {
		return 0, fmt.Errorf("failed to release claims: %w", err)
	}
	return res.RowsAffected()
}

// Remove deletes a pending entry (cancel before sync)
func (s *Storage) Remove(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx,
		"DELETE FROM sync_queue WHERE id = ? AND synced = 0 AND in_flight = 0", id)
	if err != nil {
		return fmt.Errorf("failed to remove entry: %w", err)
	}
	return s.checkPendingAffected(ctx, res, id)
}

// UpdatePayload rewrites the payload of a pending entry that is not in flight
func (s *Storage) UpdatePayload(ctx context.Context, id int64, payload json.RawMessage) error {
	res, err := s.q.ExecContext(ctx,
		"UPDATE sync_queue SET payload = ? WHERE id = ? AND synced = 0 AND in_flight = 0", string(payload), id)
	if err != nil {
		return fmt.Errorf("failed to update entry payload: %w", err)
	}
	return s.checkPendingAffected(ctx, res, id)
}

// checkPendingAffected различает "нет такой записи", "уже синхронизирована"
// и "отправляется"
func (s *Storage) checkPendingAffected(ctx context.Context, res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	entry, err := s.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	if !entry.Synced && entry.InFlight {
		return storage.ErrEntryInFlight
	}
	return storage.ErrEntryAlreadySynced
}

func (s *Storage) CountPending(ctx context.Context) (int, error) {
	var count int
	if err := s.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM sync_queue WHERE synced = 0").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending entries: %w", err)
	}
	return count, nil
}

// PruneSynced deletes synced entries created before the given time
func (s *Storage) PruneSynced(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.q.ExecContext(ctx,
		"DELETE FROM sync_queue WHERE synced = 1 AND created_at < ?", before.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to prune synced entries: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*models.OutboxEntry, error) {
	var (
		entry     models.OutboxEntry
		operation string
		payload   string
		createdAt int64
		synced    int
		inFlight  int
	)

	err := row.Scan(&entry.ID, &entry.TableName, &operation, &entry.RecordID, &payload, &createdAt, &synced, &inFlight)
	if err != nil {
		if isNoRows(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan entry: %w", err)
	}

	entry.Operation = models.Operation(operation)
	entry.Payload = json.RawMessage(payload)
	entry.CreatedAt = time.Unix(0, createdAt)
	entry.Synced = synced == 1
	entry.InFlight = inFlight == 1
	return &entry, nil
}
