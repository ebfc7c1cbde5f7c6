package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iudanet/depotsync/internal/server/storage"
)

// querier общий интерфейс *sql.DB и *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Upsert stores row, merging it into an existing row with the same id
func (s *Storage) Upsert(ctx context.Context, table string, row storage.Row) (storage.Row, error) {
	if !storage.KnownTable(table) {
		return nil, fmt.Errorf("%w: %s", storage.ErrUnknownTable, table)
	}

	id, hasID, err := rowID(row)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	merged := make(storage.Row, len(row)+1)
	if hasID {
		existing, err := getRow(ctx, tx, table, id)
		if err != nil && !errors.Is(err, storage.ErrRowNotFound) {
			return nil, err
		}
		for k, v := range existing {
			merged[k] = v
		}
	} else {
		// ключ назначает сервер, как serial в Postgres
		if id, err = nextID(ctx, tx, table); err != nil {
			return nil, err
		}
	}
	for k, v := range row {
		merged[k] = v
	}
	merged["id"] = idValue(id)

	if err := s.putRow(ctx, tx, table, id, merged); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return merged, nil
}

// Update patches an existing row; the id itself never changes
func (s *Storage) Update(ctx context.Context, table, id string, patch storage.Row) (storage.Row, error) {
	if !storage.KnownTable(table) {
		return nil, fmt.Errorf("%w: %s", storage.ErrUnknownTable, table)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	existing, err := getRow(ctx, tx, table, id)
	if err != nil {
		return nil, err
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		existing[k] = v
	}

	if err := s.putRow(ctx, tx, table, id, existing); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return existing, nil
}

func (s *Storage) Delete(ctx context.Context, table, id string) error {
	if !storage.KnownTable(table) {
		return fmt.Errorf("%w: %s", storage.ErrUnknownTable, table)
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM remote_rows WHERE table_name = ? AND id = ?", table, id)
	if err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrRowNotFound
	}
	return nil
}

func (s *Storage) Get(ctx context.Context, table, id string) (storage.Row, error) {
	if !storage.KnownTable(table) {
		return nil, fmt.Errorf("%w: %s", storage.ErrUnknownTable, table)
	}
	return getRow(ctx, s.db, table, id)
}

func (s *Storage) List(ctx context.Context, table string, limit int) ([]storage.Row, error) {
	if !storage.KnownTable(table) {
		return nil, fmt.Errorf("%w: %s", storage.ErrUnknownTable, table)
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT data FROM remote_rows WHERE table_name = ? ORDER BY updated_at DESC, id DESC LIMIT ?",
		table, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rows: %w", err)
	}
	defer rows.Close()

	result := make([]storage.Row, 0)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row, err := decodeRow(data)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return result, nil
}

func (s *Storage) putRow(ctx context.Context, q querier, table, id string, row storage.Row) error {
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrInvalidRow, err)
	}

	now := s.now().UnixNano()
	_, err = q.ExecContext(ctx, `
		INSERT INTO remote_rows (table_name, id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(table_name, id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, table, id, string(data), now, now)
	if err != nil {
		return fmt.Errorf("failed to store row: %w", err)
	}
	return nil
}

func getRow(ctx context.Context, q querier, table, id string) (storage.Row, error) {
	var data string
	err := q.QueryRowContext(ctx,
		"SELECT data FROM remote_rows WHERE table_name = ? AND id = ?", table, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrRowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get row: %w", err)
	}
	return decodeRow(data)
}

// nextID следующий числовой ключ таблицы
func nextID(ctx context.Context, q querier, table string) (string, error) {
	var last int64
	err := q.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(CAST(id AS INTEGER)), 0) FROM remote_rows
		WHERE table_name = ? AND id GLOB '[0-9]*'
	`, table).Scan(&last)
	if err != nil {
		return "", fmt.Errorf("failed to allocate id: %w", err)
	}
	return strconv.FormatInt(last+1, 10), nil
}

func decodeRow(data string) (storage.Row, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	var row storage.Row
	if err := dec.Decode(&row); err != nil {
		return nil, fmt.Errorf("failed to decode row: %w", err)
	}
	return row, nil
}

// rowID извлекает ключ строки; пустой или отсутствующий id = нет ключа
func rowID(row storage.Row) (string, bool, error) {
	v, ok := row["id"]
	if !ok || v == nil {
		return "", false, nil
	}

	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return "", false, fmt.Errorf("%w: id %s is not an integer", storage.ErrInvalidRow, t)
		}
		return strconv.FormatInt(n, 10), true, nil
	case string:
		id := strings.TrimSpace(t)
		return id, id != "", nil
	case float64:
		if t != math.Trunc(t) {
			return "", false, fmt.Errorf("%w: id %v is not an integer", storage.ErrInvalidRow, t)
		}
		return strconv.FormatInt(int64(t), 10), true, nil
	case int:
		return strconv.Itoa(t), true, nil
	case int64:
		return strconv.FormatInt(t, 10), true, nil
	}
	return "", false, fmt.Errorf("%w: id has type %T", storage.ErrInvalidRow, v)
}

// idValue числовые ключи остаются числами в JSON
func idValue(id string) any {
	if _, err := strconv.ParseInt(id, 10, 64); err == nil {
		return json.Number(id)
	}
	return id
}
