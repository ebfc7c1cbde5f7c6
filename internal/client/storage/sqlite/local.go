package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
	"github.com/iudanet/depotsync/internal/validation"
)

// localTables таблицы, доступные через LocalStore.
// sync_queue и device_settings пишутся только через свои методы.
var localTables = map[string]struct{}{
	models.TableMaterial:       {},
	models.TableUltimas:        {},
	models.TableComanda20:      {},
	models.TablePendenciaLocal: {},
	models.TableEstoque:        {},
}

// primaryKeys колонки первичного ключа, отличные от id
var primaryKeys = map[string]string{
	models.TableEstoque: "material",
}

func checkTable(table string) error {
	if err := validation.ValidateTable(table, localTables); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrInvalidIdentifier, err)
	}
	return nil
}

// columns возвращает отсортированные имена колонок строки
func columns(row storage.Row) ([]string, error) {
	cols := make([]string, 0, len(row))
	for col := range row {
		if err := validation.ValidateIdentifier(col); err != nil {
			return nil, fmt.Errorf("%w: %v", storage.ErrInvalidIdentifier, err)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols, nil
}

// bindValue приводит значения из payload к типам, которые понимает драйвер
func bindValue(v any) any {
	switch t := v.(type) {
	case bool:
		if t {
			return 1
		}
		return 0
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return nil
		}
		return string(b)
	}
	return v
}

// Insert adds row to table and returns the rowid.
func (s *Storage) Insert(ctx context.Context, table string, row storage.Row) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	if len(row) == 0 {
		return 0, fmt.Errorf("insert into %s: empty row", table)
	}

	cols, err := columns(row)
	if err != nil {
		return 0, err
	}

	args := make([]any, len(cols))
	for i, col := range cols {
		args[i] = bindValue(row[col])
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), placeholders(len(cols)))

	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}

// Update applies patch to the rows matching where and returns the number of
// affected rows.
func (s *Storage) Update(ctx context.Context, table string, patch storage.Row, where string, args ...any) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	if len(patch) == 0 {
		return 0, fmt.Errorf("update %s: empty patch", table)
	}
	if strings.TrimSpace(where) == "" {
		return 0, fmt.Errorf("update %s: where clause is required", table)
	}

	cols, err := columns(patch)
	if err != nil {
		return 0, err
	}

	sets := make([]string, len(cols))
	bound := make([]any, 0, len(cols)+len(args))
	for i, col := range cols {
		sets[i] = col + " = ?"
		bound = append(bound, bindValue(patch[col]))
	}
	for _, a := range args {
		bound = append(bound, bindValue(a))
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(sets, ", "), where)

	res, err := s.q.ExecContext(ctx, query, bound...)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", table, err)
	}
	return res.RowsAffected()
}

// Delete removes rows matching where.
func (s *Storage) Delete(ctx context.Context, table string, where string, args ...any) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	if strings.TrimSpace(where) == "" {
		return 0, fmt.Errorf("delete from %s: where clause is required", table)
	}

	res, err := s.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s", table, where), bindArgs(args)...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return res.RowsAffected()
}

func (s *Storage) SelectAll(ctx context.Context, table string) ([]storage.Row, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	return s.ExecuteQuery(ctx, fmt.Sprintf("SELECT * FROM %s", table))
}

func (s *Storage) SelectWhere(ctx context.Context, table string, where string, args ...any) ([]storage.Row, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	if strings.TrimSpace(where) == "" {
		return s.SelectAll(ctx, table)
	}
	return s.ExecuteQuery(ctx, fmt.Sprintf("SELECT * FROM %s WHERE %s", table, where), args...)
}

// SelectByID returns storage.ErrRowNotFound if the row doesn't exist
func (s *Storage) SelectByID(ctx context.Context, table string, id any) (storage.Row, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	pk := "id"
	if col, ok := primaryKeys[table]; ok {
		pk = col
	}

	rows, err := s.ExecuteQuery(ctx, fmt.Sprintf("SELECT * FROM %s WHERE %s = ? LIMIT 1", table, pk), id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, storage.ErrRowNotFound
	}
	return rows[0], nil
}

func (s *Storage) Exists(ctx context.Context, table string, where string, args ...any) (bool, error) {
	if err := checkTable(table); err != nil {
		return false, err
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s)", table, where)
	if strings.TrimSpace(where) == "" {
		query = fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s)", table)
	}

	var exists int
	if err := s.q.QueryRowContext(ctx, query, bindArgs(args)...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence in %s: %w", table, err)
	}
	return exists == 1, nil
}

// ExecuteQuery runs a raw query and returns every row as a column map.
func (s *Storage) ExecuteQuery(ctx context.Context, query string, args ...any) ([]storage.Row, error) {
	rows, err := s.q.QueryContext(ctx, query, bindArgs(args)...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func scanRows(rows *sql.Rows) ([]storage.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	result := make([]storage.Row, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(storage.Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return result, nil
}

func bindArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = bindValue(a)
	}
	return out
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// isNoRows helper for QueryRow lookups
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
