package storage

import (
	"context"

	"github.com/iudanet/depotsync/internal/models"
)

// Row одна строка удаленной таблицы (JSON объект)
type Row = map[string]any

// Tables таблицы, которые принимает удаленное хранилище
var Tables = map[string]struct{}{
	models.TableMaterial:  {},
	models.TableComanda:   {},
	models.TableItem:      {},
	models.TablePendencia: {},
	models.TableEstoque:   {},
}

// KnownTable reports whether table is served.
func KnownTable(table string) bool {
	_, ok := Tables[table]
	return ok
}

//go:generate moq -out rows_mock.go . RowStorage

// RowStorage defines the persistence of the Postgrest-style remote tables
type RowStorage interface {
	// Upsert stores row. With an "id" the row is merged into the existing one
	// (fields absent from row are kept); without one a new numeric id is assigned.
	// Returns the stored row including its id.
	Upsert(ctx context.Context, table string, row Row) (Row, error)

	// Update patches the row with the given id.
	// Returns ErrRowNotFound if the row doesn't exist
	Update(ctx context.Context, table, id string, patch Row) (Row, error)

	// Delete removes the row with the given id.
	// Returns ErrRowNotFound if the row doesn't exist
	Delete(ctx context.Context, table, id string) error

	// Get retrieves a single row by id
	Get(ctx context.Context, table, id string) (Row, error)

	// List returns up to limit rows of table, newest first
	List(ctx context.Context, table string, limit int) ([]Row, error)

	// Ping checks that the database answers
	Ping(ctx context.Context) error
}
