package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/sqlitedb"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// querier общий интерфейс *sql.DB и *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Storage is the SQLite local store of the depot terminal: domain tables,
// the sync_queue outbox and device settings live in one database file.
type Storage struct {
	db  *sql.DB
	q   querier
	now func() time.Time
}

var _ storage.Store = (*Storage)(nil)

// New opens the terminal database at dbPath (":memory:" in tests) and
// applies the embedded migrations.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sqlitedb.Open(ctx, dbPath, sqlitedb.Sub(embedMigrations, "migrations"))
	if err != nil {
		return nil, err
	}
	return &Storage{db: db, q: db, now: time.Now}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// WithTx runs fn inside one transaction. Nested calls reuse the outer one.
func (s *Storage) WithTx(ctx context.Context, fn func(tx storage.Store) error) error {
	if _, inTx := s.q.(*sql.Tx); inTx {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&Storage{db: s.db, q: tx, now: s.now}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sql.DB {
	return s.db
}
