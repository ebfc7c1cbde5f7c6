package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"time"

	"github.com/iudanet/depotsync/internal/server/storage"
	"github.com/iudanet/depotsync/internal/sqlitedb"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage keeps remote rows of every table in one SQLite table
type Storage struct {
	db  *sql.DB
	now func() time.Time
}

var _ storage.RowStorage = (*Storage)(nil)

// New opens the server database and applies the embedded migrations.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sqlitedb.Open(ctx, dbPath, sqlitedb.Sub(embedMigrations, "migrations"))
	if err != nil {
		return nil, err
	}
	return &Storage{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping checks that the database answers
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
