package storage

import "context"

// Row одна строка локальной таблицы: имя колонки -> значение
type Row map[string]any

// LocalStore is the embedded relational store of the depot tables.
// where clauses use "?" placeholders bound to args.
type LocalStore interface {
	Insert(ctx context.Context, table string, row Row) (int64, error)
	Update(ctx context.Context, table string, patch Row, where string, args ...any) (int64, error)
	Delete(ctx context.Context, table string, where string, args ...any) (int64, error)

	SelectAll(ctx context.Context, table string) ([]Row, error)
	SelectWhere(ctx context.Context, table string, where string, args ...any) ([]Row, error)
	// SelectByID returns ErrRowNotFound if row doesn't exist
	SelectByID(ctx context.Context, table string, id any) (Row, error)
	Exists(ctx context.Context, table string, where string, args ...any) (bool, error)

	ExecuteQuery(ctx context.Context, query string, args ...any) ([]Row, error)
}

// SettingsStorage device-local key/value settings
type SettingsStorage interface {
	// GetSetting returns "" for a missing key
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	// NextSequence atomically increments and returns the named counter
	NextSequence(ctx context.Context, name string) (int64, error)
}

// Store объединяет локальные таблицы, outbox и настройки одной БД
type Store interface {
	LocalStore
	OutboxStorage
	SettingsStorage

	// WithTx runs fn in one transaction: a local write and its outbox entry
	// are committed together or not at all.
	WithTx(ctx context.Context, fn func(tx Store) error) error
}
