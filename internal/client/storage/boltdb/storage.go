package boltdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"
)

var (
	bucketMetadata    = []byte("metadata")
	bucketDeadLetters = []byte("dead_letters")

	buckets = [][]byte{bucketMetadata, bucketDeadLetters}
)

// ErrLocked state file is held by another process (usually a running agent)
var ErrLocked = errors.New("state file is locked by another process")

// openTimeout сколько ждать файловую блокировку, если БД открыта другим процессом
const openTimeout = 2 * time.Second

// Storage is the BoltDB store of sync engine state that must outlive the
// process: last sync time and the dead-letter archive.
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the state file at dbPath. Only one process may hold
// it; a second one gets ErrLocked after openTimeout.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	return open(dbPath, openTimeout)
}

func open(dbPath string, timeout time.Duration) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: timeout})
	if errors.Is(err, berrors.ErrTimeout) {
		return nil, fmt.Errorf("%s: %w", dbPath, ErrLocked)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open state: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the file lock. Safe to call twice.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}
