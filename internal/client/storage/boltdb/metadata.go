package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncAt = "last_sync_at"
)

// SaveLastSyncAt saves the completion time of the last cycle that applied an entry
func (s *Storage) SaveLastSyncAt(ctx context.Context, t time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Храним unix nano в big endian
		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, uint64(t.UnixNano()))

		if err := bucket.Put([]byte(keyLastSyncAt), value); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSyncAt returns nil if no sync has been performed yet
func (s *Storage) GetLastSyncAt(ctx context.Context) (*time.Time, error) {
	var result *time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		value := bucket.Get([]byte(keyLastSyncAt))
		if len(value) != 8 {
			// первой синхронизации еще не было
			return nil
		}

		t := time.Unix(0, int64(binary.BigEndian.Uint64(value)))
		result = &t
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return result, nil
}
