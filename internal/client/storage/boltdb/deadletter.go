package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

var (
	_ storage.MetadataStorage   = (*Storage)(nil)
	_ storage.DeadLetterStorage = (*Storage)(nil)
)

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// AddDeadLetter archives an entry dropped after a permanent failure.
// Ids come from the bucket sequence, so iteration order is archive order.
func (s *Storage) AddDeadLetter(ctx context.Context, dl *models.DeadLetter) (uint64, error) {
	var id uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDeadLetters)
		if bucket == nil {
			return fmt.Errorf("dead letters bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate dead letter id: %w", err)
		}

		record := *dl
		record.ID = seq

		data, err := json.Marshal(&record)
		if err != nil {
			return fmt.Errorf("failed to marshal dead letter: %w", err)
		}

		if err := bucket.Put(itob(seq), data); err != nil {
			return fmt.Errorf("failed to save dead letter: %w", err)
		}

		id = seq
		return nil
	})
	if err != nil {
		return 0, err
	}

	dl.ID = id
	return id, nil
}

// ListDeadLetters returns dead letters, oldest first
func (s *Storage) ListDeadLetters(ctx context.Context) ([]*models.DeadLetter, error) {
	result := make([]*models.DeadLetter, 0)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDeadLetters)
		if bucket == nil {
			return fmt.Errorf("dead letters bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			var dl models.DeadLetter
			if err := json.Unmarshal(v, &dl); err != nil {
				return fmt.Errorf("failed to unmarshal dead letter %d: %w", binary.BigEndian.Uint64(k), err)
			}
			result = append(result, &dl)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetDeadLetter returns storage.ErrDeadLetterNotFound if id doesn't exist
func (s *Storage) GetDeadLetter(ctx context.Context, id uint64) (*models.DeadLetter, error) {
	var dl *models.DeadLetter

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDeadLetters)
		if bucket == nil {
			return fmt.Errorf("dead letters bucket not found")
		}

		data := bucket.Get(itob(id))
		if data == nil {
			return storage.ErrDeadLetterNotFound
		}

		dl = &models.DeadLetter{}
		if err := json.Unmarshal(data, dl); err != nil {
			return fmt.Errorf("failed to unmarshal dead letter: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dl, nil
}

func (s *Storage) DeleteDeadLetter(ctx context.Context, id uint64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDeadLetters)
		if bucket == nil {
			return fmt.Errorf("dead letters bucket not found")
		}

		key := itob(id)
		if bucket.Get(key) == nil {
			return storage.ErrDeadLetterNotFound
		}
		return bucket.Delete(key)
	})
}
