package sqlite

import (
	"context"
	"fmt"
	"strconv"
)

const sequencePrefix = "seq:"

// GetSetting returns "" for a missing key
func (s *Storage) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.q.QueryRowContext(ctx, "SELECT value FROM device_settings WHERE key = ?", key).Scan(&value)
	if isNoRows(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, nil
}

func (s *Storage) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO device_settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// NextSequence increments the counter in a single statement and returns the
// new value. The first call for a name returns 1.
func (s *Storage) NextSequence(ctx context.Context, name string) (int64, error) {
	var value string
	err := s.q.QueryRowContext(ctx,
		`INSERT INTO device_settings (key, value) VALUES (?, '1')
		 ON CONFLICT(key) DO UPDATE SET value = CAST(value AS INTEGER) + 1
		 RETURNING value`,
		sequencePrefix+name).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence %s: %w", name, err)
	}

	seq, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt sequence %s: %w", name, err)
	}
	return seq, nil
}
