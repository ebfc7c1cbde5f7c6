package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) (*Storage, func()) {
	dbPath := filepath.Join(t.TempDir(), "state_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
	}

	return store, cleanup
}

func TestSaveAndGetLastSyncAt(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Изначально синхронизации не было
	got, err := store.GetLastSyncAt(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	expected := time.Date(2024, 3, 15, 18, 30, 5, 123456789, time.UTC)
	require.NoError(t, store.SaveLastSyncAt(ctx, expected))

	got, err = store.GetLastSyncAt(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, expected.Equal(*got))
}

func TestLastSyncAt_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "state.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	expected := time.Now()
	require.NoError(t, store.SaveLastSyncAt(ctx, expected))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.GetLastSyncAt(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, expected.UnixNano(), got.UnixNano())
}

func TestLastSyncAt_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetLastSyncAt(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")

	err = store.SaveLastSyncAt(ctx, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}
