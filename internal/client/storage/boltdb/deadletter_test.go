package boltdb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

func newDeadLetter(entryID int64, msg string) *models.DeadLetter {
	return &models.DeadLetter{
		FailedAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		Error:    msg,
		Entry: models.OutboxEntry{
			CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			TableName: models.TableItem,
			Operation: models.OperationInsert,
			Payload:   json.RawMessage(`{"kg_total":"abc"}`),
			ID:        entryID,
			Synced:    true,
		},
	}
}

func TestDeadLetters_AddListGet(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	first := newDeadLetter(10, "malformed payload")
	id1, err := store.AddDeadLetter(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, id1, first.ID)

	id2, err := store.AddDeadLetter(ctx, newDeadLetter(11, "remote rejected: 422"))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	list, err := store.ListDeadLetters(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(10), list[0].Entry.ID)
	assert.Equal(t, int64(11), list[1].Entry.ID)
	assert.JSONEq(t, `{"kg_total":"abc"}`, string(list[0].Entry.Payload))

	got, err := store.GetDeadLetter(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, "remote rejected: 422", got.Error)
	assert.Equal(t, id2, got.ID)
}

func TestDeadLetters_Delete(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	id, err := store.AddDeadLetter(ctx, newDeadLetter(1, "boom"))
	require.NoError(t, err)

	require.NoError(t, store.DeleteDeadLetter(ctx, id))

	_, err = store.GetDeadLetter(ctx, id)
	assert.ErrorIs(t, err, storage.ErrDeadLetterNotFound)
	assert.ErrorIs(t, store.DeleteDeadLetter(ctx, id), storage.ErrDeadLetterNotFound)

	list, err := store.ListDeadLetters(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
