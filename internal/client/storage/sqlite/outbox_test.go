package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

// setupTestStorage создает временную БД с примененными миграциями
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "depot_test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, s.Close())
	}
	return s, cleanup
}

func appendEntry(t *testing.T, s *Storage, table string, op models.Operation, recordID, payload string) int64 {
	t.Helper()

	id, err := s.Append(context.Background(), &models.OutboxEntry{
		TableName: table,
		Operation: op,
		RecordID:  recordID,
		Payload:   json.RawMessage(payload),
	})
	require.NoError(t, err)
	return id
}

func TestOutbox_AppendAndListPendingFIFO(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	first := appendEntry(t, s, models.TableMaterial, models.OperationInsert, "1", `{"nome":"Cobre"}`)
	second := appendEntry(t, s, models.TableMaterial, models.OperationUpdate, "1", `{"preco_compra":30}`)
	third := appendEntry(t, s, models.TableItem, models.OperationInsert, "", `{"material":1}`)

	entries, err := s.ListPending(ctx, storage.PendingFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []int64{first, second, third}, []int64{entries[0].ID, entries[1].ID, entries[2].ID})
	assert.False(t, entries[0].Synced)
	assert.Equal(t, models.OperationUpdate, entries[1].Operation)
	assert.JSONEq(t, `{"preco_compra":30}`, string(entries[1].Payload))
	assert.Empty(t, entries[2].RecordID)
}

func TestOutbox_AppendClampsClockGoingBackwards(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	first := appendEntry(t, s, models.TableMaterial, models.OperationInsert, "1", `{}`)

	// часы ушли назад
	now = now.Add(-time.Hour)
	second := appendEntry(t, s, models.TableMaterial, models.OperationUpdate, "1", `{}`)

	entries, err := s.ListPending(ctx, storage.PendingFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0].ID)
	assert.Equal(t, second, entries[1].ID)
	assert.False(t, entries[1].CreatedAt.Before(entries[0].CreatedAt))
}

func TestOutbox_ListPendingFilter(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	appendEntry(t, s, models.TableItem, models.OperationInsert, "", `{}`)
	appendEntry(t, s, models.TableUltimas, models.OperationInsert, "", `{}`)
	appendEntry(t, s, models.TableItem, models.OperationDelete, "5", `{}`)
	appendEntry(t, s, models.TableMaterial, models.OperationInsert, "5", `{}`)

	tests := []struct {
		name   string
		filter storage.PendingFilter
		want   int
	}{
		{name: "all", filter: storage.PendingFilter{}, want: 4},
		{name: "item tables", filter: storage.PendingFilter{TableNames: []string{models.TableItem, models.TableUltimas}}, want: 3},
		{name: "item inserts", filter: storage.PendingFilter{
			TableNames: []string{models.TableItem, models.TableUltimas},
			Operations: []models.Operation{models.OperationInsert},
		}, want: 2},
		{name: "by record", filter: storage.PendingFilter{RecordID: "5"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := s.ListPending(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
		})
	}
}

func TestOutbox_MarkSyncedIdempotent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	id := appendEntry(t, s, models.TableMaterial, models.OperationInsert, "1", `{}`)

	require.NoError(t, s.MarkSynced(ctx, id))
	require.NoError(t, s.MarkSynced(ctx, id))

	entry, err := s.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.True(t, entry.Synced)

	count, err := s.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	assert.ErrorIs(t, s.MarkSynced(ctx, 999), storage.ErrEntryNotFound)
}

func TestOutbox_RemoveAndUpdatePayload(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	pending := appendEntry(t, s, models.TablePendenciaLocal, models.OperationInsert, "1", `{"nome":"Ana"}`)
	synced := appendEntry(t, s, models.TablePendenciaLocal, models.OperationInsert, "2", `{"nome":"Bia"}`)
	require.NoError(t, s.MarkSynced(ctx, synced))

	require.NoError(t, s.UpdatePayload(ctx, pending, json.RawMessage(`{"nome":"Ana Maria"}`)))
	entry, err := s.GetEntry(ctx, pending)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nome":"Ana Maria"}`, string(entry.Payload))

	assert.ErrorIs(t, s.UpdatePayload(ctx, synced, json.RawMessage(`{}`)), storage.ErrEntryAlreadySynced)
	assert.ErrorIs(t, s.Remove(ctx, synced), storage.ErrEntryAlreadySynced)
	assert.ErrorIs(t, s.Remove(ctx, 12345), storage.ErrEntryNotFound)

	require.NoError(t, s.Remove(ctx, pending))
	_, err = s.GetEntry(ctx, pending)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestOutbox_ClaimFreezesEntry(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	id := appendEntry(t, s, models.TablePendenciaLocal, models.OperationInsert, "1", `{"nome":"Ana"}`)

	claimed, err := s.Claim(ctx, id)
	require.NoError(t, err)
	assert.True(t, claimed.InFlight)
	assert.JSONEq(t, `{"nome":"Ana"}`, string(claimed.Payload))

	assert.ErrorIs(t, s.UpdatePayload(ctx, id, json.RawMessage(`{"nome":"Ana Maria"}`)), storage.ErrEntryInFlight)
	assert.ErrorIs(t, s.Remove(ctx, id), storage.ErrEntryInFlight)

	entry, err := s.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nome":"Ana"}`, string(entry.Payload))

	// повторная выдача после временной ошибки
	require.NoError(t, s.Release(ctx, id))
	require.NoError(t, s.UpdatePayload(ctx, id, json.RawMessage(`{"nome":"Ana Maria"}`)))

	_, err = s.Claim(ctx, id)
	require.NoError(t, err)
	require.NoError(t, s.MarkSynced(ctx, id))
	entry, err = s.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.True(t, entry.Synced)
	assert.False(t, entry.InFlight)

	_, err = s.Claim(ctx, id)
	assert.ErrorIs(t, err, storage.ErrEntryAlreadySynced)
	_, err = s.Claim(ctx, 12345)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestOutbox_ReleaseClaims(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	a := appendEntry(t, s, models.TableMaterial, models.OperationInsert, "1", `{}`)
	b := appendEntry(t, s, models.TableMaterial, models.OperationInsert, "2", `{}`)
	_, err := s.Claim(ctx, a)
	require.NoError(t, err)
	_, err = s.Claim(ctx, b)
	require.NoError(t, err)

	n, err := s.ReleaseClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	pending, err := s.ListPending(ctx, storage.PendingFilter{})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, e := range pending {
		assert.False(t, e.InFlight)
	}
	require.NoError(t, s.Remove(ctx, a))
}

func TestOutbox_PruneSynced(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	old := time.Now().Add(-40 * 24 * time.Hour)
	s.now = func() time.Time { return old }
	oldSynced := appendEntry(t, s, models.TableMaterial, models.OperationInsert, "1", `{}`)
	oldPending := appendEntry(t, s, models.TableMaterial, models.OperationInsert, "2", `{}`)
	require.NoError(t, s.MarkSynced(ctx, oldSynced))

	s.now = time.Now
	fresh := appendEntry(t, s, models.TableMaterial, models.OperationInsert, "3", `{}`)
	require.NoError(t, s.MarkSynced(ctx, fresh))

	n, err := s.PruneSynced(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.GetEntry(ctx, oldSynced)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
	_, err = s.GetEntry(ctx, oldPending)
	assert.NoError(t, err)
	_, err = s.GetEntry(ctx, fresh)
	assert.NoError(t, err)
}

func TestOutbox_AppendValidation(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.Append(ctx, &models.OutboxEntry{TableName: "material", Operation: "MERGE"})
	assert.Error(t, err)

	_, err = s.Append(ctx, &models.OutboxEntry{TableName: "material; --", Operation: models.OperationInsert})
	assert.ErrorIs(t, err, storage.ErrInvalidIdentifier)

	entry := &models.OutboxEntry{TableName: models.TableMaterial, Operation: models.OperationDelete, RecordID: "4"}
	_, err = s.Append(ctx, entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(entry.Payload))
	assert.NotZero(t, entry.ID)
}

func TestWithTx_RollbackDiscardsLocalWriteAndEntry(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.WithTx(ctx, func(tx storage.Store) error {
		if _, err := tx.Insert(ctx, models.TableMaterial, storage.Row{"nome": "Cobre"}); err != nil {
			return err
		}
		if _, err := tx.Append(ctx, &models.OutboxEntry{TableName: models.TableMaterial, Operation: models.OperationInsert}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	rows, err := s.SelectAll(ctx, models.TableMaterial)
	require.NoError(t, err)
	assert.Empty(t, rows)

	count, err := s.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	err = s.WithTx(ctx, func(tx storage.Store) error {
		_, err := tx.Insert(ctx, models.TableMaterial, storage.Row{"nome": "Cobre"})
		return err
	})
	require.NoError(t, err)

	rows, err = s.SelectAll(ctx, models.TableMaterial)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
