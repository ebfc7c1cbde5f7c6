package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/depotsync/internal/server/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(context.Background(), filepath.Join(t.TempDir(), "remote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUpsert_AssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	first, err := s.Upsert(ctx, "item", storage.Row{"codigo": "AB1", "kg_total": json.Number("5.000")})
	require.NoError(t, err)
	assert.Equal(t, json.Number("1"), first["id"])

	second, err := s.Upsert(ctx, "item", storage.Row{"codigo": "AB2"})
	require.NoError(t, err)
	assert.Equal(t, json.Number("2"), second["id"])

	// у каждой таблицы своя последовательность
	other, err := s.Upsert(ctx, "comanda", storage.Row{"codigo": "AB1"})
	require.NoError(t, err)
	assert.Equal(t, json.Number("1"), other["id"])

	got, err := s.Get(ctx, "item", "1")
	require.NoError(t, err)
	assert.Equal(t, json.Number("5.000"), got["kg_total"])
}

func TestUpsert_MergesExisting(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.Upsert(ctx, "pendencia", storage.Row{"id": "7", "nome": "João", "valor": json.Number("10")})
	require.NoError(t, err)

	merged, err := s.Upsert(ctx, "pendencia", storage.Row{"id": json.Number("7"), "status": true})
	require.NoError(t, err)
	assert.Equal(t, "João", merged["nome"])
	assert.Equal(t, true, merged["status"])
	assert.Equal(t, json.Number("7"), merged["id"])

	rows, err := s.List(ctx, "pendencia", 10)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestUpsert_StringKey(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	row, err := s.Upsert(ctx, "material", storage.Row{"id": "c0ffee-uuid", "nome": "Cobre"})
	require.NoError(t, err)
	assert.Equal(t, "c0ffee-uuid", row["id"])

	// строковый ключ не сбивает числовую последовательность
	next, err := s.Upsert(ctx, "material", storage.Row{"nome": "Latão"})
	require.NoError(t, err)
	assert.Equal(t, json.Number("1"), next["id"])
}

func TestUpsert_Invalid(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.Upsert(ctx, "users", storage.Row{"nome": "x"})
	assert.ErrorIs(t, err, storage.ErrUnknownTable)

	_, err = s.Upsert(ctx, "item", storage.Row{"id": 1.5})
	assert.ErrorIs(t, err, storage.ErrInvalidRow)

	_, err = s.Upsert(ctx, "item", storage.Row{"id": []any{1}})
	assert.ErrorIs(t, err, storage.ErrInvalidRow)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.Update(ctx, "material", "1", storage.Row{"preco_compra": json.Number("8")})
	assert.ErrorIs(t, err, storage.ErrRowNotFound)

	_, err = s.Upsert(ctx, "material", storage.Row{"nome": "Cobre", "preco_compra": json.Number("7.5")})
	require.NoError(t, err)

	updated, err := s.Update(ctx, "material", "1", storage.Row{"id": json.Number("99"), "preco_compra": json.Number("8")})
	require.NoError(t, err)
	assert.Equal(t, json.Number("8"), updated["preco_compra"])
	assert.Equal(t, "Cobre", updated["nome"])
	assert.Equal(t, json.Number("1"), updated["id"])

	_, err = s.Get(ctx, "material", "99")
	assert.ErrorIs(t, err, storage.ErrRowNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.Upsert(ctx, "item", storage.Row{"codigo": "AB1"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "item", "1"))
	assert.ErrorIs(t, s.Delete(ctx, "item", "1"), storage.ErrRowNotFound)

	_, err = s.Get(ctx, "item", "1")
	assert.ErrorIs(t, err, storage.ErrRowNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	for _, codigo := range []string{"A", "B", "C"} {
		_, err := s.Upsert(ctx, "comanda", storage.Row{"codigo": codigo})
		require.NoError(t, err)
		now = now.Add(time.Second)
	}

	rows, err := s.List(ctx, "comanda", 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "C", rows[0]["codigo"])
	assert.Equal(t, "B", rows[1]["codigo"])
}

func TestPing(t *testing.T) {
	s := setupTestStorage(t)
	assert.NoError(t, s.Ping(context.Background()))
}
