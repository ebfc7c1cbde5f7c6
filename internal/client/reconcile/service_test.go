package reconcile

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/client/storage/sqlite"
	"github.com/iudanet/depotsync/internal/models"
)

func setupService(t *testing.T) (*Service, *sqlite.Storage) {
	t.Helper()

	s, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "depot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return NewService(s, slog.New(slog.DiscardHandler)), s
}

func enqueue(t *testing.T, s *sqlite.Storage, table string, op models.Operation, recordID, payload string) int64 {
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

func TestService_LastItems(t *testing.T) {
	ctx := context.Background()
	svc, s := setupService(t)

	cobre, err := s.Insert(ctx, models.TableMaterial, storage.Row{"nome": "Cobre"})
	require.NoError(t, err)

	at := time.Date(2024, 3, 10, 10, 15, 0, 0, time.UTC)
	_, err = s.Insert(ctx, models.TableUltimas, storage.Row{
		"id":          9,
		"data":        at.Add(40 * time.Second),
		"material":    cobre,
		"comanda":     50,
		"codigo":      "AbC123xy1",
		"tipo":        "venda",
		"preco_kg":    2.5,
		"kg_total":    10,
		"valor_total": 25,
	})
	require.NoError(t, err)

	// та же продажа еще в очереди: должна схлопнуться с подтвержденной
	enqueue(t, s, models.TableItem, models.OperationInsert, "",
		`{"data":"2024-03-10T10:15:05Z","material":`+jsonInt(cobre)+`,"preco_kg":2.5,"kg_total":10,"codigo":"AbC123xy1"}`)

	// новая команда офлайн: тип берется из ожидающей команды
	enqueue(t, s, models.TableComanda, models.OperationInsert, "",
		`{"codigo":"AbC123xy2","tipo":"Venda","total":12}`)
	enqueue(t, s, models.TableItem, models.OperationInsert, "",
		`{"data":"2024-03-10T11:00:00Z","material_nome":"Alumínio","preco_kg":6,"kg_total":2,"codigo":"AbC123xy2","client_uuid":"u-2"}`)

	// без имени и без кода: тип по знаку веса
	enqueue(t, s, models.TableUltimas, models.OperationInsert, "",
		`{"data":"2024-03-10T09:00:00Z","material":999,"preco_kg":1,"kg_total":-3}`)

	// битый payload пропускается
	enqueue(t, s, models.TableItem, models.OperationInsert, "", `{"kg_total":"muito"}`)

	items, err := svc.LastItems(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Alumínio", items[0].MaterialNome)
	assert.Equal(t, models.TipoVenda, items[0].Tipo)
	assert.True(t, items[0].Pending)
	assert.Equal(t, "u-2", items[0].ClientUUID)

	assert.Equal(t, int64(9), items[1].ID)
	assert.False(t, items[1].Pending)
	assert.Equal(t, "Cobre", items[1].MaterialNome)
	assert.Equal(t, models.TipoVenda, items[1].Tipo)

	assert.Equal(t, models.UnknownMaterial, items[2].MaterialNome)
	assert.Equal(t, models.TipoVenda, items[2].Tipo)
	assert.True(t, items[2].OriginOffline)
}

func TestService_LastItemsTipoFromConfirmedCodigo(t *testing.T) {
	ctx := context.Background()
	svc, s := setupService(t)

	_, err := s.Insert(ctx, models.TableUltimas, storage.Row{
		"id": 1, "data": time.Now().UTC().Add(-time.Hour), "material": 1, "comanda": 7,
		"codigo": "P1", "tipo": "venda", "preco_kg": 1, "kg_total": 1,
	})
	require.NoError(t, err)

	enqueue(t, s, models.TableItem, models.OperationInsert, "", `{"codigo":"P1","material":2,"preco_kg":3,"kg_total":4}`)
	enqueue(t, s, models.TableItem, models.OperationInsert, "", `{"comanda":7,"material":3,"preco_kg":3,"kg_total":5}`)

	items, err := svc.LastItems(ctx, 0)
	require.NoError(t, err)

	var pending []models.HistoryItem
	for _, it := range items {
		if it.Pending {
			pending = append(pending, it)
		}
	}
	require.Len(t, pending, 2)
	for _, p := range pending {
		assert.Equal(t, models.TipoVenda, p.Tipo)
	}
}

func TestService_Pendencias(t *testing.T) {
	ctx := context.Background()
	svc, s := setupService(t)

	older := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	// подтвержденная открытая
	confirmedID, err := s.Insert(ctx, models.TablePendenciaLocal, storage.Row{
		"data": older, "status": 0, "nome": "João", "valor": 30, "tipo": "a_receber",
	})
	require.NoError(t, err)

	// оплаченная не показывается
	_, err = s.Insert(ctx, models.TablePendenciaLocal, storage.Row{
		"data": older, "status": 1, "nome": "Paga", "valor": 5,
	})
	require.NoError(t, err)

	// офлайн: локальная строка плюс INSERT в очереди с тем же id
	localID, err := s.Insert(ctx, models.TablePendenciaLocal, storage.Row{
		"data": older.Add(time.Hour), "status": 0, "nome": "Maria", "valor": 12.5, "origem_offline": 1,
	})
	require.NoError(t, err)
	enqueue(t, s, models.TablePendenciaLocal, models.OperationInsert, jsonInt(localID),
		`{"id":`+jsonInt(localID)+`,"data":"2024-01-01T10:00:00Z","nome":"Maria","valor":12.5,"observacao":"fiado"}`)

	views, err := svc.Pendencias(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "Maria", views[0].Nome)
	assert.True(t, views[0].Pending)
	assert.Equal(t, "fiado", views[0].Obs)
	assert.Equal(t, DefaultPendenciaTipo, views[0].Tipo)
	assert.Equal(t, jsonInt(localID), views[0].ID)

	assert.Equal(t, "João", views[1].Nome)
	assert.False(t, views[1].Pending)
	assert.Equal(t, jsonInt(confirmedID), views[1].ID)
	assert.Equal(t, "30", views[1].Valor.String())
}

func TestService_PendingMaterialIDs(t *testing.T) {
	ctx := context.Background()
	svc, s := setupService(t)

	enqueue(t, s, models.TableMaterial, models.OperationUpdate, "3", `{"preco_compra":8}`)
	enqueue(t, s, models.TableMaterial, models.OperationUpdate, "3", `{"ordem":1}`)
	enqueue(t, s, models.TableMaterial, models.OperationDelete, "5", `{}`)
	enqueue(t, s, models.TableMaterial, models.OperationInsert, "", `{"nome":"Novo"}`)
	synced := enqueue(t, s, models.TableMaterial, models.OperationUpdate, "7", `{"ordem":2}`)
	require.NoError(t, s.MarkSynced(ctx, synced))

	ids, err := svc.PendingMaterialIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "5"}, ids)
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
