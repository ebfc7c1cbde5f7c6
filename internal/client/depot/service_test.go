package depot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/depotsync/internal/client/monitor"
	"github.com/iudanet/depotsync/internal/client/status"
	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/client/storage/sqlite"
	clientsync "github.com/iudanet/depotsync/internal/client/sync"
	"github.com/iudanet/depotsync/internal/models"
)

type fixture struct {
	svc      *service
	store    *sqlite.Storage
	notifier *NotifierMock
	online   *bool
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()

	store, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "depot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	online := false
	readiness := &ReadinessMock{
		GetStatusFunc: func() monitor.State {
			return monitor.State{HasCredentials: online, IsOnline: online}
		},
	}
	notifier := &NotifierMock{EnqueuedFunc: func(ctx context.Context) {}}

	svc := NewService(store, readiness, notifier, slog.New(slog.DiscardHandler), opts).(*service)
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 10, 15, 0, 0, time.UTC) }

	return fixture{svc: svc, store: store, notifier: notifier, online: &online}
}

func (f fixture) pending(t *testing.T) []*models.OutboxEntry {
	t.Helper()
	entries, err := f.store.ListPending(context.Background(), storage.PendingFilter{})
	require.NoError(t, err)
	return entries
}

func fields(t *testing.T, e *models.OutboxEntry) map[string]any {
	t.Helper()
	f, err := models.DecodeFields(e.Payload)
	require.NoError(t, err)
	return f
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFinalizeComanda(t *testing.T) {
	f := newFixture(t, Options{DeviceName: "Balança 1", ComandaPrefix: "AbC123xy"})
	ctx := context.Background()

	res, err := f.svc.FinalizeComanda(ctx, "Compra", []models.ComandaItem{
		{Material: 3, MaterialNome: "Cobre", KgTotal: dec("10"), PrecoKg: dec("2.5")},
		{MaterialNome: "Latão", KgTotal: dec("1.333"), PrecoKg: dec("3")},
	})
	require.NoError(t, err)

	assert.Equal(t, "AbC123xy1", res.Codigo)
	assert.Equal(t, models.TipoCompra, res.Tipo)
	assert.Equal(t, "29", res.Total.String())
	assert.True(t, res.Offline)
	require.Len(t, res.EntryIDs, 3)
	assert.Len(t, f.notifier.EnqueuedCalls(), 1)

	entries := f.pending(t)
	require.Len(t, entries, 3)

	comanda := entries[0]
	assert.Equal(t, models.TableComanda, comanda.TableName)
	assert.Equal(t, models.OperationInsert, comanda.Operation)
	assert.Empty(t, comanda.RecordID)
	cf := fields(t, comanda)
	assert.Equal(t, "AbC123xy1", cf["codigo"])
	assert.Equal(t, "compra", cf["tipo"])
	assert.Equal(t, "Balança 1", cf["criado_por"])
	assert.Equal(t, json.Number("29"), cf["total"])

	uuids := map[any]struct{}{cf["client_uuid"]: {}}
	for _, e := range entries[1:] {
		assert.Equal(t, models.TableItem, e.TableName)
		assert.Empty(t, e.RecordID)
		itf := fields(t, e)
		assert.Equal(t, "AbC123xy1", itf["codigo"])
		uuids[itf["client_uuid"]] = struct{}{}
	}
	assert.Len(t, uuids, 3)

	first := fields(t, entries[1])
	assert.Equal(t, json.Number("3"), first["material"])
	assert.Equal(t, json.Number("25"), first["valor_total"])
	second := fields(t, entries[2])
	assert.Nil(t, second["material"])
	assert.Equal(t, "Latão", second["material_nome"])

	// следующая команда берет следующий номер того же префикса
	res, err = f.svc.FinalizeComanda(ctx, "venda", []models.ComandaItem{
		{Material: 3, KgTotal: dec("1"), PrecoKg: dec("1")},
	})
	require.NoError(t, err)
	assert.Equal(t, "AbC123xy2", res.Codigo)
}

func TestFinalizeComanda_GeneratesPrefix(t *testing.T) {
	f := newFixture(t, Options{})
	*f.online = true

	res, err := f.svc.FinalizeComanda(context.Background(), "venda", []models.ComandaItem{
		{Material: 1, KgTotal: dec("1"), PrecoKg: dec("1")},
	})
	require.NoError(t, err)
	assert.False(t, res.Offline)

	prefix, err := f.store.GetSetting(context.Background(), SettingComandaPrefix)
	require.NoError(t, err)
	assert.Len(t, prefix, prefixLength)
	assert.True(t, strings.HasPrefix(res.Codigo, prefix))
	assert.Equal(t, prefix+"1", res.Codigo)
}

func TestFinalizeComanda_Validation(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	_, err := f.svc.FinalizeComanda(ctx, "troca", []models.ComandaItem{{Material: 1, KgTotal: dec("1")}})
	assert.ErrorIs(t, err, ErrInvalidTipo)

	_, err = f.svc.FinalizeComanda(ctx, "compra", nil)
	assert.ErrorIs(t, err, ErrEmptyComanda)

	_, err = f.svc.FinalizeComanda(ctx, "compra", []models.ComandaItem{{Material: 1, KgTotal: dec("0")}})
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = f.svc.FinalizeComanda(ctx, "compra", []models.ComandaItem{{KgTotal: dec("1")}})
	assert.ErrorIs(t, err, ErrInvalidItem)

	assert.Empty(t, f.pending(t))
	assert.Empty(t, f.notifier.EnqueuedCalls())
}

func TestPendencia_OfflineLifecycle(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	id, err := f.svc.AddPendencia(ctx, PendenciaInput{Nome: " Maria ", Valor: dec("12.5"), Obs: "fiado"})
	require.NoError(t, err)

	row, err := f.store.SelectByID(ctx, models.TablePendenciaLocal, id)
	require.NoError(t, err)
	assert.Equal(t, "Maria", row.String("nome"))
	assert.True(t, row.Bool("origem_offline"))

	entries := f.pending(t)
	require.Len(t, entries, 1)
	assert.Equal(t, models.TablePendenciaLocal, entries[0].TableName)
	assert.Equal(t, idString(id), entries[0].RecordID)
	pf := fields(t, entries[0])
	assert.Equal(t, json.Number(idString(id)), pf["id"])
	assert.Equal(t, "fiado", pf["observacao"])
	assert.Equal(t, "a_pagar", pf["tipo"])

	// правка до синхронизации переписывает INSERT
	require.NoError(t, f.svc.EditPendencia(ctx, id, PendenciaInput{Nome: "Maria S.", Valor: dec("15"), Tipo: "a_receber"}))
	entries = f.pending(t)
	require.Len(t, entries, 1)
	pf = fields(t, entries[0])
	assert.Equal(t, "Maria S.", pf["nome"])
	assert.Equal(t, json.Number("15"), pf["valor"])
	assert.Equal(t, "a_receber", pf["tipo"])
	assert.Equal(t, json.Number(idString(id)), pf["id"])

	// удаление до синхронизации отменяет INSERT
	require.NoError(t, f.svc.DeletePendencia(ctx, id))
	assert.Empty(t, f.pending(t))
	_, err = f.store.SelectByID(ctx, models.TablePendenciaLocal, id)
	assert.ErrorIs(t, err, storage.ErrRowNotFound)
}

func TestPendencia_SyncedLifecycle(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	id, err := f.svc.AddPendencia(ctx, PendenciaInput{Nome: "João", Valor: dec("30")})
	require.NoError(t, err)
	require.NoError(t, f.store.MarkSynced(ctx, f.pending(t)[0].ID))

	require.NoError(t, f.svc.EditPendencia(ctx, id, PendenciaInput{Nome: "João", Valor: dec("35")}))
	require.NoError(t, f.svc.MarkPendenciaPaid(ctx, id))
	require.NoError(t, f.svc.DeletePendencia(ctx, id))

	entries := f.pending(t)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, models.TablePendencia, e.TableName)
		assert.Equal(t, idString(id), e.RecordID)
	}
	assert.Equal(t, models.OperationUpdate, entries[0].Operation)
	assert.Equal(t, json.Number("35"), fields(t, entries[0])["valor"])
	assert.Equal(t, models.OperationUpdate, entries[1].Operation)
	assert.Equal(t, true, fields(t, entries[1])["status"])
	assert.Equal(t, models.OperationDelete, entries[2].Operation)
}

func TestPendencia_PaidWhilePendingRewritesInsert(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	id, err := f.svc.AddPendencia(ctx, PendenciaInput{Nome: "Ana", Valor: dec("3")})
	require.NoError(t, err)
	require.NoError(t, f.svc.MarkPendenciaPaid(ctx, id))

	entries := f.pending(t)
	require.Len(t, entries, 1)
	assert.Equal(t, models.OperationInsert, entries[0].Operation)
	assert.Equal(t, true, fields(t, entries[0])["status"])

	row, err := f.store.SelectByID(ctx, models.TablePendenciaLocal, id)
	require.NoError(t, err)
	assert.True(t, row.Bool("status"))
}

func TestPendencia_ClaimedInsertGetsFollowUpEntries(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	id, err := f.svc.AddPendencia(ctx, PendenciaInput{Nome: "Ana", Valor: dec("10")})
	require.NoError(t, err)
	insert := f.pending(t)[0]
	_, err = f.store.Claim(ctx, insert.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.EditPendencia(ctx, id, PendenciaInput{Nome: "Ana Maria", Valor: dec("12")}))
	require.NoError(t, f.svc.MarkPendenciaPaid(ctx, id))
	require.NoError(t, f.svc.DeletePendencia(ctx, id))

	entries := f.pending(t)
	require.Len(t, entries, 4)

	// INSERT ушел как был
	assert.Equal(t, insert.ID, entries[0].ID)
	assert.Equal(t, "Ana", fields(t, entries[0])["nome"])
	assert.True(t, entries[0].InFlight)

	assert.Equal(t, models.OperationUpdate, entries[1].Operation)
	assert.Equal(t, "Ana Maria", fields(t, entries[1])["nome"])
	assert.Equal(t, models.OperationUpdate, entries[2].Operation)
	assert.Equal(t, true, fields(t, entries[2])["status"])
	assert.Equal(t, models.OperationDelete, entries[3].Operation)
	for _, e := range entries[1:] {
		assert.Equal(t, models.TablePendencia, e.TableName)
		assert.Equal(t, idString(id), e.RecordID)
	}
}

// sendingEngine drives a real engine whose upsert blocks until released
type sendingEngine struct {
	engine  *clientsync.Engine
	started chan struct{}
	release chan struct{}
	mu      sync.Mutex
	calls   []string
}

func newSendingEngine(t *testing.T, f fixture) *sendingEngine {
	t.Helper()

	se := &sendingEngine{started: make(chan struct{}), release: make(chan struct{})}
	var once sync.Once
	record := func(s string) {
		se.mu.Lock()
		defer se.mu.Unlock()
		se.calls = append(se.calls, s)
	}

	remote := &clientsync.RemoteClientMock{
		UpsertFunc: func(ctx context.Context, table, recordID string, fields map[string]any) (map[string]any, error) {
			record("upsert " + table + " " + recordID + " " + fmt.Sprint(fields["nome"]))
			once.Do(func() { close(se.started) })
			<-se.release
			return fields, nil
		},
		UpdateFunc: func(ctx context.Context, table, recordID string, fields map[string]any) (map[string]any, error) {
			record("update " + table + " " + recordID + " " + fmt.Sprint(fields["nome"]))
			return fields, nil
		},
		DeleteFunc: func(ctx context.Context, table, recordID string) error {
			record("delete " + table + " " + recordID)
			return nil
		},
	}
	readiness := &clientsync.ReadinessMock{
		GetStatusFunc: func() monitor.State { return monitor.State{HasCredentials: true, IsOnline: true} },
	}

	se.engine = clientsync.NewEngine(clientsync.Dependencies{
		Outbox:    f.store,
		Remote:    remote,
		Readiness: readiness,
		Status:    status.New(),
	}, clientsync.Config{RemoteTimeout: 5 * time.Second}, slog.New(slog.DiscardHandler))
	return se
}

// runBlocked starts a cycle and waits until the upsert is on the wire
func (se *sendingEngine) runBlocked(t *testing.T) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		_, err := se.engine.RunOnce(context.Background())
		done <- err
	}()
	select {
	case <-se.started:
	case <-time.After(5 * time.Second):
		t.Fatal("upsert was not sent")
	}
	return done
}

func TestPendencia_EditDuringUpsertIsNotLost(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	id, err := f.svc.AddPendencia(ctx, PendenciaInput{Nome: "Ana", Valor: dec("10")})
	require.NoError(t, err)

	se := newSendingEngine(t, f)
	done := se.runBlocked(t)

	require.NoError(t, f.svc.EditPendencia(ctx, id, PendenciaInput{Nome: "Ana Maria", Valor: dec("12")}))

	close(se.release)
	require.NoError(t, <-done)

	entries := f.pending(t)
	require.Len(t, entries, 1)
	assert.Equal(t, models.OperationUpdate, entries[0].Operation)

	_, err = se.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Empty(t, f.pending(t))
	assert.Equal(t, []string{
		"upsert pendencia " + idString(id) + " Ana",
		"update pendencia " + idString(id) + " Ana Maria",
	}, se.calls)
}

func TestPendencia_DeleteDuringUpsertQueuesDelete(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	id, err := f.svc.AddPendencia(ctx, PendenciaInput{Nome: "Ana", Valor: dec("10")})
	require.NoError(t, err)

	se := newSendingEngine(t, f)
	done := se.runBlocked(t)

	require.NoError(t, f.svc.DeletePendencia(ctx, id))
	_, err = f.store.SelectByID(ctx, models.TablePendenciaLocal, id)
	assert.ErrorIs(t, err, storage.ErrRowNotFound)

	close(se.release)
	require.NoError(t, <-done)

	entries := f.pending(t)
	require.Len(t, entries, 1)
	assert.Equal(t, models.OperationDelete, entries[0].Operation)
	assert.Equal(t, models.TablePendencia, entries[0].TableName)

	_, err = se.engine.RunOnce(ctx)
	require.NoError(t, err)
	assert.Empty(t, f.pending(t))
	assert.Equal(t, []string{
		"upsert pendencia " + idString(id) + " Ana",
		"delete pendencia " + idString(id),
	}, se.calls)
}

func TestPendencia_Validation(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	_, err := f.svc.AddPendencia(ctx, PendenciaInput{Nome: " ", Valor: dec("1")})
	assert.ErrorIs(t, err, ErrInvalidPendencia)
	_, err = f.svc.AddPendencia(ctx, PendenciaInput{Nome: "X", Valor: dec("0")})
	assert.ErrorIs(t, err, ErrInvalidPendencia)

	err = f.svc.MarkPendenciaPaid(ctx, 404)
	assert.ErrorIs(t, err, storage.ErrRowNotFound)
	assert.Empty(t, f.pending(t))
}

func TestMaterials(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	cobre, err := f.svc.AddMaterial(ctx, MaterialInput{Nome: "Cobre", PrecoCompra: dec("30"), PrecoVenda: dec("35")})
	require.NoError(t, err)
	ferro, err := f.svc.AddMaterial(ctx, MaterialInput{Nome: "Ferro", PrecoCompra: dec("1"), PrecoVenda: dec("1.2")})
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateMaterialPrices(ctx, cobre, dec("31.5"), dec("36")))
	require.NoError(t, f.svc.ReorderMaterials(ctx, []int64{ferro, cobre}))

	rows, err := f.svc.ListMaterials(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ferro", rows[0].String("nome"))
	assert.Equal(t, "31.5", rows[1].Decimal("preco_compra").String())

	entries := f.pending(t)
	require.Len(t, entries, 5)
	assert.Equal(t, models.OperationInsert, entries[0].Operation)
	assert.Equal(t, idString(cobre), entries[0].RecordID)
	assert.Equal(t, models.OperationUpdate, entries[2].Operation)
	assert.Equal(t, json.Number("31.5"), fields(t, entries[2])["preco_compra"])
	assert.Equal(t, json.Number("1"), fields(t, entries[3])["ordem"])
	assert.Equal(t, json.Number("2"), fields(t, entries[4])["ordem"])

	err = f.svc.ReorderMaterials(ctx, []int64{cobre, cobre})
	assert.ErrorIs(t, err, ErrDuplicateMaterial)
}

func TestDeleteMaterial(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	used, err := f.svc.AddMaterial(ctx, MaterialInput{Nome: "Cobre"})
	require.NoError(t, err)
	free, err := f.svc.AddMaterial(ctx, MaterialInput{Nome: "Ferro"})
	require.NoError(t, err)

	_, err = f.store.Insert(ctx, models.TableUltimas, storage.Row{"id": 1, "data": time.Now(), "material": used})
	require.NoError(t, err)

	err = f.svc.DeleteMaterial(ctx, used)
	assert.ErrorIs(t, err, ErrMaterialInUse)

	require.NoError(t, f.svc.DeleteMaterial(ctx, free))
	entries := f.pending(t)
	last := entries[len(entries)-1]
	assert.Equal(t, models.OperationDelete, last.Operation)
	assert.Equal(t, idString(free), last.RecordID)

	_, err = f.store.SelectByID(ctx, models.TableMaterial, free)
	assert.ErrorIs(t, err, storage.ErrRowNotFound)
}

func TestApplyConfirmed(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	entry := &models.OutboxEntry{ID: 1, TableName: models.TableItem, Operation: models.OperationInsert}
	f.svc.ApplyConfirmed(ctx, entry, map[string]any{
		"id":            json.Number("41"),
		"data":          "2024-03-10T10:15:00Z",
		"material":      nil,
		"material_nome": "Latão",
		"codigo":        "AbC123xy1",
		"tipo":          "compra",
		"preco_kg":      json.Number("3"),
		"kg_total":      json.Number("1.333"),
		"valor_total":   json.Number("4"),
		"client_uuid":   "u-1",
	})

	row, err := f.store.SelectByID(ctx, models.TableUltimas, 41)
	require.NoError(t, err)
	assert.Equal(t, "Latão", row.String("material_nome"))
	assert.Equal(t, "u-1", row.String("client_uuid"))
	assert.Nil(t, row["material"])

	// повторное применение обновляет строку
	f.svc.ApplyConfirmed(ctx, entry, map[string]any{"id": json.Number("41"), "data": "2024-03-10T10:15:00Z", "tipo": "venda"})
	row, err = f.store.SelectByID(ctx, models.TableUltimas, 41)
	require.NoError(t, err)
	assert.Equal(t, "venda", row.String("tipo"))

	comanda := &models.OutboxEntry{ID: 2, TableName: models.TableComanda, Operation: models.OperationInsert}
	f.svc.ApplyConfirmed(ctx, comanda, map[string]any{"id": json.Number("7"), "codigo": "AbC123xy1", "total": json.Number("4")})
	_, err = f.store.SelectByID(ctx, models.TableComanda20, 7)
	require.NoError(t, err)

	// DELETE и строки без id не кешируются
	f.svc.ApplyConfirmed(ctx, &models.OutboxEntry{TableName: models.TableItem, Operation: models.OperationDelete}, map[string]any{"id": json.Number("99")})
	f.svc.ApplyConfirmed(ctx, entry, map[string]any{"codigo": "x"})
	rows, err := f.store.SelectAll(ctx, models.TableUltimas)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestApplyConfirmed_KeepsCacheSize(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	entry := &models.OutboxEntry{TableName: models.TableUltimas, Operation: models.OperationUpsert}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= CacheSize+5; i++ {
		f.svc.ApplyConfirmed(ctx, entry, map[string]any{
			"id":   json.Number(idString(int64(i))),
			"data": base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
		})
	}

	rows, err := f.store.SelectAll(ctx, models.TableUltimas)
	require.NoError(t, err)
	assert.Len(t, rows, CacheSize)

	_, err = f.store.SelectByID(ctx, models.TableUltimas, 1)
	assert.ErrorIs(t, err, storage.ErrRowNotFound)
}
