package depot

import (
	"context"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

// CacheSize rows kept in ultimas_20 and comanda_20
const CacheSize = 20

// ApplyConfirmed writes the row the remote stored for an applied INSERT or
// UPSERT into the local cache of recent items or comandas. Errors are only
// logged: the entry is already synced.
func (s *service) ApplyConfirmed(ctx context.Context, entry *models.OutboxEntry, row map[string]any) {
	if len(row) == 0 {
		return
	}
	if entry.Operation != models.OperationInsert && entry.Operation != models.OperationUpsert {
		return
	}

	var (
		table string
		cache storage.Row
	)
	remote := storage.Row(row)

	switch models.RemoteTable(entry.TableName) {
	case models.TableItem:
		table = models.TableUltimas
		cache = storage.Row{
			"data":           remote.Time("data").UTC(),
			"material":       nullInt(remote.Int64("material")),
			"material_nome":  nullable(remote.String("material_nome")),
			"comanda":        nullInt(remote.Int64("comanda")),
			"codigo":         nullable(remote.String("codigo")),
			"tipo":           nullable(remote.String("tipo")),
			"preco_kg":       remote.Decimal("preco_kg"),
			"kg_total":       remote.Decimal("kg_total"),
			"valor_total":    remote.Decimal("valor_total"),
			"client_uuid":    nullable(remote.String("client_uuid")),
			"origem_offline": 0,
		}
	case models.TableComanda:
		table = models.TableComanda20
		cache = storage.Row{
			"data":        remote.Time("data").UTC(),
			"codigo":      nullable(remote.String("codigo")),
			"tipo":        nullable(remote.String("tipo")),
			"total":       remote.Decimal("total"),
			"material_id": nullInt(remote.Int64("material_id")),
			"client_uuid": nullable(remote.String("client_uuid")),
		}
	default:
		return
	}

	id := remote.Int64("id")
	if id <= 0 {
		s.logger.Warn("Remote row has no id, not cached", "entry_id", entry.ID, "table", entry.TableName)
		return
	}

	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		exists, err := tx.Exists(ctx, table, "id = ?", id)
		if err != nil {
			return err
		}
		if exists {
			_, err = tx.Update(ctx, table, cache, "id = ?", id)
		} else {
			cache["id"] = id
			_, err = tx.Insert(ctx, table, cache)
		}
		if err != nil {
			return err
		}

		_, err = tx.Delete(ctx, table,
			"id NOT IN (SELECT id FROM "+table+" ORDER BY data DESC LIMIT ?)", CacheSize)
		return err
	})
	if err != nil {
		s.logger.Warn("Failed to cache confirmed row", "entry_id", entry.ID, "table", table, "error", err)
		return
	}

	s.logger.Debug("Confirmed row cached", "entry_id", entry.ID, "table", table, "id", id)
}

func nullInt(n int64) any {
	if n <= 0 {
		return nil
	}
	return n
}
