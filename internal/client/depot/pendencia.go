package depot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

// PendenciaInput поля долга, вводимые на кассе
type PendenciaInput struct {
	Nome  string          `json:"nome"`
	Tipo  string          `json:"tipo"`
	Obs   string          `json:"obs"`
	Valor decimal.Decimal `json:"valor"`
}

func (in PendenciaInput) normalize() (PendenciaInput, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	in.Tipo = strings.TrimSpace(in.Tipo)
	in.Obs = strings.TrimSpace(in.Obs)
	if in.Nome == "" || !in.Valor.IsPositive() {
		return in, ErrInvalidPendencia
	}
	if in.Tipo == "" {
		in.Tipo = "a_pagar"
	}
	return in, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// AddPendencia stores a new open debt and enqueues its INSERT keyed by the
// local id.
func (s *service) AddPendencia(ctx context.Context, in PendenciaInput) (int64, error) {
	in, err := in.normalize()
	if err != nil {
		return 0, err
	}

	now := s.now().UTC()
	var id int64

	err = s.write(ctx, func(tx storage.Store) error {
		var err error
		id, err = tx.Insert(ctx, models.TablePendenciaLocal, storage.Row{
			"data":           now,
			"status":         0,
			"nome":           in.Nome,
			"valor":          in.Valor,
			"tipo":           in.Tipo,
			"observacao":     nullable(in.Obs),
			"criado_por":     LocalUser,
			"atualizado_por": LocalUser,
			"origem_offline": s.originOffline(),
		})
		if err != nil {
			return err
		}

		_, err = enqueue(ctx, tx, models.TablePendenciaLocal, models.OperationInsert, idString(id),
			pendenciaPayload(id, now, false, in))
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add pendencia: %w", err)
	}

	s.logger.Info("Pendencia added", "id", id, "nome", in.Nome)
	return id, nil
}

// MarkPendenciaPaid closes a debt. A debt whose INSERT is still queued gets
// its payload rewritten; otherwise, or while that INSERT is being sent, an
// UPDATE is enqueued.
func (s *service) MarkPendenciaPaid(ctx context.Context, id int64) error {
	err := s.write(ctx, func(tx storage.Store) error {
		if _, err := tx.SelectByID(ctx, models.TablePendenciaLocal, id); err != nil {
			return err
		}
		if _, err := tx.Update(ctx, models.TablePendenciaLocal,
			storage.Row{"status": 1, "atualizado_por": LocalUser}, "id = ?", id); err != nil {
			return err
		}

		entry, err := pendingInsert(ctx, tx, id)
		if err != nil {
			return err
		}
		if entry != nil {
			err := rewritePayload(ctx, tx, entry, map[string]any{"status": true, "atualizado_por": LocalUser})
			if !errors.Is(err, storage.ErrEntryInFlight) {
				return err
			}
		}

		_, err = enqueue(ctx, tx, models.TablePendencia, models.OperationUpdate, idString(id), map[string]any{
			"status":         true,
			"atualizado_por": LocalUser,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to mark pendencia %d paid: %w", id, err)
	}
	return nil
}

// EditPendencia changes nome, valor, tipo and observacao of a debt.
func (s *service) EditPendencia(ctx context.Context, id int64, in PendenciaInput) error {
	in, err := in.normalize()
	if err != nil {
		return err
	}

	err = s.write(ctx, func(tx storage.Store) error {
		row, err := tx.SelectByID(ctx, models.TablePendenciaLocal, id)
		if err != nil {
			return err
		}

		patch := storage.Row{
			"nome":           in.Nome,
			"valor":          in.Valor,
			"tipo":           in.Tipo,
			"observacao":     nullable(in.Obs),
			"atualizado_por": LocalUser,
		}
		if _, err := tx.Update(ctx, models.TablePendenciaLocal, patch, "id = ?", id); err != nil {
			return err
		}

		entry, err := pendingInsert(ctx, tx, id)
		if err != nil {
			return err
		}
		if entry != nil {
			err := rewritePayload(ctx, tx, entry, map[string]any{
				"nome":           in.Nome,
				"valor":          num(in.Valor),
				"tipo":           in.Tipo,
				"observacao":     nullable(in.Obs),
				"atualizado_por": LocalUser,
			})
			if !errors.Is(err, storage.ErrEntryInFlight) {
				return err
			}
		}

		_, err = enqueue(ctx, tx, models.TablePendencia, models.OperationUpdate, idString(id), map[string]any{
			"nome":           in.Nome,
			"valor":          num(in.Valor),
			"tipo":           in.Tipo,
			"observacao":     nullable(in.Obs),
			"atualizado_por": LocalUser,
			"data":           row.Time("data"),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to edit pendencia %d: %w", id, err)
	}
	return nil
}

// DeletePendencia removes a debt. A debt never synced is cancelled by
// dropping its queued INSERT; otherwise, or while that INSERT is being sent,
// a DELETE is enqueued.
func (s *service) DeletePendencia(ctx context.Context, id int64) error {
	err := s.write(ctx, func(tx storage.Store) error {
		if _, err := tx.SelectByID(ctx, models.TablePendenciaLocal, id); err != nil {
			return err
		}

		entry, err := pendingInsert(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.Delete(ctx, models.TablePendenciaLocal, "id = ?", id); err != nil {
			return err
		}

		if entry != nil {
			err := tx.Remove(ctx, entry.ID)
			if !errors.Is(err, storage.ErrEntryInFlight) {
				return err
			}
		}
		_, err = enqueue(ctx, tx, models.TablePendencia, models.OperationDelete, idString(id), map[string]any{})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete pendencia %d: %w", id, err)
	}
	return nil
}

func pendenciaPayload(id int64, data time.Time, paid bool, in PendenciaInput) map[string]any {
	return map[string]any{
		"id":             id,
		"data":           data,
		"status":         paid,
		"nome":           in.Nome,
		"valor":          num(in.Valor),
		"tipo":           in.Tipo,
		"observacao":     nullable(in.Obs),
		"criado_por":     LocalUser,
		"atualizado_por": LocalUser,
	}
}

// pendingInsert returns the unsynced INSERT of a local debt, nil if synced.
// The entry may be in flight, callers fall back to a new entry then.
func pendingInsert(ctx context.Context, tx storage.Store, id int64) (*models.OutboxEntry, error) {
	entries, err := tx.ListPending(ctx, storage.PendingFilter{
		RecordID:   idString(id),
		TableNames: []string{models.TablePendenciaLocal},
		Operations: []models.Operation{models.OperationInsert},
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}

// rewritePayload merges patch into the queued payload
func rewritePayload(ctx context.Context, tx storage.Store, entry *models.OutboxEntry, patch map[string]any) error {
	fields, err := models.DecodeFields(entry.Payload)
	if err != nil {
		return err
	}
	for k, v := range patch {
		fields[k] = v
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	return tx.UpdatePayload(ctx, entry.ID, raw)
}
