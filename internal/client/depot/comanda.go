package depot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

// SettingComandaPrefix device setting that holds the comanda code prefix
const SettingComandaPrefix = "comanda_prefix"

const (
	prefixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	prefixLength   = 8
)

// ComandaResult итог закрытия команды
type ComandaResult struct {
	Codigo     string          `json:"codigo"`
	ClientUUID string          `json:"client_uuid"`
	Tipo       string          `json:"tipo"`
	Total      decimal.Decimal `json:"total"`
	EntryIDs   []int64         `json:"entry_ids"`
	Offline    bool            `json:"origem_offline"`
}

// FinalizeComanda closes a comanda: it enqueues the comanda and one item per
// line, linked by a codigo built from the device prefix and its sequence.
// The remote assigns all keys.
func (s *service) FinalizeComanda(ctx context.Context, tipo string, items []models.ComandaItem) (*ComandaResult, error) {
	tipo = strings.ToLower(strings.TrimSpace(tipo))
	if tipo != models.TipoCompra && tipo != models.TipoVenda {
		return nil, ErrInvalidTipo
	}
	if len(items) == 0 {
		return nil, ErrEmptyComanda
	}
	for i, it := range items {
		if !it.KgTotal.IsPositive() || it.PrecoKg.IsNegative() {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidItem, i+1)
		}
		if it.Material <= 0 && strings.TrimSpace(it.MaterialNome) == "" {
			return nil, fmt.Errorf("%w: line %d has no material", ErrInvalidItem, i+1)
		}
	}

	now := s.now().UTC()
	result := &ComandaResult{
		Tipo:       tipo,
		ClientUUID: s.newUUID(),
		Offline:    s.originOffline() == 1,
	}
	for _, it := range items {
		result.Total = result.Total.Add(it.Total())
	}

	err := s.write(ctx, func(tx storage.Store) error {
		prefix, err := s.comandaPrefix(ctx, tx)
		if err != nil {
			return err
		}
		seq, err := tx.NextSequence(ctx, prefix)
		if err != nil {
			return fmt.Errorf("failed to get comanda sequence: %w", err)
		}
		result.Codigo = fmt.Sprintf("%s%d", prefix, seq)

		id, err := enqueue(ctx, tx, models.TableComanda, models.OperationInsert, "", map[string]any{
			"data":           now,
			"codigo":         result.Codigo,
			"tipo":           tipo,
			"total":          num(result.Total),
			"client_uuid":    result.ClientUUID,
			"criado_por":     s.opts.DeviceName,
			"atualizado_por": LocalUser,
		})
		if err != nil {
			return err
		}
		result.EntryIDs = append(result.EntryIDs, id)

		for _, it := range items {
			payload := map[string]any{
				"data":           now,
				"codigo":         result.Codigo,
				"tipo":           tipo,
				"material":       nil,
				"material_nome":  it.MaterialNome,
				"preco_kg":       num(it.PrecoKg),
				"kg_total":       num(it.KgTotal),
				"valor_total":    num(it.Total()),
				"client_uuid":    s.newUUID(),
				"criado_por":     s.opts.DeviceName,
				"atualizado_por": LocalUser,
			}
			if it.Material > 0 {
				payload["material"] = it.Material
			}

			id, err := enqueue(ctx, tx, models.TableItem, models.OperationInsert, "", payload)
			if err != nil {
				return err
			}
			result.EntryIDs = append(result.EntryIDs, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to finalize comanda: %w", err)
	}

	s.logger.Info("Comanda finalized",
		"codigo", result.Codigo,
		"tipo", tipo,
		"items", len(items),
		"total", result.Total.StringFixed(2),
		"offline", result.Offline)

	return result, nil
}

// comandaPrefix returns the stored prefix, creating it on first use
func (s *service) comandaPrefix(ctx context.Context, tx storage.Store) (string, error) {
	prefix, err := tx.GetSetting(ctx, SettingComandaPrefix)
	if err != nil {
		return "", fmt.Errorf("failed to read comanda prefix: %w", err)
	}
	if strings.TrimSpace(prefix) != "" {
		return prefix, nil
	}

	prefix = strings.TrimSpace(s.opts.ComandaPrefix)
	if prefix == "" {
		prefix = randomPrefix()
	}
	if err := tx.SetSetting(ctx, SettingComandaPrefix, prefix); err != nil {
		return "", fmt.Errorf("failed to save comanda prefix: %w", err)
	}
	return prefix, nil
}

func randomPrefix() string {
	b := make([]byte, prefixLength)
	for i := range b {
		b[i] = prefixAlphabet[rand.IntN(len(prefixAlphabet))]
	}
	return string(b)
}
