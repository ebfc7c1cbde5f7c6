package depot

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

// MaterialInput новый материал в таблице цен
type MaterialInput struct {
	Nome        string          `json:"nome"`
	Categoria   string          `json:"categoria"`
	PrecoCompra decimal.Decimal `json:"preco_compra"`
	PrecoVenda  decimal.Decimal `json:"preco_venda"`
}

// AddMaterial adds a material to the price table at the end of the order.
func (s *service) AddMaterial(ctx context.Context, in MaterialInput) (int64, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	if in.Nome == "" || in.PrecoCompra.IsNegative() || in.PrecoVenda.IsNegative() {
		return 0, ErrInvalidMaterial
	}

	var id int64
	err := s.write(ctx, func(tx storage.Store) error {
		rows, err := tx.ExecuteQuery(ctx, "SELECT COALESCE(MAX(ordem), 0) AS ordem FROM material")
		if err != nil {
			return err
		}
		ordem := int64(1)
		if len(rows) > 0 {
			ordem = rows[0].Int64("ordem") + 1
		}

		id, err = tx.Insert(ctx, models.TableMaterial, storage.Row{
			"nome":         in.Nome,
			"categoria":    nullable(strings.TrimSpace(in.Categoria)),
			"preco_compra": in.PrecoCompra,
			"preco_venda":  in.PrecoVenda,
			"ordem":        ordem,
		})
		if err != nil {
			return err
		}

		_, err = enqueue(ctx, tx, models.TableMaterial, models.OperationInsert, idString(id), map[string]any{
			"id":           id,
			"nome":         in.Nome,
			"categoria":    nullable(strings.TrimSpace(in.Categoria)),
			"preco_compra": num(in.PrecoCompra),
			"preco_venda":  num(in.PrecoVenda),
			"ordem":        ordem,
		})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add material: %w", err)
	}
	return id, nil
}

// ListMaterials returns the price table in display order.
func (s *service) ListMaterials(ctx context.Context) ([]storage.Row, error) {
	return s.store.ExecuteQuery(ctx,
		"SELECT id, nome, categoria, preco_compra, preco_venda, ordem FROM material ORDER BY ordem, nome")
}

// UpdateMaterialPrices sets buy and sell prices of a material.
func (s *service) UpdateMaterialPrices(ctx context.Context, id int64, compra, venda decimal.Decimal) error {
	if compra.IsNegative() || venda.IsNegative() {
		return fmt.Errorf("%w: negative price", ErrInvalidMaterial)
	}

	err := s.write(ctx, func(tx storage.Store) error {
		if _, err := tx.SelectByID(ctx, models.TableMaterial, id); err != nil {
			return err
		}
		if _, err := tx.Update(ctx, models.TableMaterial,
			storage.Row{"preco_compra": compra, "preco_venda": venda}, "id = ?", id); err != nil {
			return err
		}

		_, err := enqueue(ctx, tx, models.TableMaterial, models.OperationUpdate, idString(id), map[string]any{
			"preco_compra": num(compra),
			"preco_venda":  num(venda),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update material %d prices: %w", id, err)
	}
	return nil
}

// ReorderMaterials sets ordem to the position of each id in ids (from 1).
// Only materials whose position changed are enqueued.
func (s *service) ReorderMaterials(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return ErrNothingToReorder
	}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateMaterial, id)
		}
		seen[id] = struct{}{}
	}

	err := s.write(ctx, func(tx storage.Store) error {
		for i, id := range ids {
			row, err := tx.SelectByID(ctx, models.TableMaterial, id)
			if err != nil {
				return fmt.Errorf("material %d: %w", id, err)
			}
			ordem := int64(i + 1)
			if row.Int64("ordem") == ordem {
				continue
			}

			if _, err := tx.Update(ctx, models.TableMaterial, storage.Row{"ordem": ordem}, "id = ?", id); err != nil {
				return err
			}
			if _, err := enqueue(ctx, tx, models.TableMaterial, models.OperationUpdate, idString(id),
				map[string]any{"ordem": ordem}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to reorder materials: %w", err)
	}
	return nil
}

// DeleteMaterial removes a material unless recent items or comandas use it.
func (s *service) DeleteMaterial(ctx context.Context, id int64) error {
	err := s.write(ctx, func(tx storage.Store) error {
		if _, err := tx.SelectByID(ctx, models.TableMaterial, id); err != nil {
			return err
		}

		used, err := tx.Exists(ctx, models.TableUltimas, "material = ?", id)
		if err != nil {
			return err
		}
		if !used {
			used, err = tx.Exists(ctx, models.TableComanda20, "material_id = ?", id)
			if err != nil {
				return err
			}
		}
		if used {
			return ErrMaterialInUse
		}

		if _, err := tx.Delete(ctx, models.TableMaterial, "id = ?", id); err != nil {
			return err
		}
		_, err = enqueue(ctx, tx, models.TableMaterial, models.OperationDelete, idString(id), map[string]any{})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete material %d: %w", id, err)
	}
	return nil
}
