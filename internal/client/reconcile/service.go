package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

// Source read access to local tables and the outbox
type Source interface {
	ExecuteQuery(ctx context.Context, query string, args ...any) ([]storage.Row, error)
	SelectWhere(ctx context.Context, table string, where string, args ...any) ([]storage.Row, error)
	ListPending(ctx context.Context, filter storage.PendingFilter) ([]*models.OutboxEntry, error)
}

// Service builds the reconciled views
type Service struct {
	src    Source
	logger *slog.Logger
}

// NewService creates a view service over src
func NewService(src Source, logger *slog.Logger) *Service {
	return &Service{src: src, logger: logger}
}

var insertOps = []models.Operation{models.OperationInsert, models.OperationUpsert}

// LastItems returns the most recent items, confirmed and pending, without
// duplicates. limit <= 0 means DefaultLimit.
func (s *Service) LastItems(ctx context.Context, limit int) ([]models.HistoryItem, error) {
	names, err := s.materialNames(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.src.ExecuteQuery(ctx,
		`SELECT id, data, material, material_nome, comanda, codigo, tipo, preco_kg, kg_total, valor_total, client_uuid, origem_offline
		 FROM ultimas_20 ORDER BY data DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load confirmed items: %w", err)
	}

	confirmed := make([]models.HistoryItem, 0, len(rows))
	tipoByCodigo := make(map[string]string)
	tipoByComanda := make(map[int64]string)

	for _, row := range rows {
		item := models.HistoryItem{
			ID:            row.Int64("id"),
			Data:          row.Time("data"),
			Material:      row.Int64("material"),
			Comanda:       row.Int64("comanda"),
			Codigo:        row.String("codigo"),
			ClientUUID:    row.String("client_uuid"),
			PrecoKg:       row.Decimal("preco_kg"),
			KgTotal:       row.Decimal("kg_total"),
			ValorTotal:    row.Decimal("valor_total"),
			OriginOffline: row.Bool("origem_offline"),
			MaterialNome:  resolveName(names, row.Int64("material"), row.String("material_nome")),
			Tipo:          models.TipoCompra,
		}
		if normalizeTipo(row.String("tipo")) == models.TipoVenda {
			item.Tipo = models.TipoVenda
		}
		confirmed = append(confirmed, item)

		// строки отсортированы по убыванию даты: первая запись самая свежая
		if t := normalizeTipo(row.String("tipo")); t != "" {
			if _, ok := tipoByCodigo[item.Codigo]; !ok && item.Codigo != "" {
				tipoByCodigo[item.Codigo] = t
			}
			if _, ok := tipoByComanda[item.Comanda]; !ok && item.Comanda > 0 {
				tipoByComanda[item.Comanda] = t
			}
		}
	}

	pendingTipo, err := s.pendingComandaTipos(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.src.ListPending(ctx, storage.PendingFilter{
		TableNames: []string{models.TableItem, models.TableUltimas},
		Operations: insertOps,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load pending items: %w", err)
	}

	pending := make([]models.HistoryItem, 0, len(entries))
	for _, entry := range entries {
		decoded, err := models.DecodePayload(entry.TableName, entry.Payload)
		if err != nil {
			s.logger.Debug("Skipping malformed pending item", "entry_id", entry.ID, "error", err)
			continue
		}
		p, ok := decoded.(models.ItemPayload)
		if !ok {
			continue
		}

		data := p.Data
		if data.IsZero() {
			data = entry.CreatedAt
		}

		pending = append(pending, models.HistoryItem{
			EntryID:       entry.ID,
			Data:          data,
			Material:      p.Material,
			Comanda:       p.Comanda,
			Codigo:        p.Codigo,
			ClientUUID:    p.ClientUUID,
			PrecoKg:       p.PrecoKg,
			KgTotal:       p.KgTotal,
			ValorTotal:    p.ValorTotal.Decimal,
			MaterialNome:  resolveName(names, p.Material, p.MaterialNome),
			Tipo:          resolveTipo(p, pendingTipo, tipoByCodigo, tipoByComanda),
			Pending:       true,
			OriginOffline: true,
		})
	}

	return Merge(confirmed, pending, limit), nil
}

// Pendencias returns open debts: pending inserts plus confirmed rows that are
// not shadowed by a pending insert of the same record, newest first.
func (s *Service) Pendencias(ctx context.Context) ([]models.PendenciaView, error) {
	rows, err := s.src.SelectWhere(ctx, models.TablePendenciaLocal, "status = ?", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load pendencias: %w", err)
	}

	entries, err := s.src.ListPending(ctx, storage.PendingFilter{
		TableNames: []string{models.TablePendenciaLocal},
		Operations: []models.Operation{models.OperationInsert},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load pending pendencias: %w", err)
	}

	views := make([]models.PendenciaView, 0, len(rows)+len(entries))
	shadowed := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		shadowed[entry.RecordID] = struct{}{}

		decoded, err := models.DecodePayload(entry.TableName, entry.Payload)
		if err != nil {
			s.logger.Debug("Skipping malformed pending pendencia", "entry_id", entry.ID, "error", err)
			continue
		}
		p, ok := decoded.(models.PendenciaPayload)
		if !ok || p.Status {
			continue
		}

		v := models.PendenciaView{
			ID:            entry.RecordID,
			EntryID:       entry.ID,
			Data:          p.Data,
			Nome:          p.Nome,
			Obs:           p.Obs,
			Tipo:          p.Tipo,
			Valor:         p.Valor.Decimal,
			Pending:       true,
			OriginOffline: true,
		}
		if v.Data.IsZero() {
			v.Data = entry.CreatedAt
		}
		if v.Nome == "" {
			v.Nome = "(sem nome)"
		}
		if v.Tipo == "" {
			v.Tipo = DefaultPendenciaTipo
		}
		views = append(views, v)
	}

	for _, row := range rows {
		id := row.String("id")
		if _, ok := shadowed[id]; ok {
			continue
		}
		views = append(views, models.PendenciaView{
			ID:            id,
			Data:          row.Time("data"),
			Nome:          row.String("nome"),
			Obs:           row.String("observacao"),
			Tipo:          row.String("tipo"),
			Valor:         row.Decimal("valor"),
			OriginOffline: row.Bool("origem_offline"),
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Data.After(views[j].Data)
	})
	return views, nil
}

// DefaultPendenciaTipo tipo of a debt entered without one
const DefaultPendenciaTipo = "a_pagar"

// PendingMaterialIDs returns record ids of materials with unsynced changes.
func (s *Service) PendingMaterialIDs(ctx context.Context) ([]string, error) {
	entries, err := s.src.ListPending(ctx, storage.PendingFilter{
		TableNames: []string{models.TableMaterial},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load pending materials: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.RecordID == "" {
			continue
		}
		if _, ok := seen[entry.RecordID]; ok {
			continue
		}
		seen[entry.RecordID] = struct{}{}
		ids = append(ids, entry.RecordID)
	}
	return ids, nil
}

func (s *Service) materialNames(ctx context.Context) (map[int64]string, error) {
	rows, err := s.src.ExecuteQuery(ctx, "SELECT id, nome FROM material")
	if err != nil {
		return nil, fmt.Errorf("failed to load material names: %w", err)
	}
	names := make(map[int64]string, len(rows))
	for _, row := range rows {
		names[row.Int64("id")] = row.String("nome")
	}
	return names, nil
}

// pendingComandaTipos tipo of comandas still in the outbox, by codigo
func (s *Service) pendingComandaTipos(ctx context.Context) (map[string]string, error) {
	entries, err := s.src.ListPending(ctx, storage.PendingFilter{
		TableNames: []string{models.TableComanda},
		Operations: insertOps,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load pending comandas: %w", err)
	}

	tipos := make(map[string]string, len(entries))
	for _, entry := range entries {
		decoded, err := models.DecodePayload(entry.TableName, entry.Payload)
		if err != nil {
			continue
		}
		c, ok := decoded.(models.ComandaPayload)
		if !ok || c.Codigo == "" {
			continue
		}
		if t := normalizeTipo(c.Tipo); t != "" {
			tipos[c.Codigo] = t
		}
	}
	return tipos, nil
}

func resolveName(names map[int64]string, material int64, given string) string {
	if given != "" {
		return given
	}
	if name := names[material]; material > 0 && name != "" {
		return name
	}
	return models.UnknownMaterial
}

func resolveTipo(p models.ItemPayload, pending, byCodigo map[string]string, byComanda map[int64]string) string {
	if t := normalizeTipo(p.Tipo); t != "" {
		return t
	}
	if p.Codigo != "" {
		if t, ok := pending[p.Codigo]; ok {
			return t
		}
		if t, ok := byCodigo[p.Codigo]; ok {
			return t
		}
	}
	if t, ok := byComanda[p.Comanda]; ok && p.Comanda > 0 {
		return t
	}
	if p.KgTotal.IsNegative() {
		return models.TipoVenda
	}
	return models.TipoCompra
}

// normalizeTipo returns compra/venda or "" for anything else
func normalizeTipo(s string) string {
	switch t := strings.ToLower(strings.TrimSpace(s)); t {
	case models.TipoCompra, models.TipoVenda:
		return t
	}
	return ""
}
