package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iudanet/depotsync/internal/client/depot"
	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/middleware"
	"github.com/iudanet/depotsync/internal/models"
	"github.com/iudanet/depotsync/pkg/api"
)

//go:generate moq -out actions_mock.go . Actions

// Actions terminal actions: local write plus outbox append in one transaction
type Actions interface {
	FinalizeComanda(ctx context.Context, tipo string, items []models.ComandaItem) (*depot.ComandaResult, error)

	AddPendencia(ctx context.Context, in depot.PendenciaInput) (int64, error)
	MarkPendenciaPaid(ctx context.Context, id int64) error
	EditPendencia(ctx context.Context, id int64, in depot.PendenciaInput) error
	DeletePendencia(ctx context.Context, id int64) error

	AddMaterial(ctx context.Context, in depot.MaterialInput) (int64, error)
	ListMaterials(ctx context.Context) ([]storage.Row, error)
	UpdateMaterialPrices(ctx context.Context, id int64, compra, venda decimal.Decimal) error
	ReorderMaterials(ctx context.Context, ids []int64) error
	DeleteMaterial(ctx context.Context, id int64) error
}

// ComandaRequest тело POST /comandas
type ComandaRequest struct {
	Tipo  string               `json:"tipo"`
	Items []models.ComandaItem `json:"items"`
}

// PricesRequest тело PATCH /materials/{id}
type PricesRequest struct {
	PrecoCompra decimal.Decimal `json:"preco_compra"`
	PrecoVenda  decimal.Decimal `json:"preco_venda"`
}

// OrderRequest тело PUT /materials/order
type OrderRequest struct {
	IDs []int64 `json:"ids"`
}

func (b *Bridge) actionRoutes(mux *http.ServeMux) {
	p := api.BridgePrefix

	mux.HandleFunc("POST "+p+"/comandas", b.finalizeComanda)

	mux.HandleFunc("POST "+p+"/pendencias", b.addPendencia)
	mux.HandleFunc("PUT "+p+"/pendencias/{id}", b.editPendencia)
	mux.HandleFunc("POST "+p+"/pendencias/{id}/paid", b.markPendenciaPaid)
	mux.HandleFunc("DELETE "+p+"/pendencias/{id}", b.deletePendencia)

	mux.HandleFunc("GET "+p+"/materials", b.listMaterials)
	mux.HandleFunc("POST "+p+"/materials", b.addMaterial)
	mux.HandleFunc("PUT "+p+"/materials/order", b.reorderMaterials)
	mux.HandleFunc("PATCH "+p+"/materials/{id}", b.updateMaterialPrices)
	mux.HandleFunc("DELETE "+p+"/materials/{id}", b.deleteMaterial)
}

func (b *Bridge) finalizeComanda(w http.ResponseWriter, r *http.Request) {
	var req ComandaRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := b.actions.FinalizeComanda(r.Context(), req.Tipo, req.Items)
	if err != nil {
		b.writeActionError(w, "finalize comanda", err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (b *Bridge) addPendencia(w http.ResponseWriter, r *http.Request) {
	var in depot.PendenciaInput
	if !decodeBody(w, r, &in) {
		return
	}

	id, err := b.actions.AddPendencia(r.Context(), in)
	if err != nil {
		b.writeActionError(w, "add pendencia", err)
		return
	}
	writeJSON(w, http.StatusCreated, api.EnqueueResponse{ID: id})
}

func (b *Bridge) editPendencia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in depot.PendenciaInput
	if !decodeBody(w, r, &in) {
		return
	}

	if err := b.actions.EditPendencia(r.Context(), id, in); err != nil {
		b.writeActionError(w, "edit pendencia", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Bridge) markPendenciaPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := b.actions.MarkPendenciaPaid(r.Context(), id); err != nil {
		b.writeActionError(w, "mark pendencia paid", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Bridge) deletePendencia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := b.actions.DeletePendencia(r.Context(), id); err != nil {
		b.writeActionError(w, "delete pendencia", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Bridge) listMaterials(w http.ResponseWriter, r *http.Request) {
	rows, err := b.actions.ListMaterials(r.Context())
	if err != nil {
		b.writeActionError(w, "list materials", err)
		return
	}
	if rows == nil {
		rows = []storage.Row{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (b *Bridge) addMaterial(w http.ResponseWriter, r *http.Request) {
	var in depot.MaterialInput
	if !decodeBody(w, r, &in) {
		return
	}

	id, err := b.actions.AddMaterial(r.Context(), in)
	if err != nil {
		b.writeActionError(w, "add material", err)
		return
	}
	writeJSON(w, http.StatusCreated, api.EnqueueResponse{ID: id})
}

func (b *Bridge) updateMaterialPrices(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req PricesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := b.actions.UpdateMaterialPrices(r.Context(), id, req.PrecoCompra, req.PrecoVenda); err != nil {
		b.writeActionError(w, "update material prices", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Bridge) reorderMaterials(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := b.actions.ReorderMaterials(r.Context(), req.IDs); err != nil {
		b.writeActionError(w, "reorder materials", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Bridge) deleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := b.actions.DeleteMaterial(r.Context(), id); err != nil {
		b.writeActionError(w, "delete material", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validationErrors ошибки ввода, которые UI должен показать как есть
var validationErrors = []error{
	depot.ErrEmptyComanda,
	depot.ErrInvalidTipo,
	depot.ErrInvalidItem,
	depot.ErrInvalidPendencia,
	depot.ErrInvalidMaterial,
	depot.ErrNothingToReorder,
	depot.ErrDuplicateMaterial,
}

func (b *Bridge) writeActionError(w http.ResponseWriter, action string, err error) {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			middleware.WriteError(w, http.StatusUnprocessableEntity, api.ErrorResponse{Message: err.Error()})
			return
		}
	}

	switch {
	case errors.Is(err, storage.ErrRowNotFound):
		middleware.WriteError(w, http.StatusNotFound, api.ErrorResponse{Message: "row not found"})
	case errors.Is(err, depot.ErrMaterialInUse):
		middleware.WriteError(w, http.StatusConflict, api.ErrorResponse{Message: err.Error()})
	default:
		b.logger.Error("Action failed", "action", action, "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, api.ErrorResponse{Message: "failed to " + action})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "failed to read request body")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		badRequest(w, "invalid JSON")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(w, "invalid id")
		return 0, false
	}
	return id, true
}
