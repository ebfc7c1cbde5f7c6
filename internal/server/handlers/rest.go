package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/iudanet/depotsync/internal/middleware"
	"github.com/iudanet/depotsync/internal/server/storage"
	"github.com/iudanet/depotsync/pkg/api"
)

// maxBodySize ограничение размера тела запроса (1 MB)
const maxBodySize = 1 << 20

// Коды ошибок в стиле Postgrest
const (
	codeUndefinedTable  = "42P01"
	codeUniqueViolation = "23505"
	codeInvalidBody     = "PGRST102"
	codeMissingFilter   = "PGRST105"
	codeNotFound        = "PGRST116"
	codeInvalidRow      = "22P02"
)

// RESTHandler serves the Postgrest-style /rest/v1/{table} endpoints
type RESTHandler struct {
	logger  *slog.Logger
	storage storage.RowStorage
}

// NewRESTHandler creates a new REST handler
func NewRESTHandler(logger *slog.Logger, rows storage.RowStorage) *RESTHandler {
	return &RESTHandler{
		logger:  logger,
		storage: rows,
	}
}

// Root обрабатывает HEAD/GET /rest/v1/: клиент проверяет им доступность
func (h *RESTHandler) Root(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ping(r.Context()); err != nil {
		h.logger.Error("Storage ping failed", "error", err)
		middleware.WriteError(w, http.StatusServiceUnavailable, api.ErrorResponse{Message: "storage unavailable"})
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Upsert обрабатывает POST /rest/v1/{table}.
// Тело: объект или массив объектов. Без Prefer: resolution=merge-duplicates
// существующий id дает 409.
func (h *RESTHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	table := r.PathValue("table")
	prefer := r.Header.Get(api.HeaderPrefer)
	merge := strings.Contains(prefer, "resolution=merge-duplicates")

	rows, ok := h.decodeRows(w, r)
	if !ok {
		return
	}

	stored := make([]storage.Row, 0, len(rows))
	for _, row := range rows {
		if !merge {
			if id, ok := keyOf(row); ok {
				if _, err := h.storage.Get(ctx, table, id); err == nil {
					middleware.WriteError(w, http.StatusConflict, api.ErrorResponse{
						Code:    codeUniqueViolation,
						Message: "duplicate key value violates unique constraint",
						Details: "Key (id)=(" + id + ") already exists.",
					})
					return
				}
			}
		}

		saved, err := h.storage.Upsert(ctx, table, row)
		if err != nil {
			h.writeStorageError(w, table, err)
			return
		}
		stored = append(stored, saved)
	}

	h.logger.Debug("Rows upserted", "table", table, "count", len(stored))
	h.writeRows(w, http.StatusCreated, prefer, stored)
}

// Update обрабатывает PATCH /rest/v1/{table}?id=eq.{id}
func (h *RESTHandler) Update(w http.ResponseWriter, r *http.Request) {
	table := r.PathValue("table")
	id, ok := h.idFilter(w, r)
	if !ok {
		return
	}

	rows, ok := h.decodeRows(w, r)
	if !ok {
		return
	}
	if len(rows) != 1 {
		middleware.WriteError(w, http.StatusBadRequest, api.ErrorResponse{
			Code:    codeInvalidBody,
			Message: "patch body must be a single object",
		})
		return
	}

	updated, err := h.storage.Update(r.Context(), table, id, rows[0])
	if err != nil {
		h.writeStorageError(w, table, err)
		return
	}
	h.writeRows(w, http.StatusOK, r.Header.Get(api.HeaderPrefer), []storage.Row{updated})
}

// Delete обрабатывает DELETE /rest/v1/{table}?id=eq.{id}
func (h *RESTHandler) Delete(w http.ResponseWriter, r *http.Request) {
	table := r.PathValue("table")
	id, ok := h.idFilter(w, r)
	if !ok {
		return
	}

	if err := h.storage.Delete(r.Context(), table, id); err != nil {
		h.writeStorageError(w, table, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Select обрабатывает GET /rest/v1/{table}[?id=eq.{id}][&limit=N]
func (h *RESTHandler) Select(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	table := r.PathValue("table")
	query := r.URL.Query()

	if filter := query.Get("id"); filter != "" {
		id, ok := strings.CutPrefix(filter, "eq.")
		if !ok || id == "" {
			middleware.WriteError(w, http.StatusBadRequest, api.ErrorResponse{
				Code:    codeMissingFilter,
				Message: "only id=eq.{value} filters are supported",
			})
			return
		}

		row, err := h.storage.Get(ctx, table, id)
		if errors.Is(err, storage.ErrRowNotFound) {
			writeJSON(w, http.StatusOK, []storage.Row{})
			return
		}
		if err != nil {
			h.writeStorageError(w, table, err)
			return
		}
		writeJSON(w, http.StatusOK, []storage.Row{row})
		return
	}

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			middleware.WriteError(w, http.StatusBadRequest, api.ErrorResponse{
				Code:    codeInvalidBody,
				Message: "invalid limit",
			})
			return
		}
		limit = n
	}

	rows, err := h.storage.List(ctx, table, limit)
	if err != nil {
		h.writeStorageError(w, table, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// decodeRows читает тело: объект или массив объектов
func (h *RESTHandler) decodeRows(w http.ResponseWriter, r *http.Request) ([]storage.Row, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.logger.Warn("Failed to read request body", "error", err)
		middleware.WriteError(w, http.StatusRequestEntityTooLarge, api.ErrorResponse{
			Code:    codeInvalidBody,
			Message: "request body too large",
		})
		return nil, false
	}

	invalid := func(msg string) ([]storage.Row, bool) {
		middleware.WriteError(w, http.StatusBadRequest, api.ErrorResponse{
			Code:    codeInvalidBody,
			Message: msg,
		})
		return nil, false
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return invalid("empty request body")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if trimmed[0] == '[' {
		var rows []storage.Row
		if err := dec.Decode(&rows); err != nil {
			return invalid("could not parse json body: " + err.Error())
		}
		if len(rows) == 0 {
			return invalid("empty row list")
		}
		for _, row := range rows {
			if row == nil {
				return invalid("rows must be json objects")
			}
		}
		return rows, true
	}

	var row storage.Row
	if err := dec.Decode(&row); err != nil || row == nil {
		return invalid("body must be a json object or an array of objects")
	}
	return []storage.Row{row}, true
}

// idFilter разбирает обязательный фильтр id=eq.{value}
func (h *RESTHandler) idFilter(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := strings.CutPrefix(r.URL.Query().Get("id"), "eq.")
	if !ok || id == "" {
		middleware.WriteError(w, http.StatusBadRequest, api.ErrorResponse{
			Code:    codeMissingFilter,
			Message: "filter id=eq.{value} is required",
		})
		return "", false
	}
	return id, true
}

func (h *RESTHandler) writeStorageError(w http.ResponseWriter, table string, err error) {
	switch {
	case errors.Is(err, storage.ErrUnknownTable):
		middleware.WriteError(w, http.StatusNotFound, api.ErrorResponse{
			Code:    codeUndefinedTable,
			Message: `relation "` + table + `" does not exist`,
		})
	case errors.Is(err, storage.ErrRowNotFound):
		middleware.WriteError(w, http.StatusNotFound, api.ErrorResponse{
			Code:    codeNotFound,
			Message: "row not found",
		})
	case errors.Is(err, storage.ErrInvalidRow):
		middleware.WriteError(w, http.StatusUnprocessableEntity, api.ErrorResponse{
			Code:    codeInvalidRow,
			Message: err.Error(),
		})
	default:
		h.logger.Error("Storage failure", "table", table, "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, api.ErrorResponse{
			Message: "internal server error",
		})
	}
}

// writeRows отвечает строками, если клиент попросил return=representation
func (h *RESTHandler) writeRows(w http.ResponseWriter, status int, prefer string, rows []storage.Row) {
	if !strings.Contains(prefer, "return=representation") {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, status, rows)
}

func keyOf(row storage.Row) (string, bool) {
	switch v := row["id"].(type) {
	case json.Number:
		return v.String(), true
	case string:
		return v, v != ""
	}
	return "", false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
