package bridge

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/iudanet/depotsync/internal/client/storage"
	clientsync "github.com/iudanet/depotsync/internal/client/sync"
	"github.com/iudanet/depotsync/internal/middleware"
	"github.com/iudanet/depotsync/internal/models"
	"github.com/iudanet/depotsync/pkg/api"
)

// maxBodySize ограничение размера тела запроса (1 MB)
const maxBodySize = 1 << 20

func (b *Bridge) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Version: b.version})
}

func (b *Bridge) getStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toStatusResponse(b.engine.Status()))
}

// triggerSync ручной запуск: сбрасывает lastError и будит цикл.
// 202 если цикл запланирован, 200 с accepted=false если он уже идет.
func (b *Bridge) triggerSync(w http.ResponseWriter, _ *http.Request) {
	accepted := b.engine.TriggerNow()
	code := http.StatusAccepted
	if !accepted {
		code = http.StatusOK
	}
	writeJSON(w, code, api.TriggerResponse{Accepted: accepted})
}

func (b *Bridge) enqueue(w http.ResponseWriter, r *http.Request) {
	var req api.EnqueueRequest
	if !decodeBody(w, r, &req) {
		return
	}

	op, err := models.ParseOperation(req.Operation)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var payload any
	if len(req.Payload) > 0 && string(req.Payload) != "null" {
		payload = req.Payload
	}

	// ошибки валидации отдаем как 400, до записи в outbox
	if _, err := clientsync.NewEntry(req.TableName, op, req.RecordID, payload); err != nil {
		badRequest(w, err.Error())
		return
	}

	id, err := b.engine.AddToSyncQueue(r.Context(), req.TableName, op, req.RecordID, payload)
	if err != nil {
		b.logger.Error("Failed to enqueue", "table", req.TableName, "operation", op, "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, api.ErrorResponse{Message: "failed to enqueue"})
		return
	}

	b.logger.Debug("Entry enqueued", "id", id, "table", req.TableName, "operation", op)
	writeJSON(w, http.StatusCreated, api.EnqueueResponse{ID: id})
}

func (b *Bridge) listQueue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := storage.PendingFilter{RecordID: q.Get("record_id")}
	if tables := q.Get("table"); tables != "" {
		filter.TableNames = strings.Split(tables, ",")
	}
	if ops := q.Get("operation"); ops != "" {
		for _, s := range strings.Split(ops, ",") {
			op, err := models.ParseOperation(s)
			if err != nil {
				badRequest(w, err.Error())
				return
			}
			filter.Operations = append(filter.Operations, op)
		}
	}

	entries, err := b.engine.ListQueue(r.Context(), filter)
	if err != nil {
		b.logger.Error("Failed to list queue", "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list queue"})
		return
	}

	resp := make([]api.QueueEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, api.QueueEntry{
			ID:        e.ID,
			CreatedAt: e.CreatedAt.UTC(),
			TableName: e.TableName,
			Operation: string(e.Operation),
			RecordID:  e.RecordID,
			Payload:   e.Payload,
			InFlight:  e.InFlight,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (b *Bridge) cancelEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(w, "invalid entry id")
		return
	}

	err = b.engine.RemoveFromQueue(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, storage.ErrEntryNotFound):
		middleware.WriteError(w, http.StatusNotFound, api.ErrorResponse{Message: "entry not found"})
	case errors.Is(err, storage.ErrEntryAlreadySynced):
		middleware.WriteError(w, http.StatusConflict, api.ErrorResponse{Message: "entry already synced"})
	case errors.Is(err, storage.ErrEntryInFlight):
		middleware.WriteError(w, http.StatusConflict, api.ErrorResponse{Message: "entry is being sent"})
	default:
		b.logger.Error("Failed to cancel entry", "id", id, "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, api.ErrorResponse{Message: "failed to cancel entry"})
	}
}

func (b *Bridge) recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			badRequest(w, "invalid limit")
			return
		}
		limit = n
	}

	items, err := b.views.LastItems(r.Context(), limit)
	if err != nil {
		b.logger.Error("Failed to load recent items", "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load recent items"})
		return
	}
	if items == nil {
		items = []models.HistoryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (b *Bridge) pendencias(w http.ResponseWriter, r *http.Request) {
	views, err := b.views.Pendencias(r.Context())
	if err != nil {
		b.logger.Error("Failed to load pendencias", "error", err)
		middleware.WriteError(w, http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load pendencias"})
		return
	}
	if views == nil {
		views = []models.PendenciaView{}
	}
	writeJSON(w, http.StatusOK, views)
}

// credentialsUpdated UI сохранила новые ключи: пересчитываем состояние и
// возвращаем актуальный статус
func (b *Bridge) credentialsUpdated(w http.ResponseWriter, r *http.Request) {
	state := b.creds.NotifyCredentialsUpdated(r.Context())
	b.logger.Info("Credentials updated", "has_credentials", state.HasCredentials, "online", state.IsOnline)
	writeJSON(w, http.StatusOK, toStatusResponse(b.engine.Status()))
}

func toStatusResponse(s models.SyncStatus) api.StatusResponse {
	return api.StatusResponse{
		LastSyncAt:     s.LastSyncAt,
		LastError:      s.LastError,
		PendingCount:   s.PendingCount,
		IsOnline:       s.IsOnline,
		HasCredentials: s.HasCredentials,
		Syncing:        s.Syncing,
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	middleware.WriteError(w, http.StatusBadRequest, api.ErrorResponse{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
