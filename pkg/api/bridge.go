package api

import (
	"encoding/json"
	"time"
)

// Local UI bridge routes
const (
	BridgePrefix = "/api/v1"
)

// StatusResponse snapshot of the sync status
type StatusResponse struct {
	LastSyncAt     *time.Time `json:"last_sync_at"`
	LastError      string     `json:"last_error,omitempty"`
	PendingCount   int        `json:"pending_count"`
	IsOnline       bool       `json:"is_online"`
	HasCredentials bool       `json:"has_credentials"`
	Syncing        bool       `json:"syncing"`
}

// EnqueueRequest запрос на добавление мутации в outbox
type EnqueueRequest struct {
	TableName string          `json:"table_name"`
	Operation string          `json:"operation"`
	RecordID  string          `json:"record_id"`
	Payload   json.RawMessage `json:"payload"`
}

// EnqueueResponse ответ с id созданной записи
type EnqueueResponse struct {
	ID int64 `json:"id"`
}

// QueueEntry pending outbox entry as shown to the UI
type QueueEntry struct {
	CreatedAt time.Time       `json:"created_at"`
	TableName string          `json:"table_name"`
	Operation string          `json:"operation"`
	RecordID  string          `json:"record_id"`
	Payload   json.RawMessage `json:"payload"`
	ID        int64           `json:"id"`
	InFlight  bool            `json:"in_flight"` // сейчас отправляется, отменить нельзя
}

// TriggerResponse результат ручного запуска синхронизации
type TriggerResponse struct {
	Accepted bool `json:"accepted"` // false если цикл уже идет
}
