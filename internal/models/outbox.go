package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Operation тип мутации, записанной в outbox
type Operation string

const (
	OperationInsert Operation = "INSERT"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
	OperationUpsert Operation = "UPSERT"
)

// ParseOperation разбирает строковое имя операции (регистр не важен)
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToUpper(strings.TrimSpace(s)))
	if !op.Valid() {
		return "", fmt.Errorf("unknown operation %q", s)
	}
	return op, nil
}

// Valid reports whether op is one of the four known operations.
func (op Operation) Valid() bool {
	switch op {
	case OperationInsert, OperationUpdate, OperationDelete, OperationUpsert:
		return true
	}
	return false
}

// Local table names of the depot schema.
const (
	TableMaterial       = "material"
	TableComanda        = "comanda"
	TableItem           = "item"
	TablePendencia      = "pendencia"
	TablePendenciaLocal = "pendencia_false"
	TableUltimas        = "ultimas_20"
	TableComanda20      = "comanda_20"
	TableEstoque        = "estoque"
)

// remoteTables maps local table names onto the remote table that receives them.
// Tables absent from the map keep their name.
var remoteTables = map[string]string{
	TablePendenciaLocal: TablePendencia,
	TableUltimas:        TableItem,
}

// RemoteTable returns the remote table name for a local table name.
func RemoteTable(local string) string {
	if remote, ok := remoteTables[local]; ok {
		return remote
	}
	return local
}

// OutboxEntry одна намеренная мутация удаленного хранилища.
// Payload самодостаточен: повтор не требует чтения локального состояния.
type OutboxEntry struct {
	CreatedAt time.Time       `json:"created_at"` // CreatedAt время постановки в очередь (FIFO)
	TableName string          `json:"table_name"` // TableName локальное имя таблицы
	Operation Operation       `json:"operation"`  // Operation INSERT/UPDATE/DELETE/UPSERT
	RecordID  string          `json:"record_id"`  // RecordID первичный ключ строки, может быть пустым для INSERT
	Payload   json.RawMessage `json:"payload"`    // Payload снимок строки на момент постановки
	ID        int64           `json:"id"`         // ID монотонный суррогатный ключ, не переиспользуется
	Synced    bool            `json:"synced"`     // Synced true = применено (терминальное состояние)
	InFlight  bool            `json:"in_flight"`  // InFlight запись отправляется прямо сейчас
}

// Clone returns a deep copy of the entry.
func (e *OutboxEntry) Clone() *OutboxEntry {
	payload := make(json.RawMessage, len(e.Payload))
	copy(payload, e.Payload)

	return &OutboxEntry{
		CreatedAt: e.CreatedAt,
		TableName: e.TableName,
		Operation: e.Operation,
		RecordID:  e.RecordID,
		Payload:   payload,
		ID:        e.ID,
		Synced:    e.Synced,
		InFlight:  e.InFlight,
	}
}

// DeadLetter архивная запись об entry, отброшенной из-за постоянной ошибки
type DeadLetter struct {
	FailedAt time.Time   `json:"failed_at"`
	Error    string      `json:"error"`
	Entry    OutboxEntry `json:"entry"`
	ID       uint64      `json:"id"`
}
