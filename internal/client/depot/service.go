// Package depot implements the terminal's business actions. Every action
// writes the local tables and appends the matching outbox entry in one
// transaction.
package depot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iudanet/depotsync/internal/client/monitor"
	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

var (
	ErrEmptyComanda      = errors.New("comanda has no items")
	ErrInvalidTipo       = errors.New("tipo must be compra or venda")
	ErrInvalidItem       = errors.New("invalid comanda item")
	ErrInvalidPendencia  = errors.New("pendencia requires nome and a positive valor")
	ErrMaterialInUse     = errors.New("material is referenced by recent items")
	ErrInvalidMaterial   = errors.New("material requires a nome")
	ErrNothingToReorder  = errors.New("no materials to reorder")
	ErrDuplicateMaterial = errors.New("material listed twice")
)

// LocalUser value of criado_por/atualizado_por for actions taken on the terminal
const LocalUser = "local-user"

//go:generate moq -out notifier_mock.go . Notifier
//go:generate moq -out readiness_mock.go . Readiness

// Notifier is told after entries were committed to the outbox
type Notifier interface {
	Enqueued(ctx context.Context)
}

// Readiness reports whether the remote is reachable with credentials
type Readiness interface {
	GetStatus() monitor.State
}

// Service defines the terminal actions
type Service interface {
	FinalizeComanda(ctx context.Context, tipo string, items []models.ComandaItem) (*ComandaResult, error)

	AddPendencia(ctx context.Context, in PendenciaInput) (int64, error)
	MarkPendenciaPaid(ctx context.Context, id int64) error
	EditPendencia(ctx context.Context, id int64, in PendenciaInput) error
	DeletePendencia(ctx context.Context, id int64) error

	AddMaterial(ctx context.Context, in MaterialInput) (int64, error)
	ListMaterials(ctx context.Context) ([]storage.Row, error)
	UpdateMaterialPrices(ctx context.Context, id int64, compra, venda decimal.Decimal) error
	ReorderMaterials(ctx context.Context, ids []int64) error
	DeleteMaterial(ctx context.Context, id int64) error

	// ApplyConfirmed stores a row returned by the remote in the confirmed cache
	ApplyConfirmed(ctx context.Context, entry *models.OutboxEntry, row map[string]any)
}

// Options настройки терминала
type Options struct {
	DeviceName    string // criado_por для команд
	ComandaPrefix string // префикс кода команды, если еще не сохранен
}

type service struct {
	store     storage.Store
	readiness Readiness
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
	newUUID   func() string
	opts      Options
}

// NewService creates the depot service. notifier may be nil.
func NewService(store storage.Store, readiness Readiness, notifier Notifier, logger *slog.Logger, opts Options) Service {
	if opts.DeviceName == "" {
		opts.DeviceName = "Dispositivo Local"
	}
	return &service{
		store:     store,
		readiness: readiness,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
		newUUID:   uuid.NewString,
		opts:      opts,
	}
}

// originOffline 1 если действие выполнено без связи с удаленным хранилищем
func (s *service) originOffline() int {
	if s.readiness.GetStatus().Ready() {
		return 0
	}
	return 1
}

// write runs fn in a transaction and notifies the engine after commit
func (s *service) write(ctx context.Context, fn func(tx storage.Store) error) error {
	if err := s.store.WithTx(ctx, fn); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.Enqueued(ctx)
	}
	return nil
}

func enqueue(ctx context.Context, tx storage.Store, table string, op models.Operation, recordID string, payload map[string]any) (int64, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal %s payload: %w", table, err)
	}
	id, err := tx.Append(ctx, &models.OutboxEntry{
		TableName: table,
		Operation: op,
		RecordID:  recordID,
		Payload:   raw,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue %s %s: %w", op, table, err)
	}
	return id, nil
}

// num keeps decimals as JSON numbers in payloads
func num(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
