// Package sync drains the local outbox into the remote store.
package sync

import (
	"context"
	"errors"
	"log/slog"
	stdsync "sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/iudanet/depotsync/internal/client/monitor"
	"github.com/iudanet/depotsync/internal/client/status"
	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

const (
	DefaultInterval      = 30 * time.Second
	DefaultRemoteTimeout = 15 * time.Second
	DefaultRetention     = 30 * 24 * time.Hour
)

// ErrCycleInProgress returned by RunOnce while another cycle is draining
var ErrCycleInProgress = errors.New("sync cycle already in progress")

//go:generate moq -out remote_mock.go . RemoteClient
//go:generate moq -out readiness_mock.go . Readiness

// RemoteClient applies one outbox entry to the remote store
type RemoteClient interface {
	Upsert(ctx context.Context, table, recordID string, fields map[string]any) (map[string]any, error)
	Update(ctx context.Context, table, recordID string, fields map[string]any) (map[string]any, error)
	Delete(ctx context.Context, table, recordID string) error
}

// Readiness reports whether credentials are present and the remote reachable
type Readiness interface {
	GetStatus() monitor.State
}

// AppliedHook is called after an entry was applied and marked synced.
// row is the stored representation returned by the remote, may be nil.
type AppliedHook func(ctx context.Context, entry *models.OutboxEntry, row map[string]any)

// Config параметры движка синхронизации
type Config struct {
	Interval      time.Duration // период автоматического запуска, 0 = только по триггеру
	RemoteTimeout time.Duration // таймаут одного удаленного вызова
	Retention     time.Duration // сколько хранить synced записи, 0 = не удалять
}

// Dependencies collaborators of the engine
type Dependencies struct {
	Outbox      storage.OutboxStorage
	Metadata    storage.MetadataStorage
	DeadLetters storage.DeadLetterStorage
	Remote      RemoteClient
	Readiness   Readiness
	Status      *status.Broadcaster
	OnApplied   AppliedHook
}

// Engine runs sync cycles. At most one cycle drains the outbox at a time:
// automatic triggers are funneled through one consumer goroutine and RunOnce
// shares its guard.
type Engine struct {
	outbox      storage.OutboxStorage
	metadata    storage.MetadataStorage
	deadLetters storage.DeadLetterStorage
	remote      RemoteClient
	readiness   Readiness
	status      *status.Broadcaster
	onApplied   AppliedHook
	logger      *slog.Logger
	now         func() time.Time
	triggers    chan struct{}
	cancel      context.CancelFunc
	wg          conc.WaitGroup
	cfg         Config
	cycleMu     stdsync.Mutex
	draining    atomic.Bool
	started     atomic.Bool
}

// NewEngine creates the engine. Outbox, Remote, Readiness and Status are
// required; Metadata and DeadLetters may be nil.
func NewEngine(deps Dependencies, cfg Config, logger *slog.Logger) *Engine {
	if cfg.RemoteTimeout <= 0 {
		cfg.RemoteTimeout = DefaultRemoteTimeout
	}
	if cfg.Interval < 0 {
		cfg.Interval = 0
	}

	return &Engine{
		outbox:      deps.Outbox,
		metadata:    deps.Metadata,
		deadLetters: deps.DeadLetters,
		remote:      deps.Remote,
		readiness:   deps.Readiness,
		status:      deps.Status,
		onApplied:   deps.OnApplied,
		logger:      logger,
		now:         time.Now,
		triggers:    make(chan struct{}, 1),
		cfg:         cfg,
	}
}

// Init rebuilds the status from durable state: the pending count from the
// outbox and the last sync time from metadata. Claims left by a previous
// process are released first.
func (e *Engine) Init(ctx context.Context) error {
	update := models.StatusUpdate{Syncing: models.Ptr(false)}

	// claim прошлого процесса, упавшего посреди отправки
	released, err := e.outbox.ReleaseClaims(ctx)
	if err != nil {
		return err
	}
	if released > 0 {
		e.logger.Warn("Released stale in-flight entries", "count", released)
	}

	count, err := e.outbox.CountPending(ctx)
	if err != nil {
		return err
	}
	update.PendingCount = models.Ptr(count)

	if e.metadata != nil {
		last, err := e.metadata.GetLastSyncAt(ctx)
		if err != nil {
			e.logger.Warn("Failed to get last sync time", "error", err)
		} else if last != nil {
			update.LastSyncAt = last
		}
	}

	e.status.Publish(update)
	e.logger.Info("Sync engine initialized", "pending", count)
	return nil
}

// Start begins the consumer and, when Interval > 0, the periodic trigger.
// Calling Start twice has no effect.
func (e *Engine) Start(ctx context.Context) {
	if !e.started.CompareAndSwap(false, true) {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	e.wg.Go(func() { e.consume(ctx) })

	if e.cfg.Interval > 0 {
		e.wg.Go(func() { e.tick(ctx) })
	}

	e.logger.Info("Sync loop started", "interval", e.cfg.Interval)
}

// Stop cancels the loop and waits for an in-flight cycle to finish.
func (e *Engine) Stop() {
	if !e.started.Load() || e.cancel == nil {
		return
	}
	e.cancel()
	e.wg.Wait()
	e.logger.Info("Sync loop stopped")
}

// Trigger asks for a cycle without blocking. It is a no-op while a cycle is
// draining and reports whether a cycle is now scheduled.
func (e *Engine) Trigger() bool {
	if e.draining.Load() {
		return false
	}
	select {
	case e.triggers <- struct{}{}:
	default:
		// уже есть отложенный запуск
	}
	return true
}

// TriggerNow is the manual retry: it clears the last error and triggers.
func (e *Engine) TriggerNow() bool {
	if !e.Trigger() {
		return false
	}
	e.status.Publish(models.StatusUpdate{LastError: models.Ptr("")})
	return true
}

// Status returns the current status snapshot.
func (e *Engine) Status() models.SyncStatus {
	return e.status.Get()
}

// Subscribe registers a status listener, see status.Broadcaster.Subscribe.
func (e *Engine) Subscribe(fn status.Listener) func() {
	return e.status.Subscribe(fn)
}

func (e *Engine) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-e.triggers:
			if _, err := e.RunOnce(ctx); err != nil && !errors.Is(err, ErrCycleInProgress) {
				e.logger.Error("Sync cycle failed", "error", err)
			}
		}
	}
}

func (e *Engine) tick(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if e.readiness.GetStatus().Ready() {
				e.Trigger()
			}
		}
	}
}
