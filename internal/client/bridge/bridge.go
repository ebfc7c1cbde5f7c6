// Package bridge serves the local HTTP API used by the POS user interface:
// sync status (snapshot and live websocket feed), manual trigger, outbox
// management, the reconciled views and the terminal actions.
package bridge

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/iudanet/depotsync/internal/client/monitor"
	"github.com/iudanet/depotsync/internal/client/status"
	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/middleware"
	"github.com/iudanet/depotsync/internal/models"
	"github.com/iudanet/depotsync/pkg/api"
)

const shutdownTimeout = 5 * time.Second

//go:generate moq -out engine_mock.go . Engine

// Engine is the part of the sync engine the bridge drives
type Engine interface {
	Status() models.SyncStatus
	Subscribe(fn status.Listener) func()
	TriggerNow() bool
	AddToSyncQueue(ctx context.Context, table string, op models.Operation, recordID string, payload any) (int64, error)
	RemoveFromQueue(ctx context.Context, id int64) error
	ListQueue(ctx context.Context, filter storage.PendingFilter) ([]*models.OutboxEntry, error)
}

//go:generate moq -out views_mock.go . Views

// Views отдает согласованные представления (локальные + ожидающие)
type Views interface {
	LastItems(ctx context.Context, limit int) ([]models.HistoryItem, error)
	Pendencias(ctx context.Context) ([]models.PendenciaView, error)
}

//go:generate moq -out notifier_mock.go . CredentialsNotifier

// CredentialsNotifier is told that the UI saved new credentials
type CredentialsNotifier interface {
	NotifyCredentialsUpdated(ctx context.Context) monitor.State
}

// Dependencies collaborators of the bridge. Actions may be nil, then the
// domain routes are not registered.
type Dependencies struct {
	Engine      Engine
	Views       Views
	Actions     Actions
	Credentials CredentialsNotifier
}

// Config параметры локального HTTP моста
type Config struct {
	Addr    string
	Version string
	// OriginPatterns разрешенные Origin для websocket, пусто = только localhost
	OriginPatterns []string
}

// Bridge is the local UI HTTP server
type Bridge struct {
	engine     Engine
	views      Views
	actions    Actions
	creds      CredentialsNotifier
	logger     *slog.Logger
	httpServer *http.Server
	done       chan struct{}
	version    string
	origins    []string
	closeOnce  sync.Once
}

// New builds the bridge. Nothing listens until Run or Serve is called.
func New(cfg Config, deps Dependencies, logger *slog.Logger) *Bridge {
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	if len(cfg.OriginPatterns) == 0 {
		cfg.OriginPatterns = []string{"localhost:*", "127.0.0.1:*"}
	}

	b := &Bridge{
		engine:  deps.Engine,
		views:   deps.Views,
		actions: deps.Actions,
		creds:   deps.Credentials,
		logger:  logger,
		done:    make(chan struct{}),
		version: cfg.Version,
		origins: cfg.OriginPatterns,
	}
	b.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           b.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Shutdown не закрывает hijacked соединения, стримы закрываем сами
	b.httpServer.RegisterOnShutdown(b.closeStreams)
	return b
}

// Handler returns the root handler, useful with httptest
func (b *Bridge) Handler() http.Handler {
	return b.httpServer.Handler
}

func (b *Bridge) routes() http.Handler {
	p := api.BridgePrefix

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+p+"/health", b.health)
	mux.HandleFunc("GET "+p+"/status", b.getStatus)
	mux.HandleFunc("GET "+p+"/status/stream", b.streamStatus)
	mux.HandleFunc("POST "+p+"/sync", b.triggerSync)
	mux.HandleFunc("GET "+p+"/queue", b.listQueue)
	mux.HandleFunc("POST "+p+"/queue", b.enqueue)
	mux.HandleFunc("DELETE "+p+"/queue/{id}", b.cancelEntry)
	mux.HandleFunc("GET "+p+"/recent", b.recent)
	mux.HandleFunc("GET "+p+"/pendencias", b.pendencias)
	mux.HandleFunc("POST "+p+"/credentials/updated", b.credentialsUpdated)
	if b.actions != nil {
		b.actionRoutes(mux)
	}

	var h http.Handler = mux
	h = middleware.Logging(b.logger, p+"/health", p+"/status")(h)
	h = middleware.Recovery(b.logger)(h)
	return h
}

func (b *Bridge) closeStreams() {
	b.closeOnce.Do(func() { close(b.done) })
}

// Run listens on the configured address until ctx is done.
func (b *Bridge) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", b.httpServer.Addr)
	if err != nil {
		return err
	}
	return b.Serve(ctx, ln)
}

// Serve is Run over an existing listener.
func (b *Bridge) Serve(ctx context.Context, ln net.Listener) error {
	var (
		wg       conc.WaitGroup
		serveErr error
	)
	wg.Go(func() {
		b.logger.Info("Bridge listening", "addr", ln.Addr().String())
		if err := b.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr = err
		}
	})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
	case <-done:
		b.closeStreams()
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	b.logger.Info("Bridge shutting down")
	b.closeStreams()
	if err := b.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-done
	return serveErr
}
