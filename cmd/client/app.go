package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iudanet/depotsync/internal/client/api"
	"github.com/iudanet/depotsync/internal/client/cli"
	"github.com/iudanet/depotsync/internal/client/config"
	"github.com/iudanet/depotsync/internal/client/depot"
	"github.com/iudanet/depotsync/internal/client/iocli"
	"github.com/iudanet/depotsync/internal/client/monitor"
	"github.com/iudanet/depotsync/internal/client/reconcile"
	"github.com/iudanet/depotsync/internal/client/status"
	"github.com/iudanet/depotsync/internal/client/storage/boltdb"
	"github.com/iudanet/depotsync/internal/client/storage/sqlite"
	clientsync "github.com/iudanet/depotsync/internal/client/sync"
	"github.com/iudanet/depotsync/internal/logging"
	"github.com/iudanet/depotsync/internal/models"
)

// env общее окружение команд: конфиг, логгер и хранилище ключей
type env struct {
	cfg        *config.Config
	logger     *slog.Logger
	logCloser  io.Closer
	creds      *config.CredentialStore
	configPath string
}

func loadEnv(configPath string) (*env, error) {
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	slog.SetDefault(logger)

	creds, err := config.NewCredentialStore(configPath, logger)
	if err != nil {
		closer.Close()
		return nil, err
	}

	return &env{
		cfg:        cfg,
		logger:     logger,
		logCloser:  closer,
		creds:      creds,
		configPath: configPath,
	}, nil
}

func (e *env) Close() error {
	return e.logCloser.Close()
}

// app собранный терминал: хранилища, монитор, движок и сервисы
type app struct {
	env       *env
	store     *sqlite.Storage
	state     *boltdb.Storage
	remote    *api.Client
	monitor   *monitor.Monitor
	engine    *clientsync.Engine
	terminal  depot.Service
	reconcile *reconcile.Service
}

func newApp(ctx context.Context, e *env) (*app, error) {
	cfg := e.cfg

	for _, p := range []string{cfg.DB.Path, cfg.State.Path} {
		if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	store, err := sqlite.New(ctx, cfg.DB.Path)
	if err != nil {
		return nil, err
	}

	state, err := boltdb.New(ctx, cfg.State.Path)
	if err != nil {
		store.Close()
		if errors.Is(err, boltdb.ErrLocked) {
			return nil, fmt.Errorf("%w; while 'depot run' is active use the bridge API", err)
		}
		return nil, err
	}

	remote := api.NewClient(e.creds, cfg.Remote.Timeout)
	bc := status.New()
	mon := monitor.New(e.creds, remote, bc, e.logger, monitor.Config{ProbeInterval: cfg.Sync.ProbeInterval})

	a := &app{
		env:     e,
		store:   store,
		state:   state,
		remote:  remote,
		monitor: mon,
	}

	a.engine = clientsync.NewEngine(clientsync.Dependencies{
		Outbox:      store,
		Metadata:    state,
		DeadLetters: state,
		Remote:      remote,
		Readiness:   mon,
		Status:      bc,
		OnApplied: func(ctx context.Context, entry *models.OutboxEntry, row map[string]any) {
			a.terminal.ApplyConfirmed(ctx, entry, row)
		},
	}, clientsync.Config{
		Interval:      cfg.Sync.Interval,
		RemoteTimeout: cfg.Remote.Timeout,
		Retention:     cfg.Sync.Retention,
	}, e.logger)

	a.terminal = depot.NewService(store, mon, a.engine, e.logger, depot.Options{
		DeviceName:    cfg.Device.Name,
		ComandaPrefix: cfg.Comanda.Prefix,
	})
	a.reconcile = reconcile.NewService(store, e.logger)

	if err := a.engine.Init(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to init sync engine: %w", err)
	}
	return a, nil
}

// cli командный слой поверх собранного терминала
func (a *app) cli() *cli.Cli {
	return cli.New(iocli.NewStdio(), a.engine, a.reconcile, a.env.creds)
}

func (a *app) Close() error {
	a.engine.Stop()
	return errors.Join(a.state.Close(), a.store.Close())
}
