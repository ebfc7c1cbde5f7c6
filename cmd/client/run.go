package main

import (
	"context"
	"errors"

	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"

	"github.com/iudanet/depotsync/internal/client/bridge"
	"github.com/iudanet/depotsync/internal/client/cli"
	"github.com/iudanet/depotsync/internal/models"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the sync agent with the local bridge until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, runAgent)
		},
	}
}

// runAgent держит монитор, движок и мост до отмены ctx
func runAgent(ctx context.Context, a *app, _ *cli.Cli) error {
	logger := a.env.logger
	cfg := a.env.cfg

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// переход в ready (ключи есть и удаленное хранилище доступно) запускает цикл
	a.monitor.OnReady(func() { a.engine.Trigger() })

	// ключи поменяли вручную в depot.yaml
	if err := a.env.creds.Watch(func(models.Credentials) {
		state := a.monitor.NotifyCredentialsUpdated(ctx)
		logger.Info("Credentials reloaded", "has_credentials", state.HasCredentials, "online", state.IsOnline)
	}); err != nil {
		logger.Warn("Config watch disabled", "path", a.env.configPath, "error", err)
	}

	a.engine.Start(ctx)

	var (
		wg        conc.WaitGroup
		bridgeErr error
	)
	wg.Go(func() {
		if err := a.monitor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Connectivity monitor stopped", "error", err)
		}
	})

	if cfg.Bridge.Addr != "" {
		b := bridge.New(bridge.Config{
			Addr:    cfg.Bridge.Addr,
			Version: Version,
		}, bridge.Dependencies{
			Engine:      a.engine,
			Views:       a.reconcile,
			Actions:     a.terminal,
			Credentials: a.monitor,
		}, logger)

		wg.Go(func() {
			if err := b.Run(ctx); err != nil {
				bridgeErr = err
				logger.Error("Bridge stopped", "error", err)
				cancel()
			}
		})
	} else {
		logger.Info("Bridge disabled")
	}

	logger.Info("Depot agent started",
		"version", Version,
		"db", cfg.DB.Path,
		"interval", cfg.Sync.Interval,
	)

	<-ctx.Done()
	logger.Info("Depot agent shutting down")
	wg.Wait()
	return bridgeErr
}
