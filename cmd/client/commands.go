package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/depotsync/internal/client/cli"
	"github.com/iudanet/depotsync/internal/client/iocli"
)

type rootOptions struct {
	configPath string
	env        *env
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "depot",
		Short:         "Offline-first sync agent for the depot POS terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations["skipEnv"] == "true" {
				return nil
			}
			e, err := loadEnv(opts.configPath)
			if err != nil {
				return err
			}
			opts.env = e
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.env == nil {
				return nil
			}
			return opts.env.Close()
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to depot.yaml (default $HOME/.depotsync/depot.yaml)")

	root.AddCommand(
		newVersionCmd(),
		newRunCmd(opts),
		newSyncCmd(opts),
		newStatusCmd(opts),
		newQueueCmd(opts),
		newCredentialsCmd(opts),
		newRecentCmd(opts),
		newPendenciasCmd(opts),
		newDeadLettersCmd(opts),
	)
	return root
}

// withApp открывает терминал на время одной команды
func withApp(ctx context.Context, opts *rootOptions, fn func(ctx context.Context, a *app, c *cli.Cli) error) error {
	a, err := newApp(ctx, opts.env)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			opts.env.logger.Error("Failed to close storage", "error", err)
		}
	}()
	return fn(ctx, a, a.cli())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Annotations: map[string]string{"skipEnv": "true"},
		Args:        cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			printVersion()
		},
	}
}

func newSyncCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Drain the outbox once and print the cycle result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app, c *cli.Cli) error {
				a.monitor.Refresh(ctx)
				return c.RunSync(ctx)
			})
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app, c *cli.Cli) error {
				a.monitor.Refresh(ctx)
				return c.RunStatus(ctx)
			})
		},
	}
}

func newQueueCmd(opts *rootOptions) *cobra.Command {
	queue := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and edit the pending outbox",
	}

	var tables []string
	list := &cobra.Command{
		Use:   "list",
		Short: "List pending entries in send order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, _ *app, c *cli.Cli) error {
				return c.RunQueueList(ctx, tables)
			})
		},
	}
	list.Flags().StringSliceVar(&tables, "table", nil, "only entries for these tables")

	var args cli.EnqueueArgs
	add := &cobra.Command{
		Use:   "add <table> <insert|update|delete|upsert>",
		Short: "Append a mutation to the outbox",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			args.Table, args.Operation = pos[0], pos[1]
			return withApp(cmd.Context(), opts, func(ctx context.Context, _ *app, c *cli.Cli) error {
				return c.RunQueueAdd(ctx, args)
			})
		},
	}
	add.Flags().StringVar(&args.RecordID, "record-id", "", "remote record id (required for update and delete)")
	add.Flags().StringVar(&args.Payload, "payload", "", "JSON object with the row fields")

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Remove a pending entry before it is sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, _ *app, c *cli.Cli) error {
				return c.RunQueueCancel(ctx, pos[0])
			})
		},
	}

	queue.AddCommand(list, add, cancel)
	return queue
}

func newCredentialsCmd(opts *rootOptions) *cobra.Command {
	creds := &cobra.Command{
		Use:   "credentials",
		Short: "Manage the remote URL and API key",
	}

	// ключи не требуют открытия базы
	credsCli := func() *cli.Cli {
		return cli.New(iocli.NewStdio(), nil, nil, opts.env.creds)
	}

	var (
		url     string
		sources cli.KeySources
	)
	set := &cobra.Command{
		Use:   "set",
		Short: "Save the remote URL and key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return credsCli().RunCredentialsSet(cmd.Context(), url, sources)
		},
	}
	set.Flags().StringVar(&url, "url", "", "remote base URL")
	set.Flags().StringVar(&sources.FromArgs, "key", "", fmt.Sprintf("API key (prefer %s or --key-file)", cli.KeyEnvVar))
	set.Flags().StringVar(&sources.FromFile, "key-file", "", "read the API key from a file")
	_ = set.MarkFlagRequired("url")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the configured remote with the key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return credsCli().RunCredentialsShow(cmd.Context())
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the remote URL and key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return credsCli().RunCredentialsClear(cmd.Context())
		},
	}

	creds.AddCommand(set, show, clearCmd)
	return creds
}

func newRecentCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the last comanda items, local and pending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, _ *app, c *cli.Cli) error {
				return c.RunRecent(ctx, limit)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of items, 0 = default")
	return cmd
}

func newPendenciasCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pendencias",
		Short: "Show open pendencias with their sync state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, _ *app, c *cli.Cli) error {
				return c.RunPendencias(ctx)
			})
		},
	}
}

func newDeadLettersCmd(opts *rootOptions) *cobra.Command {
	dl := &cobra.Command{
		Use:     "deadletters",
		Aliases: []string{"dl"},
		Short:   "Inspect entries the remote rejected",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List archived entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, _ *app, c *cli.Cli) error {
				return c.RunDeadLetters(ctx)
			})
		},
	}

	requeue := &cobra.Command{
		Use:   "requeue <id>",
		Short: "Put an archived entry back at the tail of the outbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, _ *app, c *cli.Cli) error {
				return c.RunDeadLetterRequeue(ctx, pos[0])
			})
		},
	}

	discard := &cobra.Command{
		Use:   "discard <id>",
		Short: "Delete an archived entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, _ *app, c *cli.Cli) error {
				return c.RunDeadLetterDiscard(ctx, pos[0])
			})
		},
	}

	dl.AddCommand(list, requeue, discard)
	return dl
}
