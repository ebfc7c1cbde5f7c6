package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/depotsync/internal/logging"
	"github.com/iudanet/depotsync/internal/server"
	"github.com/iudanet/depotsync/internal/server/keys"
	"github.com/iudanet/depotsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newViper читает DEPOT_SERVER_* и флаги
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("DEPOT_SERVER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.SetDefault("addr", ":8080")
	v.SetDefault("db", "depot-server.db")
	v.SetDefault("jwt-secret", "")
	v.SetDefault("rate-limit", 20.0)
	v.SetDefault("rate-burst", 40)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "")
	return v
}

func newRootCmd() *cobra.Command {
	v := newViper()

	root := &cobra.Command{
		Use:           "depot-server",
		Short:         "Reference remote store for depot terminals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("jwt-secret", "", "HS256 secret for API keys (env DEPOT_SERVER_JWT_SECRET)")
	root.PersistentFlags().String("log-level", "info", "debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "text or json, empty = by terminal")
	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newServeCmd(v), newKeygenCmd(v), newVersionCmd())
	return root
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), v)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address (env DEPOT_SERVER_ADDR)")
	cmd.Flags().String("db", "depot-server.db", "SQLite database path (env DEPOT_SERVER_DB)")
	cmd.Flags().Float64("rate-limit", 20, "requests per second per client")
	cmd.Flags().Int("rate-burst", 40, "burst per client")
	_ = v.BindPFlags(cmd.Flags())
	return cmd
}

func serve(ctx context.Context, v *viper.Viper) error {
	logger, closer, err := logging.New(logging.Config{
		Level:  v.GetString("log-level"),
		Format: v.GetString("log-format"),
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	signer, err := keys.NewSigner(v.GetString("jwt-secret"))
	if err != nil {
		return err
	}

	store, err := sqlite.New(ctx, v.GetString("db"))
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	srv := server.New(server.Config{
		Addr:      v.GetString("addr"),
		Version:   Version,
		RateLimit: v.GetFloat64("rate-limit"),
		RateBurst: v.GetInt("rate-burst"),
	}, store, signer, logger)

	logger.Info("Depot server starting", "version", Version, "db", v.GetString("db"))
	return srv.Run(ctx)
}

func newKeygenCmd(v *viper.Viper) *cobra.Command {
	var (
		role string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Mint an API key for a terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signer, err := keys.NewSigner(v.GetString("jwt-secret"))
			if err != nil {
				return err
			}
			key, err := signer.Mint(role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", keys.RoleAnon, "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "key lifetime, 0 = never expires")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			printVersion()
		},
	}
}

func printVersion() {
	fmt.Printf("DepotSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
