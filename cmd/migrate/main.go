package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/catalog-service/internal/config"
	"github.com/light-bringer/catalog-service/internal/pkg/logging"
	"github.com/light-bringer/catalog-service/internal/platform/database"
)

var (
	databaseURL    string
	steps          int
	forcePlaintext bool

	logger = zap.NewNop()
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the catalog schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if databaseURL == "" {
				databaseURL = cfg.DatabaseURL
			}
			forcePlaintext = cfg.DBForcePlaintext
			if databaseURL == "" {
				return fmt.Errorf("no store address: set DATABASE_URL or --database-url")
			}

			logger, err = logging.New(cfg.LogLevel, logging.FormatConsole)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logging.Sync(logger)
		},
	}
	root.PersistentFlags().StringVar(&databaseURL, "database-url", "", "store address (defaults to DATABASE_URL)")

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back Postgres migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPostgres(cmd.Context(), migrateDown)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending Postgres migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runPostgres(cmd.Context(), migrateUp)
			},
		},
		down,
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied Postgres migration version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runPostgres(cmd.Context(), migrateVersion)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Load the demo catalog (p-100..p-103) into the store",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return seed(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "ensure",
			Short: "Create the catalog schema if missing (Postgres or Spanner)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return ensure(cmd.Context())
			},
		},
	)
	return root
}

func parseTarget() (database.Target, error) {
	target, err := database.ParseTarget(databaseURL, forcePlaintext)
	if err != nil {
		return database.Target{}, err
	}
	logger.Info("Using store", zap.String("driver", target.Driver.String()), zap.String("target", target.Redacted()))
	return target, nil
}
