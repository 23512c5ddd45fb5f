package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/light-bringer/catalog-service/internal/platform/database"
	"github.com/light-bringer/catalog-service/migrations"
)

type migrateFunc func(m *migrate.Migrate) error

// runPostgres opens the pool with the service's transport security decision
// and hands golang-migrate the underlying *sql.DB.
func runPostgres(ctx context.Context, fn migrateFunc) error {
	target, err := parseTarget()
	if err != nil {
		return err
	}
	if target.Driver != database.DriverPostgres {
		return fmt.Errorf("versioned migrations need a Postgres store, got %s (use ensure)", target.Driver)
	}

	pool, err := database.OpenTarget(ctx, target, database.Options{MaxConnections: 1, EagerCheck: true})
	if err != nil {
		return err
	}
	defer pool.Close()

	source, err := iofs.New(migrations.FS, migrations.PostgresDir)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := postgres.WithInstance(pool.DB(), &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator", zap.Error(errors.Join(srcErr, dbErr)))
		}
	}()

	return fn(m)
}

func migrateUp(m *migrate.Migrate) error {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("Schema already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return migrateVersion(m)
}

func migrateDown(m *migrate.Migrate) error {
	if steps <= 0 {
		return fmt.Errorf("--steps must be > 0, got %d", steps)
	}
	err := m.Steps(-steps)
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("Nothing to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return migrateVersion(m)
}

func migrateVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		logger.Info("No migrations applied")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read version: %w", err)
	}
	logger.Info("Schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
