package schema

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/light-bringer/catalog-service/internal/platform/database"
	"github.com/light-bringer/catalog-service/migrations"
)

// AdvisoryLockKey serializes provisioning across every process sharing the database.
const AdvisoryLockKey int64 = 0x636174616c6f67

// PostgresProvisioner applies the embedded Postgres DDL.
type PostgresProvisioner struct {
	pool *database.Pool
}

// NewPostgresProvisioner creates a provisioner using pool.
func NewPostgresProvisioner(pool *database.Pool) *PostgresProvisioner {
	return &PostgresProvisioner{pool: pool}
}

// EnsureSchema runs all DDL in one transaction on one connection, holding a
// transaction-scoped advisory lock so concurrent instances wait for each other
// instead of racing on catalog inserts.
func (p *PostgresProvisioner) EnsureSchema(ctx context.Context) error {
	statements, err := migrations.UpStatements(migrations.PostgresDir)
	if err != nil {
		return provisioningError(fmt.Errorf("load ddl: %w", err))
	}

	err = p.pool.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		tx, err := conn.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", AdvisoryLockKey); err != nil {
			return fmt.Errorf("lock: %w", err)
		}

		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("statement %d: %w", i+1, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		return nil
	})
	if err != nil {
		return provisioningError(err)
	}
	return nil
}
