//go:build integration

package repo

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/app/catalog/schema"
	"github.com/light-bringer/catalog-service/internal/platform/database"
)

// Run with: TEST_POSTGRES_DSN=postgres://... go test -tags integration ./internal/app/catalog/repo/...
func setupPostgres(t *testing.T) *PostgresReadModel {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	pool, err := database.Open(ctx, dsn, database.Options{EagerCheck: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	require.NoError(t, schema.NewPostgresProvisioner(pool).EnsureSchema(ctx))
	// Second run must be a no-op.
	require.NoError(t, schema.NewPostgresProvisioner(pool).EnsureSchema(ctx))

	err = pool.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		for _, stmt := range []string{
			"DELETE FROM inventory",
			"DELETE FROM products",
			`INSERT INTO products (id, sku, title, price, tags) VALUES
				('p-100', 'SKU-100', 'Wireless Mouse', 19.99, '{peripheral,mouse}'),
				('p-101', 'SKU-101', 'Mechanical Keyboard', 59.00, '{peripheral,keyboard}'),
				('p-102', 'SKU-102', 'USB-C Cable', 7.50, '{cable,usb-c}')`,
			"INSERT INTO inventory (product_id, available) VALUES ('p-100', 120), ('p-101', 0)",
		} {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	return NewPostgresReadModel(pool, nil)
}

func TestPostgresIntegration_Catalog(t *testing.T) {
	rm := setupPostgres(t)
	ctx := context.Background()

	all, err := rm.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-101", "p-102", "p-100"}, ids(all))

	byTag, err := rm.ListProducts(ctx, &domain.Filter{Tag: strPtr("PERIPHERAL"), Max: pricePtr("20")})
	require.NoError(t, err)
	assert.Equal(t, []string{"p-100"}, ids(byTag))

	inverted, err := rm.ListProducts(ctx, &domain.Filter{Min: pricePtr("50"), Max: pricePtr("10")})
	require.NoError(t, err)
	assert.Empty(t, inverted)

	mouse, err := rm.GetProduct(ctx, "sku-100")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse", mouse.Title)
	assert.Equal(t, int64(120), *mouse.Stock)

	keyboard, err := rm.GetProduct(ctx, "p-101")
	require.NoError(t, err)
	assert.Equal(t, int64(0), *keyboard.Stock)

	cable, err := rm.GetProduct(ctx, "p-102")
	require.NoError(t, err)
	assert.Nil(t, cable.Stock)

	require.NoError(t, rm.Ping(ctx))
}
