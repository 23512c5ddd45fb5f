package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-service/internal/app/catalog/schema"
	"github.com/light-bringer/catalog-service/internal/models/m_inventory"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-service/internal/platform/database"
)

// SpannerTargetEnv names the variable holding an emulator target such as
// spanner://localhost:9010/projects/test-project/instances/test-instance/databases/catalog-test.
const SpannerTargetEnv = "TEST_SPANNER_TARGET"

// SetupSpannerTest opens a Spanner pool, provisions the schema and loads the demo catalog.
// The test is skipped when SpannerTargetEnv is unset.
func SetupSpannerTest(t *testing.T) *database.SpannerPool {
	t.Helper()

	raw := os.Getenv(SpannerTargetEnv)
	if raw == "" {
		t.Skipf("%s not set", SpannerTargetEnv)
	}

	ctx := context.Background()
	target, err := database.ParseTarget(raw, false)
	require.NoError(t, err)

	pool, err := database.OpenSpanner(ctx, target, database.Options{EagerCheck: true})
	require.NoError(t, err, "failed to create Spanner client")
	t.Cleanup(func() { _ = pool.Close() })

	provisioner := schema.NewSpannerProvisioner(target.Database, database.ClientOptions(target)...)
	require.NoError(t, provisioner.EnsureSchema(ctx))

	CleanDatabase(t, pool.Client())
	InsertProducts(t, pool.Client(), repo.SeedCatalog()...)
	return pool
}

// CleanDatabase removes every catalog row.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		spanner.Delete(m_inventory.TableName, spanner.AllKeys()),
		spanner.Delete(m_product.TableName, spanner.AllKeys()),
	})
	require.NoError(t, err, "failed to clean database")
}

// InsertProducts upserts products and their inventory rows in one commit.
func InsertProducts(t *testing.T, client *spanner.Client, products ...*domain.Product) {
	t.Helper()

	err := repo.WriteSpanner(context.Background(), committer.NewCommitter(client), products...)
	require.NoError(t, err, "failed to insert products")
}
