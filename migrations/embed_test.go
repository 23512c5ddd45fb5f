package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	script := `
-- comment
CREATE TABLE a (id INT);

CREATE TABLE b (
    id INT
);
`
	got := SplitStatements(script)
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE TABLE b (\nid INT\n)"}, got)
}

func TestUpStatements_AreNonDestructive(t *testing.T) {
	for _, dir := range []string{PostgresDir, SpannerDir} {
		t.Run(dir, func(t *testing.T) {
			statements, err := UpStatements(dir)
			require.NoError(t, err)
			require.NotEmpty(t, statements)

			for _, stmt := range statements {
				upper := strings.ToUpper(stmt)
				assert.Contains(t, upper, "IF NOT EXISTS", stmt)
				assert.NotContains(t, upper, "DROP ", stmt)
			}
		})
	}
}

func TestUpStatements_SKUUniqueIgnoringCase(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{PostgresDir, "ON products (lower(sku))"},
		{SpannerDir, "ON products (sku_lower)"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			statements, err := UpStatements(tt.dir)
			require.NoError(t, err)

			var index string
			for _, stmt := range statements {
				if strings.HasPrefix(stmt, "CREATE UNIQUE INDEX") && strings.Contains(stmt, tt.want) {
					index = stmt
				}
			}
			assert.NotEmpty(t, index, "no case-insensitive SKU index in %s", tt.dir)
		})
	}

	spanner, err := UpStatements(SpannerDir)
	require.NoError(t, err)
	assert.Contains(t, strings.Join(spanner, "\n"), "sku_lower STRING(64) AS (LOWER(sku)) STORED")
}
