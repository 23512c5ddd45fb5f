// Package migrations embeds the catalog schema so the server, the provisioner and
// cmd/migrate all apply the same DDL.
package migrations

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// FS holds the DDL files for every supported driver.
//
//go:embed postgres/*.sql spanner/*.sql
var FS embed.FS

// PostgresDir is the golang-migrate source directory for Postgres.
const PostgresDir = "postgres"

// SpannerDir holds the Spanner DDL.
const SpannerDir = "spanner"

// UpStatements returns the statements of every "up" file in dir, in file-name order.
// Files ending in .down.sql are skipped.
func UpStatements(dir string) ([]string, error) {
	entries, err := fs.ReadDir(FS, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") || strings.HasSuffix(e.Name(), ".down.sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var statements []string
	for _, name := range names {
		content, err := fs.ReadFile(FS, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		statements = append(statements, SplitStatements(string(content))...)
	}
	return statements, nil
}

// SplitStatements drops comment lines and splits the script on semicolons.
func SplitStatements(content string) []string {
	lines := strings.Split(content, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	content = strings.Join(cleaned, "\n")

	var result []string
	for _, stmt := range strings.Split(content, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}
