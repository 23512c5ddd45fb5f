package query

import "fmt"

// Dialect renders bound-parameter placeholders for a specific SQL engine.
type Dialect interface {
	// Placeholder returns the placeholder text for the zero-based parameter index.
	Placeholder(index int) string
	// Name identifies the dialect in logs and errors.
	Name() string
}

type postgresDialect struct{}

func (postgresDialect) Placeholder(index int) string { return fmt.Sprintf("$%d", index+1) }
func (postgresDialect) Name() string                 { return "postgres" }

type spannerDialect struct{}

func (spannerDialect) Placeholder(index int) string { return "@" + ParamName(index) }
func (spannerDialect) Name() string                 { return "spanner" }

var (
	// Postgres uses positional parameters ($1, $2, ...).
	Postgres Dialect = postgresDialect{}
	// Spanner uses named parameters (@p0, @p1, ...).
	Spanner Dialect = spannerDialect{}
)

// ParamName returns the name used for the parameter at index by named-parameter dialects.
func ParamName(index int) string {
	return fmt.Sprintf("p%d", index)
}

// Binder collects parameter values while conditions render their SQL.
type Binder interface {
	// Bind registers value and returns the placeholder that refers to it.
	Bind(value interface{}) string
}

type binder struct {
	dialect Dialect
	args    []interface{}
}

func (b *binder) Bind(value interface{}) string {
	b.args = append(b.args, value)
	return b.dialect.Placeholder(len(b.args) - 1)
}
