package query

import (
	"fmt"
	"strings"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

type join struct {
	table string
	on    string
}

type order struct {
	column    string
	direction Direction
}

// Statement is a rendered query: SQL text plus its bound arguments in placeholder order.
type Statement struct {
	SQL  string
	Args []interface{}
}

// Params returns the arguments keyed by parameter name, for dialects with named parameters.
func (s Statement) Params() map[string]interface{} {
	params := make(map[string]interface{}, len(s.Args))
	for i, arg := range s.Args {
		params[ParamName(i)] = arg
	}
	return params
}

// Builder constructs SQL SELECT queries for any supported Dialect.
// It provides a fluent API for building queries with joins, WHERE clauses,
// ORDER BY and LIMIT. Placeholders are numbered while rendering, so
// conditions never need to track parameter indices themselves.
type Builder struct {
	table        string
	selectCols   []string
	joins        []join
	whereClauses []Condition
	orderBy      []order
	limitVal     int64
}

// From creates a new Builder for the specified table (an alias may follow the name).
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectCols:   []string{},
		whereClauses: []Condition{},
	}
}

// Select specifies the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	newBuilder := b.clone()
	newBuilder.selectCols = append(newBuilder.selectCols, columns...)
	return newBuilder
}

// LeftJoin adds a LEFT JOIN clause.
func (b *Builder) LeftJoin(table, on string) *Builder {
	newBuilder := b.clone()
	newBuilder.joins = append(newBuilder.joins, join{table: table, on: on})
	return newBuilder
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(condition Condition) *Builder {
	newBuilder := b.clone()
	newBuilder.whereClauses = append(newBuilder.whereClauses, condition)
	return newBuilder
}

// OrderBy appends a sort key. Multiple calls add tie-breakers in call order.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	newBuilder := b.clone()
	newBuilder.orderBy = append(newBuilder.orderBy, order{column: column, direction: direction})
	return newBuilder
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	newBuilder := b.clone()
	newBuilder.limitVal = limit
	return newBuilder
}

// Build renders the statement for the given dialect.
func (b *Builder) Build(d Dialect) Statement {
	var sql strings.Builder
	bind := &binder{dialect: d}

	// SELECT clause
	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	// FROM clause
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	for _, j := range b.joins {
		sql.WriteString(" LEFT JOIN ")
		sql.WriteString(j.table)
		sql.WriteString(" ON ")
		sql.WriteString(j.on)
	}

	// WHERE clause
	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		for _, condition := range b.whereClauses {
			whereParts = append(whereParts, condition.SQL(bind))
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	// ORDER BY clause
	if len(b.orderBy) > 0 {
		sql.WriteString(" ORDER BY ")
		parts := make([]string, 0, len(b.orderBy))
		for _, o := range b.orderBy {
			if o.direction == Desc {
				parts = append(parts, o.column+" DESC")
			} else {
				parts = append(parts, o.column+" ASC")
			}
		}
		sql.WriteString(strings.Join(parts, ", "))
	}

	// LIMIT clause
	if b.limitVal > 0 {
		sql.WriteString(" LIMIT ")
		sql.WriteString(bind.Bind(b.limitVal))
	}

	return Statement{
		SQL:  sql.String(),
		Args: bind.args,
	}
}

// clone creates a shallow copy of the builder for immutability.
func (b *Builder) clone() *Builder {
	newBuilder := &Builder{
		table:        b.table,
		selectCols:   make([]string, len(b.selectCols)),
		joins:        make([]join, len(b.joins)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		orderBy:      make([]order, len(b.orderBy)),
		limitVal:     b.limitVal,
	}
	copy(newBuilder.selectCols, b.selectCols)
	copy(newBuilder.joins, b.joins)
	copy(newBuilder.whereClauses, b.whereClauses)
	copy(newBuilder.orderBy, b.orderBy)
	return newBuilder
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build(Postgres)
	return fmt.Sprintf("SQL: %s\nArgs: %v", stmt.SQL, stmt.Args)
}
