package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations must never write a value into the SQL text; every value goes through the Binder.
type Condition interface {
	// SQL returns the SQL fragment for this condition, binding its values on b.
	SQL(b Binder) string
}

// comparisonCondition implements field <op> value.
type comparisonCondition struct {
	field string
	op    string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("id", "p-100") generates "id = $1"
func Eq(field string, value interface{}) Condition {
	return &comparisonCondition{field: field, op: "=", value: value}
}

// Gte creates an inclusive lower-bound condition.
// Example: Gte("price", min) generates "price >= $1"
func Gte(field string, value interface{}) Condition {
	return &comparisonCondition{field: field, op: ">=", value: value}
}

// Lte creates an inclusive upper-bound condition.
func Lte(field string, value interface{}) Condition {
	return &comparisonCondition{field: field, op: "<=", value: value}
}

// SQL generates the SQL fragment for the comparison.
func (c *comparisonCondition) SQL(b Binder) string {
	return fmt.Sprintf("%s %s %s", c.field, c.op, b.Bind(c.value))
}

// EqualFold creates a case-insensitive equality condition.
// Example: EqualFold("sku", "sku-100") generates "LOWER(sku) = $1" bound to "sku-100"
func EqualFold(field, value string) Condition {
	return &comparisonCondition{field: "LOWER(" + field + ")", op: "=", value: strings.ToLower(value)}
}

// ContainsFold creates a case-insensitive substring condition.
// LIKE metacharacters in value are escaped so they match literally.
// Example: ContainsFold("title", "Mouse") generates "LOWER(title) LIKE $1" bound to "%mouse%"
func ContainsFold(field, value string) Condition {
	return &comparisonCondition{
		field: "LOWER(" + field + ")",
		op:    "LIKE",
		value: "%" + EscapeLike(strings.ToLower(value)) + "%",
	}
}

// anyFoldCondition matches when any element of an array column equals the value, ignoring case.
type anyFoldCondition struct {
	field string
	value string
}

// AnyFold creates a condition on an array column.
// Example: AnyFold("tags", "Mouse") generates
// "EXISTS (SELECT 1 FROM UNNEST(tags) AS t WHERE LOWER(t) = $1)" bound to "mouse"
func AnyFold(field, value string) Condition {
	return &anyFoldCondition{field: field, value: strings.ToLower(value)}
}

// SQL generates the SQL fragment for the array match.
func (c *anyFoldCondition) SQL(b Binder) string {
	return fmt.Sprintf("EXISTS (SELECT 1 FROM UNNEST(%s) AS t WHERE LOWER(t) = %s)", c.field, b.Bind(c.value))
}

// orCondition joins conditions with OR.
type orCondition struct {
	conditions []Condition
}

// Or creates a parenthesized disjunction of conditions.
func Or(conditions ...Condition) Condition {
	return &orCondition{conditions: conditions}
}

// SQL generates the SQL fragment for the disjunction.
func (c *orCondition) SQL(b Binder) string {
	parts := make([]string, 0, len(c.conditions))
	for _, cond := range c.conditions {
		parts = append(parts, cond.SQL(b))
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards using the backslash escape shared by Postgres and Spanner.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
