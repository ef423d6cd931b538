// Package query builds parameterized PostgreSQL SELECT statements from a projection map.
package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Builder assembles SELECT statements over one projection. Conditions are
// ANDed and bound to $1, $2, ... in the order they are added.
type Builder struct {
	projection *ProjectionMap
	where      []string
	args       []any
	order      []SortField
	fallback   []SortField
}

// NewBuilder starts a statement over projection. fallback orders results
// when OrderByFields is never called or resolves nothing.
func NewBuilder(projection *ProjectionMap, fallback ...SortField) *Builder {
	return &Builder{projection: projection, fallback: fallback}
}

// bind records v as the next argument and returns its placeholder.
func (b *Builder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *Builder) whereClause() string {
	if len(b.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.where, " AND ")
}

func (b *Builder) selectFrom() string {
	return "SELECT " + b.projection.Columns() + " FROM " + b.projection.Table()
}

func (b *Builder) BuildCount() (string, []any) {
	return "SELECT COUNT(*) FROM " + b.projection.Table() + b.whereClause(), b.args
}

// BuildPage selects page (from 1) of pageSize rows.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	sql := fmt.Sprintf("%s%s%s LIMIT %d OFFSET %d",
		b.selectFrom(), b.whereClause(), b.orderClause(), pageSize, (page-1)*pageSize)
	return sql, b.args
}

func (b *Builder) BuildAll() (string, []any) {
	return b.selectFrom() + b.whereClause() + b.orderClause(), b.args
}

// BuildSingle selects the row whose idField equals id, ignoring any
// conditions added so far.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	return b.selectFrom() + " WHERE " + b.projection.Column(idField) + " = $1", []any{id}
}

// BuildSingleOrNull selects at most one row matching the conditions.
func (b *Builder) BuildSingleOrNull() (string, []any) {
	return b.selectFrom() + b.whereClause() + " LIMIT 1", b.args
}

// OrderByFields replaces the ordering. Fields the projection does not
// know are dropped.
func (b *Builder) OrderByFields(fields []SortField) *Builder {
	b.order = fields
	return b
}

// WhereContains matches value anywhere in field, ignoring case. Nil and
// empty values add nothing.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	b.where = append(b.where, b.projection.Column(field)+" ILIKE "+b.bind("%"+*value+"%"))
	return b
}

// WhereEquals adds field = value. A nil value adds nothing.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	b.where = append(b.where, b.projection.Column(field)+" = "+b.bind(value))
	return b
}

// WhereIn adds field IN (values...). An empty list adds nothing.
func (b *Builder) WhereIn(field string, values []any) *Builder {
	if len(values) == 0 {
		return b
	}
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = b.bind(v)
	}
	b.where = append(b.where, b.projection.Column(field)+" IN ("+strings.Join(placeholders, ", ")+")")
	return b
}

// WhereSearch matches search in any of fields, ignoring case.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}
	pattern := "%" + *search + "%"
	alternatives := make([]string, len(fields))
	for i, field := range fields {
		alternatives[i] = b.projection.Column(field) + " ILIKE " + b.bind(pattern)
	}
	b.where = append(b.where, "("+strings.Join(alternatives, " OR ")+")")
	return b
}

func (b *Builder) orderClause() string {
	parts := b.resolve(b.order)
	if len(parts) == 0 {
		parts = b.resolve(b.fallback)
	}
	if len(parts) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func (b *Builder) resolve(fields []SortField) []string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		col, ok := b.projection.lookup(f.Field)
		if !ok {
			continue
		}
		if f.Descending {
			parts = append(parts, col+" DESC")
		} else {
			parts = append(parts, col+" ASC")
		}
	}
	return parts
}
