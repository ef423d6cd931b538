package query

import "strings"

// ProjectionMap maps view field names to the qualified columns of one table.
type ProjectionMap struct {
	table   string
	columns []string
	fields  map[string]string
	named   map[string]string
}

// NewProjectionMap starts a projection over schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		table:  schema + "." + table + " " + alias,
		fields: make(map[string]string),
		named:  make(map[string]string),
	}
}

// Project exposes column under field. Columns are qualified with the
// table alias.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	alias := p.table[strings.LastIndexByte(p.table, ' ')+1:]
	qualified := alias + "." + column

	p.columns = append(p.columns, qualified)
	p.fields[field] = qualified
	p.named[column] = qualified
	return p
}

// Table is the FROM item: schema.table alias.
func (p *ProjectionMap) Table() string {
	return p.table
}

// Column qualifies a view field. Unknown names are returned unchanged so
// callers can pass raw expressions.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.fields[field]; ok {
		return col
	}
	return field
}

// lookup accepts a view field or a column name and reports whether the
// projection has it. Client supplied names go through lookup only.
func (p *ProjectionMap) lookup(name string) (string, bool) {
	if col, ok := p.fields[name]; ok {
		return col, true
	}
	col, ok := p.named[name]
	return col, ok
}

// Columns is the SELECT list in projection order.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}
