package query

import "strings"

// SortField names a view field and its sort direction.
type SortField struct {
	Field      string
	Descending bool
}

// ParseSortFields parses a comma-separated sort expression.
// A leading "-" marks a field as descending: "name,-created_at".
func ParseSortFields(expr string) []SortField {
	if expr == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Descending: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}

	return fields
}
