package documents

import (
	"net/url"

	"github.com/JaimeStill/dpi-lab/pkg/query"
	"github.com/JaimeStill/dpi-lab/pkg/repository"
)

var columns = []struct{ column, field string }{
	{"id", "ID"},
	{"name", "Name"},
	{"filename", "Filename"},
	{"content_type", "ContentType"},
	{"size_bytes", "SizeBytes"},
	{"page_count", "PageCount"},
	{"storage_key", "StorageKey"},
	{"created_at", "CreatedAt"},
	{"updated_at", "UpdatedAt"},
}

var projection = func() *query.ProjectionMap {
	p := query.NewProjectionMap("public", "documents", "d")
	for _, c := range columns {
		p.Project(c.column, c.field)
	}
	return p
}()

// newest first unless the request sorts otherwise.
var newest = query.SortField{Field: "CreatedAt", Descending: true}

const returning = "id, name, filename, content_type, size_bytes, page_count, storage_key, created_at, updated_at"

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(&d.ID, &d.Name, &d.Filename, &d.ContentType, &d.SizeBytes,
		&d.PageCount, &d.StorageKey, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// Filters narrows a listing to names and content types containing the
// given text.
type Filters struct {
	Name        *string
	ContentType *string
}

func FiltersFromQuery(values url.Values) Filters {
	optional := func(key string) *string {
		if v := values.Get(key); v != "" {
			return &v
		}
		return nil
	}
	return Filters{
		Name:        optional("name"),
		ContentType: optional("content_type"),
	}
}

func (f Filters) apply(b *query.Builder) {
	b.WhereContains("Name", f.Name).WhereContains("ContentType", f.ContentType)
}
