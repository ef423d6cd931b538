package pages

import (
	"github.com/JaimeStill/dpi-lab/pkg/query"
	"github.com/JaimeStill/dpi-lab/pkg/repository"
)

var projection = query.NewProjectionMap("public", "pages", "p").
	Project("id", "ID").
	Project("document_id", "DocumentID").
	Project("page_number", "PageNumber").
	Project("dpi_x", "DPIX").
	Project("dpi_y", "DPIY").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "PageNumber"}

const returning = "id, document_id, page_number, dpi_x, dpi_y, created_at, updated_at"

func scanPage(s repository.Scanner) (Page, error) {
	var p Page
	err := s.Scan(
		&p.ID,
		&p.DocumentID,
		&p.PageNumber,
		&p.DPI.Horizontal,
		&p.DPI.Vertical,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
