package images

import (
	"database/sql"

	"github.com/JaimeStill/dpi-lab/pkg/query"
	"github.com/JaimeStill/dpi-lab/pkg/repository"
)

var projection = query.NewProjectionMap("public", "images", "i").
	Project("id", "ID").
	Project("page_id", "PageID").
	Project("document_id", "DocumentID").
	Project("page_number", "PageNumber").
	Project("format", "Format").
	Project("dpi_x", "DPIX").
	Project("dpi_y", "DPIY").
	Project("storage_key", "StorageKey").
	Project("size_bytes", "SizeBytes").
	Project("rendered_at", "RenderedAt")

var pageOrder = []query.SortField{
	{Field: "PageNumber"},
	{Field: "Format"},
}

const returning = "id, page_id, document_id, page_number, format, dpi_x, dpi_y, storage_key, size_bytes, rendered_at"

func scanImage(s repository.Scanner) (Image, error) {
	var img Image
	err := s.Scan(
		&img.ID,
		&img.PageID,
		&img.DocumentID,
		&img.PageNumber,
		&img.Format,
		&img.DPI.Horizontal,
		&img.DPI.Vertical,
		&img.StorageKey,
		&img.SizeBytes,
		&img.RenderedAt,
	)
	return img, err
}

// saved is an upserted image with the blob key it replaced, if any.
type saved struct {
	image    Image
	replaced sql.NullString
}

func scanSaved(s repository.Scanner) (saved, error) {
	var out saved
	err := s.Scan(
		&out.image.ID,
		&out.image.PageID,
		&out.image.DocumentID,
		&out.image.PageNumber,
		&out.image.Format,
		&out.image.DPI.Horizontal,
		&out.image.DPI.Vertical,
		&out.image.StorageKey,
		&out.image.SizeBytes,
		&out.image.RenderedAt,
		&out.replaced,
	)
	return out, err
}
