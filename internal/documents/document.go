// Package documents keeps uploaded files and opens the page sequence of
// each PDF at the resolution chosen on upload. Page counts come from pdfcpu.
package documents

import (
	"time"

	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/google/uuid"
)

// Document is an uploaded file. PageCount is set for PDFs only.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count,omitempty"`
	StorageKey  string    `json:"storage_key"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand is a decoded upload. A zero DPI opens the pages at the
// configured default.
type CreateCommand struct {
	Name        string
	Filename    string
	ContentType string
	Data        []byte
	PageCount   *int
	DPI         resolution.DPI
}

// RenameCommand changes a document's display name. Stored bytes never change.
type RenameCommand struct {
	Name string `json:"name"`
}

func (c RenameCommand) validate() error {
	return requireName(c.Name)
}
