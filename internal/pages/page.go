// Package pages manages the ordered page sequence of each document and the
// working resolution of every page.
package pages

import (
	"time"

	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/google/uuid"
)

// Page is one page of a document with its working resolution.
type Page struct {
	ID         uuid.UUID      `json:"id"`
	DocumentID uuid.UUID      `json:"document_id"`
	PageNumber int            `json:"page_number"`
	DPI        resolution.DPI `json:"dpi"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// IDs returns the ids of pages in the order given.
func IDs(pages []Page) []uuid.UUID {
	ids := make([]uuid.UUID, len(pages))
	for i, p := range pages {
		ids[i] = p.ID
	}
	return ids
}
