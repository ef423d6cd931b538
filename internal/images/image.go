// Package images renders document pages at their working resolution and
// keeps one rendered image per page and format.
package images

import (
	"fmt"
	"strings"
	"time"

	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/dpi-lab/internal/pages"
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/internal/scope"
	"github.com/google/uuid"
)

// Image is the rendering of one page. DPI is the page resolution it was
// rendered at; Stale is set when the page has since changed resolution.
type Image struct {
	ID         uuid.UUID            `json:"id"`
	PageID     uuid.UUID            `json:"page_id"`
	DocumentID uuid.UUID            `json:"document_id"`
	PageNumber int                  `json:"page_number"`
	Format     document.ImageFormat `json:"format"`
	DPI        resolution.DPI       `json:"dpi"`
	StorageKey string               `json:"storage_key"`
	SizeBytes  int64                `json:"size_bytes"`
	RenderedAt time.Time            `json:"rendered_at"`
	Stale      bool                 `json:"stale"`
}

// RenderCommand selects the pages to render. No pages means every page of
// the document. Pages whose image already matches their resolution are
// reused unless Force is set.
type RenderCommand struct {
	Pages  []uuid.UUID `json:"pages,omitempty"`
	Format string      `json:"format,omitempty"`
	Force  bool        `json:"force"`
}

// ParseFormat resolves a requested output format. Empty selects PNG.
func ParseFormat(s string) (document.ImageFormat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return document.PNG, nil
	}

	format, err := document.ParseImageFormat(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return format, nil
}

// CheckRenderDPI rejects resolutions whose larger component exceeds limit.
func CheckRenderDPI(dpi resolution.DPI, limit int) error {
	if dpi.Max() > limit {
		return fmt.Errorf("%w: %s > %d", ErrRenderDPI, dpi, limit)
	}
	return nil
}

// StorageKey names the blob of a page rendered at dpi.
func StorageKey(documentID, pageID uuid.UUID, dpi resolution.DPI, format document.ImageFormat) string {
	return fmt.Sprintf("images/%s/%s/%s.%s", documentID, pageID, dpi, format)
}

// SelectPages returns the pages of sequence named by ids, in page number
// order. Every id must belong to sequence.
func SelectPages(sequence []pages.Page, ids []uuid.UUID) ([]pages.Page, error) {
	if len(ids) == 0 {
		return sequence, nil
	}

	want := scope.NewSet(ids...)
	found := scope.NewSet[uuid.UUID]()
	selected := make([]pages.Page, 0, want.Len())

	for _, p := range sequence {
		if want.Contains(p.ID) {
			selected = append(selected, p)
			found.Add(p.ID)
		}
	}

	for _, id := range ids {
		if !found.Contains(id) {
			return nil, fmt.Errorf("%w: %s", ErrPageNotInDocument, id)
		}
	}

	pages.SortByNumber(selected)
	return selected, nil
}

// MarkStale flags every image whose DPI no longer matches its page.
func MarkStale(imgs []Image, sequence []pages.Page) {
	current := make(map[uuid.UUID]resolution.DPI, len(sequence))
	for _, p := range sequence {
		current[p.ID] = p.DPI
	}

	for i := range imgs {
		dpi, ok := current[imgs[i].PageID]
		imgs[i].Stale = ok && dpi != imgs[i].DPI
	}
}
