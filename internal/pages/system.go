package pages

import (
	"context"

	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/internal/scope"
	"github.com/google/uuid"
)

// System defines page sequence operations.
type System interface {
	Handler() *Handler

	// List returns every page of a document in page number order.
	List(ctx context.Context, documentID uuid.UUID) ([]Page, error)
	Find(ctx context.Context, documentID, id uuid.UUID) (*Page, error)

	// Context builds the selection context a scope is resolved against.
	// The current page and every selected page must belong to the document.
	Context(ctx context.Context, documentID, current uuid.UUID, selected []uuid.UUID) (scope.Context[uuid.UUID], error)

	// SetResolution assigns dpi to every page in ids within one transaction
	// and returns the updated pages in page number order.
	SetResolution(ctx context.Context, documentID uuid.UUID, ids []uuid.UUID, dpi resolution.DPI) ([]Page, error)
}
