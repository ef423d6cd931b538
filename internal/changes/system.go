package changes

import (
	"context"

	"github.com/google/uuid"
)

// System defines resolution change operations for a document.
type System interface {
	Handler() *Handler

	// Options returns the catalog entries, initial selection, and available
	// scopes for changing the resolution of pageID.
	Options(ctx context.Context, documentID, pageID uuid.UUID, selected []uuid.UUID) (*Options, error)

	// Preview builds the change described by cmd without applying it.
	Preview(ctx context.Context, documentID uuid.UUID, cmd Command) (*Preview, error)

	// Apply builds the change described by cmd and hands it to the resampler.
	Apply(ctx context.Context, documentID uuid.UUID, cmd Command) (*Result, error)
}
