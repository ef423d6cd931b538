package documents

import (
	"context"

	"github.com/JaimeStill/dpi-lab/pkg/pagination"
	"github.com/google/uuid"
)

// System is the document store: file bytes in blob storage, metadata and
// the page sequence in the database.
type System interface {
	Handler(maxUploadSize int64) *Handler
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Document], error)
	Find(ctx context.Context, id uuid.UUID) (*Document, error)

	// Create stores the file and opens PageCount pages at cmd.DPI. A
	// failure at any step leaves nothing behind.
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	Rename(ctx context.Context, id uuid.UUID, cmd RenameCommand) (*Document, error)

	// Delete removes the document, its pages and their images. Deleting
	// an unknown id succeeds.
	Delete(ctx context.Context, id uuid.UUID) error
}
