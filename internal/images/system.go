package images

import (
	"context"

	"github.com/google/uuid"
)

// System defines page image operations.
type System interface {
	Handler() *Handler

	// ForDocument lists the images of a document in page number order,
	// flagging those rendered at a resolution the page no longer has.
	ForDocument(ctx context.Context, documentID uuid.UUID) ([]Image, error)
	Find(ctx context.Context, id uuid.UUID) (*Image, error)

	// Data returns the image bytes and their content type.
	Data(ctx context.Context, id uuid.UUID) ([]byte, string, error)

	// Render renders the selected pages at each page's working resolution
	// and returns their images in page number order. Every page is checked
	// against the render limit before any page is rendered.
	Render(ctx context.Context, documentID uuid.UUID, cmd RenderCommand) ([]Image, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
