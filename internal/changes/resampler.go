package changes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/dpi-lab/internal/images"
	"github.com/JaimeStill/dpi-lab/internal/pages"
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/google/uuid"
)

// Resampler executes a change request. ids are in document order.
type Resampler interface {
	Resample(ctx context.Context, documentID uuid.UUID, ids []uuid.UUID, dpi resolution.DPI, render bool) (*Result, error)
}

type resampler struct {
	pages        pages.System
	images       images.System
	maxRenderDPI int
	logger       *slog.Logger
}

// NewResampler persists the new resolution on the target pages and, when
// asked to, re-renders them at that resolution.
func NewResampler(pages pages.System, images images.System, maxRenderDPI int, logger *slog.Logger) Resampler {
	return &resampler{
		pages:        pages,
		images:       images,
		maxRenderDPI: maxRenderDPI,
		logger:       logger.With("system", "resampler"),
	}
}

func (r *resampler) Resample(ctx context.Context, documentID uuid.UUID, ids []uuid.UUID, dpi resolution.DPI, render bool) (*Result, error) {
	if render {
		if err := images.CheckRenderDPI(dpi, r.maxRenderDPI); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
	}

	updated, err := r.pages.SetResolution(ctx, documentID, ids, dpi)
	if err != nil {
		return nil, err
	}

	result := &Result{DPI: dpi, Pages: updated}
	if !render || len(updated) == 0 {
		return result, nil
	}

	rendered, err := r.images.Render(ctx, documentID, images.RenderCommand{
		Pages: pages.IDs(updated),
	})
	if err != nil {
		return nil, err
	}
	result.Images = rendered

	r.logger.Info("pages resampled", "document_id", documentID, "pages", len(updated), "images", len(rendered), "dpi", dpi.String())
	return result, nil
}
