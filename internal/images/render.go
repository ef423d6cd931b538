package images

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/JaimeStill/document-context/pkg/config"
	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/document-context/pkg/image"
	"github.com/JaimeStill/dpi-lab/internal/pages"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// pageSource gives page by page access to an opened document.
type pageSource interface {
	ExtractPage(pageNum int) (document.Page, error)
	io.Closer
}

// Renderable reports whether documents of contentType can be rendered.
func Renderable(contentType string) bool {
	return contentType == "application/pdf"
}

// JPEGQuality is the encoder quality used for JPEG output.
const JPEGQuality = 90

// RenderConfig builds the renderer settings for format at dpi.
func RenderConfig(format document.ImageFormat, dpi int) config.ImageConfig {
	cfg := config.ImageConfig{
		Format: string(format),
		DPI:    dpi,
	}
	if format == document.JPEG {
		cfg.Quality = JPEGQuality
	}
	return cfg
}

type renderJob struct {
	index    int
	page     pages.Page
	existing *Image
}

// current reports whether the job's existing image already matches the
// page resolution.
func (j renderJob) current() bool {
	return j.existing != nil && j.existing.DPI == j.page.DPI
}

// Stripe splits n jobs over workers, assigning job i to worker i%workers.
func Stripe(n, workers int) [][]int {
	workers = max(min(workers, n), 1)
	stripes := make([][]int, workers)
	for i := range n {
		stripes[i%workers] = append(stripes[i%workers], i)
	}
	return stripes
}

// renderAll renders jobs concurrently. Each worker opens its own copy of
// the document; results keep the order of jobs.
func (r *repo) renderAll(ctx context.Context, src string, format document.ImageFormat, force bool, jobs []renderJob) ([]Image, error) {
	out := make([]Image, len(jobs))
	g, gctx := errgroup.WithContext(ctx)

	for _, stripe := range Stripe(len(jobs), runtime.NumCPU()) {
		g.Go(func() error {
			var doc pageSource
			defer func() {
				if doc != nil {
					doc.Close()
				}
			}()

			renderers := map[int]image.Renderer{}
			for _, i := range stripe {
				if err := gctx.Err(); err != nil {
					return err
				}

				job := jobs[i]
				if job.current() && !force {
					out[job.index] = *job.existing
					continue
				}

				if doc == nil {
					opened, err := document.OpenPDF(src)
					if err != nil {
						return fmt.Errorf("%w: %v", ErrRenderFailed, err)
					}
					doc = opened
				}

				img, err := r.renderPage(gctx, doc, renderers, format, job)
				if err != nil {
					return fmt.Errorf("page %d: %w", job.page.PageNumber, err)
				}
				out[job.index] = *img
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) renderPage(ctx context.Context, doc pageSource, renderers map[int]image.Renderer, format document.ImageFormat, job renderJob) (*Image, error) {
	dpi := job.page.DPI.Max()

	renderer, ok := renderers[dpi]
	if !ok {
		var err error
		renderer, err = image.NewImageMagickRenderer(RenderConfig(format, dpi))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
		renderers[dpi] = renderer
	}

	page, err := doc.ExtractPage(job.page.PageNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	data, err := page.ToImage(renderer, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	key := StorageKey(job.page.DocumentID, job.page.ID, job.page.DPI, format)
	if err := r.storage.Store(ctx, key, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	img, replaced, err := r.save(ctx, Image{
		ID:         uuid.New(),
		PageID:     job.page.ID,
		DocumentID: job.page.DocumentID,
		PageNumber: job.page.PageNumber,
		Format:     format,
		DPI:        job.page.DPI,
		StorageKey: key,
		SizeBytes:  int64(len(data)),
	})
	if err != nil {
		if job.existing == nil || job.existing.StorageKey != key {
			if delErr := r.storage.Delete(ctx, key); delErr != nil {
				r.logger.Error("cleanup failed after db error", "storage_key", key, "error", delErr)
			}
		}
		return nil, err
	}

	if replaced != "" {
		if err := r.storage.Delete(ctx, replaced); err != nil {
			r.logger.Warn("replaced image blob cleanup failed", "storage_key", replaced, "error", err)
		}
	}
	return img, nil
}
