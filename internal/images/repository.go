package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/dpi-lab/internal/documents"
	"github.com/JaimeStill/dpi-lab/internal/pages"
	"github.com/JaimeStill/dpi-lab/pkg/query"
	"github.com/JaimeStill/dpi-lab/pkg/repository"
	"github.com/JaimeStill/dpi-lab/pkg/storage"
	"github.com/google/uuid"
)

type repo struct {
	db           *sql.DB
	documents    documents.System
	pages        pages.System
	storage      storage.System
	logger       *slog.Logger
	maxRenderDPI int
}

// New creates the image system. Pages whose resolution exceeds
// maxRenderDPI are refused.
func New(
	docs documents.System,
	pgs pages.System,
	db *sql.DB,
	storage storage.System,
	logger *slog.Logger,
	maxRenderDPI int,
) System {
	return &repo{
		db:           db,
		documents:    docs,
		pages:        pgs,
		storage:      storage,
		logger:       logger.With("system", "images"),
		maxRenderDPI: maxRenderDPI,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) ForDocument(ctx context.Context, documentID uuid.UUID) ([]Image, error) {
	sequence, err := r.pages.List(ctx, documentID)
	if err != nil {
		return nil, err
	}

	imgs, err := r.list(ctx, documentID)
	if err != nil {
		return nil, err
	}

	MarkStale(imgs, sequence)
	return imgs, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Image, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	img, err := repository.QueryOne(ctx, r.db, q, args, scanImage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &img, nil
}

func (r *repo) Data(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	img, err := r.Find(ctx, id)
	if err != nil {
		return nil, "", err
	}

	data, err := r.storage.Retrieve(ctx, img.StorageKey)
	if err != nil {
		return nil, "", fmt.Errorf("retrieve image: %w", err)
	}

	contentType, err := img.Format.MimeType()
	if err != nil {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

func (r *repo) Render(ctx context.Context, documentID uuid.UUID, cmd RenderCommand) ([]Image, error) {
	format, err := ParseFormat(cmd.Format)
	if err != nil {
		return nil, err
	}

	doc, err := r.documents.Find(ctx, documentID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, documentID)
		}
		return nil, err
	}
	if !Renderable(doc.ContentType) {
		return nil, fmt.Errorf("%w: %s", ErrNotRenderable, doc.ContentType)
	}

	sequence, err := r.pages.List(ctx, documentID)
	if err != nil {
		return nil, err
	}

	targets, err := SelectPages(sequence, cmd.Pages)
	if err != nil {
		return nil, err
	}

	for _, p := range targets {
		if err := CheckRenderDPI(p.DPI, r.maxRenderDPI); err != nil {
			return nil, fmt.Errorf("page %d: %w", p.PageNumber, err)
		}
	}

	if len(targets) == 0 {
		return []Image{}, nil
	}

	existing, err := r.existing(ctx, documentID, format)
	if err != nil {
		return nil, err
	}

	src, err := r.storage.Path(ctx, doc.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	jobs := make([]renderJob, len(targets))
	for i, p := range targets {
		jobs[i] = renderJob{index: i, page: p}
		if img, ok := existing[p.ID]; ok {
			jobs[i].existing = &img
		}
	}

	out, err := r.renderAll(ctx, src, format, cmd.Force, jobs)
	if err != nil {
		return nil, err
	}

	r.logger.Info("pages rendered", "document_id", documentID, "images", len(out), "format", format)
	return out, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	img, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	q := `DELETE FROM images WHERE id = $1`
	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.storage.Delete(ctx, img.StorageKey); err != nil {
		r.logger.Warn("image blob cleanup failed", "storage_key", img.StorageKey, "error", err)
	}

	r.logger.Info("image deleted", "id", id, "page_id", img.PageID)
	return nil
}

func (r *repo) list(ctx context.Context, documentID uuid.UUID, formats ...document.ImageFormat) ([]Image, error) {
	qb := query.
		NewBuilder(projection, pageOrder...).
		WhereEquals("DocumentID", documentID)

	if len(formats) > 0 {
		values := make([]any, len(formats))
		for i, f := range formats {
			values[i] = string(f)
		}
		qb.WhereIn("Format", values)
	}

	q, args := qb.BuildAll()
	imgs, err := repository.QueryMany(ctx, r.db, q, args, scanImage)
	if err != nil {
		return nil, fmt.Errorf("query images: %w", err)
	}
	return imgs, nil
}

// existing maps page ids to their current image in format.
func (r *repo) existing(ctx context.Context, documentID uuid.UUID, format document.ImageFormat) (map[uuid.UUID]Image, error) {
	imgs, err := r.list(ctx, documentID, format)
	if err != nil {
		return nil, err
	}

	byPage := make(map[uuid.UUID]Image, len(imgs))
	for _, img := range imgs {
		byPage[img.PageID] = img
	}
	return byPage, nil
}

// save records img as the page's image in its format and returns the blob
// key of the image it replaced, if any.
func (r *repo) save(ctx context.Context, img Image) (*Image, string, error) {
	q := `WITH prior AS (
			SELECT storage_key FROM images WHERE page_id = $2 AND format = $5
		), saved AS (
			INSERT INTO images(id, page_id, document_id, page_number, format, dpi_x, dpi_y, storage_key, size_bytes)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (page_id, format) DO UPDATE SET
				dpi_x = EXCLUDED.dpi_x,
				dpi_y = EXCLUDED.dpi_y,
				storage_key = EXCLUDED.storage_key,
				size_bytes = EXCLUDED.size_bytes,
				rendered_at = NOW()
			RETURNING ` + returning + `
		)
		SELECT saved.*, prior.storage_key FROM saved LEFT JOIN prior ON TRUE`

	result, err := repository.QueryOne(ctx, r.db, q, []any{
		img.ID, img.PageID, img.DocumentID, img.PageNumber, string(img.Format),
		img.DPI.Horizontal, img.DPI.Vertical, img.StorageKey, img.SizeBytes,
	}, scanSaved)
	if err != nil {
		return nil, "", repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	replaced := ""
	if result.replaced.Valid && result.replaced.String != result.image.StorageKey {
		replaced = result.replaced.String
	}
	return &result.image, replaced, nil
}
