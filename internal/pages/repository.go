package pages

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/internal/scope"
	"github.com/JaimeStill/dpi-lab/pkg/query"
	"github.com/JaimeStill/dpi-lab/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates the page repository.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "pages"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// InsertSequence creates pages 1..count for a document at dpi. It runs on
// the caller's executor so the sequence commits with the document row.
func InsertSequence(ctx context.Context, e repository.Executor, documentID uuid.UUID, count int, dpi resolution.DPI) error {
	if count <= 0 {
		return nil
	}
	if err := dpi.Validate(); err != nil {
		return err
	}

	q := `INSERT INTO pages(id, document_id, page_number, dpi_x, dpi_y)
		SELECT gen_random_uuid(), $1, n, $2, $3
		FROM generate_series(1, $4) AS n`

	if _, err := e.ExecContext(ctx, q, documentID, dpi.Horizontal, dpi.Vertical, count); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return nil
}

func (r *repo) List(ctx context.Context, documentID uuid.UUID) ([]Page, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("DocumentID", documentID).
		BuildAll()

	pages, err := repository.QueryMany(ctx, r.db, q, args, scanPage)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	return pages, nil
}

func (r *repo) Find(ctx context.Context, documentID, id uuid.UUID) (*Page, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("DocumentID", documentID).
		WhereEquals("ID", id).
		BuildSingleOrNull()

	page, err := repository.QueryOne(ctx, r.db, q, args, scanPage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &page, nil
}

func (r *repo) Context(ctx context.Context, documentID, current uuid.UUID, selected []uuid.UUID) (scope.Context[uuid.UUID], error) {
	pages, err := r.List(ctx, documentID)
	if err != nil {
		return scope.Context[uuid.UUID]{}, err
	}
	return BuildContext(IDs(pages), current, selected)
}

// BuildContext validates current and selected against sequence. Selected
// pages are deduplicated, keeping the first occurrence.
func BuildContext(sequence []uuid.UUID, current uuid.UUID, selected []uuid.UUID) (scope.Context[uuid.UUID], error) {
	if len(sequence) == 0 {
		return scope.Context[uuid.UUID]{}, ErrNoPages
	}

	members := scope.NewSet(sequence...)
	if !members.Contains(current) {
		return scope.Context[uuid.UUID]{}, fmt.Errorf("%w: %s", ErrPageNotInDocument, current)
	}

	unique := make([]uuid.UUID, 0, len(selected))
	for _, id := range selected {
		if !members.Contains(id) {
			return scope.Context[uuid.UUID]{}, fmt.Errorf("%w: %s", ErrPageNotInDocument, id)
		}
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}

	return scope.Context[uuid.UUID]{
		Current:  current,
		Sequence: sequence,
		Selected: unique,
	}, nil
}

func (r *repo) SetResolution(ctx context.Context, documentID uuid.UUID, ids []uuid.UUID, dpi resolution.DPI) ([]Page, error) {
	if err := dpi.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []Page{}, nil
	}

	unique := scope.NewSet(ids...)
	keys := make([]string, 0, unique.Len())
	for id := range unique {
		keys = append(keys, id.String())
	}

	q := `UPDATE pages SET dpi_x = $1, dpi_y = $2, updated_at = NOW()
		WHERE document_id = $3 AND id = ANY($4::uuid[])
		RETURNING ` + returning

	pages, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]Page, error) {
		updated, err := repository.QueryMany(ctx, tx, q, []any{dpi.Horizontal, dpi.Vertical, documentID, keys}, scanPage)
		if err != nil {
			return nil, err
		}
		if len(updated) != len(keys) {
			return nil, fmt.Errorf("%w: updated %d of %d pages", ErrPageNotInDocument, len(updated), len(keys))
		}
		return updated, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	SortByNumber(pages)

	r.logger.Info("page resolution set", "document_id", documentID, "pages", len(pages), "dpi", dpi.String())
	return pages, nil
}

// SortByNumber orders pages by page number.
func SortByNumber(pages []Page) {
	slices.SortFunc(pages, func(a, b Page) int {
		return a.PageNumber - b.PageNumber
	})
}
