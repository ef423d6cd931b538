package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/JaimeStill/dpi-lab/internal/pages"
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/pkg/pagination"
	"github.com/JaimeStill/dpi-lab/pkg/query"
	"github.com/JaimeStill/dpi-lab/pkg/repository"
	"github.com/JaimeStill/dpi-lab/pkg/storage"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pages      pagination.Config
	defaultDPI resolution.DPI
}

// New creates the document system. Uploads without a dpi open their pages
// at defaultDPI.
func New(db *sql.DB, storage storage.System, logger *slog.Logger, pages pagination.Config, defaultDPI resolution.DPI) System {
	return &repo{
		db:         db,
		storage:    storage,
		logger:     logger.With("system", "documents"),
		pages:      pages,
		defaultDPI: defaultDPI,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pages, maxUploadSize)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pages)

	qb := query.NewBuilder(projection, newest).WhereSearch(page.Search, "Name", "Filename")
	filters.apply(qb)
	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	var total int
	countSQL, countArgs := qb.BuildCount()
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	doc, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &doc, nil
}

// startDPI is the resolution new pages of cmd open at.
func (r *repo) startDPI(cmd CreateCommand) (resolution.DPI, error) {
	if cmd.DPI == (resolution.DPI{}) {
		return r.defaultDPI, nil
	}
	return cmd.DPI, cmd.DPI.Validate()
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	if err := requireName(cmd.Name); err != nil {
		return nil, err
	}
	dpi, err := r.startDPI(cmd)
	if err != nil {
		return nil, fmt.Errorf("dpi: %w", err)
	}

	id := uuid.New()
	key := StorageKey(id, cmd.Filename)
	if err := r.storage.Store(ctx, key, cmd.Data); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	q := `INSERT INTO documents(id, name, filename, content_type, size_bytes, page_count, storage_key)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + returning
	args := []any{id, cmd.Name, cmd.Filename, cmd.ContentType, int64(len(cmd.Data)), cmd.PageCount, key}

	doc, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		doc, err := repository.QueryOne(ctx, tx, q, args, scanDocument)
		if err != nil || doc.PageCount == nil {
			return doc, err
		}
		if err := pages.InsertSequence(ctx, tx, doc.ID, *doc.PageCount, dpi); err != nil {
			return doc, fmt.Errorf("open pages: %w", err)
		}
		return doc, nil
	})
	if err != nil {
		r.discard(ctx, key)
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document created", "id", doc.ID, "storage_key", key, "pages", doc.PageCount, "dpi", dpi.String())
	return &doc, nil
}

func (r *repo) Rename(ctx context.Context, id uuid.UUID, cmd RenameCommand) (*Document, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	q := `UPDATE documents SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + returning
	doc, err := repository.QueryOne(ctx, r.db, q, []any{cmd.Name, id}, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document renamed", "id", doc.ID, "name", doc.Name)
	return &doc, nil
}

// Delete removes the row first; pages and images cascade with it. Blobs
// are collected beforehand and removed once the row is gone.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	keys, err := repository.QueryMany(ctx, r.db,
		`SELECT storage_key FROM documents WHERE id = $1
		UNION ALL
		SELECT storage_key FROM images WHERE document_id = $1`,
		[]any{id},
		func(s repository.Scanner) (string, error) {
			var key string
			err := s.Scan(&key)
			return key, err
		},
	)
	if err != nil {
		return fmt.Errorf("collect blobs: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM documents WHERE id = $1`, id); err != nil {
		if err = repository.MapError(err, ErrNotFound, ErrDuplicate); errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	for _, key := range keys {
		r.discard(ctx, key)
	}
	r.logger.Info("document deleted", "id", id, "blobs", len(keys))
	return nil
}

func (r *repo) discard(ctx context.Context, key string) {
	if err := r.storage.Delete(ctx, key); err != nil {
		r.logger.Error("blob cleanup failed", "storage_key", key, "error", err)
	}
}

// StorageKey places a document's bytes under its id, keeping a cleaned
// copy of the uploaded filename.
func StorageKey(id uuid.UUID, filename string) string {
	return path.Join("documents", id.String(), safeName(filename))
}

func safeName(filename string) string {
	filename = strings.ReplaceAll(filename, `\`, "/")
	base := path.Base(filename)
	if base == "." || base == ".." || base == "/" {
		return "document"
	}
	return strings.Map(func(c rune) rune {
		if c < ' ' || strings.ContainsRune(` :*?"<>|`, c) {
			return '_'
		}
		return c
	}, base)
}
