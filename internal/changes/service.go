package changes

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/JaimeStill/dpi-lab/internal/pages"
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/internal/scope"
	"github.com/google/uuid"
)

type service struct {
	pages     pages.System
	resampler Resampler
	config    resolution.Config
	logger    *slog.Logger
}

// New creates the change system. cfg supplies the preset catalog and the
// default for whether applied changes are rendered.
func New(pages pages.System, resampler Resampler, cfg resolution.Config, logger *slog.Logger) System {
	return &service{
		pages:     pages,
		resampler: resampler,
		config:    cfg,
		logger:    logger.With("system", "changes"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) Options(ctx context.Context, documentID, pageID uuid.UUID, selected []uuid.UUID) (*Options, error) {
	page, err := s.pages.Find(ctx, documentID, pageID)
	if err != nil {
		return nil, err
	}

	sc, err := s.pages.Context(ctx, documentID, pageID, selected)
	if err != nil {
		return nil, err
	}

	catalog := resolution.NewCatalog(s.config.Presets...)

	return &Options{
		Page:      page.ID,
		Current:   page.DPI,
		Selection: catalog.Initialize(page.DPI),
		Entries:   catalog.Entries(),
		Scopes:    scope.Available(sc),
		MinDPI:    resolution.MinDPI,
		MaxDPI:    resolution.MaxDPI,
	}, nil
}

func (s *service) Preview(ctx context.Context, documentID uuid.UUID, cmd Command) (*Preview, error) {
	req, sc, err := s.build(ctx, documentID, cmd)
	if err != nil {
		return nil, err
	}

	return &Preview{
		Scope: cmd.Scope,
		DPI:   req.DPI,
		Pages: req.Pages.Ordered(sc.Sequence),
	}, nil
}

func (s *service) Apply(ctx context.Context, documentID uuid.UUID, cmd Command) (*Result, error) {
	req, sc, err := s.build(ctx, documentID, cmd)
	if err != nil {
		return nil, err
	}

	render := s.config.RenderOnChange()
	if cmd.Render != nil {
		render = *cmd.Render
	}

	result, err := s.resampler.Resample(ctx, documentID, req.Pages.Ordered(sc.Sequence), req.DPI, render)
	if err != nil {
		return nil, err
	}
	result.Scope = cmd.Scope

	s.logger.Info(
		"resolution changed",
		"document_id", documentID,
		"scope", cmd.Scope.String(),
		"dpi", req.DPI.String(),
		"pages", len(result.Pages),
	)
	return result, nil
}

func (s *service) build(ctx context.Context, documentID uuid.UUID, cmd Command) (*Request[uuid.UUID], scope.Context[uuid.UUID], error) {
	sc, err := s.pages.Context(ctx, documentID, cmd.CurrentPage, cmd.SelectedPages)
	if err != nil {
		return nil, sc, err
	}

	raw := cmd.DPI
	if cmd.Preset != nil {
		raw, err = s.replay(ctx, documentID, cmd)
		if err != nil {
			return nil, sc, err
		}
	}

	req, err := Build(raw, cmd.Scope, sc)
	if err != nil {
		return nil, sc, err
	}

	if !slices.Contains(scope.Available(sc), cmd.Scope) {
		return nil, sc, fmt.Errorf("%w: %s with %d selected pages", ErrScopeUnavailable, cmd.Scope, len(sc.Selected))
	}

	return req, sc, nil
}

// replay runs the preset selection in cmd through a catalog initialized
// from the current page and returns the text it would submit.
func (s *service) replay(ctx context.Context, documentID uuid.UUID, cmd Command) (string, error) {
	page, err := s.pages.Find(ctx, documentID, cmd.CurrentPage)
	if err != nil {
		return "", err
	}

	catalog := resolution.NewCatalog(s.config.Presets...)
	catalog.Initialize(page.DPI)

	if _, err := catalog.Select(*cmd.Preset); err != nil {
		return "", err
	}

	if catalog.State() == resolution.StateCustomEditing && cmd.DPI != "" {
		catalog.EditCustomText(cmd.DPI)
	}

	return catalog.Text(), nil
}
