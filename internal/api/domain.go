package api

import (
	"github.com/JaimeStill/dpi-lab/internal/changes"
	"github.com/JaimeStill/dpi-lab/internal/documents"
	"github.com/JaimeStill/dpi-lab/internal/images"
	"github.com/JaimeStill/dpi-lab/internal/pages"
	"github.com/JaimeStill/dpi-lab/internal/resolution"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents documents.System
	Pages     pages.System
	Images    images.System
	Changes   changes.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	documentsSys := documents.New(
		db,
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
		resolution.Isotropic(runtime.Resolution.DefaultDPI),
	)

	pagesSys := pages.New(db, runtime.Logger)

	imagesSys := images.New(
		documentsSys,
		pagesSys,
		db,
		runtime.Storage,
		runtime.Logger,
		runtime.Resolution.MaxRenderDPI,
	)

	resampler := changes.NewResampler(
		pagesSys,
		imagesSys,
		runtime.Resolution.MaxRenderDPI,
		runtime.Logger,
	)

	return &Domain{
		Documents: documentsSys,
		Pages:     pagesSys,
		Images:    imagesSys,
		Changes:   changes.New(pagesSys, resampler, runtime.Resolution, runtime.Logger),
	}
}
