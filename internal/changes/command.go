package changes

import (
	"github.com/JaimeStill/dpi-lab/internal/images"
	"github.com/JaimeStill/dpi-lab/internal/pages"
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/internal/scope"
	"github.com/google/uuid"
)

// Command is a submitted resolution change. When Preset is set it is
// replayed through the preset catalog and DPI only supplies the custom text.
type Command struct {
	CurrentPage   uuid.UUID   `json:"current_page"`
	SelectedPages []uuid.UUID `json:"selected_pages,omitempty"`
	Scope         scope.Scope `json:"scope"`
	DPI           string      `json:"dpi"`
	Preset        *int        `json:"preset,omitempty"`
	Render        *bool       `json:"render,omitempty"`
}

// Options describes the choices offered for changing a page's resolution.
type Options struct {
	Page      uuid.UUID            `json:"page"`
	Current   resolution.DPI       `json:"current"`
	Entries   []resolution.Entry   `json:"entries"`
	Selection resolution.Selection `json:"selection"`
	Scopes    []scope.Scope        `json:"scopes"`
	MinDPI    int                  `json:"min_dpi"`
	MaxDPI    int                  `json:"max_dpi"`
}

// Preview is a built change that has not been applied.
type Preview struct {
	Scope scope.Scope    `json:"scope"`
	DPI   resolution.DPI `json:"dpi"`
	Pages []uuid.UUID    `json:"pages"`
}

// Result is an applied change. Pages are in document order.
type Result struct {
	Scope  scope.Scope    `json:"scope"`
	DPI    resolution.DPI `json:"dpi"`
	Pages  []pages.Page   `json:"pages"`
	Images []images.Image `json:"images,omitempty"`
}
