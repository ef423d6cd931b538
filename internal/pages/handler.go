package pages

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/dpi-lab/pkg/handlers"
	"github.com/JaimeStill/dpi-lab/pkg/routes"
	"github.com/google/uuid"
)

// Handler serves the page sequence of a document. Resolution changes go
// through the changes handler.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, logger: logger.With("handler", "pages")}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/documents/{documentId}/pages",
		Tags:        []string{"Pages"},
		Description: "Document page sequence and working resolution",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: handlers.WithUUID(h.logger, "documentId", h.list), OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{pageId}", Handler: handlers.WithUUID(h.logger, "documentId", h.find), OpenAPI: Spec.Find},
		},
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, documentID uuid.UUID) {
	sequence, err := h.sys.List(r.Context(), documentID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, sequence)
}

func (h *Handler) find(w http.ResponseWriter, r *http.Request, documentID uuid.UUID) {
	pageID, err := handlers.PathUUID(r, "pageId")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	page, err := h.sys.Find(r.Context(), documentID, pageID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, page)
}
