package images

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/dpi-lab/pkg/handlers"
	"github.com/JaimeStill/dpi-lab/pkg/routes"
	"github.com/google/uuid"
)

// Handler serves page images. Rendering is addressed through the owning
// document, stored images by their own id.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, logger: logger.With("handler", "images")}
}

func (h *Handler) Routes() routes.Group {
	byDocument := func(next func(http.ResponseWriter, *http.Request, uuid.UUID)) http.HandlerFunc {
		return handlers.WithUUID(h.logger, "documentId", next)
	}
	byImage := func(next func(http.ResponseWriter, *http.Request, uuid.UUID)) http.HandlerFunc {
		return handlers.WithUUID(h.logger, "id", next)
	}

	return routes.Group{
		Tags:        []string{"Images"},
		Description: "Page rendering at the working resolution",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/documents/{documentId}/images", Handler: byDocument(h.forDocument), OpenAPI: Spec.ForDocument},
			{Method: "POST", Pattern: "/documents/{documentId}/images", Handler: byDocument(h.render), OpenAPI: Spec.Render},
			{Method: "GET", Pattern: "/images/{id}", Handler: byImage(h.find), OpenAPI: Spec.Find},
			{Method: "GET", Pattern: "/images/{id}/data", Handler: byImage(h.data), OpenAPI: Spec.Data},
			{Method: "DELETE", Pattern: "/images/{id}", Handler: byImage(h.delete), OpenAPI: Spec.Delete},
		},
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
}

func (h *Handler) forDocument(w http.ResponseWriter, r *http.Request, documentID uuid.UUID) {
	imgs, err := h.sys.ForDocument(r.Context(), documentID)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, imgs)
}

// render accepts an empty body, which renders every page as PNG.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, documentID uuid.UUID) {
	var cmd RenderCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	imgs, err := h.sys.Render(r.Context(), documentID, cmd)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, imgs)
}

func (h *Handler) find(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	img, err := h.sys.Find(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, img)
}

func (h *Handler) data(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	data, contentType, err := h.sys.Data(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.sys.Delete(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
