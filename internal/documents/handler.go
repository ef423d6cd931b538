package documents

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/dpi-lab/pkg/handlers"
	"github.com/JaimeStill/dpi-lab/pkg/pagination"
	"github.com/JaimeStill/dpi-lab/pkg/routes"
	"github.com/google/uuid"
)

// Handler serves documents under /documents.
type Handler struct {
	sys           System
	logger        *slog.Logger
	pages         pagination.Config
	maxUploadSize int64
}

func NewHandler(sys System, logger *slog.Logger, pages pagination.Config, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "documents"),
		pages:         pages,
		maxUploadSize: maxUploadSize,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/documents",
		Tags:        []string{"Documents"},
		Description: "Uploaded documents and their starting resolution",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Upload, OpenAPI: Spec.Upload},
			{Method: "GET", Pattern: "/{id}", Handler: handlers.WithUUID(h.logger, "id", h.find), OpenAPI: Spec.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: handlers.WithUUID(h.logger, "id", h.rename), OpenAPI: Spec.Rename},
			{Method: "DELETE", Pattern: "/{id}", Handler: handlers.WithUUID(h.logger, "id", h.delete), OpenAPI: Spec.Delete},
		},
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	result, err := h.sys.List(r.Context(), pagination.ParsePageRequest(values, h.pages), FiltersFromQuery(values))
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	cmd, err := ReadUpload(w, r, h.maxUploadSize)
	if err != nil {
		h.fail(w, err)
		return
	}

	doc, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, doc)
}

func (h *Handler) find(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	doc, err := h.sys.Find(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, doc)
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var cmd RenameCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	doc, err := h.sys.Rename(r.Context(), id, cmd)
	if err != nil {
		h.fail(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, doc)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.sys.Delete(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
