package changes

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/dpi-lab/pkg/handlers"
	"github.com/JaimeStill/dpi-lab/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides HTTP endpoints for resolution changes.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "changes"),
	}
}

// Routes returns the resolution change route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/documents/{documentId}",
		Tags:        []string{"Resolution"},
		Description: "Page resolution options and changes",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/pages/{pageId}/resolution", Handler: h.Options, OpenAPI: Spec.Options},
			{Method: "POST", Pattern: "/resolution", Handler: h.Apply, OpenAPI: Spec.Apply},
			{Method: "POST", Pattern: "/resolution/preview", Handler: h.Preview, OpenAPI: Spec.Preview},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	documentID, err := handlers.PathUUID(r, "documentId")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	pageID, err := handlers.PathUUID(r, "pageId")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	selected, err := selectedFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	opts, err := h.sys.Options(r.Context(), documentID, pageID, selected)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, opts)
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	documentID, cmd, ok := h.decode(w, r)
	if !ok {
		return
	}

	preview, err := h.sys.Preview(r.Context(), documentID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, preview)
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	documentID, cmd, ok := h.decode(w, r)
	if !ok {
		return
	}

	result, err := h.sys.Apply(r.Context(), documentID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (uuid.UUID, Command, bool) {
	var cmd Command

	documentID, err := handlers.PathUUID(r, "documentId")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, cmd, false
	}

	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, cmd, false
	}

	return documentID, cmd, true
}

// selectedFromQuery accepts repeated and comma separated selected values.
func selectedFromQuery(values url.Values) ([]uuid.UUID, error) {
	selected := make([]uuid.UUID, 0)
	for _, v := range values["selected"] {
		for item := range strings.SplitSeq(v, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			id, err := uuid.Parse(item)
			if err != nil {
				return nil, err
			}
			selected = append(selected, id)
		}
	}
	return selected, nil
}
