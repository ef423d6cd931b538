package api

import (
	"net/http"

	"github.com/JaimeStill/dpi-lab/pkg/openapi"
	"github.com/JaimeStill/dpi-lab/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, basePath string, spec *openapi.Spec, runtime *Runtime, domain *Domain) {
	routes.Register(
		mux,
		basePath,
		spec,
		domain.Documents.Handler(runtime.MaxUploadSize).Routes(),
		domain.Pages.Handler().Routes(),
		domain.Images.Handler().Routes(),
		domain.Changes.Handler().Routes(),
	)
}
