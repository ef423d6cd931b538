package main

import (
	"io"
	"net/http"

	"github.com/JaimeStill/dpi-lab/internal/api"
	"github.com/JaimeStill/dpi-lab/internal/config"
	"github.com/JaimeStill/dpi-lab/internal/infrastructure"
	"github.com/JaimeStill/dpi-lab/pkg/lifecycle"
	"github.com/JaimeStill/dpi-lab/pkg/module"
)

// newRouter mounts the API module beside the health endpoints.
func newRouter(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Router, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	router := healthRouter(infra.Lifecycle)
	router.Mount(apiModule)
	return router, nil
}

// healthRouter answers /healthz while the process is up and /readyz once
// ready reports true.
func healthRouter(ready lifecycle.ReadinessChecker) *module.Router {
	router := module.NewRouter()
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		plain(w, http.StatusOK, "OK")
	})
	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if ready.Ready() {
			plain(w, http.StatusOK, "READY")
			return
		}
		plain(w, http.StatusServiceUnavailable, "NOT READY")
	})
	return router
}

func plain(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}
