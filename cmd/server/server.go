package main

import (
	"fmt"
	"time"

	"github.com/JaimeStill/dpi-lab/internal/config"
	"github.com/JaimeStill/dpi-lab/internal/infrastructure"
)

// Server owns the infrastructure and the HTTP listener in front of it.
type Server struct {
	infra *infrastructure.Infrastructure
	http  *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	router, err := newRouter(cfg, infra)
	if err != nil {
		return nil, err
	}

	infra.Logger.Info("server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"base_path", cfg.API.BasePath,
		"default_dpi", cfg.Resolution.DefaultDPI,
		"max_render_dpi", cfg.Resolution.MaxRenderDPI,
	)

	return &Server{
		infra: infra,
		http:  newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

// Start registers every system with the lifecycle and binds the listener.
// /readyz reports ready once the startup hooks finish.
func (s *Server) Start() error {
	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("ready")
	}()
	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("shutting down", "timeout", timeout)
	if err := s.infra.Lifecycle.Shutdown(timeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.infra.Logger.Info("stopped")
	return nil
}
