// Package web hosts the browser-facing todo list service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/nexttodo/todolist/internal/platform/timeouts"
	webapp "github.com/nexttodo/todolist/internal/services/web/app"
	module "github.com/nexttodo/todolist/internal/services/web/module"
	"github.com/nexttodo/todolist/internal/services/web/modules"
	"github.com/nexttodo/todolist/internal/services/web/platform/httpx"
	"github.com/nexttodo/todolist/internal/services/web/platform/observability"
	"github.com/nexttodo/todolist/internal/services/web/platform/pagerender"
	"github.com/nexttodo/todolist/internal/services/web/routepath"
	webstatic "github.com/nexttodo/todolist/internal/services/web/static"
	webtemplates "github.com/nexttodo/todolist/internal/services/web/templates"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr      string
	AssetBaseURL  string
	HTMXScriptURL string
	Price         webtemplates.Price
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	deps := module.Dependencies{
		Render: pagerender.Settings{
			AssetBaseURL:  strings.TrimSpace(cfg.AssetBaseURL),
			HTMXScriptURL: strings.TrimSpace(cfg.HTMXScriptURL),
		},
		Price: cfg.Price,
	}
	h, err := webapp.Compose(webapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultPublicModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Tracing(nil),
		observability.RequestLogger(log.Default()),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil || s.httpServer == nil {
		return errors.New("web server is not initialized")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
