// Package landing hosts the browser-facing landing page service.
package landing

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/multimodal-ai/internal/platform/timeouts"
	landingapp "github.com/louisbranch/multimodal-ai/internal/services/landing/app"
	module "github.com/louisbranch/multimodal-ai/internal/services/landing/module"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/modules"
	apperrors "github.com/louisbranch/multimodal-ai/internal/services/landing/platform/errors"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/platform/httpx"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/platform/observability"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/platform/weberror"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/routepath"
	landingstatic "github.com/louisbranch/multimodal-ai/internal/services/landing/static"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// TracerName scopes spans emitted by the landing service.
const TracerName = "github.com/louisbranch/multimodal-ai/internal/services/landing"

// Config defines startup inputs for the landing service.
type Config struct {
	HTTPAddr string
	// BackendDisplay is shown on the landing and health pages. It is never
	// dialed.
	BackendDisplay string
	Logger         *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Server hosts the landing HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	deps := module.Dependencies{
		BackendDisplay: cfg.BackendDisplay,
		Now:            cfg.Now,
		Logger:         logger,
		Tracer:         otel.Tracer(TracerName),
	}
	h, err := landingapp.Composer{}.Compose(landingapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, staticHandler(deps))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

// staticHandler serves embedded assets by exact file name. Directories,
// including the prefix itself, are not listed.
func staticHandler(deps module.Dependencies) http.Handler {
	files := http.FileServer(http.FS(landingstatic.FS))
	serve := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if name == "" || !fs.ValidPath(name) {
			weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindNotFound, "static asset not found"), deps)
			return
		}
		info, err := fs.Stat(landingstatic.FS, name)
		if err != nil || info.IsDir() {
			weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindNotFound, "static asset not found: "+name), deps)
			return
		}
		files.ServeHTTP(w, r)
	})
	return httpx.RequireMethod(http.MethodGet)(http.StripPrefix(routepath.StaticPrefix, serve))
}

// NewServer validates config and constructs a landing server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose landing handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           otelhttp.NewHandler(handler, "landing.http"),
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
			ErrorLog:          zap.NewStdLog(logger),
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("landing server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves HTTP traffic on listener until context cancellation or server
// stop. The listener is closed on return.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("landing server is nil")
	}
	if listener == nil {
		return errors.New("listener is required")
	}
	s.logger.Info("landing server listening", zap.String("addr", listener.Addr().String()))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown landing http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve landing http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
