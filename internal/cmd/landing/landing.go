// Package landing parses landing command flags and starts the page server.
package landing

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/multimodal-ai/internal/platform/cmd"
	landingsvc "github.com/louisbranch/multimodal-ai/internal/services/landing"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/content"
	"go.uber.org/zap"
)

// Config holds landing command configuration.
type Config struct {
	HTTPAddr   string `env:"LANDING_HTTP_ADDR" envDefault:"localhost:8080"`
	BackendURL string `env:"BACKEND_URL"       envDefault:"http://localhost:8000"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "landing HTTP listen address")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "backend URL shown on the landing page")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the landing server and serves until ctx is canceled.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLanding, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		backend := content.DisplayBackend(cfg.BackendURL)
		logger.Info("starting landing service",
			zap.String("http_addr", cfg.HTTPAddr),
			zap.String("backend", backend),
		)
		srv, err := landingsvc.NewServer(ctx, landingsvc.Config{
			HTTPAddr:       cfg.HTTPAddr,
			BackendDisplay: backend,
			Logger:         logger,
		})
		if err != nil {
			return fmt.Errorf("build landing server: %w", err)
		}
		defer srv.Close()
		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve landing: %w", err)
		}
		return nil
	})
}
