// Package main starts the landing page service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	landingcmd "github.com/louisbranch/multimodal-ai/internal/cmd/landing"
	"github.com/louisbranch/multimodal-ai/internal/platform/config"
	"go.uber.org/zap"
)

func main() {
	cfg, err := landingcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger, err := zap.NewProduction()
	if err != nil {
		config.Exitf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named("landing")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := landingcmd.Run(ctx, cfg, logger); err != nil {
		logger.Error("failed to serve", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
