// Package module defines the feature contract used by landing composition.
package module

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// Dependencies carries startup-resolved values shared by every module.
type Dependencies struct {
	// BackendDisplay is the configured backend URL with its scheme stripped.
	BackendDisplay string
	Now            func() time.Time
	Logger         *zap.Logger
	Tracer         trace.Tracer
}

// Clock returns the configured clock or time.Now.
func (d Dependencies) Clock() func() time.Time {
	if d.Now == nil {
		return time.Now
	}
	return d.Now
}

// Log returns the configured logger or a no-op logger.
func (d Dependencies) Log() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// PageTracer returns the configured tracer or a no-op tracer.
func (d Dependencies) PageTracer() trace.Tracer {
	if d.Tracer == nil {
		return noop.NewTracerProvider().Tracer("")
	}
	return d.Tracer
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by landing composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
