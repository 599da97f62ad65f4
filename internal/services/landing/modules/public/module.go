// Package public serves the unauthenticated landing surfaces.
package public

import (
	"net/http"

	module "github.com/louisbranch/multimodal-ai/internal/services/landing/module"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/routepath"
)

// Module provides the landing page, health page and not-found fallback.
type Module struct{}

// New returns a public module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires the module routes under the root prefix.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps), deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
