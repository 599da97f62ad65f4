package public

import (
	"net/http"

	"github.com/louisbranch/multimodal-ai/internal/services/landing/platform/httpx"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/routepath"
)

// Routes are registered without method prefixes so that unsupported methods
// answer 405 with "Allow: GET" instead of the mux default "GET, HEAD".
func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	getOnly := httpx.RequireMethod(http.MethodGet)
	mux.Handle(routepath.Root+"{$}", getOnly(http.HandlerFunc(h.handleLanding)))
	mux.Handle(routepath.Health, getOnly(http.HandlerFunc(h.handleHealth)))
	mux.Handle(routepath.Root, getOnly(http.HandlerFunc(h.handleNotFound)))
}
