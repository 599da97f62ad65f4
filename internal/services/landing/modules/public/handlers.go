package public

import (
	"net/http"

	module "github.com/louisbranch/multimodal-ai/internal/services/landing/module"
	apperrors "github.com/louisbranch/multimodal-ai/internal/services/landing/platform/errors"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/platform/httpx"
	webi18n "github.com/louisbranch/multimodal-ai/internal/services/landing/platform/i18n"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/platform/pagerender"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/platform/weberror"
	"go.uber.org/zap"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	h.writePage(w, r, h.service.landingPage(loc, lang))
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	if httpx.WantsJSON(r) {
		if err := httpx.WriteJSON(w, http.StatusOK, h.service.healthReport()); err != nil {
			h.deps.Log().Warn("write health json", zap.Error(err))
		}
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	h.writePage(w, r, h.service.healthPage(loc, lang))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindNotFound, "errors.not_found.title", "no route for "+r.URL.Path), h.deps)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.Write(w, r, h.deps.PageTracer(), page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
