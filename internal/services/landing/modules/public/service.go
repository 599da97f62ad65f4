package public

import (
	"time"

	"github.com/louisbranch/multimodal-ai/internal/platform/branding"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/content"
	module "github.com/louisbranch/multimodal-ai/internal/services/landing/module"
	webi18n "github.com/louisbranch/multimodal-ai/internal/services/landing/platform/i18n"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/platform/pagerender"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/templates"
)

const healthStatusOK = "ok"

type service struct {
	backendDisplay string
	clock          func() time.Time
}

// healthReport is the JSON body served by the health route.
type healthReport struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

func newService(deps module.Dependencies) service {
	backend := deps.BackendDisplay
	if backend == "" {
		backend = content.DisplayBackend("")
	}
	return service{backendDisplay: backend, clock: deps.Clock()}
}

func (s service) landingPage(loc webi18n.Localizer, lang string) pagerender.Page {
	page := content.BuildPage(loc, lang, s.backendDisplay, s.clock())
	return pagerender.Page{
		Name:        "landing",
		Title:       branding.AppName,
		Description: templates.T(loc, "landing.meta.description"),
		Lang:        lang,
		SceneViewer: true,
		Body:        templates.Landing(page, loc),
	}
}

func (s service) health(lang string) content.Health {
	return content.Health{Lang: lang, Status: healthStatusOK, BackendDisplay: s.backendDisplay}
}

func (s service) healthReport() healthReport {
	return healthReport{Status: healthStatusOK, Backend: s.backendDisplay}
}

func (s service) healthPage(loc webi18n.Localizer, lang string) pagerender.Page {
	return pagerender.Page{
		Name:  "health",
		Title: branding.PageTitle(templates.T(loc, "health.title")),
		Lang:  lang,
		Body:  templates.HealthPage(s.health(lang), loc),
	}
}
