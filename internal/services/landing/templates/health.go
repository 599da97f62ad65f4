package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/content"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/routepath"
)

// HealthPage renders the service status card.
func HealthPage(health content.Health, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("main", "class", "min-h-screen flex items-center justify-center px-4 text-white")
		h.open("div", "class", "w-full max-w-md rounded-2xl border border-white/10 bg-white/5 p-8", "data-component", "health")
		h.element("h1", T(loc, "health.title"), "class", "text-2xl font-semibold")
		h.open("dl", "class", "mt-6 grid grid-cols-2 gap-y-3 text-sm")
		h.element("dt", T(loc, "health.status"), "class", "text-white/60")
		h.element("dd", health.Status, "class", "font-mono", "data-status", health.Status)
		h.element("dt", T(loc, "health.backend"), "class", "text-white/60")
		h.element("dd", health.BackendDisplay, "class", "font-mono", "data-backend", health.BackendDisplay)
		h.close("dl")
		h.element("p", T(loc, "health.note"), "class", "mt-6 text-xs text-white/50")
		h.open("div", "class", "mt-6")
		h.link(routepath.Root, "class", ghostButtonClass)
		h.text(T(loc, "health.back"))
		h.close("a")
		h.close("div")
		h.close("div")
		h.close("main")
		return h.err
	})
}
