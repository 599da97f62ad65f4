package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/content"
)

// FeatureCard renders one capability card of the feature grid.
func FeatureCard(feature content.FeatureDescriptor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "class", "group rounded-2xl border border-black/5 bg-white/50 p-6 shadow-sm backdrop-blur transition hover:-translate-y-0.5 hover:shadow-md", "data-component", "feature-card", "data-capability", string(feature.Icon))
		h.open("div", "class", "mb-4 inline-flex h-10 w-10 items-center justify-center rounded-xl bg-gradient-to-tr from-purple-500/15 via-blue-500/15 to-orange-400/15 text-purple-600 ring-1 ring-black/5")
		h.component(CapabilityIcon(feature.Icon, 20, ""))
		h.close("div")
		h.element("h3", feature.Title, "class", "text-lg font-semibold text-gray-900 mb-1")
		h.element("p", feature.Description, "class", "text-sm text-gray-600 leading-relaxed")
		h.close("div")
		return h.err
	})
}
