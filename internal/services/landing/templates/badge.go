package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/multimodal-ai/internal/platform/icons"
)

// Badge renders a pill label with a sparkles glyph in front of content.
func Badge(content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("span", "class", "inline-flex items-center gap-1 rounded-full border border-white/20 bg-white/10 px-3 py-1 text-xs text-white/90 shadow-sm backdrop-blur", "data-component", "badge")
		h.component(Icon(icons.GlyphSparkles, 14, "text-purple-200"))
		h.text(" ")
		h.component(content)
		h.close("span")
		return h.err
	})
}
