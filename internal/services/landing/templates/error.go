package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/routepath"
)

// ErrorState describes a rendered error page.
type ErrorState struct {
	StatusCode int
	Title      string
	Message    string
}

// ErrorPage renders a status page with a link back home.
func ErrorPage(state ErrorState, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("main", "class", "min-h-screen flex items-center justify-center px-4 text-white")
		h.open("div", "class", "max-w-md text-center", "data-component", "error")
		h.element("p", strconv.Itoa(state.StatusCode), "class", "text-sm font-mono text-white/50")
		h.element("h1", state.Title, "class", "mt-2 text-3xl font-semibold")
		h.element("p", state.Message, "class", "mt-3 text-white/70")
		h.open("div", "class", "mt-8")
		h.link(routepath.Root, "class", primaryButtonClass)
		h.text(T(loc, "errors.back_home"))
		h.close("a")
		h.close("div")
		h.close("div")
		h.close("main")
		return h.err
	})
}
