package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/multimodal-ai/internal/platform/icons"
)

// htmlWriter stops at the first write error so component bodies read top-down.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: templ.ClearChildren(ctx), w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// open writes a start tag; attrs are name/value pairs and values are escaped.
func (h *htmlWriter) open(tag string, attrs ...string) {
	h.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.raw(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) element(tag string, text string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) link(href string, attrs ...string) {
	h.open("a", append([]string{"href", safeHref(href)}, attrs...)...)
}

// safeHref keeps local paths and fragments verbatim and sanitizes the rest.
func safeHref(href string) string {
	if strings.HasPrefix(href, "#") || (strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//")) {
		return href
	}
	return string(templ.URL(href))
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Icon renders a Lucide glyph from the page sprite.
func Icon(name string, size int, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		px := strconv.Itoa(size)
		attrs := []string{"width", px, "height", px, "aria-hidden", "true", "focusable", "false"}
		if class != "" {
			attrs = append(attrs, "class", class)
		}
		h.open("svg", attrs...)
		h.open("use", "href", "#"+icons.LucideSymbolID(name))
		h.close("use")
		h.close("svg")
		return h.err
	})
}

// CapabilityIcon renders the glyph mapped to a capability tag.
func CapabilityIcon(c icons.Capability, size int, class string) templ.Component {
	return Icon(icons.LucideNameOrDefault(c), size, class)
}
