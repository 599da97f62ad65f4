package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/multimodal-ai/internal/platform/icons"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/routepath"
)

const (
	tailwindScriptURL = "https://cdn.tailwindcss.com"
	splineViewerURL   = "https://unpkg.com/@splinetool/viewer@1.9.82/build/spline-viewer.js"
)

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Title       string
	Lang        string
	Description string
	// SceneViewer loads the Spline web component module.
	SceneViewer bool
}

// Layout wraps its children in the shared HTML document shell.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		h := newHTMLWriter(ctx, w)
		lang := opts.Lang
		if lang == "" {
			lang = "en-US"
		}
		h.raw("<!doctype html>")
		h.open("html", "lang", lang, "class", "scroll-smooth")
		h.open("head")
		h.open("meta", "charset", "utf-8")
		h.open("meta", "name", "viewport", "content", "width=device-width, initial-scale=1")
		if opts.Description != "" {
			h.open("meta", "name", "description", "content", opts.Description)
		}
		h.element("title", opts.Title)
		h.open("script", "src", tailwindScriptURL)
		h.close("script")
		if opts.SceneViewer {
			h.open("script", "type", "module", "src", splineViewerURL)
			h.close("script")
		}
		h.open("link", "rel", "stylesheet", "href", routepath.Stylesheet)
		h.close("head")
		h.open("body", "class", "bg-[#0B1020] antialiased")
		h.raw(icons.LucideSprite())
		h.component(children)
		h.close("body")
		h.close("html")
		return h.err
	})
}
