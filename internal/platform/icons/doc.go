// Package icons maps product capability tags to Lucide glyphs.
//
// The catalog names each capability the landing page advertises; templates
// render a capability through the shared SVG sprite so every glyph is
// declared once per page.
package icons
