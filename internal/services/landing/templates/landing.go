package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/multimodal-ai/internal/platform/branding"
	"github.com/louisbranch/multimodal-ai/internal/platform/icons"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/content"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/routepath"
)

const (
	containerClass     = "mx-auto max-w-7xl px-4 sm:px-6 lg:px-8"
	primaryButtonClass = "inline-flex items-center justify-center rounded-lg bg-white text-gray-900 px-5 py-3 font-medium hover:bg-gray-100 transition"
	ghostButtonClass   = "inline-flex items-center justify-center rounded-lg border border-white/20 px-5 py-3 font-medium text-white/90 hover:bg-white/10 transition"
)

// Landing renders the full landing page body: nav, hero, feature grid,
// call-to-action and footer.
func Landing(page content.Page, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "class", "min-h-screen bg-gradient-to-br from-[#0B1020] via-[#0D1226] to-[#0A0D1A] text-white")
		h.component(SiteHeader(loc))
		h.component(Hero(page, loc))
		h.component(FeatureGrid(page.Features, loc))
		h.component(CallToAction(loc))
		h.component(SiteFooter(page.Year, loc))
		h.close("div")
		return h.err
	})
}

// SiteHeader renders the fixed top navigation.
func SiteHeader(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("header", "class", "fixed inset-x-0 top-0 z-30 border-b border-white/10 bg-white/5 backdrop-blur")
		h.open("div", "class", containerClass+" h-16 flex items-center justify-between")

		h.link(routepath.Root, "class", "flex items-center gap-2", "aria-label", T(loc, "core.nav.home"))
		h.open("span", "class", "h-8 w-8 rounded-full bg-gradient-to-tr from-purple-500 via-blue-500 to-orange-400 shadow-inner")
		h.close("span")
		h.element("span", branding.AppName, "class", "font-semibold tracking-tight")
		h.close("a")

		h.open("nav", "class", "hidden md:flex items-center gap-8 text-sm text-white/80")
		navLinks := []struct {
			href string
			key  string
		}{
			{href: routepath.Fragment(routepath.SectionFeatures), key: "core.nav.features"},
			{href: routepath.Fragment(routepath.SectionShowcase), key: "core.nav.showcase"},
			{href: routepath.Health, key: "core.nav.health"},
			{href: routepath.Fragment(routepath.SectionDocs), key: "core.nav.docs"},
		}
		for _, item := range navLinks {
			h.link(item.href, "class", "hover:text-white")
			h.text(T(loc, item.key))
			h.close("a")
		}
		h.close("nav")

		h.open("div", "class", "hidden md:flex items-center gap-3")
		h.link(routepath.Top, "class", "text-white/80 hover:text-white")
		h.text(T(loc, "core.nav.sign_in"))
		h.close("a")
		h.link(routepath.Fragment(routepath.SectionCTA), "class", "inline-flex items-center gap-1 rounded-lg bg-white text-gray-900 px-4 py-2 text-sm font-medium hover:bg-gray-100 transition")
		h.text(T(loc, "core.nav.launch"))
		h.text(" ")
		h.component(Icon(icons.GlyphChevronRight, 16, ""))
		h.close("a")
		h.close("div")

		h.element("div", T(loc, "core.nav.menu"), "class", "md:hidden text-white/80 text-sm")
		h.close("div")
		h.close("header")
		return h.err
	})
}

// Hero renders the headline block and the embedded scene viewer.
func Hero(page content.Page, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("section", "class", "relative pt-32 pb-24 overflow-hidden")
		h.open("div", "class", "pointer-events-none absolute inset-0")
		h.open("div", "class", "absolute left-1/2 top-20 -translate-x-1/2 h-[520px] w-[520px] rounded-full bg-gradient-to-tr from-purple-500/30 via-blue-500/25 to-orange-400/20 blur-3xl")
		h.close("div")
		h.close("div")
		h.open("div", "class", "relative "+containerClass)
		h.open("div", "class", "grid items-center gap-10 lg:grid-cols-2")

		h.open("div")
		h.open("div", "class", "mb-4")
		h.component(Badge(Text(T(loc, "landing.hero.badge"))))
		h.close("div")
		h.element("h1", T(loc, "landing.hero.heading"), "class", "text-4xl sm:text-5xl lg:text-6xl font-semibold leading-tight tracking-tight")
		h.element("p", T(loc, "landing.hero.lead"), "class", "mt-4 text-white/70 leading-relaxed text-base sm:text-lg max-w-xl")
		h.open("div", "class", "mt-8 flex flex-col sm:flex-row gap-3")
		h.link(routepath.Fragment(routepath.SectionCTA), "class", primaryButtonClass)
		h.text(T(loc, "landing.hero.start"))
		h.text(" ")
		h.component(Icon(icons.GlyphChevronRight, 18, "ml-1"))
		h.close("a")
		h.link(routepath.Fragment(routepath.SectionFeatures), "class", ghostButtonClass)
		h.text(T(loc, "landing.hero.explore"))
		h.close("a")
		h.close("div")
		h.element("p", T(loc, "landing.hero.backend", page.BackendDisplay), "class", "mt-3 text-xs text-white/50", "data-backend", page.BackendDisplay)
		h.close("div")

		h.open("div", "id", routepath.SectionShowcase, "class", "relative h-[480px] w-full rounded-2xl border border-white/10 bg-white/5 shadow-inner overflow-hidden")
		h.component(SceneViewer(page.SceneURL, T(loc, "landing.hero.scene_label")))
		h.open("div", "class", "pointer-events-none absolute inset-0 bg-gradient-to-b from-transparent via-transparent to-[#0B1020]/70")
		h.close("div")
		h.close("div")

		h.close("div")
		h.close("div")
		h.close("section")
		return h.err
	})
}

// SceneViewer embeds the Spline web component for a remote scene at full size.
func SceneViewer(sceneURL string, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("spline-viewer", "url", safeHref(sceneURL), "style", "width: 100%; height: 100%", "aria-label", label)
		h.close("spline-viewer")
		return h.err
	})
}

// FeatureGrid renders one FeatureCard per descriptor, in order.
func FeatureGrid(features []content.FeatureDescriptor, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("section", "id", routepath.SectionFeatures, "class", "relative py-20")
		h.open("div", "class", containerClass)
		h.open("div", "class", "mb-10 flex items-center gap-2")
		h.open("div", "class", "inline-flex h-9 w-9 items-center justify-center rounded-lg bg-white/10 ring-1 ring-white/15")
		h.component(Icon(icons.GlyphBrain, 18, ""))
		h.close("div")
		h.element("h2", T(loc, "landing.features.heading"), "class", "text-2xl sm:text-3xl font-semibold")
		h.close("div")
		h.open("div", "class", "grid gap-6 sm:grid-cols-2 lg:grid-cols-3")
		for _, feature := range features {
			h.component(FeatureCard(feature))
		}
		h.close("div")
		h.close("div")
		h.close("section")
		return h.err
	})
}

// CallToAction renders the closing conversion block.
func CallToAction(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("section", "id", routepath.SectionCTA, "class", "relative py-20")
		h.open("div", "class", containerClass)
		h.open("div", "class", "relative overflow-hidden rounded-2xl border border-white/10 bg-gradient-to-tr from-purple-500/20 via-blue-500/20 to-orange-400/20 p-10")
		h.open("div", "class", "absolute right-0 top-0 h-full w-1/2 opacity-30 pointer-events-none")
		h.open("div", "class", "absolute -right-20 top-10 h-64 w-64 rounded-full bg-white/10 blur-3xl")
		h.close("div")
		h.close("div")
		h.open("div", "class", "relative max-w-2xl")
		h.element("h3", T(loc, "landing.cta.heading"), "class", "text-2xl sm:text-3xl font-semibold")
		h.element("p", T(loc, "landing.cta.body"), "class", "mt-3 text-white/80")
		h.open("div", "class", "mt-6 flex flex-col sm:flex-row gap-3")
		h.link(routepath.Top, "class", primaryButtonClass)
		h.text(T(loc, "landing.cta.create"))
		h.close("a")
		h.link(routepath.Health, "class", ghostButtonClass)
		h.text(T(loc, "landing.cta.health"))
		h.close("a")
		h.close("div")
		h.close("div")
		h.close("div")
		h.close("div")
		h.close("section")
		return h.err
	})
}

// SiteFooter renders the brand mark and the copyright line for year.
func SiteFooter(year int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("footer", "id", routepath.SectionDocs, "class", "relative border-t border-white/10 py-10")
		h.open("div", "class", containerClass+" flex flex-col sm:flex-row items-center justify-between gap-6")
		h.open("div", "class", "flex items-center gap-2")
		h.open("span", "class", "h-6 w-6 rounded-full bg-gradient-to-tr from-purple-500 via-blue-500 to-orange-400")
		h.close("span")
		h.element("span", branding.KitName, "class", "text-white/80 text-sm")
		h.close("div")
		// Year goes in as a string so the printer does not group digits.
		h.element("div", T(loc, "core.footer.rights", strconv.Itoa(year)), "class", "text-white/60 text-sm", "data-year", strconv.Itoa(year))
		h.close("div")
		h.close("footer")
		return h.err
	})
}
