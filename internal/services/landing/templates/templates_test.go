package templates

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/multimodal-ai/internal/platform/i18n"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/content"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/routepath"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	return renderStringCtx(t, context.Background(), c)
}

func renderStringCtx(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func parseDoc(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func byDataComponent(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, "data-component")
		return n.Type == html.ElementNode && ok && v == name
	}
}

func renderLanding(t *testing.T, tag language.Tag, backend string, now time.Time) string {
	t.Helper()
	loc := i18n.Printer(tag)
	page := content.BuildPage(loc, tag.String(), content.DisplayBackend(backend), now)
	shell := Layout(LayoutOptions{Title: "Multimodal AI", Lang: page.Lang, SceneViewer: true})
	ctx := templ.WithChildren(context.Background(), Landing(page, loc))
	return renderStringCtx(t, ctx, shell)
}

func TestLandingAnchorsResolveToSectionIDs(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, renderLanding(t, language.AmericanEnglish, "", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))

	ids := map[string]bool{}
	for _, n := range findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "id"); return n.Type == html.ElementNode && ok }) {
		id, _ := attr(n, "id")
		ids[id] = true
	}
	for _, section := range routepath.Sections() {
		if !ids[section] {
			t.Fatalf("missing element with id %q", section)
		}
	}

	anchors := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "a" })
	if len(anchors) == 0 {
		t.Fatal("expected anchors")
	}
	for _, a := range anchors {
		href, _ := attr(a, "href")
		if !strings.HasPrefix(href, "#") || href == routepath.Top {
			continue
		}
		if !ids[strings.TrimPrefix(href, "#")] {
			t.Fatalf("anchor %q has no target", href)
		}
	}
}

func TestLandingNavigationTargets(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, renderLanding(t, language.AmericanEnglish, "", time.Now()))
	nav := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "nav" })
	if len(nav) != 1 {
		t.Fatalf("nav count = %d, want 1", len(nav))
	}
	var got []string
	for _, a := range findAll(nav[0], func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "a" }) {
		href, _ := attr(a, "href")
		got = append(got, textContent(a)+" "+href)
	}
	want := []string{"Features #features", "Showcase #showcase", "Health /test", "Docs #docs"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nav links mismatch (-want +got):\n%s", diff)
	}
}

func TestLandingRendersSixFeatureCardsInOrder(t *testing.T) {
	t.Parallel()

	for _, tag := range i18n.SupportedTags() {
		tag := tag
		t.Run(tag.String(), func(t *testing.T) {
			t.Parallel()
			doc := parseDoc(t, renderLanding(t, tag, "", time.Now()))
			grids := findAll(doc, func(n *html.Node) bool {
				id, ok := attr(n, "id")
				return ok && id == routepath.SectionFeatures
			})
			if len(grids) != 1 {
				t.Fatalf("features section count = %d, want 1", len(grids))
			}
			cards := findAll(grids[0], byDataComponent("feature-card"))
			var capabilities []string
			for _, card := range cards {
				capability, _ := attr(card, "data-capability")
				capabilities = append(capabilities, capability)
				titles := findAll(card, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "h3" })
				paragraphs := findAll(card, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "p" })
				if len(titles) != 1 || textContent(titles[0]) == "" {
					t.Fatalf("card %q missing title", capability)
				}
				if len(paragraphs) != 1 || textContent(paragraphs[0]) == "" {
					t.Fatalf("card %q missing description", capability)
				}
			}
			want := []string{"chat", "vision", "voice", "video", "actions", "safety"}
			if diff := cmp.Diff(want, capabilities); diff != "" {
				t.Fatalf("card order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLandingFeatureTitlesInEnglish(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, renderLanding(t, language.AmericanEnglish, "", time.Now()))
	var titles []string
	for _, card := range findAll(doc, byDataComponent("feature-card")) {
		for _, h3 := range findAll(card, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "h3" }) {
			titles = append(titles, textContent(h3))
		}
	}
	want := []string{"Chat & Reasoning", "Vision", "Real‑time Voice", "Video", "Actions", "Safety & Controls"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestLandingFooterShowsClockYear(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, renderLanding(t, language.AmericanEnglish, "", time.Date(2031, 12, 31, 23, 0, 0, 0, time.UTC)))
	footers := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "footer" })
	if len(footers) != 1 {
		t.Fatalf("footer count = %d, want 1", len(footers))
	}
	text := textContent(footers[0])
	if !strings.Contains(text, "© 2031 Crafted for clean UI/UX. All rights reserved.") {
		t.Fatalf("footer text = %q", text)
	}
}

func TestLandingBackendLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		backend string
		want    string
	}{
		{name: "default", backend: "", want: "Backend: localhost:8000"},
		{name: "https", backend: "https://api.example.com", want: "Backend: api.example.com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := parseDoc(t, renderLanding(t, language.AmericanEnglish, tc.backend, time.Now()))
			lines := findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "data-backend"); return ok })
			if len(lines) != 1 {
				t.Fatalf("backend line count = %d, want 1", len(lines))
			}
			if got := textContent(lines[0]); got != tc.want {
				t.Fatalf("backend line = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLandingRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	first := renderLanding(t, language.BrazilianPortuguese, "https://api.example.com", now)
	second := renderLanding(t, language.BrazilianPortuguese, "https://api.example.com", now)
	if first != second {
		t.Fatal("expected identical output for identical inputs")
	}
}

func TestLandingEmbedsSceneViewer(t *testing.T) {
	t.Parallel()

	markup := renderLanding(t, language.AmericanEnglish, "", time.Now())
	doc := parseDoc(t, markup)
	viewers := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "spline-viewer" })
	if len(viewers) != 1 {
		t.Fatalf("viewer count = %d, want 1", len(viewers))
	}
	if url, _ := attr(viewers[0], "url"); url != content.SceneURL {
		t.Fatalf("viewer url = %q, want %q", url, content.SceneURL)
	}
	if !strings.Contains(markup, splineViewerURL) {
		t.Fatal("expected spline viewer module script")
	}
	if showcase := findAll(doc, func(n *html.Node) bool {
		id, _ := attr(n, "id")
		return id == routepath.SectionShowcase
	}); len(showcase) != 1 || len(findAll(showcase[0], func(n *html.Node) bool { return n.Data == "spline-viewer" })) != 1 {
		t.Fatal("expected viewer inside showcase panel")
	}
}

func TestLayoutOmitsViewerScriptWhenDisabled(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), Text("body"))
	markup := renderStringCtx(t, ctx, Layout(LayoutOptions{Title: "Health", Lang: "pt-BR"}))
	if strings.Contains(markup, splineViewerURL) {
		t.Fatal("did not expect spline viewer script")
	}
	if !strings.Contains(markup, `<html lang="pt-BR"`) {
		t.Fatalf("expected lang attribute, got %q", markup[:80])
	}
	if !strings.Contains(markup, `href="`+routepath.Stylesheet+`"`) {
		t.Fatal("expected stylesheet link")
	}
}

func TestLayoutHeadDeclaresCharsetAndViewport(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), Text("body"))
	doc := parseDoc(t, renderStringCtx(t, ctx, Layout(LayoutOptions{Title: "Health"})))
	heads := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "head" })
	if len(heads) != 1 {
		t.Fatalf("head count = %d, want 1", len(heads))
	}
	metas := map[string]string{}
	for _, meta := range findAll(heads[0], func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "meta" }) {
		if charset, ok := attr(meta, "charset"); ok {
			metas["charset"] = charset
		}
		if name, ok := attr(meta, "name"); ok {
			metas[name], _ = attr(meta, "content")
		}
	}
	want := map[string]string{"charset": "utf-8", "viewport": "width=device-width, initial-scale=1"}
	if diff := cmp.Diff(want, metas); diff != "" {
		t.Fatalf("head meta mismatch (-want +got):\n%s", diff)
	}
}

func TestLandingMarkupIsBalanced(t *testing.T) {
	t.Parallel()

	markup := renderLanding(t, language.MustParse("en-US"), "http://localhost:8000", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	for _, tag := range []string{"div", "span", "section", "svg", "use"} {
		opened := strings.Count(markup, "<"+tag+" ") + strings.Count(markup, "<"+tag+">")
		closed := strings.Count(markup, "</"+tag+">")
		if opened != closed {
			t.Errorf("<%s> opened %d times, closed %d times", tag, opened, closed)
		}
	}
	if !strings.HasSuffix(markup, "</body></html>") {
		t.Fatalf("document tail = %q", markup[max(0, len(markup)-40):])
	}
}

func TestIconEscapesSymbolReference(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, renderString(t, Icon(`x"><script>alert(1)</script>`, 16, "")))
	if scripts := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "script" }); len(scripts) != 0 {
		t.Fatal("icon name escaped its attribute")
	}
	uses := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "use" })
	if len(uses) != 1 {
		t.Fatalf("use count = %d, want 1", len(uses))
	}
	if href, _ := attr(uses[0], "href"); href != `#lucide-x"><script>alert(1)</script>` {
		t.Fatalf("icon href = %q", href)
	}
}

func TestBadgeRendersIconAndContent(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, renderString(t, Badge(Text("New <beta>"))))
	badges := findAll(doc, byDataComponent("badge"))
	if len(badges) != 1 {
		t.Fatalf("badge count = %d, want 1", len(badges))
	}
	if got := textContent(badges[0]); got != "New <beta>" {
		t.Fatalf("badge text = %q", got)
	}
	uses := findAll(badges[0], func(n *html.Node) bool { return n.Data == "use" })
	if len(uses) != 1 {
		t.Fatalf("use count = %d, want 1", len(uses))
	}
	if href, _ := attr(uses[0], "href"); href != "#lucide-sparkles" {
		t.Fatalf("icon href = %q", href)
	}
}

func TestFeatureCardEscapesText(t *testing.T) {
	t.Parallel()

	markup := renderString(t, FeatureCard(content.FeatureDescriptor{Icon: "vision", Title: "<b>", Description: "a & b"}))
	if strings.Contains(markup, "<b>") {
		t.Fatalf("expected escaped title, got %q", markup)
	}
	if !strings.Contains(markup, "#lucide-image") {
		t.Fatalf("expected vision glyph, got %q", markup)
	}
}

func TestHealthPage(t *testing.T) {
	t.Parallel()

	loc := i18n.Printer(language.AmericanEnglish)
	doc := parseDoc(t, renderString(t, HealthPage(content.Health{Status: "ok", BackendDisplay: "localhost:8000"}, loc)))
	status := findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "data-status"); return ok })
	if len(status) != 1 || textContent(status[0]) != "ok" {
		t.Fatal("expected ok status")
	}
	backend := findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "data-backend"); return ok })
	if len(backend) != 1 || textContent(backend[0]) != "localhost:8000" {
		t.Fatal("expected backend display")
	}
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	markup := renderString(t, ErrorPage(ErrorState{StatusCode: 404, Title: "Page not found", Message: "gone"}, nil))
	for _, want := range []string{">404<", "Page not found", "errors.back_home", `href="/"`} {
		if !strings.Contains(markup, want) {
			t.Fatalf("expected %q in %q", want, markup)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestRenderReturnsWriterError(t *testing.T) {
	t.Parallel()

	loc := i18n.Printer(language.AmericanEnglish)
	page := content.BuildPage(loc, "en-US", "localhost:8000", time.Now())
	if err := Landing(page, loc).Render(context.Background(), failingWriter{}); err == nil {
		t.Fatal("expected write error")
	}
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "landing.hero.backend %s", "x"); got != "landing.hero.backend x" {
		t.Fatalf("T = %q", got)
	}
}
