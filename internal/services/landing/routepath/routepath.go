// Package routepath centralizes landing route paths and in-page anchors.
package routepath

const (
	Root         = "/"
	Health       = "/test"
	StaticPrefix = "/static/"
	Stylesheet   = StaticPrefix + "landing.css"
)

// In-page section identifiers.
const (
	SectionFeatures = "features"
	SectionShowcase = "showcase"
	SectionCTA      = "cta"
	SectionDocs     = "docs"
)

// Top is the bare fragment that scrolls back to the top of the page.
const Top = "#"

// Fragment returns the in-page link for a section identifier.
func Fragment(section string) string {
	return "#" + section
}

// Sections lists every in-page section the landing page declares.
func Sections() []string {
	return []string{SectionFeatures, SectionShowcase, SectionCTA, SectionDocs}
}
