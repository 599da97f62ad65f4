package content

import (
	"github.com/louisbranch/multimodal-ai/internal/platform/icons"
	webi18n "github.com/louisbranch/multimodal-ai/internal/services/landing/platform/i18n"
)

// FeatureDescriptor describes one product capability shown in the grid.
type FeatureDescriptor struct {
	Icon        icons.Capability
	Title       string
	Description string
}

// FeatureCount is the number of cards in the feature grid.
func FeatureCount() int {
	return len(icons.Catalog())
}

// Features returns the localized feature descriptors in catalog order.
func Features(loc webi18n.Localizer) []FeatureDescriptor {
	defs := icons.Catalog()
	out := make([]FeatureDescriptor, 0, len(defs))
	for _, def := range defs {
		key := "landing.feature." + string(def.Capability)
		out = append(out, FeatureDescriptor{
			Icon:        def.Capability,
			Title:       loc.Sprintf(key + ".title"),
			Description: loc.Sprintf(key + ".description"),
		})
	}
	return out
}
