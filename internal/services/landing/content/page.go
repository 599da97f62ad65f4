package content

import (
	"time"

	webi18n "github.com/louisbranch/multimodal-ai/internal/services/landing/platform/i18n"
)

// SceneURL is the remote Spline scene embedded in the hero.
const SceneURL = "https://prod.spline.design/4cHQr84zOGAHOehh/scene.splinecode"

// Page is the immutable model the landing templates render.
type Page struct {
	Lang           string
	BackendDisplay string
	Features       []FeatureDescriptor
	Year           int
	SceneURL       string
}

// BuildPage assembles the landing page model for one render.
func BuildPage(loc webi18n.Localizer, lang string, backendDisplay string, now time.Time) Page {
	return Page{
		Lang:           lang,
		BackendDisplay: backendDisplay,
		Features:       Features(loc),
		Year:           now.Year(),
		SceneURL:       SceneURL,
	}
}

// Health is the model rendered by the health page.
type Health struct {
	Lang           string
	Status         string
	BackendDisplay string
}
