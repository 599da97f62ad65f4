// Package branding holds product naming shared by page chrome and logs.
package branding

// AppName is the product name shown in the header and page titles.
const AppName = "Multimodal AI"

// KitName labels the footer brand mark.
const KitName = "Multimodal AI UI Kit"

// PageTitle joins a page label with the product name.
func PageTitle(label string) string {
	if label == "" {
		return AppName
	}
	return label + " | " + AppName
}
