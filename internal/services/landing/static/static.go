// Package static embeds the landing stylesheet.
package static

import "embed"

// FS exposes landing static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
