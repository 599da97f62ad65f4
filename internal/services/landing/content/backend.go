package content

import "strings"

// DefaultBackendURL is used when no backend URL is configured.
const DefaultBackendURL = "http://localhost:8000"

// ResolveBackendURL returns the configured backend URL or the default when blank.
func ResolveBackendURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultBackendURL
	}
	return trimmed
}

// DisplayBackend returns the backend URL as shown to visitors, without its
// protocol prefix. The first "https://" is removed, then the first "http://".
func DisplayBackend(raw string) string {
	resolved := ResolveBackendURL(raw)
	resolved = strings.Replace(resolved, "https://", "", 1)
	return strings.Replace(resolved, "http://", "", 1)
}
