// Package content assembles the data rendered by the landing page: the
// ordered feature descriptors, the backend display string, and the per-request
// page model.
package content
