// Package weberror renders shared error responses for landing modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/louisbranch/multimodal-ai/internal/platform/branding"
	module "github.com/louisbranch/multimodal-ai/internal/services/landing/module"
	apperrors "github.com/louisbranch/multimodal-ai/internal/services/landing/platform/errors"
	webi18n "github.com/louisbranch/multimodal-ai/internal/services/landing/platform/i18n"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/platform/pagerender"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/templates"
	"go.uber.org/zap"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// State builds the localized error page content for statusCode.
func State(statusCode int, loc webi18n.Localizer) templates.ErrorState {
	titleKey, bodyKey := "errors.internal.title", "errors.internal.body"
	if statusCode == http.StatusNotFound {
		titleKey, bodyKey = "errors.not_found.title", "errors.not_found.body"
	}
	return templates.ErrorState{
		StatusCode: statusCode,
		Title:      templates.T(loc, titleKey),
		Message:    templates.T(loc, bodyKey),
	}
}

// WriteModuleError logs err and writes the localized error page for its
// status. Statuses without a page render as internal errors.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	if statusCode >= http.StatusInternalServerError {
		fields := []zap.Field{zap.Int("status", statusCode), zap.Error(err)}
		if r != nil {
			fields = append(fields, zap.String("path", r.URL.Path))
		}
		deps.Log().Error("landing request failed", fields...)
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	state := State(statusCode, loc)
	renderErr := pagerender.Write(w, r, deps.PageTracer(), pagerender.Page{
		Name:       "error",
		Title:      branding.PageTitle(state.Title),
		Lang:       lang,
		StatusCode: statusCode,
		Body:       templates.ErrorPage(state, loc),
	})
	if renderErr != nil {
		deps.Log().Error("render error page", zap.Int("status", statusCode), zap.Error(renderErr))
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}
