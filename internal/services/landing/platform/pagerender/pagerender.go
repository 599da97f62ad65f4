// Package pagerender centralizes landing page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/platform/httpx"
	"github.com/louisbranch/multimodal-ai/internal/services/landing/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// SpanName names the span wrapped around each page render.
const SpanName = "landing.render_page"

// Page describes one full-document response.
type Page struct {
	// Name identifies the page in traces, e.g. "landing" or "health".
	Name        string
	Title       string
	Description string
	Lang        string
	StatusCode  int
	SceneViewer bool
	Body        templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Render renders page inside the shared document shell into a buffer.
func Render(ctx context.Context, tracer trace.Tracer, page Page) ([]byte, error) {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}
	ctx, span := tracer.Start(ctx, SpanName, trace.WithAttributes(
		attribute.String("landing.page", page.Name),
		attribute.String("landing.lang", page.Lang),
	))
	defer span.End()

	layout := templates.Layout(templates.LayoutOptions{
		Title:       page.Title,
		Lang:        page.Lang,
		Description: page.Description,
		SceneViewer: page.SceneViewer,
	})
	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(ctx, body), &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, fmt.Errorf("render %s page: %w", page.Name, err)
	}
	span.SetAttributes(attribute.Int("landing.bytes", buf.Len()))
	return buf.Bytes(), nil
}

// Write renders page and writes it with its status code. Nothing is written
// to w when rendering fails.
func Write(w http.ResponseWriter, r *http.Request, tracer trace.Tracer, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	payload, err := Render(httpx.RequestContext(r), tracer, page)
	if err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, payload)
}
