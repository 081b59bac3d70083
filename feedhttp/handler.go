// Package feedhttp serves rendered iCalendar documents over HTTP.
package feedhttp

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/icsfeed/icsfeed"
)

// Source supplies the property overrides and event records for one feed
// request. Implementations may read a file, a database or an upstream
// service; a returned error marks the upstream as unavailable and maps to
// 502.
type Source interface {
	Feed(ctx context.Context) (icsfeed.Properties, []icsfeed.Event, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (icsfeed.Properties, []icsfeed.Event, error)

// Feed calls f.
func (f SourceFunc) Feed(ctx context.Context) (icsfeed.Properties, []icsfeed.Event, error) {
	return f(ctx)
}

// Handler serves a calendar feed as text/calendar.
type Handler struct {
	renderer *icsfeed.Renderer
	source   Source
	log      *slog.Logger
	metrics  *Metrics
	filename string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the logger used for request failures. The default is
// slog.Default.
func WithLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) { h.log = log }
}

// WithMetrics attaches request metrics.
func WithMetrics(m *Metrics) HandlerOption {
	return func(h *Handler) { h.metrics = m }
}

// WithFilename advertises a download filename via Content-Disposition.
func WithFilename(name string) HandlerOption {
	return func(h *Handler) { h.filename = name }
}

// NewHandler returns a Handler serving documents rendered from source.
func NewHandler(renderer *icsfeed.Renderer, source Source, opts ...HandlerOption) *Handler {
	h := &Handler{
		renderer: renderer,
		source:   source,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP renders the feed. The document is assembled completely before
// the response starts, so clients never receive a truncated calendar.
func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		h.metrics.observeRequest(outcomeBadMethod)
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	overrides, events, err := h.source.Feed(req.Context())
	if err != nil {
		h.metrics.observeRequest(outcomeSourceError)
		h.log.Error("feed source failed", "error", err)
		http.Error(w, "upstream feed unavailable", http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderTo(&buf, overrides, events); err != nil {
		h.metrics.observeRequest(outcomeRenderError)
		h.log.Error("render failed", "error", err, "events", len(events))
		http.Error(w, "calendar could not be rendered", http.StatusInternalServerError)
		return
	}

	h.metrics.observeRequest(outcomeOK)
	h.metrics.observeRender(time.Since(start), len(events))
	h.log.Debug("feed rendered", "events", len(events), "bytes", buf.Len())

	w.Header().Set("Content-Type", icsfeed.ContentType+"; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if h.filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+h.filename+`"`)
	}
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}
