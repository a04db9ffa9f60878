package preview

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Aleph-Alpha/bsky-embed/v1/bskyembed"
	"github.com/Aleph-Alpha/bsky-embed/v1/logger"
	"github.com/Aleph-Alpha/bsky-embed/v1/metrics"
	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
)

// EmbedRenderer is satisfied by *bskyembed.Renderer.
type EmbedRenderer interface {
	Render(ctx context.Context, props bskyembed.Props) (*bskyembed.Embed, error)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
{{.Embed}}
</body>
</html>
`))

type pageData struct {
	Title string
	Embed template.HTML
}

// Handler serves the preview routes.
type Handler struct {
	renderer EmbedRenderer
	logger   logger.Logger
	metrics  metrics.MetricsCollector
	renders  *prometheus.CounterVec
}

// NewHandler builds the preview handler. m may be nil.
func NewHandler(renderer EmbedRenderer, log logger.Logger, m metrics.MetricsCollector) *Handler {
	h := &Handler{renderer: renderer, logger: log, metrics: m}
	if m != nil {
		h.renders = m.CreateCounter("embed_renders_total", "Embeds rendered by the preview server", []string{"color_mode"})
	}
	return h
}

// Routes returns the instrumented mux:
//
//	GET /embed?url=<post>&maxwidth=<px>&colorMode=<light|dark|system>
//	GET /healthz
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /embed", h.instrument("/embed", http.HandlerFunc(h.serveEmbed)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return otelhttp.NewHandler(mux, "preview")
}

func (h *Handler) serveEmbed(w http.ResponseWriter, r *http.Request) {
	props, err := parseProps(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	embed, err := h.renderer.Render(r.Context(), props)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, bskyembed.ErrInvalidColorMode) {
			status = http.StatusBadRequest
		}
		h.logger.ErrorWithContext(r.Context(), "embed render failed", err, map[string]interface{}{
			"url":                  props.URL,
			"provider_status_code": oembed.StatusCode(err),
		})
		http.Error(w, http.StatusText(status), status)
		return
	}

	markup, err := embed.HTML()
	if err != nil {
		h.logger.ErrorWithContext(r.Context(), "embed markup failed", err, nil)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	title := "Bluesky post"
	if embed.OEmbed != nil && embed.OEmbed.AuthorName != "" {
		title = "Bluesky post by " + embed.OEmbed.AuthorName
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTemplate.Execute(w, pageData{Title: title, Embed: markup}); err != nil {
		h.logger.ErrorWithContext(r.Context(), "write page failed", err, nil)
		return
	}

	if h.renders != nil {
		h.renders.WithLabelValues(string(embed.ColorMode)).Inc()
	}
}

// parseProps reads url, maxwidth and colorMode from the query string.
func parseProps(r *http.Request) (bskyembed.Props, error) {
	q := r.URL.Query()

	props := bskyembed.Props{URL: q.Get("url")}
	if props.URL == "" {
		return props, errors.New("missing url parameter")
	}

	if v := q.Get("maxwidth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return props, errors.New("maxwidth must be an integer")
		}
		props.MaxWidth = &n
	}

	mode, err := bskyembed.ParseColorMode(q.Get("colorMode"))
	if err != nil {
		return props, err
	}
	props.ColorMode = mode
	return props, nil
}

// instrument records request count by status and duration by endpoint.
func (h *Handler) instrument(endpoint string, next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.metrics.IncrementRequests(strconv.Itoa(rec.status))
		h.metrics.RecordRequestDuration(start, endpoint)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
