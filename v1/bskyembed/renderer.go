package bskyembed

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	traceSpan "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
)

// DefaultConcurrency bounds RenderMany's parallel provider calls.
const DefaultConcurrency = 4

// Renderer turns post URLs into themed, trusted embed markup.
// It holds no per-render state and is safe for concurrent use.
type Renderer struct {
	fetcher     Fetcher
	tracer      Tracer
	logger      Logger
	concurrency int
}

// NewRenderer returns a Renderer backed by fetcher, usually an *oembed.Client.
func NewRenderer(fetcher Fetcher) *Renderer {
	return &Renderer{fetcher: fetcher, concurrency: DefaultConcurrency}
}

// WithTracer runs every render inside a "bskyembed.render" span.
func (r *Renderer) WithTracer(t Tracer) *Renderer {
	r.tracer = t
	return r
}

// WithLogger sets the logger for this renderer and returns it for chaining.
func (r *Renderer) WithLogger(l Logger) *Renderer {
	r.logger = l
	return r
}

// WithConcurrency sets how many renders RenderMany runs at once. Values
// below 1 are ignored.
func (r *Renderer) WithConcurrency(n int) *Renderer {
	if n > 0 {
		r.concurrency = n
	}
	return r
}

// Render fetches the oEmbed record for props.URL and returns its markup with
// the color mode attribute injected on the opening blockquote.
//
// An empty ColorMode renders as "system"; an unknown one fails with
// ErrInvalidColorMode before any request is made. Fetch errors are returned
// unchanged and nothing is rendered. A record without html fails with
// ErrMalformedResponse.
func (r *Renderer) Render(ctx context.Context, props Props) (_ *Embed, err error) {
	mode, err := ParseColorMode(string(props.ColorMode))
	if err != nil {
		return nil, err
	}

	if r.tracer != nil {
		var span traceSpan.Span
		ctx, span = r.tracer.StartSpan(ctx, "bskyembed.render")
		attrs := map[string]interface{}{
			"bsky.post_url":   props.URL,
			"bsky.color_mode": string(mode),
		}
		if props.MaxWidth != nil {
			attrs["bsky.max_width"] = *props.MaxWidth
		}
		r.tracer.SetAttributes(span, attrs)
		defer func() {
			if err != nil {
				r.tracer.RecordErrorOnSpan(span, err)
			}
			span.End()
		}()
	}

	resp, err := r.fetcher.Fetch(ctx, oembed.Request{URL: props.URL, MaxWidth: props.MaxWidth})
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrEmptyResponse
	}
	if resp.HTML == "" {
		return nil, fmt.Errorf("%w: missing html", ErrMalformedResponse)
	}

	embed := &Embed{
		Fragment:                TrustedFragment(injectColorMode(resp.HTML, mode)),
		ColorMode:               mode,
		SuppressMismatchWarning: true,
		OEmbed:                  resp,
	}

	if r.logger != nil {
		r.logger.DebugWithContext(ctx, "embed rendered", nil, map[string]interface{}{
			"url":        props.URL,
			"color_mode": string(mode),
		})
	}
	return embed, nil
}

// RenderMany renders every props entry concurrently, at most
// WithConcurrency renders at a time. Results keep the input order. The
// first failure cancels the remaining renders and is returned.
func (r *Renderer) RenderMany(ctx context.Context, props []Props) ([]*Embed, error) {
	out := make([]*Embed, len(props))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i := range props {
		g.Go(func() error {
			embed, err := r.Render(gctx, props[i])
			if err != nil {
				return fmt.Errorf("bskyembed: render %q: %w", props[i].URL, err)
			}
			out[i] = embed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Render writes the embed wrapped in its container div to w.
func (e *Embed) Render(w io.Writer) error {
	return containerTemplate.Execute(w, e.Fragment.HTML())
}

// HTML returns the container markup as template.HTML, ready to be placed in
// a host page template.
func (e *Embed) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
