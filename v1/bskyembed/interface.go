package bskyembed

import (
	"context"

	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
)

// Fetcher retrieves the oEmbed record for a post. *oembed.Client implements it.
//
//go:generate mockgen -source=interface.go -destination=mock_fetcher.go -package=bskyembed
type Fetcher interface {
	Fetch(ctx context.Context, req oembed.Request) (*oembed.Response, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, req oembed.Request) (*oembed.Response, error)

// Fetch calls f(ctx, req).
func (f FetcherFunc) Fetch(ctx context.Context, req oembed.Request) (*oembed.Response, error) {
	return f(ctx, req)
}

// Tracer is the subset of *tracer.Tracer the renderer uses.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span)
	RecordErrorOnSpan(span traceSpan.Span, err error)
	SetAttributes(span traceSpan.Span, attrs map[string]interface{})
}

// Logger is the subset of logger.Logger the renderer uses.
type Logger interface {
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

var _ Fetcher = (*oembed.Client)(nil)
