// Package oembed fetches oEmbed records for Bluesky posts.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides the
// HTTP details of the provider call:
//
//	client, err := oembed.NewClient(oembed.NewConfig())
//
//	width := 400
//	resp, err := client.Fetch(ctx, oembed.Request{
//		URL:      "https://bsky.app/profile/tylur.dev/post/3m34dacmoyc2g",
//		MaxWidth: &width,
//	})
//
// Each Fetch issues exactly one request:
//
//	GET https://embed.bsky.app/oembed?maxwidth=400&url=https%3A%2F%2Fbsky.app%2F...
//
// The url parameter is always sent. maxwidth is sent only when MaxWidth is
// non-nil; the provider clamps it into 220–600.
//
// # Errors
//
// A non-2xx status returns *RequestError carrying the numeric status and
// its text, e.g. "oembed: failed to fetch oEmbed: 404 Not Found". Use
// IsRequestError or errors.As to inspect it. Transport and JSON decoding
// failures are returned wrapped. The decoded record is not validated:
// unexpected field shapes surface to the consumer.
//
// There is no retry, backoff or caching; the caller's context and the
// optional HTTPTimeoutS (off by default) are the only bounds on a call.
//
// # Configuration
//
//	OEMBED_ENDPOINT               (default https://embed.bsky.app/oembed)
//	OEMBED_HTTP_TIMEOUT_SECONDS   (default 0, no timeout)
//	OEMBED_USER_AGENT
//
// # Observability
//
// The HTTP transport is wrapped with otelhttp, so calls produce client spans
// under the global tracer provider and forward W3C trace headers. Attach an
// observability.Observer (such as *metrics.Metrics) with WithObserver to
// receive one "fetch" operation per call, and a logger with WithLogger.
//
// # Dependency Injection (Fx)
//
//	app := fx.New(
//		fx.Provide(oembed.NewConfig),
//		oembed.FXModule,
//	)
package oembed
