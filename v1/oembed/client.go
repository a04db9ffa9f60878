package oembed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Aleph-Alpha/bsky-embed/v1/observability"
)

// Logger is the subset of logger.Logger the client uses.
type Logger interface {
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Client fetches oEmbed records. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	transport  *http.Transport

	logger   Logger
	observer observability.Observer
}

// NewClient validates cfg and builds a client whose transport is
// instrumented with otelhttp, so each provider call is a client span that
// propagates the caller's trace context.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	base := http.DefaultTransport.(*http.Transport).Clone()

	return &Client{
		endpoint:  strings.TrimRight(cfg.Endpoint, "?"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout:   time.Duration(cfg.HTTPTimeoutS) * time.Second,
			Transport: otelhttp.NewTransport(base),
		},
		transport: base,
	}, nil
}

// WithObserver sets the observer for this client and returns the client for method chaining.
// The observer receives one "fetch" event per provider call.
//
// Example:
//
//	client := client.WithObserver(metrics).WithLogger(log)
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// WithLogger sets the logger for this client and returns the client for method chaining.
func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// Fetch performs exactly one GET against the oEmbed endpoint and decodes the
// JSON body. A non-2xx status yields a *RequestError. There are no retries.
func (c *Client) Fetch(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	target := c.requestURL(req)

	var out Response
	size, status, err := c.getJSON(ctx, target, &out)

	c.observeOperation("fetch", req.URL, target, time.Since(start), err, size, map[string]interface{}{
		"status_code": status,
	})

	if err != nil {
		if c.logger != nil {
			c.logger.ErrorWithContext(ctx, "oEmbed fetch failed", err, map[string]interface{}{
				"url":         req.URL,
				"status_code": status,
			})
		}
		return nil, err
	}

	if c.logger != nil {
		c.logger.DebugWithContext(ctx, "oEmbed fetched", nil, map[string]interface{}{
			"url":         req.URL,
			"author_name": out.AuthorName,
			"bytes":       size,
		})
	}
	return &out, nil
}

// Close releases idle keep-alive connections.
func (c *Client) Close() error {
	c.transport.CloseIdleConnections()
	return nil
}

func (c *Client) requestURL(req Request) string {
	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s%s", c.endpoint, sep, buildQuery(req).Encode())
}
