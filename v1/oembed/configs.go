package oembed

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// DefaultEndpoint is the Bluesky oEmbed endpoint.
const DefaultEndpoint = "https://embed.bsky.app/oembed"

// DefaultHTTPTimeoutS is zero: a provider call is bounded only by the
// caller's context and the transport's own dial and handshake limits.
const DefaultHTTPTimeoutS = 0

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "bsky-embed/1 (+https://github.com/Aleph-Alpha/bsky-embed)"

// Config configures the oEmbed client.
type Config struct {
	// Endpoint is the absolute oEmbed URL the client issues GET requests to.
	Endpoint string `yaml:"endpoint" envconfig:"OEMBED_ENDPOINT"`

	// HTTPTimeoutS is the per-request HTTP timeout in seconds. Zero disables it.
	HTTPTimeoutS int `yaml:"http_timeout_seconds" envconfig:"OEMBED_HTTP_TIMEOUT_SECONDS"`

	// UserAgent overrides the User-Agent request header.
	UserAgent string `yaml:"user_agent" envconfig:"OEMBED_USER_AGENT"`
}

// NewConfig reads from environment variables, falling back to the Bluesky
// endpoint and no request timeout.
func NewConfig() *Config {
	timeout := DefaultHTTPTimeoutS
	if v := os.Getenv("OEMBED_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	return &Config{
		Endpoint:     getenvDefault("OEMBED_ENDPOINT", DefaultEndpoint),
		HTTPTimeoutS: timeout,
		UserAgent:    getenvDefault("OEMBED_USER_AGENT", DefaultUserAgent),
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Validate ensures the endpoint is an absolute http(s) URL and the timeout
// is not negative.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("%w: missing OEMBED_ENDPOINT", ErrInvalidConfig)
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: endpoint: %v", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q is not an absolute http(s) URL", ErrInvalidConfig, c.Endpoint)
	}
	if c.HTTPTimeoutS < 0 {
		return fmt.Errorf("%w: negative OEMBED_HTTP_TIMEOUT_SECONDS", ErrInvalidConfig)
	}
	return nil
}
