package oembed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// buildQuery always sets url and sets maxwidth only when a width is given.
func buildQuery(req Request) url.Values {
	params := url.Values{}
	params.Set("url", req.URL)
	if req.MaxWidth != nil {
		params.Set("maxwidth", strconv.Itoa(*req.MaxWidth))
	}
	return params
}

// getJSON issues a GET, treats any non-2xx status as a *RequestError and
// decodes the body into out. It returns the body size and the status code
// (0 when no response was received).
func (c *Client) getJSON(ctx context.Context, target string, out any) (int64, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("oembed: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("oembed: http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		n, _ := io.Copy(io.Discard, resp.Body)
		return n, resp.StatusCode, &RequestError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return int64(len(body)), resp.StatusCode, fmt.Errorf("oembed: read body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return int64(len(body)), resp.StatusCode, fmt.Errorf("oembed: decode response: %w", err)
	}
	return int64(len(body)), resp.StatusCode, nil
}

// statusText returns the reason phrase of resp.Status ("404 Not Found" →
// "Not Found"), falling back to the canonical text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
