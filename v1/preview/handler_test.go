package preview

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Aleph-Alpha/bsky-embed/v1/bskyembed"
	"github.com/Aleph-Alpha/bsky-embed/v1/logger"
	"github.com/Aleph-Alpha/bsky-embed/v1/metrics"
	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
)

const postHTML = `<blockquote class="bluesky-embed" data-bluesky-uri="at://did:plc:x/app.bsky.feed.post/1"><p>hi</p></blockquote><script async src="https://embed.bsky.app/static/embed.js" charset="utf-8"></script>`

type fakeProvider struct {
	calls atomic.Int32
	last  atomic.Pointer[oembed.Request]
	err   error
	resp  *oembed.Response
}

func (f *fakeProvider) Fetch(_ context.Context, req oembed.Request) (*oembed.Response, error) {
	f.calls.Add(1)
	f.last.Store(&req)
	if f.err != nil {
		return nil, f.err
	}
	if f.resp != nil {
		return f.resp, nil
	}
	return &oembed.Response{Type: "rich", Version: "1.0", AuthorName: "Tylur", HTML: postHTML}, nil
}

func newTestHandler(t *testing.T, provider *fakeProvider) (*Handler, *observer.ObservedLogs, *metrics.Metrics) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core), false)
	m := metrics.NewMetrics(metrics.Config{Address: "127.0.0.1:0", ServiceName: "preview-test"})
	return NewHandler(bskyembed.NewRenderer(provider), log, m), logs, m
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestEmbedPage(t *testing.T) {
	provider := &fakeProvider{}
	h, _, _ := newTestHandler(t, provider)

	rec := get(t, h.Routes(), "/embed?url=https%3A%2F%2Fbsky.app%2Fprofile%2Ftylur.dev%2Fpost%2F3m34dacmoyc2g&maxwidth=400&colorMode=dark")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Bluesky post by Tylur</title>")
	assert.Contains(t, body, `<div><blockquote data-bluesky-embed-color-mode="dark" class="bluesky-embed"`)
	assert.Equal(t, 1, strings.Count(body, "embed.bsky.app/static/embed.js"))

	last := provider.last.Load()
	require.NotNil(t, last)
	assert.Equal(t, "https://bsky.app/profile/tylur.dev/post/3m34dacmoyc2g", last.URL)
	require.NotNil(t, last.MaxWidth)
	assert.Equal(t, 400, *last.MaxWidth)
}

func TestEmbedPageDefaults(t *testing.T) {
	provider := &fakeProvider{}
	h, _, _ := newTestHandler(t, provider)

	rec := get(t, h.Routes(), "/embed?url=https://bsky.app/profile/a/post/1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-bluesky-embed-color-mode="system"`)
	assert.Nil(t, provider.last.Load().MaxWidth)
}

func TestEmbedBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"missing url", "/embed"},
		{"non-integer maxwidth", "/embed?url=https://bsky.app/profile/a/post/1&maxwidth=wide"},
		{"unknown color mode", "/embed?url=https://bsky.app/profile/a/post/1&colorMode=sepia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			h, _, _ := newTestHandler(t, provider)

			rec := get(t, h.Routes(), tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, provider.calls.Load())
		})
	}
}

func TestEmbedProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: &oembed.RequestError{StatusCode: 404, StatusText: "Not Found"}}
	h, logs, _ := newTestHandler(t, provider)

	rec := get(t, h.Routes(), "/embed?url=https://bsky.app/profile/a/post/missing")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	entries := logs.FilterMessage("embed render failed").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 404, entries[0].ContextMap()["provider_status_code"])
}

func TestEmbedRecordWithoutHTML(t *testing.T) {
	provider := &fakeProvider{resp: &oembed.Response{Type: "link", Version: "1.0"}}
	h, logs, _ := newTestHandler(t, provider)

	rec := get(t, h.Routes(), "/embed?url=https://bsky.app/profile/a/post/1")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<div></div>")
	assert.Equal(t, 1, logs.FilterMessage("embed render failed").Len())
}

func TestEmbedTransportFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("dial tcp: connection refused")}
	h, _, _ := newTestHandler(t, provider)

	rec := get(t, h.Routes(), "/embed?url=https://bsky.app/profile/a/post/1")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHealthz(t *testing.T) {
	h, _, _ := newTestHandler(t, &fakeProvider{})

	rec := get(t, h.Routes(), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestEmbedRecordsMetrics(t *testing.T) {
	h, _, m := newTestHandler(t, &fakeProvider{})
	routes := h.Routes()

	get(t, routes, "/embed?url=https://bsky.app/profile/a/post/1&colorMode=dark")
	get(t, routes, "/embed?url=https://bsky.app/profile/a/post/1&colorMode=dark")
	get(t, routes, "/embed")

	assert.Equal(t, 2.0, testutil.ToFloat64(h.renders.WithLabelValues("dark")))

	count, err := testutil.GatherAndCount(m.Registry, "requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestServerLifecycle(t *testing.T) {
	h, _, _ := newTestHandler(t, &fakeProvider{})
	log := logger.NewFromZap(zap.NewNop(), false)
	s := NewServer(Config{Address: "127.0.0.1:0"}, h, log)

	require.NoError(t, s.Start())
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	resp, err := http.Get("http://" + s.Addr().String() + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("PREVIEW_ADDRESS", "")
	assert.Equal(t, DefaultAddress, NewConfig().Address)

	t.Setenv("PREVIEW_ADDRESS", "127.0.0.1:9000")
	assert.Equal(t, "127.0.0.1:9000", NewConfig().Address)
}
