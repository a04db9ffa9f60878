package bskyembed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/bsky-embed/v1/logger"
	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
	"github.com/Aleph-Alpha/bsky-embed/v1/tracer"
)

const testPostURL = "https://bsky.app/profile/tylur.dev/post/3m34dacmoyc2g"

func providerResponse(html string) *oembed.Response {
	return &oembed.Response{
		Type:         "rich",
		Version:      "1.0",
		AuthorName:   "tylur",
		ProviderName: "Bluesky Social",
		ProviderURL:  "https://bsky.app",
		CacheAge:     86400,
		Width:        600,
		HTML:         html,
	}
}

func TestRenderInjectsRequestedColorMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	width := 400

	fetcher.EXPECT().
		Fetch(gomock.Any(), oembed.Request{URL: testPostURL, MaxWidth: &width}).
		Return(providerResponse(`<blockquote class="x">...</blockquote>`), nil)

	embed, err := NewRenderer(fetcher).Render(context.Background(), Props{
		URL:       testPostURL,
		MaxWidth:  &width,
		ColorMode: ColorModeDark,
	})
	require.NoError(t, err)

	assert.Equal(t, TrustedFragment(`<blockquote data-bluesky-embed-color-mode="dark" class="x">...</blockquote>`), embed.Fragment)
	assert.Equal(t, ColorModeDark, embed.ColorMode)
	assert.True(t, embed.SuppressMismatchWarning)
	assert.Equal(t, "tylur", embed.OEmbed.AuthorName)

	var buf bytes.Buffer
	require.NoError(t, embed.Render(&buf))
	assert.Contains(t, buf.String(), `<blockquote data-bluesky-embed-color-mode="dark" class="x">...</blockquote>`)
}

func TestRenderDefaultsToSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)

	fetcher.EXPECT().
		Fetch(gomock.Any(), oembed.Request{URL: testPostURL}).
		Return(providerResponse(`<blockquote class="x">...</blockquote>`), nil)

	embed, err := NewRenderer(fetcher).Render(context.Background(), Props{URL: testPostURL})
	require.NoError(t, err)

	assert.Equal(t, ColorModeSystem, embed.ColorMode)
	assert.Contains(t, embed.Fragment.String(), `data-bluesky-embed-color-mode="system"`)
}

func TestRenderIsIdempotentForFixedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	html := `<blockquote class="bluesky-embed" data-bluesky-uri="at://did:plc:abc/app.bsky.feed.post/3m34"><p lang="en">hello</p></blockquote><script async src="https://embed.bsky.app/static/embed.js" charset="utf-8"></script>`

	fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, oembed.Request) (*oembed.Response, error) {
			return providerResponse(html), nil
		}).
		Times(2)

	renderer := NewRenderer(fetcher)
	props := Props{URL: testPostURL, ColorMode: ColorModeLight}

	render := func() string {
		embed, err := renderer.Render(context.Background(), props)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, embed.Render(&buf))
		return buf.String()
	}

	first, second := render(), render()
	assert.Equal(t, first, second)
}

func TestRenderPropagatesFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	reqErr := &oembed.RequestError{StatusCode: 404, StatusText: "Not Found"}

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, reqErr)

	embed, err := NewRenderer(fetcher).Render(context.Background(), Props{URL: testPostURL})
	assert.Nil(t, embed)
	require.Error(t, err)
	assert.Same(t, reqErr, err)
	assert.Contains(t, err.Error(), "404 Not Found")
}

func TestRenderRejectsUnknownColorModeWithoutFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl) // no expectations: any call fails the test

	_, err := NewRenderer(fetcher).Render(context.Background(), Props{URL: testPostURL, ColorMode: "sepia"})
	assert.ErrorIs(t, err, ErrInvalidColorMode)
}

func TestRenderNilResponse(t *testing.T) {
	fetcher := FetcherFunc(func(context.Context, oembed.Request) (*oembed.Response, error) {
		return nil, nil
	})

	_, err := NewRenderer(fetcher).Render(context.Background(), Props{URL: testPostURL})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestRenderRejectsRecordWithoutHTML(t *testing.T) {
	bodies := []string{`{}`, `null`, `{"type":"link","version":"1.0"}`, `{"type":"rich","html":""}`}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer provider.Close()

			client, err := oembed.NewClient(&oembed.Config{Endpoint: provider.URL})
			require.NoError(t, err)
			defer func() { _ = client.Close() }()

			embed, err := NewRenderer(client).Render(context.Background(), Props{URL: testPostURL, ColorMode: ColorModeDark})
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Nil(t, embed)
		})
	}
}

func TestRenderManyFailsOnRecordWithoutHTML(t *testing.T) {
	fetcher := FetcherFunc(func(_ context.Context, req oembed.Request) (*oembed.Response, error) {
		if strings.HasSuffix(req.URL, "/2") {
			return providerResponse(""), nil
		}
		return providerResponse(`<blockquote class="bluesky-embed"></blockquote>`), nil
	})

	embeds, err := NewRenderer(fetcher).RenderMany(context.Background(), []Props{
		{URL: "https://bsky.app/profile/a/post/1"},
		{URL: "https://bsky.app/profile/a/post/2"},
	})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Nil(t, embeds)
}

func TestRenderWithoutBlockquoteLeavesMarkupUntouched(t *testing.T) {
	fetcher := FetcherFunc(func(context.Context, oembed.Request) (*oembed.Response, error) {
		return providerResponse(`<div class="bluesky-embed">hi</div>`), nil
	})

	embed, err := NewRenderer(fetcher).Render(context.Background(), Props{URL: testPostURL, ColorMode: ColorModeDark})
	require.NoError(t, err)
	assert.Equal(t, TrustedFragment(`<div class="bluesky-embed">hi</div>`), embed.Fragment)
}

func TestRenderRecordsSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tr := tracer.NewFromProvider(
		sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)),
		logger.NewFromZap(zap.NewNop(), false),
	)
	failing := FetcherFunc(func(context.Context, oembed.Request) (*oembed.Response, error) {
		return nil, &oembed.RequestError{StatusCode: 500, StatusText: "Internal Server Error"}
	})

	_, err := NewRenderer(failing).WithTracer(tr).Render(context.Background(), Props{URL: testPostURL})
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "bskyembed.render", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestRenderLogsAtDebug(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)
	fetcher := FetcherFunc(func(context.Context, oembed.Request) (*oembed.Response, error) {
		return providerResponse(`<blockquote></blockquote>`), nil
	})

	log.EXPECT().DebugWithContext(gomock.Any(), "embed rendered", nil, map[string]interface{}{
		"url":        testPostURL,
		"color_mode": "system",
	})

	_, err := NewRenderer(fetcher).WithLogger(log).Render(context.Background(), Props{URL: testPostURL})
	require.NoError(t, err)
}

func TestRenderManyKeepsOrder(t *testing.T) {
	var inFlight, peak atomic.Int32
	fetcher := FetcherFunc(func(_ context.Context, req oembed.Request) (*oembed.Response, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		// Later posts finish first.
		delay := 10 * time.Millisecond
		if strings.HasSuffix(req.URL, "/0") {
			delay = 30 * time.Millisecond
		}
		time.Sleep(delay)
		return providerResponse(fmt.Sprintf(`<blockquote>%s</blockquote>`, req.URL)), nil
	})

	props := make([]Props, 6)
	for i := range props {
		props[i] = Props{URL: fmt.Sprintf("https://bsky.app/profile/a/post/%d", i)}
	}

	embeds, err := NewRenderer(fetcher).WithConcurrency(2).RenderMany(context.Background(), props)
	require.NoError(t, err)
	require.Len(t, embeds, len(props))

	for i, e := range embeds {
		assert.Contains(t, e.Fragment.String(), props[i].URL)
	}
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRenderManyReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	fetcher := FetcherFunc(func(ctx context.Context, req oembed.Request) (*oembed.Response, error) {
		if strings.HasSuffix(req.URL, "/1") {
			return nil, boom
		}
		return providerResponse(`<blockquote></blockquote>`), nil
	})

	props := []Props{
		{URL: "https://bsky.app/profile/a/post/0"},
		{URL: "https://bsky.app/profile/a/post/1"},
	}

	embeds, err := NewRenderer(fetcher).RenderMany(context.Background(), props)
	assert.Nil(t, embeds)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "post/1")
}

func TestRenderManyEmpty(t *testing.T) {
	embeds, err := NewRenderer(nil).RenderMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, embeds)
}
