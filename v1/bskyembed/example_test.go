package bskyembed_test

import (
	"context"
	"fmt"
	"os"

	"github.com/Aleph-Alpha/bsky-embed/v1/bskyembed"
	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
)

func ExampleRenderer_Render() {
	// In production the fetcher is an *oembed.Client.
	fetcher := bskyembed.FetcherFunc(func(ctx context.Context, req oembed.Request) (*oembed.Response, error) {
		return &oembed.Response{HTML: `<blockquote class="bluesky-embed"><p>hello</p></blockquote>`}, nil
	})

	embed, err := bskyembed.NewRenderer(fetcher).Render(context.Background(), bskyembed.Props{
		URL:       "https://bsky.app/profile/tylur.dev/post/3m34dacmoyc2g",
		ColorMode: bskyembed.ColorModeDark,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = embed.Render(os.Stdout)
	// Output: <div><blockquote data-bluesky-embed-color-mode="dark" class="bluesky-embed"><p>hello</p></blockquote></div>
}
