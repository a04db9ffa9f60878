package oembed

// Request identifies the post to embed.
type Request struct {
	// URL is the post URL, e.g. https://bsky.app/profile/<handle>/post/<rkey>.
	// It is forwarded verbatim; the provider validates it.
	URL string

	// MaxWidth is the maximum rendered width in pixels. The provider accepts
	// 220–600, clamps values outside that range and defaults to 600.
	// Nil omits the maxwidth parameter.
	MaxWidth *int
}

// Response is the oEmbed record returned by the provider.
//
// The provider documents fixed values for several fields (Type "rich",
// Version "1.0", ProviderName "Bluesky Social", ProviderURL
// "https://bsky.app", Height null). They are decoded as-is and not checked.
type Response struct {
	Type         string `json:"type"`
	Version      string `json:"version"`
	AuthorName   string `json:"author_name"`
	AuthorURL    string `json:"author_url"`
	ProviderName string `json:"provider_name"`
	ProviderURL  string `json:"provider_url"`
	CacheAge     int64  `json:"cache_age"`
	Width        int    `json:"width"`
	Height       *int   `json:"height"`
	HTML         string `json:"html"`
}
