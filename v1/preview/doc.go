// Package preview serves rendered Bluesky embeds over HTTP.
//
// It is the host page for the bskyembed renderer: each request renders one
// post and returns a complete HTML document. The embed script that turns
// the blockquote into a widget is part of the provider markup.
//
//	GET /embed?url=https://bsky.app/profile/tylur.dev/post/3m34dacmoyc2g&maxwidth=400&colorMode=dark
//	GET /healthz
//
// Responses: 400 for a missing url, a non-integer maxwidth or an unknown
// colorMode; 502 when the provider call fails or returns a record without
// html. Failures are logged with the provider status code when there is one.
package preview
