// Package bskyembed renders Bluesky posts as embeddable HTML.
//
// A render fetches the post's oEmbed record, marks the returned blockquote
// with the requested theme and hands the markup back as a TrustedFragment:
//
//	renderer := bskyembed.NewRenderer(oembedClient)
//
//	width := 400
//	embed, err := renderer.Render(ctx, bskyembed.Props{
//		URL:       "https://bsky.app/profile/tylur.dev/post/3m34dacmoyc2g",
//		MaxWidth:  &width,
//		ColorMode: bskyembed.ColorModeDark,
//	})
//	if err != nil {
//		return err // the host decides how to show failures
//	}
//	err = embed.Render(w) // <div><blockquote data-bluesky-embed-color-mode="dark" ...
//
// # Trust boundary
//
// The markup comes from the provider and is written without escaping.
// TrustedFragment exists so that this boundary stays visible in the type
// system; convert it with HTML() only where raw provider markup is intended.
//
// # Color mode injection
//
// The theme is applied by replacing the first "<blockquote" substring with
// `<blockquote data-bluesky-embed-color-mode="<mode>"`. The replacement is
// not HTML-aware. If the provider ever stops emitting a blockquote as its
// root element, the markup is returned unchanged and the embed falls back
// to the script's own default theme.
//
// # Hydration
//
// Every Embed has SuppressMismatchWarning set. The fragment is fetched at
// render time and may legitimately differ between two renders of the same
// page, so hosts that reconcile server and client markup must skip it.
package bskyembed
