package bskyembed

import (
	"fmt"
	"html/template"

	"github.com/Aleph-Alpha/bsky-embed/v1/oembed"
)

// ColorMode is the theme hint forwarded to the Bluesky embed script.
// It is not evaluated by this package.
type ColorMode string

const (
	ColorModeLight  ColorMode = "light"
	ColorModeDark   ColorMode = "dark"
	ColorModeSystem ColorMode = "system"
)

// DefaultColorMode is used when Props.ColorMode is empty.
const DefaultColorMode = ColorModeSystem

// Valid reports whether m is one of light, dark or system.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorModeLight, ColorModeDark, ColorModeSystem:
		return true
	}
	return false
}

// ParseColorMode maps a query or config value to a ColorMode.
// The empty string yields DefaultColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	if s == "" {
		return DefaultColorMode, nil
	}
	m := ColorMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorMode, s)
	}
	return m, nil
}

// Props are the inputs of a single render.
type Props struct {
	// URL is the post URL, e.g. https://bsky.app/profile/<handle>/post/<rkey>.
	URL string

	// MaxWidth is the maximum width in pixels (220–600, provider default 600).
	// Nil leaves the choice to the provider.
	MaxWidth *int

	// ColorMode defaults to ColorModeSystem when empty.
	ColorMode ColorMode
}

// TrustedFragment is provider-supplied markup that is emitted without
// escaping. Values of this type cross a trust boundary: they come from the
// oEmbed provider, not from this module, and must only be built from
// provider responses.
type TrustedFragment string

// HTML returns the fragment as template.HTML for use in html/template.
func (f TrustedFragment) HTML() template.HTML {
	return template.HTML(f)
}

// String returns the raw markup.
func (f TrustedFragment) String() string {
	return string(f)
}

// Embed is the renderable result of Renderer.Render.
type Embed struct {
	// Fragment is the provider markup with the color mode attribute applied.
	Fragment TrustedFragment

	// ColorMode is the mode written into the fragment.
	ColorMode ColorMode

	// SuppressMismatchWarning is always true. The fragment is fetched at
	// render time, so hosts that compare server and client output must not
	// flag differences inside this node.
	SuppressMismatchWarning bool

	// OEmbed is the provider record the fragment was built from.
	OEmbed *oembed.Response
}
