package bskyembed

import (
	"html/template"
	"strings"
)

// ColorModeAttribute is read by the Bluesky embed script to pick a theme.
const ColorModeAttribute = "data-bluesky-embed-color-mode"

const blockquoteOpen = "<blockquote"

// containerTemplate wraps a trusted fragment in a single div. The fragment is
// template.HTML and is therefore written verbatim.
var containerTemplate = template.Must(template.New("embed").Parse(`<div>{{.}}</div>`))

// injectColorMode adds the color mode attribute to the first "<blockquote"
// in fragment. This is a plain substring replacement, not an HTML rewrite:
// markup without "<blockquote" is returned unchanged.
func injectColorMode(fragment string, mode ColorMode) string {
	return strings.Replace(
		fragment,
		blockquoteOpen,
		blockquoteOpen+" "+ColorModeAttribute+`="`+string(mode)+`"`,
		1,
	)
}
