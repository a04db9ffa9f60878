package bskyembed

import "errors"

var (
	// ErrInvalidColorMode is returned for a color mode other than light, dark or system.
	ErrInvalidColorMode = errors.New("bskyembed: invalid color mode")

	// ErrEmptyResponse is returned when a Fetcher yields neither a response nor an error.
	ErrEmptyResponse = errors.New("bskyembed: empty oEmbed response")

	// ErrMalformedResponse is returned when the oEmbed record carries no html.
	ErrMalformedResponse = errors.New("bskyembed: malformed oEmbed response")
)
