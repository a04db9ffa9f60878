package oembed

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed matches every *RequestError via errors.Is.
	ErrRequestFailed = errors.New("oembed: request failed")

	// ErrInvalidConfig is returned by Config.Validate and NewClient.
	ErrInvalidConfig = errors.New("oembed: invalid config")
)

// RequestError is returned when the provider answers with a non-2xx status.
type RequestError struct {
	StatusCode int
	StatusText string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("oembed: failed to fetch oEmbed: %d %s", e.StatusCode, e.StatusText)
}

// Is reports whether target is ErrRequestFailed.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// IsRequestError reports whether err is, or wraps, a provider status failure.
func IsRequestError(err error) bool {
	return errors.Is(err, ErrRequestFailed)
}

// StatusCode returns the provider status carried by err, or 0.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}
