package cloudinary

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidURLComponent is matched by every *InvalidComponentError.
	ErrInvalidURLComponent = errors.New("invalid URL component")
	// ErrEmptyPublicID is returned when a Transformation has no public id.
	ErrEmptyPublicID = errors.New("public id is empty")
	// ErrMissingSecret is returned by SignedURL when no API secret is set.
	ErrMissingSecret = errors.New("api secret is not configured")
)

// InvalidComponentError reports a host, bucket or public id that cannot be
// placed in a URL as is.
type InvalidComponentError struct {
	Component string // "host", "bucket" or "public id"
	Value     string
	Offset    int // byte offset of the first offending character
}

func (e *InvalidComponentError) Error() string {
	if e.Offset < 0 || e.Offset >= len(e.Value) {
		return fmt.Sprintf("%s %q: %v", e.Component, e.Value, ErrInvalidURLComponent)
	}
	return fmt.Sprintf("%s %q: %v: character %q at offset %d",
		e.Component, e.Value, ErrInvalidURLComponent, e.Value[e.Offset], e.Offset)
}

func (e *InvalidComponentError) Unwrap() error {
	return ErrInvalidURLComponent
}
