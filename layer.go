package cloudinary

import "strings"

// Layer is an overlay composited onto the delivered asset. Each layer becomes
// its own path segment after the image parameters.
type Layer interface {
	String() string
}

// TextLayer renders text with a font such as "Arial_40_bold".
type TextLayer struct {
	Text  string
	Font  string
	Color string // optional, e.g. "rgb:ff0000"
}

// String renders "l_text:<font>:<text>[:<color>]". Only the text is
// percent-encoded; font and color must already be path safe.
func (l TextLayer) String() string {
	segment := []string{"l_text", l.Font, escapeFragment(l.Text)}
	if l.Color != "" {
		segment = append(segment, l.Color)
	}
	return strings.Join(segment, ":")
}
