package cloudinary

import (
	"strconv"
)

// Options is an inline transformation serialized on the client.
type Options interface {
	// String returns the transformation segment, without surrounding slashes.
	String() string
}

// ImageOptions are the inline parameters of an image transformation.
// Zero values are the documented defaults and are not emitted, except Format
// which falls back to DefaultImageFormat.
type ImageOptions struct {
	Format      ImageFormat
	Crop        Crop
	Effect      string
	Flags       []ImageFlag
	Gravity     Gravity
	Quality     Quality
	Trim        *VideoTrim
	Width       *float64 // pixels, truncated; nil omits w_
	Height      *float64 // pixels, truncated; nil omits h_
	AspectRatio AspectRatio
	Scale       float64 // device pixel ratio; 0 and 1 omit dpr_
	Layers      []Layer
}

// NewImageOptions returns ImageOptions populated with the defaults.
func NewImageOptions() ImageOptions {
	return ImageOptions{
		Format:  DefaultImageFormat,
		Crop:    CropNone,
		Gravity: GravityCenter,
		Scale:   1,
	}
}

// String serializes the options as "<params>/<layer>/<layer>...". Empty
// components are dropped, so there is never a leading or trailing "/".
func (o ImageOptions) String() string {
	var p params
	if o.Format != ImageFormatAuto {
		p.set("f_", o.Format.String())
	}
	if !o.Crop.isDefault() {
		p.set("c_", o.Crop.String())
	}
	p.set("e_", o.Effect)
	flags := make([]string, 0, len(o.Flags))
	for _, f := range o.Flags {
		flags = append(flags, string(f))
	}
	p.flags(flags)
	if !o.Gravity.isDefault() {
		p.set("g_", o.Gravity.String())
	}
	p.set("q_", o.Quality.String())
	p.trim(o.Trim)
	p.set("h_", formatPixels(o.Height))
	p.set("w_", formatPixels(o.Width))
	p.set("ar_", o.AspectRatio.String())
	p.set("dpr_", formatScale(o.Scale))

	components := make([]string, 0, len(o.Layers)+1)
	components = append(components, p.String())
	for _, l := range o.Layers {
		if l == nil {
			continue
		}
		components = append(components, l.String())
	}
	return chain(components...)
}

func formatPixels(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(int64(*v), 10)
}

func formatScale(scale float64) string {
	if scale == 0 || scale == 1 {
		return ""
	}
	return formatFloat(scale)
}
