// Package cloudinary builds delivery URLs for transformed Cloudinary images
// and videos.
package cloudinary

// Kind is how a Transformation describes its processing: inline options
// (Dynamic) or a server-side preset (NamedTransformation).
type Kind interface {
	segment() string
}

type dynamic struct {
	options Options
}

// Dynamic wraps inline options so they are serialized into the URL.
func Dynamic(o Options) Kind {
	return dynamic{options: o}
}

func (d dynamic) segment() string {
	if d.options == nil {
		return ""
	}
	return d.options.String()
}

// NamedTransformation references a transformation stored on the service.
type NamedTransformation string

func (n NamedTransformation) segment() string {
	if n == "" {
		return ""
	}
	return "t_" + string(n)
}

func (n NamedTransformation) String() string {
	return n.segment()
}

// OutputFormat is an ImageFormat or a VideoFormat.
type OutputFormat interface {
	String() string
	extension() string
}

// Transformation is one deliverable asset: what to fetch, how to transform
// it and what format to return. Host and the rest of the path are resolved
// by a Service when the URL is built.
type Transformation struct {
	PublicID     string
	Bucket       string // cloud name; embedded in the path on the standard host
	MediaType    MediaType
	DeliveryType DeliveryType
	Kind         Kind         // nil means untransformed
	Format       OutputFormat // nil means heic for images, mp4 for videos
}

// URL builds the delivery URL with the package level Service.
func (t Transformation) URL() (string, error) {
	return defaultService.URL(t)
}

// RawURL builds the URL of the original asset with the package level Service.
func (t Transformation) RawURL() (string, error) {
	return defaultService.RawURL(t)
}

// String returns the transformation segment, or "" when there is none.
func (t Transformation) String() string {
	if t.Kind == nil {
		return ""
	}
	return t.Kind.segment()
}

// format resolves the delivered format. A nil Format and the empty
// ImageFormat both select the media type default.
func (t Transformation) format() OutputFormat {
	switch f := t.Format.(type) {
	case nil:
	case ImageFormat:
		if f != "" {
			return f
		}
	default:
		return f
	}
	if t.MediaType == MediaVideo {
		return VideoFormatMP4
	}
	return ImageFormatHEIC
}

// filename is the public id with the extension of the output format.
func (t Transformation) filename() string {
	ext := t.format().extension()
	if ext == "" {
		return t.PublicID
	}
	return t.PublicID + "." + ext
}
