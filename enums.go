package cloudinary

// Crop is the resize/crop mode, emitted as "c_<mode>".
type Crop string

const (
	CropNone       Crop = "none"
	CropCrop       Crop = "crop"
	CropScale      Crop = "scale"
	CropLimit      Crop = "limit"
	CropThumb      Crop = "thumb"
	CropFit        Crop = "fit"
	CropMinimumFit Crop = "mfit"
	CropFill       Crop = "fill"
	CropLimitFill  Crop = "lfill"
	CropPad        Crop = "pad"
	CropLimitPad   Crop = "lpad"
	CropMinimumPad Crop = "mpad"
	CropFillPad    Crop = "fill_pad"
)

func (c Crop) String() string {
	if c == "" {
		return string(CropNone)
	}
	return string(c)
}

func (c Crop) isDefault() bool {
	return c == "" || c == CropNone
}

// DeliveryType is the access mode of an asset. It is carried on a
// Transformation but the delivery path always uses "upload".
type DeliveryType string

const (
	DeliveryUpload        DeliveryType = "upload"
	DeliveryPrivate       DeliveryType = "private"
	DeliveryAuthenticated DeliveryType = "authenticated"
	DeliveryFetch         DeliveryType = "fetch"
)

func (d DeliveryType) String() string {
	if d == "" {
		return string(DeliveryUpload)
	}
	return string(d)
}

// MediaType is the resource kind segment of a delivery URL.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

func (m MediaType) String() string {
	if m == "" {
		return string(MediaImage)
	}
	return string(m)
}

// ImageFormat is both the "f_" parameter of ImageOptions and the file
// extension of an image delivery URL.
type ImageFormat string

const (
	ImageFormatAuto ImageFormat = "auto"
	ImageFormatHEIC ImageFormat = "heic"
	ImageFormatJPEG ImageFormat = "jpg"
	ImageFormatPDF  ImageFormat = "pdf"
	ImageFormatPNG  ImageFormat = "png"
	ImageFormatWebP ImageFormat = "webp"
)

// DefaultImageFormat is used by ImageOptions when no format is set.
const DefaultImageFormat = ImageFormatJPEG

func (f ImageFormat) String() string {
	if f == "" {
		return string(DefaultImageFormat)
	}
	return string(f)
}

func (f ImageFormat) extension() string {
	if f == ImageFormatAuto {
		return ""
	}
	return f.String()
}

// VideoFormat is the file extension of a video delivery URL.
type VideoFormat string

const (
	VideoFormatMP4  VideoFormat = "mp4"
	VideoFormatWebM VideoFormat = "webm"
	VideoFormatMOV  VideoFormat = "mov"
)

func (f VideoFormat) String() string {
	if f == "" {
		return string(VideoFormatMP4)
	}
	return string(f)
}

func (f VideoFormat) extension() string {
	return f.String()
}

// AudioCodec is emitted as "ac_<codec>" unless it is passthrough.
type AudioCodec string

const (
	AudioCodecPassthrough AudioCodec = "passthrough"
	AudioCodecNone        AudioCodec = "none"
	AudioCodecAAC         AudioCodec = "aac"
	AudioCodecMP3         AudioCodec = "mp3"
)

func (c AudioCodec) String() string {
	if c == "" {
		return string(AudioCodecPassthrough)
	}
	return string(c)
}

func (c AudioCodec) isDefault() bool {
	return c == "" || c == AudioCodecPassthrough
}

// VideoCodec is emitted as "vc_<codec>" unless it is auto.
type VideoCodec string

const (
	VideoCodecAuto VideoCodec = "auto"
	VideoCodecH264 VideoCodec = "h264"
	VideoCodecH265 VideoCodec = "h265"
)

func (c VideoCodec) String() string {
	if c == "" {
		return string(VideoCodecAuto)
	}
	return string(c)
}

func (c VideoCodec) isDefault() bool {
	return c == "" || c == VideoCodecAuto
}

// Platform describes the decoding capability of the client that will play
// the delivered media. It selects codec defaults.
type Platform int

const (
	// PlatformModern clients decode HEVC.
	PlatformModern Platform = iota
	// PlatformLegacy clients only decode H.264.
	PlatformLegacy
)

func (p Platform) String() string {
	switch p {
	case PlatformLegacy:
		return "legacy"
	default:
		return "modern"
	}
}

// DefaultVideoCodec returns the codec requested when VideoOptions are built
// with NewVideoOptions.
func DefaultVideoCodec(p Platform) VideoCodec {
	if p == PlatformLegacy {
		return VideoCodecH264
	}
	return VideoCodecH265
}

// ImageFlag tokens are already prefixed; several flags share one parameter.
type ImageFlag string

const (
	ImageFlagProgressive ImageFlag = "fl_progressive"
)

// VideoFlag tokens are already prefixed; several flags share one parameter.
type VideoFlag string

const (
	VideoFlagWaveform VideoFlag = "fl_waveform"
)
