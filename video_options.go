package cloudinary

import (
	"strconv"
)

// videoContainer is always requested; the delivered extension is chosen
// separately on the Transformation.
const videoContainer = "mp4"

// VideoOptions are the inline parameters of a video transformation. They are
// serialized as two groups, encoding then transformation.
type VideoOptions struct {
	AudioCodec  AudioCodec
	VideoCodec  VideoCodec
	FrameRate   FrameRate
	Quality     *int // 0-100, nil omits q_
	Crop        Crop
	Effect      string
	Flags       []VideoFlag
	Gravity     Gravity
	Trim        *VideoTrim
	Width       *float64
	Height      *float64
	AspectRatio AspectRatio
	Scale       float64
}

// NewVideoOptions returns VideoOptions populated with the defaults for the
// given playback platform.
func NewVideoOptions(platform Platform) VideoOptions {
	return VideoOptions{
		AudioCodec: AudioCodecPassthrough,
		VideoCodec: DefaultVideoCodec(platform),
		Crop:       CropNone,
		Gravity:    GravityCenter,
		Scale:      1,
	}
}

// String serializes the options as "<encoding>/<transformation>". The
// encoding group always starts with f_mp4; the transformation group is
// dropped when empty.
func (o VideoOptions) String() string {
	return chain(o.encoding().String(), o.transformation().String())
}

func (o VideoOptions) encoding() params {
	var p params
	p.set("f_", videoContainer)
	if !o.AudioCodec.isDefault() {
		p.set("ac_", o.AudioCodec.String())
	}
	if !o.VideoCodec.isDefault() {
		p.set("vc_", o.VideoCodec.String())
	}
	if !o.FrameRate.IsZero() {
		p.set("fps_", o.FrameRate.String())
	}
	if o.Quality != nil {
		p.set("q_", strconv.Itoa(*o.Quality))
	}
	return p
}

func (o VideoOptions) transformation() params {
	var p params
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
	p.trim(o.Trim)
	p.set("h_", formatPixels(o.Height))
	p.set("w_", formatPixels(o.Width))
	p.set("ar_", o.AspectRatio.String())
	p.set("dpr_", formatScale(o.Scale))
	return p
}
