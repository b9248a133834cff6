package config

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	cloudinary "github.com/akolov/CloudinaryKit"
)

// ErrUnknownPreset is returned when a preset name is not in the config.
var ErrUnknownPreset = errors.New("unknown preset")

type imagePreset struct {
	Format      cloudinary.ImageFormat `mapstructure:"format"`
	Crop        cloudinary.Crop        `mapstructure:"crop"`
	Effect      string                 `mapstructure:"effect"`
	Flags       []cloudinary.ImageFlag `mapstructure:"flags"`
	Gravity     cloudinary.Gravity     `mapstructure:"gravity"`
	Quality     cloudinary.Quality     `mapstructure:"quality"`
	Trim        *trimPreset            `mapstructure:"trim"`
	Width       *float64               `mapstructure:"width"`
	Height      *float64               `mapstructure:"height"`
	AspectRatio cloudinary.AspectRatio `mapstructure:"aspect_ratio"`
	Scale       float64                `mapstructure:"scale"`
	Layers      []textLayerPreset      `mapstructure:"layers"`
}

type videoPreset struct {
	AudioCodec  cloudinary.AudioCodec  `mapstructure:"audio_codec"`
	VideoCodec  cloudinary.VideoCodec  `mapstructure:"video_codec"`
	FrameRate   frameRate              `mapstructure:"fps"`
	Quality     *int                   `mapstructure:"quality"`
	Crop        cloudinary.Crop        `mapstructure:"crop"`
	Effect      string                 `mapstructure:"effect"`
	Flags       []cloudinary.VideoFlag `mapstructure:"flags"`
	Gravity     cloudinary.Gravity     `mapstructure:"gravity"`
	Trim        *trimPreset            `mapstructure:"trim"`
	Width       *float64               `mapstructure:"width"`
	Height      *float64               `mapstructure:"height"`
	AspectRatio cloudinary.AspectRatio `mapstructure:"aspect_ratio"`
	Scale       float64                `mapstructure:"scale"`
}

// frameRate is "30", "24-30", 30 or [24, 30] in a preset.
type frameRate string

type trimPreset struct {
	Start    *float64 `mapstructure:"start"`
	End      *float64 `mapstructure:"end"`
	Duration *float64 `mapstructure:"duration"`
}

type textLayerPreset struct {
	Text  string `mapstructure:"text"`
	Font  string `mapstructure:"font"`
	Color string `mapstructure:"color"`
}

// ImagePreset decodes the named image preset. Unset scale falls back to the
// config scale.
func (c *Config) ImagePreset(name string) (cloudinary.ImageOptions, error) {
	raw, ok := c.ImagePresets[name]
	if !ok {
		return cloudinary.ImageOptions{}, errors.Wrapf(ErrUnknownPreset, "image preset %q", name)
	}
	o, err := c.ImageOptions(raw)
	if err != nil {
		return cloudinary.ImageOptions{}, errors.Wrapf(err, "image preset %q", name)
	}
	return o, nil
}

// ImageOptions decodes preset-shaped settings, such as a preset merged with
// command line overrides.
func (c *Config) ImageOptions(raw map[string]interface{}) (cloudinary.ImageOptions, error) {
	var p imagePreset
	if err := decode(raw, &p); err != nil {
		return cloudinary.ImageOptions{}, err
	}
	trim, err := p.Trim.videoTrim()
	if err != nil {
		return cloudinary.ImageOptions{}, err
	}

	o := cloudinary.NewImageOptions()
	if p.Format != "" {
		o.Format = p.Format
	}
	if p.Crop != "" {
		o.Crop = p.Crop
	}
	if p.Gravity != "" {
		o.Gravity = p.Gravity
	}
	o.Effect = p.Effect
	o.Flags = p.Flags
	o.Quality = p.Quality
	o.Trim = trim
	o.Width = p.Width
	o.Height = p.Height
	o.AspectRatio = p.AspectRatio
	o.Scale = c.scale(p.Scale)
	for i, l := range p.Layers {
		if l.Font == "" {
			return cloudinary.ImageOptions{}, errors.Errorf("layer %d has no font", i)
		}
		o.Layers = append(o.Layers, cloudinary.TextLayer{Text: l.Text, Font: l.Font, Color: l.Color})
	}
	return o, nil
}

// VideoPreset decodes the named video preset. The codec defaults to the one
// of the configured platform.
func (c *Config) VideoPreset(name string) (cloudinary.VideoOptions, error) {
	raw, ok := c.VideoPresets[name]
	if !ok {
		return cloudinary.VideoOptions{}, errors.Wrapf(ErrUnknownPreset, "video preset %q", name)
	}
	o, err := c.VideoOptions(raw)
	if err != nil {
		return cloudinary.VideoOptions{}, errors.Wrapf(err, "video preset %q", name)
	}
	return o, nil
}

// VideoOptions decodes preset-shaped settings for a video.
func (c *Config) VideoOptions(raw map[string]interface{}) (cloudinary.VideoOptions, error) {
	platform, err := c.PlatformValue()
	if err != nil {
		return cloudinary.VideoOptions{}, err
	}
	var p videoPreset
	if err := decode(raw, &p); err != nil {
		return cloudinary.VideoOptions{}, err
	}
	trim, err := p.Trim.videoTrim()
	if err != nil {
		return cloudinary.VideoOptions{}, err
	}
	fps, err := ParseFrameRate(string(p.FrameRate))
	if err != nil {
		return cloudinary.VideoOptions{}, err
	}

	o := cloudinary.NewVideoOptions(platform)
	if p.AudioCodec != "" {
		o.AudioCodec = p.AudioCodec
	}
	if p.VideoCodec != "" {
		o.VideoCodec = p.VideoCodec
	}
	if p.Crop != "" {
		o.Crop = p.Crop
	}
	if p.Gravity != "" {
		o.Gravity = p.Gravity
	}
	o.FrameRate = fps
	o.Quality = p.Quality
	o.Effect = p.Effect
	o.Flags = p.Flags
	o.Trim = trim
	o.Width = p.Width
	o.Height = p.Height
	o.AspectRatio = p.AspectRatio
	o.Scale = c.scale(p.Scale)
	return o, nil
}

func (c *Config) scale(preset float64) float64 {
	if preset != 0 {
		return preset
	}
	if c.Scale != 0 {
		return c.Scale
	}
	return 1
}

// videoTrim maps the populated offsets onto the matching constructor.
func (t *trimPreset) videoTrim() (*cloudinary.VideoTrim, error) {
	if t == nil {
		return nil, nil
	}
	switch {
	case t.Start != nil && t.End != nil && t.Duration == nil:
		return cloudinary.TrimStartEnd(*t.Start, *t.End), nil
	case t.Start != nil && t.End == nil && t.Duration != nil:
		return cloudinary.TrimStartDuration(*t.Start, *t.Duration), nil
	case t.Start == nil && t.End != nil && t.Duration != nil:
		return cloudinary.TrimEndDuration(*t.End, *t.Duration), nil
	case t.Start != nil && t.End == nil && t.Duration == nil:
		return cloudinary.TrimStart(*t.Start), nil
	case t.Start == nil && t.End != nil && t.Duration == nil:
		return cloudinary.TrimEnd(*t.End), nil
	case t.Start == nil && t.End == nil && t.Duration != nil:
		return cloudinary.TrimDuration(*t.Duration), nil
	case t.Start == nil && t.End == nil && t.Duration == nil:
		return nil, errors.New("trim needs start, end or duration")
	}
	return nil, errors.New("trim cannot set start, end and duration together")
}

// ParseFrameRate accepts "" (none), "30" or "24-30".
func ParseFrameRate(s string) (cloudinary.FrameRate, error) {
	if s == "" {
		return cloudinary.FrameRate{}, nil
	}
	lo, hi := s, s
	if i := strings.Index(s, "-"); i > 0 {
		lo, hi = s[:i], s[i+1:]
	}
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return cloudinary.FrameRate{}, errors.Errorf("invalid frame rate %q", s)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return cloudinary.FrameRate{}, errors.Errorf("invalid frame rate %q", s)
	}
	return cloudinary.FPSRange(min, max), nil
}

// ParseOutputFormat validates the extension of a delivery URL for the media
// type. An empty string selects the media type default.
func ParseOutputFormat(media cloudinary.MediaType, s string) (cloudinary.OutputFormat, error) {
	if s == "" {
		return nil, nil
	}
	to := typeImageFormat
	if media == cloudinary.MediaVideo {
		to = typeVideoFormat
	}
	if _, err := enumHook(reflect.TypeOf(s), to, s); err != nil {
		return nil, err
	}
	if media == cloudinary.MediaVideo {
		return cloudinary.VideoFormat(s), nil
	}
	return cloudinary.ImageFormat(s), nil
}

func decode(input map[string]interface{}, result interface{}) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			flagHook,
			enumHook,
			qualityHook,
			aspectRatioHook,
			frameRateHook,
		),
		ErrorUnused: true,
		Result:      result,
	})
	if err != nil {
		return errors.Wrap(err, "Failed to create decoder")
	}
	return d.Decode(input)
}

var (
	typeCrop        = reflect.TypeOf(cloudinary.Crop(""))
	typeGravity     = reflect.TypeOf(cloudinary.Gravity(""))
	typeImageFormat = reflect.TypeOf(cloudinary.ImageFormat(""))
	typeVideoFormat = reflect.TypeOf(cloudinary.VideoFormat(""))
	typeAudioCodec  = reflect.TypeOf(cloudinary.AudioCodec(""))
	typeVideoCodec  = reflect.TypeOf(cloudinary.VideoCodec(""))
	typeImageFlag   = reflect.TypeOf(cloudinary.ImageFlag(""))
	typeVideoFlag   = reflect.TypeOf(cloudinary.VideoFlag(""))
	typeQuality     = reflect.TypeOf(cloudinary.Quality(""))
	typeAspectRatio = reflect.TypeOf(cloudinary.AspectRatio(""))
	typeFrameRate   = reflect.TypeOf(frameRate(""))
)

// enumValues are the accepted spellings of each closed set.
var enumValues = map[reflect.Type][]string{
	typeCrop: {
		string(cloudinary.CropNone), string(cloudinary.CropCrop), string(cloudinary.CropScale),
		string(cloudinary.CropLimit), string(cloudinary.CropThumb), string(cloudinary.CropFit),
		string(cloudinary.CropMinimumFit), string(cloudinary.CropFill), string(cloudinary.CropLimitFill),
		string(cloudinary.CropPad), string(cloudinary.CropLimitPad), string(cloudinary.CropMinimumPad),
		string(cloudinary.CropFillPad),
	},
	typeGravity: {
		string(cloudinary.GravityCenter), string(cloudinary.GravityNorth), string(cloudinary.GravityWest),
		string(cloudinary.GravitySouth), string(cloudinary.GravityEast), string(cloudinary.GravityNorthEast),
		string(cloudinary.GravityNorthWest), string(cloudinary.GravitySouthWest),
		string(cloudinary.GravitySouthEast), string(cloudinary.GravityFace),
	},
	typeImageFormat: {
		string(cloudinary.ImageFormatAuto), string(cloudinary.ImageFormatHEIC), string(cloudinary.ImageFormatJPEG),
		string(cloudinary.ImageFormatPDF), string(cloudinary.ImageFormatPNG), string(cloudinary.ImageFormatWebP),
	},
	typeVideoFormat: {
		string(cloudinary.VideoFormatMP4), string(cloudinary.VideoFormatWebM), string(cloudinary.VideoFormatMOV),
	},
	typeAudioCodec: {
		string(cloudinary.AudioCodecPassthrough), string(cloudinary.AudioCodecNone),
		string(cloudinary.AudioCodecAAC), string(cloudinary.AudioCodecMP3),
	},
	typeVideoCodec: {
		string(cloudinary.VideoCodecAuto), string(cloudinary.VideoCodecH264), string(cloudinary.VideoCodecH265),
	},
	typeImageFlag: {string(cloudinary.ImageFlagProgressive)},
	typeVideoFlag: {string(cloudinary.VideoFlagWaveform)},
}

func enumHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	allowed, ok := enumValues[to]
	if !ok || from.Kind() != reflect.String {
		return data, nil
	}
	s := data.(string)
	if to == typeGravity && (s == "auto" || strings.HasPrefix(s, "auto:")) {
		return s, nil
	}
	for _, v := range allowed {
		if s == v {
			return s, nil
		}
	}
	return nil, errors.Errorf("%q is not a valid %s, expected one of %s",
		s, strings.ToLower(to.Name()), strings.Join(allowed, ", "))
}

// flagHook lets presets write "progressive" for "fl_progressive".
func flagHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if (to != typeImageFlag && to != typeVideoFlag) || from.Kind() != reflect.String {
		return data, nil
	}
	s := data.(string)
	if !strings.HasPrefix(s, "fl_") {
		s = "fl_" + s
	}
	return s, nil
}

func qualityHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != typeQuality {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return string(cloudinary.QualityValue(v)), nil
	case int64:
		return string(cloudinary.QualityValue(int(v))), nil
	case float64:
		return string(cloudinary.QualityValue(int(v))), nil
	case string:
		switch cloudinary.Quality(v) {
		case cloudinary.QualityAuto, cloudinary.QualityBest, cloudinary.QualityGood,
			cloudinary.QualityEco, cloudinary.QualityLow:
			return v, nil
		}
		if n, err := strconv.Atoi(v); err == nil {
			return string(cloudinary.QualityValue(n)), nil
		}
		return nil, errors.Errorf("%q is not a valid quality", v)
	}
	return data, nil
}

// aspectRatioHook accepts "16:9", "1.5" or a bare number.
func aspectRatioHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != typeAspectRatio {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return string(cloudinary.DecimalRatio(float64(v))), nil
	case int64:
		return string(cloudinary.DecimalRatio(float64(v))), nil
	case float64:
		return string(cloudinary.DecimalRatio(v)), nil
	case string:
		if parts := strings.Split(v, ":"); len(parts) == 2 {
			w, errW := strconv.Atoi(parts[0])
			h, errH := strconv.Atoi(parts[1])
			if errW == nil && errH == nil {
				return string(cloudinary.Ratio(w, h)), nil
			}
		} else if f, err := strconv.ParseFloat(v, 64); err == nil {
			return string(cloudinary.DecimalRatio(f)), nil
		}
		return nil, errors.Errorf("%q is not a valid aspect ratio", v)
	}
	return data, nil
}

// frameRateHook turns numbers and [min, max] pairs into the string form read
// by ParseFrameRate.
func frameRateHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != typeFrameRate {
		return data, nil
	}
	switch v := data.(type) {
	case []interface{}:
		if len(v) != 2 {
			return data, nil
		}
		lo, okLo := toInt(v[0])
		hi, okHi := toInt(v[1])
		if !okLo || !okHi {
			return data, nil
		}
		return strconv.Itoa(lo) + "-" + strconv.Itoa(hi), nil
	}
	if n, ok := toInt(data); ok {
		return strconv.Itoa(n), nil
	}
	return data, nil
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
