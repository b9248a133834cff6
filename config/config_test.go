package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cloudinary "github.com/akolov/CloudinaryKit"
)

const tomlFixture = `
host = "media.example.com"
cloud_name = "demo"
platform = "legacy"
scale = 2.0

[image_presets.avatar]
crop = "thumb"
gravity = "face"
width = 200
height = 200
quality = "auto:good"
flags = ["progressive"]

[image_presets.banner]
format = "auto"
aspect_ratio = "16:9"

[[image_presets.banner.layers]]
text = "Hello World"
font = "Arial_40"
color = "rgb:ffffff"

[video_presets.preview]
fps = "24-30"
quality = 70
audio_codec = "none"
trim = { start = 1.5, duration = 10 }
`

const yamlFixture = `
cloud_name: demo
image_presets:
  card:
    crop: fill
    gravity: "auto:subject"
    aspect_ratio: 1.5
    quality: 80
    trim:
      end: 3
video_presets:
  clip:
    fps: [24, 30]
    flags: [waveform]
    video_codec: auto
    width: 640
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	c, err := Load(writeFile(t, "cloudinary.toml", tomlFixture))
	require.NoError(t, err)

	assert.Equal(t, "media.example.com", c.Host)
	assert.Equal(t, "demo", c.CloudName)
	assert.Equal(t, []string{"avatar", "banner"}, c.ImagePresetNames())
	assert.Equal(t, []string{"preview"}, c.VideoPresetNames())

	platform, err := c.PlatformValue()
	require.NoError(t, err)
	assert.Equal(t, cloudinary.PlatformLegacy, platform)

	avatar, err := c.ImagePreset("avatar")
	require.NoError(t, err)
	assert.Equal(t, "f_jpg,c_thumb,fl_progressive,g_face,q_auto:good,h_200,w_200,dpr_2", avatar.String())

	banner, err := c.ImagePreset("banner")
	require.NoError(t, err)
	assert.Equal(t, "ar_16:9,dpr_2/l_text:Arial_40:Hello%20World:rgb:ffffff", banner.String())

	preview, err := c.VideoPreset("preview")
	require.NoError(t, err)
	want := cloudinary.NewVideoOptions(cloudinary.PlatformLegacy)
	want.AudioCodec = cloudinary.AudioCodecNone
	want.FrameRate = cloudinary.FPSRange(24, 30)
	want.Quality = cloudinary.Int(70)
	want.Trim = cloudinary.TrimStartDuration(1.5, 10)
	want.Scale = 2
	if diff := cmp.Diff(want, preview, cmp.AllowUnexported(cloudinary.VideoTrim{})); diff != "" {
		t.Errorf("VideoPreset() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "f_mp4,ac_none,vc_h264,fps_24-30,q_70/so_1.5,du_10,dpr_2", preview.String())

	url, err := c.Service().URL(cloudinary.Transformation{
		PublicID: "portrait",
		Bucket:   "ignored",
		Kind:     cloudinary.Dynamic(avatar),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/image/upload/f_jpg,c_thumb,fl_progressive,g_face,q_auto:good,h_200,w_200,dpr_2/portrait.heic", url)
}

func TestLoadYAML(t *testing.T) {
	c, err := Load(writeFile(t, "cloudinary.yml", yamlFixture))
	require.NoError(t, err)

	assert.Equal(t, cloudinary.StandardHost(), c.HostValue())

	card, err := c.ImagePreset("card")
	require.NoError(t, err)
	assert.Equal(t, "f_jpg,c_fill,g_auto:subject,q_80,eo_3,ar_1.5", card.String())

	clip, err := c.VideoPreset("clip")
	require.NoError(t, err)
	assert.Equal(t, "f_mp4,fps_24-30/fl_waveform,w_640", clip.String())

	url, err := c.Service().URL(cloudinary.Transformation{
		PublicID:  "intro",
		MediaType: cloudinary.MediaVideo,
		Kind:      cloudinary.Dynamic(clip),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/video/upload/f_mp4,fps_24-30/fl_waveform,w_640/intro.mp4", url)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name   string
		format Format
		body   string
		err    string
	}{
		{"unknown crop", FormatTOML, "[image_presets.a]\ncrop = \"zoom\"\n", `"zoom" is not a valid crop`},
		{"unknown gravity", FormatYAML, "image_presets:\n  a:\n    gravity: up\n", `"up" is not a valid gravity`},
		{"unknown flag", FormatYAML, "video_presets:\n  a:\n    flags: [loop]\n", `"fl_loop" is not a valid videoflag`},
		{"bad quality", FormatYAML, "image_presets:\n  a:\n    quality: great\n", `"great" is not a valid quality`},
		{"bad aspect ratio", FormatYAML, "image_presets:\n  a:\n    aspect_ratio: wide\n", `"wide" is not a valid aspect ratio`},
		{"bad frame rate", FormatYAML, "video_presets:\n  a:\n    fps: fast\n", `invalid frame rate "fast"`},
		{"unused key", FormatYAML, "image_presets:\n  a:\n    widht: 10\n", "widht"},
		{"full trim", FormatTOML, "[image_presets.a]\ntrim = { start = 1, end = 2, duration = 1 }\n", "trim cannot set start, end and duration together"},
		{"empty trim", FormatTOML, "[image_presets.a]\ntrim = {}\n", "trim needs start, end or duration"},
		{"layer without font", FormatYAML, "image_presets:\n  a:\n    layers:\n      - text: hi\n", "layer 0 has no font"},
		{"unknown platform", FormatTOML, "platform = \"android\"\n", `unknown platform "android"`},
		{"negative scale", FormatTOML, "scale = -1.0\n", "scale must not be negative"},
		{"syntax", FormatTOML, "host = \n", "Failed to decode toml"},
		{"format", Format("json"), "{}", `unsupported config format "json"`},
		{"unknown toml key", FormatTOML, "hots = \"cdn.example.com\"\n", `unknown config key "hots"`},
		{"unknown yaml key", FormatYAML, "hots: cdn.example.com\n", "field hots not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body), tc.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestUnknownPreset(t *testing.T) {
	c, err := Parse([]byte(yamlFixture), FormatYAML)
	require.NoError(t, err)

	_, err = c.ImagePreset("missing")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
	_, err = c.VideoPreset("missing")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestFormatFromPath(t *testing.T) {
	testCases := []struct {
		path   string
		format Format
		ok     bool
	}{
		{"a.toml", FormatTOML, true},
		{"dir/A.TOML", FormatTOML, true},
		{"a.yaml", FormatYAML, true},
		{"a.yml", FormatYAML, true},
		{"a.json", "", false},
		{"a", "", false},
	}

	for _, tc := range testCases {
		format, err := FormatFromPath(tc.path)
		assert.Equal(t, tc.format, format, tc.path)
		assert.Equal(t, tc.ok, err == nil, tc.path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config")
}

func TestParseFrameRate(t *testing.T) {
	testCases := []struct {
		in   string
		want cloudinary.FrameRate
	}{
		{"", cloudinary.FrameRate{}},
		{"30", cloudinary.FPS(30)},
		{"24-30", cloudinary.FPSRange(24, 30)},
		{"24 - 30", cloudinary.FPSRange(24, 30)},
	}

	for _, tc := range testCases {
		got, err := ParseFrameRate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseFrameRate("24-")
	assert.Error(t, err)
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat(cloudinary.MediaImage, "webp")
	require.NoError(t, err)
	assert.Equal(t, cloudinary.ImageFormatWebP, f)

	f, err = ParseOutputFormat(cloudinary.MediaVideo, "webm")
	require.NoError(t, err)
	assert.Equal(t, cloudinary.VideoFormatWebM, f)

	f, err = ParseOutputFormat(cloudinary.MediaImage, "")
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = ParseOutputFormat(cloudinary.MediaVideo, "png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"png" is not a valid videoformat`)
}

func TestImageOptionsFromMap(t *testing.T) {
	c := &Config{Scale: 3}
	o, err := c.ImageOptions(map[string]interface{}{
		"width":   float64(120),
		"quality": "70",
		"flags":   []string{"progressive"},
	})
	require.NoError(t, err)
	assert.Equal(t, "f_jpg,fl_progressive,q_70,w_120,dpr_3", o.String())
}

func TestParseEmptyYAML(t *testing.T) {
	c, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, cloudinary.StandardHost(), c.HostValue())
}
