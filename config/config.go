// Package config loads delivery settings and named client-side presets from
// a TOML or YAML file.
package config

import (
	"bytes"
	"io"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	cloudinary "github.com/akolov/CloudinaryKit"
	"github.com/akolov/CloudinaryKit/internal/log"
)

// Format is the syntax of a config file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Config describes how URLs are built.
//
//	host = "media.example.com"   # empty for res.cloudinary.com
//	cloud_name = "demo"
//	platform = "legacy"          # modern (default) or legacy
//	scale = 2.0
//
//	[image_presets.avatar]
//	crop = "thumb"
//	gravity = "face"
//	width = 200
type Config struct {
	Host         string                            `toml:"host" yaml:"host"`
	CloudName    string                            `toml:"cloud_name" yaml:"cloud_name"`
	APISecret    string                            `toml:"api_secret" yaml:"api_secret"`
	Platform     string                            `toml:"platform" yaml:"platform"`
	Scale        float64                           `toml:"scale" yaml:"scale"`
	ImagePresets map[string]map[string]interface{} `toml:"image_presets" yaml:"image_presets"`
	VideoPresets map[string]map[string]interface{} `toml:"video_presets" yaml:"video_presets"`
}

// FormatFromPath picks the syntax from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.Errorf("unsupported config extension %q", filepath.Ext(path))
}

// Load reads, parses and validates the file at path.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	body, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read config")
	}
	c, err := Parse(body, format)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load %s", path)
	}
	logger := log.WithComponent("config")
	logger.Debug().
		Str(log.FieldPath, path).
		Int("image_presets", len(c.ImagePresets)).
		Int("video_presets", len(c.VideoPresets)).
		Msg("config loaded")
	return c, nil
}

// Parse decodes body in the given format and validates the result. Unknown
// top level keys are rejected in both formats.
func Parse(body []byte, format Format) (*Config, error) {
	c := Config{}
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(body), &c)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to decode toml")
		}
		for _, key := range md.Undecoded() {
			// preset bodies are checked when they are decoded
			if key[0] == "image_presets" || key[0] == "video_presets" {
				continue
			}
			return nil, errors.Errorf("unknown config key %q", key.String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(body))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "Failed to decode yaml")
		}
	default:
		return nil, errors.Errorf("unsupported config format %q", format)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the scalar settings and decodes every preset once so that
// mistakes surface at load time.
func (c *Config) Validate() error {
	if _, err := c.PlatformValue(); err != nil {
		return err
	}
	if c.Scale < 0 {
		return errors.Errorf("scale must not be negative, got %v", c.Scale)
	}
	for _, name := range sortedKeys(c.ImagePresets) {
		if _, err := c.ImagePreset(name); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(c.VideoPresets) {
		if _, err := c.VideoPreset(name); err != nil {
			return err
		}
	}
	return nil
}

// PlatformValue parses the platform setting.
func (c *Config) PlatformValue() (cloudinary.Platform, error) {
	switch strings.ToLower(c.Platform) {
	case "", "modern":
		return cloudinary.PlatformModern, nil
	case "legacy":
		return cloudinary.PlatformLegacy, nil
	}
	return cloudinary.PlatformModern, errors.Errorf("unknown platform %q", c.Platform)
}

// HostValue returns the delivery host.
func (c *Config) HostValue() cloudinary.Host {
	if c.Host == "" {
		return cloudinary.StandardHost()
	}
	return cloudinary.CustomHost(c.Host)
}

// Service returns a Service configured with the host, cloud name and secret.
func (c *Config) Service() *cloudinary.Service {
	opts := []cloudinary.Option{
		cloudinary.WithHost(c.HostValue()),
		cloudinary.WithCloudName(c.CloudName),
	}
	if c.APISecret != "" {
		opts = append(opts, cloudinary.WithAPISecret(c.APISecret))
	}
	return cloudinary.NewService(opts...)
}

// ImagePresetNames lists the image presets in lexical order.
func (c *Config) ImagePresetNames() []string {
	return sortedKeys(c.ImagePresets)
}

// VideoPresetNames lists the video presets in lexical order.
func (c *Config) VideoPresetNames() []string {
	return sortedKeys(c.VideoPresets)
}

func sortedKeys(m map[string]map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
