package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	cloudinary "github.com/akolov/CloudinaryKit"
	"github.com/akolov/CloudinaryKit/config"
	"github.com/akolov/CloudinaryKit/internal/log"
)

var errNamedWithOptions = errors.New("--named cannot be combined with --preset or option flags")

// rootOptions are the global flags shared by every subcommand.
type rootOptions struct {
	configPath string
	host       string
	cloudName  string
	apiSecret  string
	sign       bool
	verbose    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "cldurl",
		Short: "Build Cloudinary delivery URLs",
		Long: `cldurl prints the delivery URL of an image or a video.

Example usage:
  cldurl image sample --width 200 --crop fill     # inline transformation
  cldurl image sample --preset avatar --config cloudinary.toml
  cldurl video intro --named preview              # server side named transformation
  cldurl raw sample --cloud-name demo             # untransformed original`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "TOML or YAML config file with host settings and presets")
	flags.StringVar(&opts.host, "host", "", "custom delivery domain (default res.cloudinary.com)")
	flags.StringVar(&opts.cloudName, "cloud-name", "", "cloud name used when no bucket is given")
	flags.StringVar(&opts.apiSecret, "api-secret", "", "secret for signed URLs (default $CLOUDINARY_API_SECRET)")
	flags.BoolVar(&opts.sign, "sign", false, "add a signature component to the URL")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(newImageCmd(opts), newVideoCmd(opts), newRawCmd(opts))
	return cmd
}

// init configures logging and loads the config, then applies the flag
// overrides on top of it.
func (o *rootOptions) init(cmd *cobra.Command) error {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	log.Configure(log.Config{Level: level, Output: cmd.ErrOrStderr(), Service: "cldurl"})

	o.cfg = &config.Config{}
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return errors.Wrap(err, "loading config")
		}
		o.cfg = cfg
	}
	if o.host != "" {
		o.cfg.Host = o.host
	}
	if o.cloudName != "" {
		o.cfg.CloudName = o.cloudName
	}
	if o.apiSecret != "" {
		o.cfg.APISecret = o.apiSecret
	} else if o.cfg.APISecret == "" {
		o.cfg.APISecret = os.Getenv("CLOUDINARY_API_SECRET")
	}
	return nil
}

// print builds the URL of t and writes it to the command output.
func (o *rootOptions) print(cmd *cobra.Command, t cloudinary.Transformation) error {
	svc := o.cfg.Service()
	var (
		url string
		err error
	)
	if o.sign {
		url, err = svc.SignedURL(t)
	} else {
		url, err = svc.URL(t)
	}
	if err != nil {
		return err
	}
	logger := log.WithComponent("cli")
	logger.Debug().
		Str(log.FieldHost, svc.Host().String()).
		Str(log.FieldCloudName, svc.CloudName()).
		Str(log.FieldPublicID, t.PublicID).
		Str(log.FieldMediaType, t.MediaType.String()).
		Str(log.FieldURL, url).
		Msg("url built")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
	return err
}

// kindFlags are the flags that pick between a preset, a named
// transformation and inline options.
type kindFlags struct {
	bucket string
	ext    string
	preset string
	named  string
}

func (k *kindFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&k.bucket, "bucket", "", "bucket (cloud name) embedded in the path")
	fs.StringVar(&k.ext, "ext", "", "output format of the delivered file")
	fs.StringVar(&k.preset, "preset", "", "preset from the config file; option flags override it")
	fs.StringVar(&k.named, "named", "", "named transformation defined on the server")
}

// optionFlags maps flag names onto the keys of a preset.
var optionFlags = map[string]string{
	"width":        "width",
	"height":       "height",
	"crop":         "crop",
	"gravity":      "gravity",
	"effect":       "effect",
	"quality":      "quality",
	"aspect-ratio": "aspect_ratio",
	"scale":        "scale",
	"format":       "format",
	"fps":          "fps",
	"audio-codec":  "audio_codec",
	"video-codec":  "video_codec",
}

var trimFlags = map[string]string{
	"trim-start":    "start",
	"trim-end":      "end",
	"trim-duration": "duration",
}

func registerCommonOptions(fs *pflag.FlagSet) {
	fs.Float64("width", 0, "width in pixels")
	fs.Float64("height", 0, "height in pixels")
	fs.String("crop", "", "crop mode, e.g. fill, fit, thumb")
	fs.String("gravity", "", "gravity, e.g. north, face, auto:subject")
	fs.String("effect", "", "effect passed through verbatim")
	fs.String("aspect-ratio", "", `aspect ratio, "16:9" or "1.5"`)
	fs.Float64("scale", 0, "device pixel ratio")
	fs.Float64("trim-start", 0, "trim start offset in seconds")
	fs.Float64("trim-end", 0, "trim end offset in seconds")
	fs.Float64("trim-duration", 0, "trim duration in seconds")
}

// options returns the preset settings with every changed option flag merged
// on top. The second result reports whether anything was set at all.
func (k *kindFlags) options(fs *pflag.FlagSet, presets map[string]map[string]interface{}) (map[string]interface{}, bool, error) {
	raw := map[string]interface{}{}
	set := false
	if k.preset != "" {
		preset, ok := presets[k.preset]
		if !ok {
			return nil, false, errors.Wrapf(config.ErrUnknownPreset, "preset %q", k.preset)
		}
		for key, v := range preset {
			raw[key] = v
		}
		set = true
	}

	var err error
	trim := map[string]interface{}{}
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if key, ok := trimFlags[f.Name]; ok {
			trim[key], err = fs.GetFloat64(f.Name)
			return
		}
		key, ok := optionFlags[f.Name]
		if !ok {
			return
		}
		switch f.Value.Type() {
		case "float64":
			raw[key], err = fs.GetFloat64(f.Name)
		case "int":
			raw[key], err = fs.GetInt(f.Name)
		default:
			raw[key] = f.Value.String()
		}
		set = true
	})
	if err != nil {
		return nil, false, err
	}
	if len(trim) > 0 {
		raw["trim"] = trim
		set = true
	}

	if k.named != "" && set {
		return nil, false, errNamedWithOptions
	}
	return raw, set, nil
}

func (k *kindFlags) transformation(id string, media cloudinary.MediaType) (cloudinary.Transformation, error) {
	format, err := config.ParseOutputFormat(media, k.ext)
	if err != nil {
		return cloudinary.Transformation{}, err
	}
	t := cloudinary.Transformation{
		PublicID:  id,
		Bucket:    k.bucket,
		MediaType: media,
		Format:    format,
	}
	if k.named != "" {
		t.Kind = cloudinary.NamedTransformation(k.named)
	}
	logger := log.WithComponent("cli")
	logger.Debug().
		Str(log.FieldMediaType, media.String()).
		Str(log.FieldPreset, k.preset).
		Str(log.FieldNamed, k.named).
		Str(log.FieldFormat, k.ext).
		Msg("transformation resolved")
	return t, nil
}
