package main

import (
	"github.com/spf13/cobra"

	cloudinary "github.com/akolov/CloudinaryKit"
)

type videoOptions struct {
	kindFlags
	platform string
	waveform bool
}

func newVideoCmd(root *rootOptions) *cobra.Command {
	opts := &videoOptions{}
	cmd := &cobra.Command{
		Use:   "video <public-id>",
		Short: "Print the delivery URL of a video",
		Long: `Print the delivery URL of a video.

Examples:
  cldurl video intro --width 640 --fps 24-30 --quality 70
  cldurl video intro --trim-start 1.5 --trim-duration 10 --audio-codec none
  cldurl video intro --platform legacy      # h264 instead of h265`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVideo(cmd, root, opts, args[0])
		},
	}

	fs := cmd.Flags()
	opts.register(fs)
	registerCommonOptions(fs)
	fs.String("fps", "", `frame rate, "30" or "24-30"`)
	fs.Int("quality", 0, "quality between 1 and 100")
	fs.String("audio-codec", "", "audio codec: none, aac or mp3")
	fs.String("video-codec", "", "video codec: auto, h264 or h265")
	fs.StringVar(&opts.platform, "platform", "", "modern or legacy; picks the default video codec")
	fs.BoolVar(&opts.waveform, "waveform", false, "render the audio waveform")
	return cmd
}

func runVideo(cmd *cobra.Command, root *rootOptions, opts *videoOptions, id string) error {
	raw, set, err := opts.options(cmd.Flags(), root.cfg.VideoPresets)
	if err != nil {
		return err
	}
	if opts.waveform {
		raw["flags"] = []string{"waveform"}
		set = true
	}
	if opts.platform != "" {
		root.cfg.Platform = opts.platform
		set = true
	}

	t, err := opts.transformation(id, cloudinary.MediaVideo)
	if err != nil {
		return err
	}
	if set {
		if opts.named != "" {
			return errNamedWithOptions
		}
		o, err := root.cfg.VideoOptions(raw)
		if err != nil {
			return err
		}
		t.Kind = cloudinary.Dynamic(o)
	}
	return root.print(cmd, t)
}
