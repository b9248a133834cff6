package main

import (
	"github.com/spf13/cobra"

	cloudinary "github.com/akolov/CloudinaryKit"
)

type imageOptions struct {
	kindFlags
	progressive bool
	text        string
	font        string
	color       string
}

func newImageCmd(root *rootOptions) *cobra.Command {
	opts := &imageOptions{}
	cmd := &cobra.Command{
		Use:   "image <public-id>",
		Short: "Print the delivery URL of an image",
		Long: `Print the delivery URL of an image.

Examples:
  cldurl image sample --width 300 --height 200 --crop fill --gravity face
  cldurl image sample --format auto --quality auto:good --ext webp
  cldurl image sample --text "Hello World" --font Arial_40 --color rgb:ffffff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(cmd, root, opts, args[0])
		},
	}

	fs := cmd.Flags()
	opts.register(fs)
	registerCommonOptions(fs)
	fs.String("format", "", "f_ parameter, e.g. auto, png")
	fs.String("quality", "", "quality, e.g. auto:good or 80")
	fs.BoolVar(&opts.progressive, "progressive", false, "progressive rendering")
	fs.StringVar(&opts.text, "text", "", "text overlay; replaces the layers of a preset")
	fs.StringVar(&opts.font, "font", "", "font of the text overlay, e.g. Arial_40")
	fs.StringVar(&opts.color, "color", "", "color of the text overlay")
	return cmd
}

func runImage(cmd *cobra.Command, root *rootOptions, opts *imageOptions, id string) error {
	raw, set, err := opts.options(cmd.Flags(), root.cfg.ImagePresets)
	if err != nil {
		return err
	}
	if opts.progressive {
		raw["flags"] = []string{"progressive"}
		set = true
	}
	if opts.text != "" {
		raw["layers"] = []map[string]interface{}{
			{"text": opts.text, "font": opts.font, "color": opts.color},
		}
		set = true
	}

	t, err := opts.transformation(id, cloudinary.MediaImage)
	if err != nil {
		return err
	}
	if set {
		if opts.named != "" {
			return errNamedWithOptions
		}
		o, err := root.cfg.ImageOptions(raw)
		if err != nil {
			return err
		}
		t.Kind = cloudinary.Dynamic(o)
	}
	return root.print(cmd, t)
}
