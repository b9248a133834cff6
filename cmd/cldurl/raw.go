package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cloudinary "github.com/akolov/CloudinaryKit"
)

func newRawCmd(root *rootOptions) *cobra.Command {
	var (
		bucket string
		video  bool
	)
	cmd := &cobra.Command{
		Use:   "raw <public-id>",
		Short: "Print the URL of an untransformed original",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.sign {
				return errors.New("raw URLs cannot be signed")
			}
			t := cloudinary.Transformation{PublicID: args[0], Bucket: bucket}
			if video {
				t.MediaType = cloudinary.MediaVideo
			}
			url, err := root.cfg.Service().RawURL(t)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}
	cmd.Flags().StringVar(&bucket, "bucket", "", "bucket (cloud name) embedded in the path")
	cmd.Flags().BoolVar(&video, "video", false, "the asset is a video")
	return cmd
}
