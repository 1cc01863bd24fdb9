package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tips/internal/config"
	"github.com/vango-dev/tips/internal/export"
)

func exportCmd(flags *globalFlags) *cobra.Command {
	var (
		dir      string
		bucket   string
		region   string
		prefix   string
		endpoint string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the page, fragment, stylesheet and class map",
		Long: `Export the rendered artifacts as static files.

Artifacts go to the export directory unless an S3 bucket is configured,
in which case they are uploaded with matching Cache-Control headers.
S3 credentials are read from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  tips export
  tips export --out=public
  tips export --s3-bucket=my-site --s3-region=eu-west-1 --prefix=tips/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			if dir != "" {
				cfg.Export.Dir = dir
			}
			if bucket != "" {
				cfg.Export.S3.Bucket = bucket
			}
			if region != "" {
				cfg.Export.S3.Region = region
			}
			if prefix != "" {
				cfg.Export.S3.Prefix = prefix
			}
			if endpoint != "" {
				cfg.Export.S3.Endpoint = endpoint
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg, os.Stderr)

			s, err := buildSite(cfg)
			if err != nil {
				return err
			}

			pub, locate, err := newPublisher(cfg)
			if err != nil {
				return err
			}

			keys, err := export.Export(cmd.Context(), pub, s, export.Options{
				Dev:    cfg.Dev,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, key := range keys {
				fmt.Fprintln(out, locate(key))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "out", "o", "", "Export directory (default from tips.json)")
	cmd.Flags().StringVar(&bucket, "s3-bucket", "", "Upload to this S3 bucket instead of a directory")
	cmd.Flags().StringVar(&region, "s3-region", "", "S3 region")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&endpoint, "s3-endpoint", "", "Endpoint for S3-compatible stores")

	return cmd
}

// newPublisher picks the S3 target when a bucket is configured. The
// returned func maps a key to where it was written, for display.
func newPublisher(cfg *config.Config) (export.Publisher, func(string) string, error) {
	if s3cfg := cfg.Export.S3; s3cfg.Bucket != "" {
		client := export.NewS3Client(export.S3Config{
			Region:   s3cfg.Region,
			Endpoint: s3cfg.Endpoint,
		})
		locate := func(key string) string {
			return "s3://" + s3cfg.Bucket + "/" + path.Join(s3cfg.Prefix, key)
		}
		return export.NewS3Publisher(client, s3cfg.Bucket, s3cfg.Prefix), locate, nil
	}

	pub, err := export.NewDirPublisher(cfg.Export.Dir)
	if err != nil {
		return nil, nil, err
	}
	locate := func(key string) string {
		return filepath.Join(pub.Root(), filepath.FromSlash(key))
	}
	return pub, locate, nil
}
