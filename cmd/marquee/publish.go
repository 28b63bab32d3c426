package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/marquee-dev/marquee/internal/config"
	"github.com/marquee-dev/marquee/internal/publish"
)

func publishCmd() *cobra.Command {
	var options publish.Options

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the built page to S3",
		Long: `Upload the build output to an S3 bucket.

Run marquee build first. Credentials and region come from the
standard AWS environment; flags override the publish section of
marquee.json.

Examples:
  marquee publish --bucket=promo-pages
  marquee publish --bucket=promo-pages --prefix=witcher
  marquee publish --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), options)
		},
	}

	cmd.Flags().StringVarP(&options.Bucket, "bucket", "b", "", "Destination bucket (default from marquee.json)")
	cmd.Flags().StringVarP(&options.Prefix, "prefix", "p", "", "Key prefix (default from marquee.json)")
	cmd.Flags().StringVar(&options.Region, "region", "", "AWS region (default from the environment)")
	cmd.Flags().BoolVar(&options.DryRun, "dry-run", false, "List the objects without uploading")

	return cmd
}

func runPublish(ctx context.Context, options publish.Options) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	options.OnUpload = func(obj publish.Object) {
		info("%s  (%s, %s)", obj.Key, obj.ContentType, formatBytes(obj.Size))
	}

	publisher, err := publish.NewFromConfig(ctx, cfg, options)
	if err != nil {
		return err
	}

	if options.DryRun {
		warn("Dry run: nothing will be uploaded")
	}
	fmt.Println()

	result, err := publisher.Publish(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	if result.DryRun {
		success("%d objects (%s) would be uploaded to s3://%s", len(result.Objects), formatBytes(result.Bytes), result.Bucket)
	} else {
		success("Published %d objects (%s) to s3://%s in %s",
			len(result.Objects), formatBytes(result.Bytes), result.Bucket, result.Duration.Round(time.Millisecond))
	}
	fmt.Println()

	return nil
}
