package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	clientdist "github.com/marquee-dev/marquee/client/dist"
	"github.com/marquee-dev/marquee/internal/build"
	"github.com/marquee-dev/marquee/internal/config"
)

func buildCmd() *cobra.Command {
	var (
		output string
		pretty bool
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the landing page",
		Long: `Build the landing page into the output directory.

This command:
  • Renders movie.yaml into index.html
  • Mounts it into the host template (if configured)
  • Copies static assets
  • Writes the carousel and menu script

Examples:
  marquee build
  marquee build --output=public
  marquee build --pretty --clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), build.Options{
				Output: output,
				Pretty: pretty,
				Clean:  clean,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from marquee.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the generated HTML")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")

	return cmd
}

func runBuild(ctx context.Context, options build.Options) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	fmt.Println("  Building...")
	fmt.Println()

	options.OnProgress = func(step string) {
		info(step)
	}
	builder := build.New(cfg, options)

	result, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	out := result.Output
	if rel, err := filepath.Rel(cfg.Dir(), out); err == nil {
		out = rel
	}

	fmt.Println()
	success("Built %s in %s", result.Title, result.Duration.Round(time.Millisecond))
	fmt.Println()
	fmt.Println("  Output:")
	fmt.Printf("    %s/\n", out)
	fmt.Printf("    ├── %s  (%s)\n", build.IndexFile, formatBytes(result.IndexSize))
	fmt.Printf("    ├── %s  (%s)\n", clientdist.ScriptPath, formatBytes(int64(len(clientdist.MarqueeJS))))
	fmt.Printf("    └── %d static files\n", result.StaticFiles)
	fmt.Println()

	return nil
}
