package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marquee-dev/marquee/internal/config"
	"github.com/marquee-dev/marquee/internal/dev"
)

func devCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development server with live reload.

The dev server watches the project, rebuilds on change, and
refreshes connected browsers.

Features:
  • Live reload on page config, template and asset changes
  • Stylesheet swaps without a full reload
  • Error overlay in browser
  • Prometheus metrics at /metrics

Examples:
  marquee dev
  marquee dev --port=8080
  marquee dev --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				return err
			}

			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}

			printBanner()
			fmt.Println("  dev")
			fmt.Println()

			server := dev.NewServer(dev.ServerOptions{Config: cfg})
			err = server.Start(cmd.Context())
			fmt.Println("\n  Shutting down...")
			return err
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from marquee.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from marquee.json)")

	return cmd
}
