// Radial bar chart viewer and exporter.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/radial-bar/internal/chart"
	"github.com/iburimskiy/radial-bar/internal/config"
	"github.com/iburimskiy/radial-bar/internal/export"
	"github.com/iburimskiy/radial-bar/internal/game"
)

// Build-time variables (set via -ldflags).
var version = "dev"

var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "radialbar",
	Short: "Radial bar chart viewer",
	Long: `Draws named values as arcs on concentric rings, with an animated
entrance and hover tooltips. Without a subcommand it opens a window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		logger, err := cfg.Logging.NewLogger(os.Stderr)
		if err != nil {
			return err
		}
		chart.SetLogger(logger)

		if dataFile, _ := cmd.Flags().GetString("data"); dataFile != "" {
			if cfg.Data, err = config.LoadData(dataFile); err != nil {
				return err
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return game.Run(cfg)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the chart window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return game.Run(cfg)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the settled chart to a PNG or SVG file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		write := map[string]func(io.Writer, *chart.Scene) error{
			".svg": export.WriteSVG,
			".png": export.WritePNG,
		}[strings.ToLower(filepath.Ext(out))]
		if write == nil {
			return errors.Errorf("unsupported output type %q: want .png or .svg", filepath.Ext(out))
		}

		m := chart.NewMount("export")
		r := chart.NewRenderer(chart.WithAnimator(chart.EntranceAnimator{}))
		data := cfg.Data
		if data == nil {
			data = chart.SampleData()
		}
		if err := r.Render(data, cfg.Chart, m); err != nil {
			return err
		}

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := write(f, m.Scene()); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("Chart written to %s\n", out)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("radialbar %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/radialbar.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("data", "", "data file with a top-level data list")

	exportCmd.Flags().String("out", "chart.png", "output file (.png or .svg)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
