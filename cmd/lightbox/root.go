package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phanxgames/lightbox"
	"github.com/phanxgames/lightbox/ebitenview"
	"github.com/phanxgames/lightbox/internal/config"
	"github.com/phanxgames/lightbox/internal/gallery"
)

var (
	cfgFile    string
	verbose    bool
	dir        string
	start      int
	scriptFile string
)

var rootCmd = &cobra.Command{
	Use:   "lightbox [dir|manifest.yaml]",
	Short: "Browse images with pan, zoom and swipe",
	Long: `Lightbox opens a window showing one image at a time. Scroll or pinch to
zoom, drag to pan, double-click or double-tap to toggle zoom, and swipe or
use the arrow keys to move between images. Escape closes the viewer.

Images come from a directory scan or a YAML manifest listing src and alt
for each image. A gallery.yaml inside the directory takes precedence over
scanning it.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runView,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "lightbox.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVar(&dir, "dir", "", "directory or manifest to browse (overrides config)")
	rootCmd.Flags().IntVar(&start, "start", 0, "index of the first image shown (overrides config)")
	rootCmd.Flags().StringVar(&scriptFile, "script", "", "replay a JSON gesture script headless and print each state")
}

func runView(cmd *cobra.Command, args []string) error {
	lightbox.SetLogger(newLogger(verbose))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Gallery.Path = args[0]
	}
	if dir != "" {
		cfg.Gallery.Path = dir
	}
	if cmd.Flags().Changed("start") {
		cfg.Gallery.Start = start
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	images, err := gallery.Load(cfg.Gallery.Path, cfg.ScanConfig())
	if err != nil {
		return err
	}
	lightbox.Logger().Debug("lightbox: gallery loaded", "path", cfg.Gallery.Path, "images", len(images))

	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		return replayScript(cmd.OutOrStdout(), images, cfg, data)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return ebitenview.Run(ctx, images, hostOptions(cfg))
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// hostOptions maps the configuration to window options.
func hostOptions(cfg *config.Config) ebitenview.Options {
	o := ebitenview.DefaultOptions()
	o.Title = cfg.Window.Title
	o.Width = cfg.Window.Width
	o.Height = cfg.Window.Height
	o.Padding = cfg.Display.Padding
	o.Transition = cfg.Transition()
	o.Start = cfg.Gallery.Start
	o.Engine = cfg.EngineOptions()
	return o
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
