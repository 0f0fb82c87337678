package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phanxgames/lightbox/internal/config"
	"github.com/phanxgames/lightbox/internal/gallery"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(cfgFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}
		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
		return nil
	},
}

var manifestCmd = &cobra.Command{
	Use:   "manifest <dir>",
	Short: "Scan a directory and write its gallery.yaml",
	Long: `Scans a directory with the configured include and exclude patterns and
writes the result to gallery.yaml inside it. Edit the file to reorder
images or change their captions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.Gallery.Path = args[0]
		path, n, err := writeManifest(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d images to %s\n", n, path)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(manifestCmd)
}

// writeManifest scans cfg.Gallery.Path and saves a manifest with sources
// relative to it.
func writeManifest(cfg *config.Config) (string, int, error) {
	root := cfg.Gallery.Path
	images, err := gallery.Scan(cfg.ScanConfig())
	if err != nil {
		return "", 0, err
	}
	if len(images) == 0 {
		return "", 0, gallery.ErrEmpty
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", 0, fmt.Errorf("resolving %s: %w", root, err)
	}
	m := &gallery.Manifest{Images: make([]gallery.Entry, 0, len(images))}
	for _, img := range images {
		src, err := filepath.Rel(absRoot, img.Source)
		if err != nil {
			src = img.Source
		}
		m.Images = append(m.Images, gallery.Entry{Src: filepath.ToSlash(src), Alt: img.AltText})
	}

	path := filepath.Join(root, gallery.ManifestName)
	if err := m.Save(path); err != nil {
		return "", 0, err
	}
	return path, len(images), nil
}
