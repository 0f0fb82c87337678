package gallery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/phanxgames/lightbox"
)

// Extensions lists the file extensions Scan treats as images.
var Extensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// ScanConfig controls Scan.
type ScanConfig struct {
	RootDir string   // Directory to scan.
	Include []string // Glob patterns; only matching files are included.
	Exclude []string // Glob patterns; matching files are excluded.
}

// Scan walks cfg.RootDir and returns every image file that passes the
// include/exclude filters, in lexical path order. Hidden files and
// directories are skipped.
func Scan(cfg ScanConfig) ([]lightbox.Image, error) {
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("gallery: resolve root: %w", err)
	}
	for _, p := range append(append([]string(nil), cfg.Include...), cfg.Exclude...) {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return nil, fmt.Errorf("gallery: invalid pattern %q", p)
		}
	}

	var images []lightbox.Image
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// Skip entries we cannot read instead of aborting.
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !Extensions[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if len(cfg.Include) > 0 && !matchesAny(rel, cfg.Include) {
			return nil
		}
		if matchesAny(rel, cfg.Exclude) {
			return nil
		}

		images = append(images, lightbox.Image{Source: path, AltText: Caption(path)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gallery: scanning %s: %w", root, err)
	}
	return images, nil
}

// matchesAny checks relPath against the glob patterns, both as a path and
// by its base name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.Match(pattern, normalized); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
