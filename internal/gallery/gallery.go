// Package gallery builds the ordered image set a viewer browses, either from
// a YAML manifest or by scanning a directory for image files.
package gallery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/lightbox"
)

// ManifestName is the manifest file looked for inside a scanned directory.
const ManifestName = "gallery.yaml"

// ErrEmpty is returned when a gallery resolves to no images.
var ErrEmpty = errors.New("gallery: no images found")

// Load resolves path to an image set. A YAML file is read as a manifest; a
// directory is read through its gallery.yaml when present and scanned with
// cfg otherwise.
func Load(path string, cfg ScanConfig) ([]lightbox.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("gallery: %w", err)
	}

	var images []lightbox.Image
	switch {
	case !info.IsDir():
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil, fmt.Errorf("gallery: %s is neither a directory nor a YAML manifest", path)
		}
		images, err = LoadManifest(path)
	default:
		manifest := filepath.Join(path, ManifestName)
		if _, statErr := os.Stat(manifest); statErr == nil {
			images, err = LoadManifest(manifest)
		} else {
			cfg.RootDir = path
			images, err = Scan(cfg)
		}
	}
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrEmpty
	}
	return images, nil
}
