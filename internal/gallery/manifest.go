package gallery

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/lightbox"
)

// Manifest lists the images of a gallery in display order.
//
//	images:
//	  - src: photos/harbour.jpg
//	    alt: The harbour at dawn
//	  - src: photos/market.png
type Manifest struct {
	Images []Entry `yaml:"images"`
}

// Entry is one manifest image. Relative sources are resolved against the
// manifest's directory. An empty Alt falls back to Caption.
type Entry struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt,omitempty"`
}

// LoadManifest reads a YAML manifest and returns its images in order.
func LoadManifest(path string) ([]lightbox.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	base := filepath.Dir(path)
	images := make([]lightbox.Image, 0, len(m.Images))
	for i, e := range m.Images {
		if e.Src == "" {
			return nil, fmt.Errorf("manifest %s: image %d has no src", path, i)
		}
		src := e.Src
		if !filepath.IsAbs(src) {
			src = filepath.Join(base, src)
		}
		alt := e.Alt
		if alt == "" {
			alt = Caption(src)
		}
		images = append(images, lightbox.Image{Source: src, AltText: alt})
	}
	return images, nil
}

// Save writes m as YAML to path.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshalling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest to %s: %w", path, err)
	}
	return nil
}
