package gallery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// Caption returns the caption for the image at path: its EXIF
// ImageDescription when present, otherwise the file name without extension
// with dashes and underscores turned into spaces.
func Caption(path string) string {
	if desc := exifDescription(path); desc != "" {
		return desc
	}
	return captionFromName(path)
}

func exifDescription(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	x, err := exif.Decode(f) // Most files carry no EXIF
	if err != nil {
		return ""
	}
	tag, err := x.Get(exif.ImageDescription)
	if err != nil {
		return ""
	}
	desc, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(desc, "\x00"))
}

func captionFromName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
