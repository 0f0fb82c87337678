package ebitenview

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/phanxgames/lightbox"
)

// loadResult is a decoded image handed back to the game loop.
type loadResult struct {
	req lightbox.LoadRequest
	img image.Image
	err error
}

// loader decodes images on a background goroutine. Only the most recent
// request is kept: submitting replaces a job that has not been picked up.
type loader struct {
	jobs    chan lightbox.LoadRequest
	results chan loadResult
	decode  func(source string) (image.Image, error)
}

func newLoader() *loader {
	return &loader{
		jobs:    make(chan lightbox.LoadRequest, 1),
		results: make(chan loadResult, 4),
		decode:  decodeFile,
	}
}

// submit queues req, dropping any queued request it supersedes. It must be
// called from a single goroutine.
func (l *loader) submit(req lightbox.LoadRequest) {
	select {
	case old := <-l.jobs:
		lightbox.Logger().Debug("ebitenview: dropping queued load",
			slog.Uint64("load", uint64(old.ID)))
	default:
	}
	l.jobs <- req
}

// run decodes queued requests until ctx is cancelled.
func (l *loader) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-l.jobs:
			img, err := l.decode(req.Source)
			select {
			case l.results <- loadResult{req: req, img: img, err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// poll returns a finished result without blocking.
func (l *loader) poll() (loadResult, bool) {
	select {
	case r := <-l.results:
		return r, true
	default:
		return loadResult{}, false
	}
}

// decodeFile reads and decodes the image at path.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return img, nil
}
