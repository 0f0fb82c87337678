package lightbox

import (
	"errors"
	"log/slog"
)

var (
	// ErrNoImages is returned by New when the image set is empty.
	ErrNoImages = errors.New("lightbox: image set is empty")
	// ErrNilTarget is returned by New when no render target is given.
	ErrNilTarget = errors.New("lightbox: render target is nil")
)

// Viewer is the gesture-and-transform engine of a lightbox. It owns the
// navigation state (current index, open/closed), the transform (scale and
// pan relative to the container centre) and all transient gesture state.
//
// A Viewer is driven by a host that forwards raw input to its handlers and
// calls Open/Close/ShowNext/ShowPrev. It is not safe for concurrent use:
// events must be delivered from one goroutine in arrival order.
type Viewer struct {
	images []Image
	target RenderTarget
	opts   Options

	index int
	open  bool

	scale     float64
	panX      float64
	panY      float64
	baseScale float64
	minScale  float64

	// Natural size of the displayed image; zero until its load completes.
	naturalW float64
	naturalH float64

	loadID      LoadID
	loadPending bool

	drag  dragState
	pinch pinchState
	touch touchState
	tap   tapState
}

// New creates a Viewer over a copy of images that renders into target.
func New(images []Image, target RenderTarget, opts ...Option) (*Viewer, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if target == nil {
		return nil, ErrNilTarget
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	set := make([]Image, len(images))
	copy(set, images)
	return &Viewer{
		images:    set,
		target:    target,
		opts:      o.withDefaults(),
		scale:     1,
		baseScale: 1,
		minScale:  1,
	}, nil
}

// Len returns the number of images.
func (v *Viewer) Len() int { return len(v.images) }

// Image returns the image at index i, clamped into range.
func (v *Viewer) Image(i int) Image { return v.images[clampInt(i, 0, len(v.images)-1)] }

// Index returns the current image index.
func (v *Viewer) Index() int { return v.index }

// IsOpen reports whether the viewer is showing an image.
func (v *Viewer) IsOpen() bool { return v.open }

// Options returns the tunables in effect.
func (v *Viewer) Options() Options { return v.opts }

// Transform returns the transform last emitted to the render target.
func (v *Viewer) Transform() Transform {
	return Transform{TranslateX: v.panX, TranslateY: v.panY, Scale: v.scale}
}

// State returns a snapshot of the navigation and transform state.
func (v *Viewer) State() ViewState {
	return ViewState{
		Index:     v.index,
		Scale:     v.scale,
		PanX:      v.panX,
		PanY:      v.panY,
		BaseScale: v.baseScale,
		MinScale:  v.minScale,
		MaxScale:  v.opts.MaxScale,
		Open:      v.open,
	}
}

// Open shows the image at index, clamped into [0, Len()-1]. The transform
// is reset to the base scale and the render target is asked to load the
// source; bounds are recomputed once ImageLoaded reports its size.
func (v *Viewer) Open(index int) {
	wasOpen := v.open
	v.resetGestures()

	v.index = clampInt(index, 0, len(v.images)-1)
	v.open = true
	v.naturalW, v.naturalH = 0, 0

	img := v.images[v.index]
	v.target.SetCaption(img.AltText)
	if !wasOpen {
		if sl, ok := v.target.(ScrollLocker); ok {
			sl.LockScroll()
		}
	}
	v.resetTransform()

	v.loadID++
	v.loadPending = true
	Logger().Debug("lightbox: open",
		slog.Int("index", v.index),
		slog.String("source", img.Source),
		slog.Uint64("load", uint64(v.loadID)))
	v.target.LoadImage(LoadRequest{
		ID:      v.loadID,
		Index:   v.index,
		Source:  img.Source,
		AltText: img.AltText,
	})
}

// ImageLoaded reports that the load identified by id finished with the given
// natural image size. It returns false when the signal was ignored: the
// viewer is closed, id is stale or already handled, or the size is unusable
// (zero or negative). In the last case the viewer keeps waiting for a later
// signal with the same id.
func (v *Viewer) ImageLoaded(id LoadID, naturalW, naturalH float64) bool {
	if !v.open || id != v.loadID || !v.loadPending {
		Logger().Debug("lightbox: ignoring stale load",
			slog.Uint64("load", uint64(id)),
			slog.Uint64("current", uint64(v.loadID)))
		return false
	}
	if naturalW <= 0 || naturalH <= 0 {
		Logger().Warn("lightbox: image has no usable size",
			slog.Int("index", v.index),
			slog.Float64("width", naturalW),
			slog.Float64("height", naturalH))
		return false
	}
	v.loadPending = false
	v.naturalW, v.naturalH = naturalW, naturalH

	c := v.target.ContainerBounds()
	v.baseScale = CalculateBaseScale(c.Width, c.Height, naturalW, naturalH)
	v.minScale = v.baseScale
	v.resetTransform()
	return true
}

// Close hides the viewer. It is safe to call at any time, including in the
// middle of a gesture, and is a no-op when already closed.
func (v *Viewer) Close() {
	v.resetGestures()
	if !v.open {
		return
	}
	v.open = false
	v.loadPending = false
	v.target.ClearImage()
	if sl, ok := v.target.(ScrollLocker); ok {
		sl.UnlockScroll()
	}
	Logger().Debug("lightbox: close", slog.Int("index", v.index))
}

// ShowNext opens the following image, wrapping from the last to the first.
func (v *Viewer) ShowNext() {
	if !v.open {
		return
	}
	v.Open((v.index + 1) % len(v.images))
}

// ShowPrev opens the preceding image, wrapping from the first to the last.
func (v *Viewer) ShowPrev() {
	if !v.open {
		return
	}
	n := len(v.images)
	v.Open((v.index - 1 + n) % n)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
