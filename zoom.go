package lightbox

import "math"

// CalculateBaseScale returns the scale at which an image of size
// (imageW, imageH) fits entirely inside a viewport of size
// (viewportW, viewportH) without being enlarged:
//
//	min(viewportW/imageW, viewportH/imageH, 1)
//
// Any non-positive dimension means the geometry is not known yet; 1 is
// returned in that case.
func CalculateBaseScale(viewportW, viewportH, imageW, imageH float64) float64 {
	if viewportW <= 0 || viewportH <= 0 || imageW <= 0 || imageH <= 0 {
		return 1
	}
	return math.Min(math.Min(viewportW/imageW, viewportH/imageH), 1)
}

// ZoomAt changes the scale to newScale, clamped into [minScale, maxScale],
// keeping the screen point (screenX, screenY) over the same image pixel.
// It returns false and leaves everything untouched when the clamped scale
// equals the current one.
//
// Wheel, double-click, double-tap and pinch all zoom through this method.
func (v *Viewer) ZoomAt(newScale, screenX, screenY float64) bool {
	newScale = clampFloat(newScale, v.minScale, v.opts.MaxScale)
	if newScale == v.scale {
		return false
	}

	// Vector from the image centre (container centre + pan) to the anchor.
	cx, cy := v.target.ContainerBounds().Center()
	relX := screenX - (cx + v.panX)
	relY := screenY - (cy + v.panY)

	ratio := newScale / v.scale
	v.panX -= relX * (ratio - 1)
	v.panY -= relY * (ratio - 1)
	v.scale = newScale

	v.clampPan()
	v.applyTransform()
	return true
}

// resetTransform returns to the base scale with no pan.
func (v *Viewer) resetTransform() {
	v.scale = v.baseScale
	v.panX = 0
	v.panY = 0
	v.clampPan()
	v.applyTransform()
}

// clampPan restricts the pan so the image never reveals more background
// than its size at the current scale requires. When the image is smaller
// than the container on an axis, the pan on that axis is forced to 0.
// No-op while the natural size is unknown.
func (v *Viewer) clampPan() {
	if v.naturalW <= 0 || v.naturalH <= 0 {
		return
	}
	maxX, maxY := v.panLimits(v.target.ContainerBounds())
	v.panX = clampFloat(v.panX, -maxX, maxX)
	v.panY = clampFloat(v.panY, -maxY, maxY)
}

// panLimits returns the largest allowed pan magnitude on each axis.
func (v *Viewer) panLimits(c Rect) (maxX, maxY float64) {
	displayW := v.naturalW * v.scale
	displayH := v.naturalH * v.scale
	maxX = math.Max(0, (displayW-c.Width)/2)
	maxY = math.Max(0, (displayH-c.Height)/2)
	return maxX, maxY
}

// imageOverflows reports whether the image at the current scale is larger
// than the container on either axis, with OverflowTolerance slack.
func (v *Viewer) imageOverflows() bool {
	c := v.target.ContainerBounds()
	tol := v.opts.OverflowTolerance
	return v.naturalW*v.scale > c.Width+tol || v.naturalH*v.scale > c.Height+tol
}

// applyTransform pushes the current transform to the render target.
func (v *Viewer) applyTransform() {
	v.target.SetTransform(v.Transform())
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
