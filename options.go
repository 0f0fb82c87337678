package lightbox

import "time"

// Options holds the viewer's tunables. DefaultOptions returns the values the
// gestures are calibrated for; zero fields passed to WithOptions fall back
// to those defaults.
type Options struct {
	// MaxScale is the largest zoom factor.
	MaxScale float64
	// WheelStep is the relative zoom change per wheel event.
	WheelStep float64
	// DoubleClickScale is the zoom a mouse double-click toggles to from 1.
	DoubleClickScale float64
	// DoubleTapFactor multiplies the base scale on a double-tap.
	DoubleTapFactor float64
	// DoubleTapWindow is the longest gap between two tap-ups that still
	// counts as a double-tap.
	DoubleTapWindow time.Duration
	// DoubleTapRadius is the largest distance in pixels between two
	// tap-ups that still counts as a double-tap.
	DoubleTapRadius float64
	// SwipeMinDistance is the horizontal travel in pixels a swipe needs.
	SwipeMinDistance float64
	// SwipeMaxDuration is the longest a swipe may take.
	SwipeMaxDuration time.Duration
	// OverflowTolerance is the slack in pixels before an image counts as
	// larger than its container.
	OverflowTolerance float64
	// BaseScaleTolerance is the slack when comparing the scale with the
	// base scale.
	BaseScaleTolerance float64
}

// DefaultOptions returns the default tunables.
func DefaultOptions() Options {
	return Options{
		MaxScale:           5,
		WheelStep:          0.12,
		DoubleClickScale:   2.5,
		DoubleTapFactor:    2.5,
		DoubleTapWindow:    300 * time.Millisecond,
		DoubleTapRadius:    20,
		SwipeMinDistance:   40,
		SwipeMaxDuration:   500 * time.Millisecond,
		OverflowTolerance:  1,
		BaseScaleTolerance: 0.01,
	}
}

// withDefaults replaces non-positive fields with their defaults. MaxScale
// below 1 is replaced too, since the scale never drops under the base
// scale and that can be 1.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxScale < 1 {
		o.MaxScale = d.MaxScale
	}
	if o.WheelStep <= 0 {
		o.WheelStep = d.WheelStep
	}
	if o.DoubleClickScale <= 0 {
		o.DoubleClickScale = d.DoubleClickScale
	}
	if o.DoubleTapFactor <= 0 {
		o.DoubleTapFactor = d.DoubleTapFactor
	}
	if o.DoubleTapWindow <= 0 {
		o.DoubleTapWindow = d.DoubleTapWindow
	}
	if o.DoubleTapRadius <= 0 {
		o.DoubleTapRadius = d.DoubleTapRadius
	}
	if o.SwipeMinDistance <= 0 {
		o.SwipeMinDistance = d.SwipeMinDistance
	}
	if o.SwipeMaxDuration <= 0 {
		o.SwipeMaxDuration = d.SwipeMaxDuration
	}
	if o.OverflowTolerance < 0 {
		o.OverflowTolerance = d.OverflowTolerance
	}
	if o.BaseScaleTolerance < 0 {
		o.BaseScaleTolerance = d.BaseScaleTolerance
	}
	return o
}

// Option configures a Viewer at construction.
type Option func(*Options)

// WithOptions replaces all tunables at once.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithMaxScale sets the largest zoom factor.
func WithMaxScale(s float64) Option {
	return func(dst *Options) { dst.MaxScale = s }
}
