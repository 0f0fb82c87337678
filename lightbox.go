package lightbox

import "time"

// Image is one entry of the set a Viewer browses. Source is handed to the
// render target verbatim; AltText becomes the caption.
type Image struct {
	Source  string
	AltText string
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the geometric centre of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Inset returns r shrunk by d on every side. The result never has a
// negative size.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
	if out.Width < 0 {
		out.X, out.Width = r.X+r.Width/2, 0
	}
	if out.Height < 0 {
		out.Y, out.Height = r.Y+r.Height/2, 0
	}
	return out
}

// Phase identifies where in its lifecycle a pointer or touch event is.
type Phase uint8

const (
	PhaseDown   Phase = iota // pointer pressed / touch started
	PhaseMove                // pointer or touch moved
	PhaseUp                  // pointer released / touch ended
	PhaseCancel              // the platform aborted the interaction
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerType identifies the device behind a PointerEvent.
type PointerType uint8

const (
	PointerMouse PointerType = iota // mouse
	PointerPen                      // stylus
	PointerTouch                    // finger; handled through TouchEvent instead
)

// Key identifies the keys the viewer reacts to.
type Key uint8

const (
	KeyUnknown    Key = iota // any key the viewer ignores
	KeyEscape                // closes the viewer
	KeyArrowLeft             // previous image
	KeyArrowRight            // next image
)

// PointerEvent is a raw mouse or pen event in screen coordinates.
type PointerEvent struct {
	Phase Phase
	ID    int
	Type  PointerType
	X, Y  float64
}

// WheelEvent is a raw scroll-wheel event. DeltaY follows the DOM convention:
// negative when scrolling up / away from the user.
type WheelEvent struct {
	X, Y   float64
	DeltaY float64
}

// TouchPoint is one finger in screen coordinates.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// TouchEvent is a raw touch event. Touches lists the fingers still on the
// surface after the event; Changed lists the fingers the event is about.
// Time is supplied by the host and drives tap and swipe timing.
type TouchEvent struct {
	Phase   Phase
	Touches []TouchPoint
	Changed []TouchPoint
	Time    time.Time
}

// ViewState is a snapshot of the viewer's navigation and transform state.
type ViewState struct {
	Index     int
	Scale     float64
	PanX      float64
	PanY      float64
	BaseScale float64
	MinScale  float64
	MaxScale  float64
	Open      bool
}
