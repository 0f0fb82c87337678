package lightbox

import (
	"math"
	"time"
)

// --- Gesture state ---

// dragState tracks the single active pan drag. The drag origin is stored as
// pointer position minus pan so that pan = pointer - origin on every move.
type dragState struct {
	active    bool
	touch     bool
	pointerID int
	originX   float64
	originY   float64
}

type pinchState struct {
	active     bool
	startDist  float64
	startScale float64
}

// touchState describes the touch sequence from the first finger down until
// the last finger up.
type touchState struct {
	active    bool
	pinched   bool
	startX    float64
	startY    float64
	startTime time.Time
}

// tapState remembers the previous tap-up for double-tap detection.
type tapState struct {
	valid bool
	x, y  float64
	time  time.Time
}

// resetGestures clears all drag, pinch, touch and tap state and releases a
// captured pointer.
func (v *Viewer) resetGestures() {
	v.endDrag()
	v.pinch = pinchState{}
	v.touch = touchState{}
	v.tap = tapState{}
}

func (v *Viewer) startDrag(pointerID int, touch bool, x, y float64) {
	v.drag = dragState{
		active:    true,
		touch:     touch,
		pointerID: pointerID,
		originX:   x - v.panX,
		originY:   y - v.panY,
	}
	if !touch {
		if pc, ok := v.target.(PointerCapturer); ok {
			pc.CapturePointer(pointerID)
		}
	}
}

func (v *Viewer) dragTo(x, y float64) {
	v.panX = x - v.drag.originX
	v.panY = y - v.drag.originY
	v.clampPan()
	v.applyTransform()
}

func (v *Viewer) endDrag() {
	if !v.drag.active {
		return
	}
	if !v.drag.touch {
		if pc, ok := v.target.(PointerCapturer); ok {
			pc.ReleasePointer(v.drag.pointerID)
		}
	}
	v.drag = dragState{}
}

// notZoomed reports whether the image is shown at its natural 1:1 size or at
// its fit size; swipes only navigate in that state.
func (v *Viewer) notZoomed() bool {
	return approxEqual(v.scale, 1, 1e-9) || v.scale <= v.baseScale+v.opts.BaseScaleTolerance
}

// --- Wheel ---

// Wheel zooms by WheelStep per event, anchored at the event position.
// Scrolling up (negative DeltaY) zooms in. It returns true while the viewer
// is open, meaning the host should suppress its default scrolling.
func (v *Viewer) Wheel(ev WheelEvent) bool {
	if !v.open {
		return false
	}
	factor := 1 + v.opts.WheelStep*sign(-ev.DeltaY)
	v.ZoomAt(v.scale*factor, ev.X, ev.Y)
	return true
}

// --- Mouse and pen ---

// HandlePointer runs the mouse/pen drag state machine. Touch pointers are
// ignored; fingers go through HandleTouch. Only one drag may be active; it
// captures its pointer through PointerCapturer until released. The return
// value reports whether the event was consumed.
func (v *Viewer) HandlePointer(ev PointerEvent) bool {
	if ev.Type == PointerTouch {
		return false
	}
	switch ev.Phase {
	case PhaseDown:
		if !v.open || v.drag.active || v.pinch.active {
			return false
		}
		v.startDrag(ev.ID, false, ev.X, ev.Y)
		return true
	case PhaseMove:
		if !v.drag.active || v.drag.touch || v.drag.pointerID != ev.ID {
			return false
		}
		v.dragTo(ev.X, ev.Y)
		return true
	case PhaseUp, PhaseCancel:
		if !v.drag.active || v.drag.touch || v.drag.pointerID != ev.ID {
			return false
		}
		v.endDrag()
		return true
	}
	return false
}

// DoubleClick toggles between 1:1 and DoubleClickScale, anchored at (x, y).
// It returns true if the scale changed.
func (v *Viewer) DoubleClick(x, y float64) bool {
	if !v.open {
		return false
	}
	if approxEqual(v.scale, 1, 1e-9) {
		return v.ZoomAt(v.opts.DoubleClickScale, x, y)
	}
	return v.ZoomAt(1, x, y)
}

// --- Touch ---

// HandleTouch dispatches a touch event by phase. It returns true when the
// host should suppress the platform's default handling (page pinch-zoom or
// scrolling).
func (v *Viewer) HandleTouch(ev TouchEvent) bool {
	switch ev.Phase {
	case PhaseDown:
		return v.touchStart(ev)
	case PhaseMove:
		return v.touchMove(ev)
	case PhaseUp:
		return v.touchEnd(ev)
	case PhaseCancel:
		v.TouchCancel()
	}
	return false
}

func (v *Viewer) touchStart(ev TouchEvent) bool {
	if !v.open {
		return false
	}
	switch len(ev.Touches) {
	case 1:
		t := ev.Touches[0]
		v.touch = touchState{
			active:    true,
			startX:    t.X,
			startY:    t.Y,
			startTime: ev.Time,
		}
		if !v.drag.active && v.imageOverflows() {
			v.startDrag(t.ID, true, t.X, t.Y)
		}
	case 2:
		if v.drag.touch {
			v.endDrag()
		}
		t0, t1 := ev.Touches[0], ev.Touches[1]
		v.pinch = pinchState{
			active:     true,
			startDist:  distance(t0, t1),
			startScale: v.scale,
		}
		v.touch.active = true
		v.touch.pinched = true
	}
	return false
}

func (v *Viewer) touchMove(ev TouchEvent) bool {
	if !v.open {
		return false
	}
	if v.pinch.active && len(ev.Touches) == 2 {
		t0, t1 := ev.Touches[0], ev.Touches[1]
		if v.pinch.startDist > 0 {
			newScale := v.pinch.startScale * (distance(t0, t1) / v.pinch.startDist)
			v.ZoomAt(newScale, (t0.X+t1.X)/2, (t0.Y+t1.Y)/2)
		}
		return true
	}
	if len(ev.Touches) != 1 || v.pinch.active {
		return false
	}
	t := ev.Touches[0]
	switch {
	case v.drag.active && v.drag.touch:
		v.dragTo(t.X, t.Y)
		return true
	case !v.drag.active && v.scale > 1:
		v.startDrag(t.ID, true, t.X, t.Y)
		v.dragTo(t.X, t.Y)
		return true
	}
	return false
}

func (v *Viewer) touchEnd(ev TouchEvent) bool {
	// Dropping below two fingers ends a pinch; the remaining finger does
	// not start a drag in this event.
	if v.pinch.active && len(ev.Touches) < 2 {
		v.pinch = pinchState{}
	}
	if v.drag.touch {
		v.endDrag()
	}
	if !v.open {
		v.touch = touchState{}
		return false
	}
	if len(ev.Touches) > 0 {
		return false
	}

	// Last finger lifted: classify the sequence as a tap or swipe, unless
	// it involved a pinch.
	seq := v.touch
	v.touch = touchState{}
	if seq.pinched || len(ev.Changed) != 1 {
		return false
	}
	t := ev.Changed[0]

	// Only a finger that stayed put is a tap. Anything else forgets the
	// previous tap so it cannot pair with a later one.
	isTap := seq.active && math.Hypot(t.X-seq.startX, t.Y-seq.startY) < v.opts.DoubleTapRadius
	switch {
	case !isTap:
		v.tap = tapState{}
	case v.tap.valid &&
		ev.Time.Sub(v.tap.time) < v.opts.DoubleTapWindow &&
		math.Hypot(t.X-v.tap.x, t.Y-v.tap.y) < v.opts.DoubleTapRadius:
		v.tap = tapState{valid: true, x: t.X, y: t.Y, time: ev.Time}
		if v.scale <= v.baseScale+v.opts.BaseScaleTolerance {
			v.ZoomAt(v.baseScale*v.opts.DoubleTapFactor, t.X, t.Y)
		} else {
			v.ZoomAt(v.baseScale, t.X, t.Y)
		}
		return false
	default:
		v.tap = tapState{valid: true, x: t.X, y: t.Y, time: ev.Time}
	}

	if !seq.active || !v.notZoomed() {
		return false
	}
	dx := t.X - seq.startX
	dy := t.Y - seq.startY
	if math.Abs(dx) > v.opts.SwipeMinDistance &&
		math.Abs(dx) > math.Abs(dy) &&
		ev.Time.Sub(seq.startTime) < v.opts.SwipeMaxDuration {
		if dx < 0 {
			v.ShowNext()
		} else {
			v.ShowPrev()
		}
	}
	return false
}

// TouchCancel clears drag and pinch state unconditionally.
func (v *Viewer) TouchCancel() {
	if v.drag.touch {
		v.endDrag()
	}
	v.pinch = pinchState{}
	v.touch = touchState{}
}

// --- Layout and keyboard ---

// Resize re-clamps the pan after the container changed size. The scale is
// kept as is.
func (v *Viewer) Resize() {
	if !v.open {
		return
	}
	v.clampPan()
	v.applyTransform()
}

// HandleKey handles the viewer's keyboard contract while open: Escape
// closes, ArrowLeft and ArrowRight browse. It reports whether the key was
// consumed.
func (v *Viewer) HandleKey(k Key) bool {
	if !v.open {
		return false
	}
	switch k {
	case KeyEscape:
		v.Close()
	case KeyArrowLeft:
		v.ShowPrev()
	case KeyArrowRight:
		v.ShowNext()
	default:
		return false
	}
	return true
}

func distance(a, b TouchPoint) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
