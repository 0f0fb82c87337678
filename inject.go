package lightbox

import "time"

// The builders below produce the raw event sequences a host delivers for
// common gestures. They are used to drive a Viewer without a platform:
// scripted demos, tests and replay of recorded input.

// TapEvents returns the start/end pair of a single-finger tap at (x, y)
// beginning at t and lasting hold.
func TapEvents(x, y float64, t time.Time, hold time.Duration) []TouchEvent {
	p := TouchPoint{ID: 0, X: x, Y: y}
	return []TouchEvent{
		{Phase: PhaseDown, Touches: []TouchPoint{p}, Changed: []TouchPoint{p}, Time: t},
		{Phase: PhaseUp, Changed: []TouchPoint{p}, Time: t.Add(hold)},
	}
}

// SwipeEvents returns a single-finger gesture from (fromX, fromY) to
// (toX, toY) starting at t and ending after d, with steps linearly
// interpolated moves in between. steps may be zero.
func SwipeEvents(fromX, fromY, toX, toY float64, t time.Time, d time.Duration, steps int) []TouchEvent {
	if steps < 0 {
		steps = 0
	}
	start := TouchPoint{ID: 0, X: fromX, Y: fromY}
	evs := []TouchEvent{{Phase: PhaseDown, Touches: []TouchPoint{start}, Changed: []TouchPoint{start}, Time: t}}
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps+1)
		p := TouchPoint{ID: 0, X: fromX + (toX-fromX)*f, Y: fromY + (toY-fromY)*f}
		evs = append(evs, TouchEvent{
			Phase:   PhaseMove,
			Touches: []TouchPoint{p},
			Changed: []TouchPoint{p},
			Time:    t.Add(time.Duration(float64(d) * f)),
		})
	}
	end := TouchPoint{ID: 0, X: toX, Y: toY}
	return append(evs, TouchEvent{Phase: PhaseUp, Changed: []TouchPoint{end}, Time: t.Add(d)})
}

// PinchEvents returns a two-finger gesture centred on (cx, cy) whose fingers
// lie on a horizontal line and move from fromDist to toDist apart over steps
// moves (at least one). Both fingers are lifted at the end.
func PinchEvents(cx, cy, fromDist, toDist float64, t time.Time, d time.Duration, steps int) []TouchEvent {
	if steps < 1 {
		steps = 1
	}
	pair := func(dist float64) []TouchPoint {
		return []TouchPoint{
			{ID: 0, X: cx - dist/2, Y: cy},
			{ID: 1, X: cx + dist/2, Y: cy},
		}
	}
	first := pair(fromDist)
	evs := []TouchEvent{
		{Phase: PhaseDown, Touches: first[:1], Changed: first[:1], Time: t},
		{Phase: PhaseDown, Touches: first, Changed: first[1:], Time: t},
	}
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		p := pair(fromDist + (toDist-fromDist)*f)
		evs = append(evs, TouchEvent{
			Phase:   PhaseMove,
			Touches: p,
			Changed: p,
			Time:    t.Add(time.Duration(float64(d) * f)),
		})
	}
	last := pair(toDist)
	return append(evs,
		TouchEvent{Phase: PhaseUp, Touches: last[:1], Changed: last[1:], Time: t.Add(d)},
		TouchEvent{Phase: PhaseUp, Changed: last[:1], Time: t.Add(d)},
	)
}

// DragEvents returns a mouse drag: press at (fromX, fromY), steps linearly
// interpolated moves, then a move to and release at (toX, toY).
func DragEvents(pointerID int, fromX, fromY, toX, toY float64, steps int) []PointerEvent {
	if steps < 0 {
		steps = 0
	}
	evs := []PointerEvent{{Phase: PhaseDown, ID: pointerID, Type: PointerMouse, X: fromX, Y: fromY}}
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps+1)
		evs = append(evs, PointerEvent{
			Phase: PhaseMove, ID: pointerID, Type: PointerMouse,
			X: fromX + (toX-fromX)*f,
			Y: fromY + (toY-fromY)*f,
		})
	}
	return append(evs,
		PointerEvent{Phase: PhaseMove, ID: pointerID, Type: PointerMouse, X: toX, Y: toY},
		PointerEvent{Phase: PhaseUp, ID: pointerID, Type: PointerMouse, X: toX, Y: toY},
	)
}

// ReplayTouch feeds evs to HandleTouch in order.
func (v *Viewer) ReplayTouch(evs []TouchEvent) {
	for _, ev := range evs {
		v.HandleTouch(ev)
	}
}

// ReplayPointer feeds evs to HandlePointer in order.
func (v *Viewer) ReplayPointer(evs []PointerEvent) {
	for _, ev := range evs {
		v.HandlePointer(ev)
	}
}
