package ebitenview

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/lightbox"
)

// mousePointer is the pointer id used for the mouse.
const mousePointer = 0

// frameInput holds the polled state of inputs for a single frame.
// This separates input polling from input handling logic.
type frameInput struct {
	now time.Time

	cursorX, cursorY float64
	pressed          bool // left button just pressed
	released         bool // left button just released
	wheelY           float64

	touches []lightbox.TouchPoint
	keys    []lightbox.Key

	reopen bool // Enter or Space
	quit   bool // Q
}

var keyMap = []struct {
	ebiten ebiten.Key
	key    lightbox.Key
}{
	{ebiten.KeyEscape, lightbox.KeyEscape},
	{ebiten.KeyArrowLeft, lightbox.KeyArrowLeft},
	{ebiten.KeyArrowRight, lightbox.KeyArrowRight},
}

// pollInput gathers all raw input events for the current frame.
func (g *Game) pollInput(now time.Time) frameInput {
	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	in := frameInput{
		now:      now,
		cursorX:  float64(mx),
		cursorY:  float64(my),
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		wheelY:   wheelY,
		reopen:   inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		quit:     inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.touches = append(in.touches, lightbox.TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	for _, km := range keyMap {
		if inpututil.IsKeyJustPressed(km.ebiten) {
			in.keys = append(in.keys, km.key)
		}
	}
	return in
}

// dispatch forwards one frame of input to the viewer and the on-screen
// controls. It returns ebiten.Termination when the user quits.
func (g *Game) dispatch(in frameInput) error {
	v := g.viewer
	if in.quit {
		return ebiten.Termination
	}
	for _, k := range in.keys {
		// Escape closes an open viewer and quits a closed one.
		if !v.HandleKey(k) && k == lightbox.KeyEscape {
			return ebiten.Termination
		}
	}
	if in.reopen && !v.IsOpen() {
		v.Open(v.Index())
	}
	if in.wheelY != 0 && g.layout.container.Contains(in.cursorX, in.cursorY) {
		// Ebitengine reports scrolling up as positive; the viewer expects
		// the DOM sign.
		v.Wheel(lightbox.WheelEvent{X: in.cursorX, Y: in.cursorY, DeltaY: -in.wheelY})
	}
	g.dispatchMouse(in)
	g.dispatchTouch(in)
	return nil
}

func (g *Game) dispatchMouse(in frameInput) {
	v := g.viewer
	x, y := in.cursorX, in.cursorY
	ev := lightbox.PointerEvent{ID: mousePointer, Type: lightbox.PointerMouse, X: x, Y: y}

	if in.pressed {
		g.mouseDown = true
		g.pressed = g.pressTarget(x, y)
		if g.pressed == controlNone {
			if g.clicks.double(in.now, x, y, v.Options().DoubleTapWindow, v.Options().DoubleTapRadius) {
				v.DoubleClick(x, y)
			} else {
				ev.Phase = lightbox.PhaseDown
				v.HandlePointer(ev)
			}
		}
	}
	if g.mouseDown && !in.pressed && (x != g.lastX || y != g.lastY) {
		ev.Phase = lightbox.PhaseMove
		v.HandlePointer(ev)
	}
	if in.released && g.mouseDown {
		ev.Phase = lightbox.PhaseUp
		v.HandlePointer(ev)
		if g.releasedOn(g.pressed, x, y) {
			g.activate(g.pressed)
		}
		g.mouseDown = false
		g.pressed = controlNone
	}
	g.lastX, g.lastY = x, y
}

func (g *Game) dispatchTouch(in frameInput) {
	prev := g.touches
	g.touches = append([]lightbox.TouchPoint(nil), in.touches...)
	if len(prev) == 0 && len(in.touches) == 0 {
		return
	}

	// The first finger of a sequence that lands on a control owns the whole
	// sequence; nothing reaches the viewer until every finger is lifted.
	if len(prev) == 0 {
		first := in.touches[0]
		g.touchControl = g.pressTarget(first.X, first.Y)
		g.touchFirst = first
	}
	if g.touchControl != controlNone {
		for _, t := range in.touches {
			if t.ID == g.touchFirst.ID {
				g.touchFirst = t
			}
		}
		if len(in.touches) == 0 {
			if g.releasedOn(g.touchControl, g.touchFirst.X, g.touchFirst.Y) {
				g.activate(g.touchControl)
			}
			g.touchControl = controlNone
		}
		return
	}

	for _, ev := range diffTouches(prev, in.touches, in.now) {
		g.viewer.HandleTouch(ev)
	}
}

// pressTarget returns the control a press at (x, y) belongs to. While the
// viewer is closed any press reopens it.
func (g *Game) pressTarget(x, y float64) control {
	if !g.viewer.IsOpen() {
		return controlOpen
	}
	return g.layout.hit(x, y)
}

// releasedOn reports whether a press that started on c and ended at (x, y)
// activates c.
func (g *Game) releasedOn(c control, x, y float64) bool {
	switch c {
	case controlNone:
		return false
	case controlOpen:
		return true
	}
	return g.layout.hit(x, y) == c
}

func (g *Game) activate(c control) {
	v := g.viewer
	switch c {
	case controlClose, controlBackdrop:
		v.Close()
	case controlPrev:
		v.ShowPrev()
	case controlNext:
		v.ShowNext()
	case controlOpen:
		if !v.IsOpen() {
			v.Open(v.Index())
		}
	}
}

// diffTouches converts two consecutive frames of touch positions into the
// touch events a browser would have delivered: one end per lifted finger,
// one start per new finger, then a single move for fingers that moved.
// Finger order in Touches is stable, new fingers are appended.
func diffTouches(prev, cur []lightbox.TouchPoint, now time.Time) []lightbox.TouchEvent {
	curByID := make(map[int]lightbox.TouchPoint, len(cur))
	for _, t := range cur {
		curByID[t.ID] = t
	}
	prevByID := make(map[int]bool, len(prev))
	for _, t := range prev {
		prevByID[t.ID] = true
	}

	var evs []lightbox.TouchEvent
	active := append([]lightbox.TouchPoint(nil), prev...)

	for _, p := range prev {
		if _, ok := curByID[p.ID]; ok {
			continue
		}
		active = removeTouch(active, p.ID)
		evs = append(evs, lightbox.TouchEvent{
			Phase:   lightbox.PhaseUp,
			Touches: append([]lightbox.TouchPoint(nil), active...),
			Changed: []lightbox.TouchPoint{p},
			Time:    now,
		})
	}
	for _, c := range cur {
		if prevByID[c.ID] {
			continue
		}
		active = append(active, c)
		evs = append(evs, lightbox.TouchEvent{
			Phase:   lightbox.PhaseDown,
			Touches: append([]lightbox.TouchPoint(nil), active...),
			Changed: []lightbox.TouchPoint{c},
			Time:    now,
		})
	}

	var moved []lightbox.TouchPoint
	for i, a := range active {
		c := curByID[a.ID]
		if c != a {
			active[i] = c
			moved = append(moved, c)
		}
	}
	if len(moved) > 0 {
		evs = append(evs, lightbox.TouchEvent{
			Phase:   lightbox.PhaseMove,
			Touches: active,
			Changed: moved,
			Time:    now,
		})
	}
	return evs
}

func removeTouch(ts []lightbox.TouchPoint, id int) []lightbox.TouchPoint {
	out := ts[:0]
	for _, t := range ts {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// clickTracker detects mouse double-clicks from consecutive presses.
type clickTracker struct {
	valid bool
	at    time.Time
	x, y  float64
}

// double records a press and reports whether it completes a double-click.
func (c *clickTracker) double(now time.Time, x, y float64, window time.Duration, radius float64) bool {
	if c.valid && now.Sub(c.at) < window && math.Hypot(x-c.x, y-c.y) < radius {
		*c = clickTracker{}
		return true
	}
	*c = clickTracker{valid: true, at: now, x: x, y: y}
	return false
}
