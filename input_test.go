package lightbox

import (
	"testing"
	"time"
)

var testEpoch = time.Unix(1000, 0)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// --- Wheel ---

func TestWheelZoomsInAndOut(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)

	if !v.Wheel(WheelEvent{X: 400, Y: 300, DeltaY: -100}) {
		t.Fatal("Wheel while open should report consumed")
	}
	assertNear(t, "scale after wheel up", v.State().Scale, 1.12)

	v.Wheel(WheelEvent{X: 400, Y: 300, DeltaY: -2})
	v.Wheel(WheelEvent{X: 400, Y: 300, DeltaY: 3})
	assertNear(t, "scale after wheel down", v.State().Scale, 1.12*1.12*0.88)
}

func TestWheelStepIgnoresMagnitude(t *testing.T) {
	a, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	b, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	a.Wheel(WheelEvent{X: 400, Y: 300, DeltaY: -1})
	b.Wheel(WheelEvent{X: 400, Y: 300, DeltaY: -500})
	if a.State().Scale != b.State().Scale {
		t.Errorf("scales differ: %v vs %v", a.State().Scale, b.State().Scale)
	}
}

func TestWheelZeroDeltaIsNoop(t *testing.T) {
	v, ft := openLoaded(t, 1, 800, 600, 800, 600, 0)
	emitted := len(ft.transforms)
	v.Wheel(WheelEvent{X: 400, Y: 300})
	if len(ft.transforms) != emitted {
		t.Error("zero wheel delta emitted a transform")
	}
}

func TestWheelWhileClosed(t *testing.T) {
	v, _ := New(testImages(1), newFakeTarget(800, 600))
	if v.Wheel(WheelEvent{X: 400, Y: 300, DeltaY: -1}) {
		t.Error("Wheel while closed should not be consumed")
	}
}

func TestWheelAtMinimumIsNoop(t *testing.T) {
	v, ft := openLoaded(t, 1, 800, 600, 1600, 1200, 0)
	emitted := len(ft.transforms)
	v.Wheel(WheelEvent{X: 400, Y: 300, DeltaY: 1})
	if v.State().Scale != 0.5 {
		t.Errorf("scale = %v, want 0.5", v.State().Scale)
	}
	if len(ft.transforms) != emitted {
		t.Error("zoom out at the minimum emitted a transform")
	}
}

// --- Pointer drag ---

func TestPointerDragPans(t *testing.T) {
	v, ft := openLoaded(t, 1, 800, 600, 800, 600, 0)
	v.ZoomAt(2, 400, 300)

	v.ReplayPointer(DragEvents(7, 400, 300, 350, 280, 4))
	st := v.State()
	assertNear(t, "panX", st.PanX, -50)
	assertNear(t, "panY", st.PanY, -20)

	if len(ft.captured) != 1 || ft.captured[0] != 7 {
		t.Errorf("captured = %v, want [7]", ft.captured)
	}
	if len(ft.released) != 1 || ft.released[0] != 7 {
		t.Errorf("released = %v, want [7]", ft.released)
	}
	if v.drag.active {
		t.Error("drag still active after release")
	}
}

func TestPointerDragClampsPan(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	v.ZoomAt(2, 400, 300)
	v.ReplayPointer(DragEvents(0, 400, 300, 2000, -2000, 1))
	st := v.State()
	assertNear(t, "panX", st.PanX, 400)
	assertNear(t, "panY", st.PanY, -300)
}

func TestPointerDragAtBaseScaleKeepsPanZero(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 1600, 1200, 0)
	v.ReplayPointer(DragEvents(0, 400, 300, 100, 100, 2))
	st := v.State()
	if st.PanX != 0 || st.PanY != 0 {
		t.Errorf("pan = (%v,%v), want (0,0)", st.PanX, st.PanY)
	}
}

func TestPointerSecondPointerIgnored(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	v.ZoomAt(2, 400, 300)

	v.HandlePointer(PointerEvent{Phase: PhaseDown, ID: 1, X: 400, Y: 300})
	if v.HandlePointer(PointerEvent{Phase: PhaseDown, ID: 2, X: 100, Y: 100}) {
		t.Error("second pointer down was consumed")
	}
	if v.HandlePointer(PointerEvent{Phase: PhaseMove, ID: 2, X: 0, Y: 0}) {
		t.Error("move of a foreign pointer was consumed")
	}
	if v.HandlePointer(PointerEvent{Phase: PhaseUp, ID: 2}) {
		t.Error("release of a foreign pointer was consumed")
	}
	if !v.drag.active || v.drag.pointerID != 1 {
		t.Errorf("drag = %+v, want pointer 1 active", v.drag)
	}
	v.HandlePointer(PointerEvent{Phase: PhaseMove, ID: 1, X: 380, Y: 290})
	assertNear(t, "panX", v.State().PanX, -20)
}

func TestPointerCancelEndsDrag(t *testing.T) {
	v, ft := openLoaded(t, 1, 800, 600, 800, 600, 0)
	v.HandlePointer(PointerEvent{Phase: PhaseDown, ID: 4, X: 10, Y: 10})
	if !v.HandlePointer(PointerEvent{Phase: PhaseCancel, ID: 4}) {
		t.Error("cancel of the dragging pointer not consumed")
	}
	if v.drag.active {
		t.Error("drag still active")
	}
	if len(ft.released) != 1 {
		t.Errorf("released = %v, want one release", ft.released)
	}
}

func TestPointerIgnoresTouchType(t *testing.T) {
	v, ft := openLoaded(t, 1, 800, 600, 800, 600, 0)
	if v.HandlePointer(PointerEvent{Phase: PhaseDown, ID: 1, Type: PointerTouch, X: 10, Y: 10}) {
		t.Error("touch pointer consumed by HandlePointer")
	}
	if v.drag.active || len(ft.captured) != 0 {
		t.Error("touch pointer started a mouse drag")
	}
}

func TestPointerWhileClosed(t *testing.T) {
	v, _ := New(testImages(1), newFakeTarget(800, 600))
	if v.HandlePointer(PointerEvent{Phase: PhaseDown, ID: 1, X: 10, Y: 10}) {
		t.Error("pointer down consumed while closed")
	}
}

// --- Double-click ---

func TestDoubleClickToggles(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)

	if !v.DoubleClick(400, 300) {
		t.Fatal("first double-click did not zoom")
	}
	assertNear(t, "zoomed scale", v.State().Scale, 2.5)

	v.DoubleClick(400, 300)
	assertNear(t, "toggled back", v.State().Scale, 1)
}

func TestDoubleClickFromBaseScaleGoesToNatural(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 1600, 1200, 0)
	v.DoubleClick(200, 150)
	assertNear(t, "scale", v.State().Scale, 1)
	v.DoubleClick(200, 150)
	assertNear(t, "scale", v.State().Scale, 2.5)
}

func TestDoubleClickAnchored(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	c := Rect{Width: 800, Height: 600}
	ix, iy := v.Transform().ScreenToImage(c, 800, 600, 500, 400)
	v.DoubleClick(500, 400)
	sx, sy := v.Transform().ImageToScreen(c, 800, 600, ix, iy)
	if !approxEqual(sx, 500, 1e-6) || !approxEqual(sy, 400, 1e-6) {
		t.Errorf("anchor moved to (%v,%v)", sx, sy)
	}
}

// --- Touch: double-tap ---

func TestDoubleTapTogglesBaseScale(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 1600, 1200, 0)

	v.ReplayTouch(TapEvents(100, 100, testEpoch, ms(50)))
	v.ReplayTouch(TapEvents(105, 102, testEpoch.Add(ms(250)), ms(50)))
	st := v.State()
	assertNear(t, "scale after double-tap", st.Scale, 1.25)
	assertNear(t, "panX", st.PanX, 442.5)
	assertNear(t, "panY", st.PanY, 297)

	// A third tap under the same conditions returns to the base scale.
	v.ReplayTouch(TapEvents(106, 101, testEpoch.Add(ms(500)), ms(50)))
	st = v.State()
	assertNear(t, "scale after third tap", st.Scale, 0.5)
	if st.PanX != 0 || st.PanY != 0 {
		t.Errorf("pan = (%v,%v), want (0,0)", st.PanX, st.PanY)
	}
}

func TestDoubleTapRejected(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		second time.Duration
	}{
		{"too slow", 105, 102, ms(400)},
		{"too far", 130, 100, ms(150)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := openLoaded(t, 1, 800, 600, 1600, 1200, 0)
			v.ReplayTouch(TapEvents(100, 100, testEpoch, ms(50)))
			v.ReplayTouch(TapEvents(tt.x, tt.y, testEpoch.Add(tt.second), ms(50)))
			if s := v.State().Scale; s != 0.5 {
				t.Errorf("scale = %v, want 0.5", s)
			}
		})
	}
}

func TestSwipeEndingNearTapStillBrowses(t *testing.T) {
	v, _ := openLoaded(t, 3, 800, 600, 800, 600, 1)
	v.ReplayTouch(TapEvents(250, 205, testEpoch, ms(30)))
	v.ReplayTouch(SwipeEvents(400, 200, 252, 204, testEpoch.Add(ms(60)), ms(200), 3))

	s := v.State()
	if s.Index != 2 {
		t.Errorf("index = %d, want 2", s.Index)
	}
	if s.Scale != 1 {
		t.Errorf("scale = %v, want 1", s.Scale)
	}
}

func TestMovedTouchDoesNotArmDoubleTap(t *testing.T) {
	v, _ := openLoaded(t, 3, 800, 600, 800, 600, 1)
	// Too slow to be a swipe; it must not count as the first tap either.
	v.ReplayTouch(SwipeEvents(100, 100, 200, 100, testEpoch, ms(600), 3))
	v.ReplayTouch(TapEvents(200, 100, testEpoch.Add(ms(650)), ms(30)))

	s := v.State()
	if s.Index != 1 || s.Scale != 1 {
		t.Errorf("index = %d scale = %v, want index 1 scale 1", s.Index, s.Scale)
	}
}

func TestDoubleTapAfterPinchIgnoresPinch(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	v.ReplayTouch(TapEvents(100, 100, testEpoch, ms(50)))
	// A pinch ending right next to the tap is not a second tap.
	v.ReplayTouch(PinchEvents(100, 100, 10, 10, testEpoch.Add(ms(100)), ms(50), 1))
	if s := v.State().Scale; s != 1 {
		t.Errorf("scale = %v, want 1", s)
	}
}

// --- Touch: swipe ---

func TestSwipeBrowses(t *testing.T) {
	tests := []struct {
		name       string
		fromX, toX float64
		toY        float64
		d          time.Duration
		want       int
	}{
		{"left shows next", 300, 250, 205, ms(400), 2},
		{"right shows prev", 300, 350, 195, ms(400), 0},
		{"too short", 300, 265, 200, ms(100), 1},
		{"too slow", 300, 200, 200, ms(600), 1},
		{"mostly vertical", 300, 250, 270, ms(100), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := openLoaded(t, 3, 800, 600, 800, 600, 1)
			v.ReplayTouch(SwipeEvents(tt.fromX, 200, tt.toX, tt.toY, testEpoch, tt.d, 3))
			if v.Index() != tt.want {
				t.Errorf("index = %d, want %d", v.Index(), tt.want)
			}
		})
	}
}

func TestSwipeWrapsAtEnd(t *testing.T) {
	v, _ := openLoaded(t, 3, 800, 600, 800, 600, 2)
	v.ReplayTouch(SwipeEvents(300, 200, 250, 205, testEpoch, ms(400), 0))
	if v.Index() != 0 {
		t.Errorf("index = %d, want 0", v.Index())
	}
}

func TestSwipeAtBaseScaleBrowses(t *testing.T) {
	v, _ := openLoaded(t, 3, 800, 600, 1600, 1200, 0)
	v.ReplayTouch(SwipeEvents(300, 200, 200, 200, testEpoch, ms(200), 2))
	if v.Index() != 1 {
		t.Errorf("index = %d, want 1", v.Index())
	}
}

func TestSwipeWhileZoomedPans(t *testing.T) {
	v, _ := openLoaded(t, 3, 800, 600, 800, 600, 0)
	v.ZoomAt(2, 400, 300)
	v.ReplayTouch(SwipeEvents(300, 200, 200, 200, testEpoch, ms(200), 2))
	if v.Index() != 0 {
		t.Errorf("zoomed swipe navigated to %d", v.Index())
	}
	// The last move is two thirds of the way; the lift does not pan.
	if got := v.State().PanX; !approxEqual(got, -200.0/3, 1e-6) {
		t.Errorf("panX = %v, want %v", got, -200.0/3)
	}
}

// --- Touch: drag ---

func TestTouchDragOnlyWhenOverflowing(t *testing.T) {
	v, ft := openLoaded(t, 1, 800, 600, 1600, 1200, 0)
	v.HandleTouch(TouchEvent{Phase: PhaseDown, Touches: []TouchPoint{{X: 400, Y: 300}}, Time: testEpoch})
	if v.drag.active {
		t.Error("touch drag started on a fitting image")
	}
	v.HandleTouch(TouchEvent{Phase: PhaseUp, Changed: []TouchPoint{{X: 400, Y: 300}}, Time: testEpoch})

	v.ZoomAt(1, 400, 300)
	v.HandleTouch(TouchEvent{Phase: PhaseDown, Touches: []TouchPoint{{X: 400, Y: 300}}, Time: testEpoch.Add(time.Second)})
	if !v.drag.active || !v.drag.touch {
		t.Error("touch drag not started on an overflowing image")
	}
	if len(ft.captured) != 0 {
		t.Error("touch drag captured a pointer")
	}
}

func TestTouchMoveConsumedWhileDragging(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	v.ZoomAt(2, 400, 300)
	p := TouchPoint{X: 400, Y: 300}
	v.HandleTouch(TouchEvent{Phase: PhaseDown, Touches: []TouchPoint{p}, Time: testEpoch})
	p.X = 420
	if !v.HandleTouch(TouchEvent{Phase: PhaseMove, Touches: []TouchPoint{p}, Time: testEpoch}) {
		t.Error("drag move not consumed")
	}
	assertNear(t, "panX", v.State().PanX, 20)
}

// --- Touch: pinch ---

func TestPinchScales(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	v.ReplayTouch(PinchEvents(400, 300, 100, 150, testEpoch, ms(200), 5))
	st := v.State()
	assertNear(t, "scale", st.Scale, 1.5)
	if st.PanX != 0 || st.PanY != 0 {
		t.Errorf("pinch at centre moved pan to (%v,%v)", st.PanX, st.PanY)
	}
	if v.pinch.active || v.drag.active {
		t.Error("gesture state left after pinch")
	}
}

func TestPinchClamps(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	v.ReplayTouch(PinchEvents(400, 300, 50, 1000, testEpoch, ms(200), 3))
	assertNear(t, "max", v.State().Scale, 5)
	v.ReplayTouch(PinchEvents(400, 300, 400, 10, testEpoch.Add(time.Second), ms(200), 3))
	assertNear(t, "min", v.State().Scale, 1)
}

func TestPinchMoveSuppressesDefault(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	evs := PinchEvents(400, 300, 100, 120, testEpoch, ms(100), 1)
	v.HandleTouch(evs[0])
	v.HandleTouch(evs[1])
	if !v.HandleTouch(evs[2]) {
		t.Error("pinch move not consumed")
	}
}

func TestPinchEndsDrag(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	v.ZoomAt(2, 400, 300)
	evs := PinchEvents(400, 300, 100, 200, testEpoch, ms(100), 1)
	v.HandleTouch(evs[0])
	if !v.drag.active {
		t.Fatal("first finger should start a drag on a zoomed image")
	}
	v.HandleTouch(evs[1])
	if v.drag.active {
		t.Error("drag and pinch active at once")
	}
	if !v.pinch.active {
		t.Error("pinch not started")
	}
}

func TestPinchToOneFingerDoesNotDrag(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	evs := PinchEvents(400, 300, 100, 200, testEpoch, ms(100), 2)
	// Everything up to and including the first finger lifting.
	v.ReplayTouch(evs[:len(evs)-1])
	if v.pinch.active {
		t.Error("pinch still active with one finger")
	}
	if v.drag.active {
		t.Error("lifting to one finger started a drag")
	}
	assertNear(t, "scale", v.State().Scale, 2)
}

func TestTouchCancelClears(t *testing.T) {
	v, _ := openLoaded(t, 1, 800, 600, 800, 600, 0)
	evs := PinchEvents(400, 300, 100, 150, testEpoch, ms(100), 1)
	v.ReplayTouch(evs[:3])
	v.HandleTouch(TouchEvent{Phase: PhaseCancel, Time: testEpoch})
	if v.pinch.active || v.drag.active || v.touch.active {
		t.Error("touch cancel left gesture state")
	}
	// Nothing happens on a later lone up.
	v.HandleTouch(TouchEvent{Phase: PhaseUp, Changed: []TouchPoint{{X: 400, Y: 300}}, Time: testEpoch})
	assertNear(t, "scale", v.State().Scale, 1.5)
}

func TestTouchWhileClosed(t *testing.T) {
	ft := newFakeTarget(800, 600)
	v, _ := New(testImages(3), ft)
	v.ReplayTouch(SwipeEvents(300, 200, 200, 200, testEpoch, ms(100), 1))
	v.ReplayTouch(PinchEvents(400, 300, 100, 200, testEpoch, ms(100), 1))
	if v.IsOpen() || len(ft.transforms) != 0 {
		t.Error("closed viewer reacted to touch")
	}
}

// --- Keys ---

func TestHandleKey(t *testing.T) {
	v, _ := openLoaded(t, 3, 800, 600, 800, 600, 0)

	if !v.HandleKey(KeyArrowRight) || v.Index() != 1 {
		t.Errorf("ArrowRight: index = %d, want 1", v.Index())
	}
	if !v.HandleKey(KeyArrowLeft) || v.Index() != 0 {
		t.Errorf("ArrowLeft: index = %d, want 0", v.Index())
	}
	if !v.HandleKey(KeyArrowLeft) || v.Index() != 2 {
		t.Errorf("ArrowLeft wrap: index = %d, want 2", v.Index())
	}
	if v.HandleKey(KeyUnknown) {
		t.Error("unknown key consumed")
	}
	if !v.HandleKey(KeyEscape) || v.IsOpen() {
		t.Error("Escape did not close")
	}
	if v.HandleKey(KeyArrowRight) {
		t.Error("key consumed while closed")
	}
}
