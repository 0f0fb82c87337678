package lightbox

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action   string  `json:"action"`
	Index    int     `json:"index,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	DeltaY   float64 `json:"deltaY,omitempty"`
	Key      string  `json:"key,omitempty"`
	Ms       int     `json:"ms,omitempty"`
	Steps    int     `json:"steps,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

const (
	defaultTapHold       = 50 * time.Millisecond
	defaultSwipeDuration = 200 * time.Millisecond
	defaultPinchDuration = 300 * time.Millisecond
)

var scriptActions = map[string]bool{
	"open": true, "close": true, "next": true, "prev": true, "load": true,
	"tap": true, "doubletap": true, "swipe": true, "pinch": true,
	"wheel": true, "drag": true, "dblclick": true, "key": true,
	"resize": true, "wait": true,
}

var scriptKeys = map[string]Key{
	"Escape":     KeyEscape,
	"ArrowLeft":  KeyArrowLeft,
	"ArrowRight": KeyArrowRight,
}

// GestureScript replays a recorded sequence of navigation and input steps
// against a Viewer using a synthetic clock. Steps are JSON objects with an
// "action" of open, close, next, prev, load, tap, doubletap, swipe, pinch,
// wheel, drag, dblclick, key, resize or wait.
type GestureScript struct {
	steps  []scriptStep
	cursor int
	now    time.Time
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*GestureScript, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "key" {
			if _, ok := scriptKeys[st.Key]; !ok {
				return nil, fmt.Errorf("parse gesture script: step %d: unknown key %q", i, st.Key)
			}
		}
	}
	return &GestureScript{steps: script.Steps, now: time.Unix(0, 0)}, nil
}

// Done reports whether all steps have been executed.
func (s *GestureScript) Done() bool {
	return s.cursor >= len(s.steps)
}

// Step executes the next step against v. It returns false once the script
// is exhausted.
func (s *GestureScript) Step(v *Viewer) bool {
	if s.Done() {
		return false
	}
	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "open":
		v.Open(st.Index)
	case "close":
		v.Close()
	case "next":
		v.ShowNext()
	case "prev":
		v.ShowPrev()
	case "load":
		v.ImageLoaded(v.loadID, st.Width, st.Height)
	case "tap":
		v.ReplayTouch(TapEvents(st.X, st.Y, s.now, defaultTapHold))
		s.now = s.now.Add(defaultTapHold)
	case "doubletap":
		v.ReplayTouch(TapEvents(st.X, st.Y, s.now, defaultTapHold))
		s.now = s.now.Add(2 * defaultTapHold)
		v.ReplayTouch(TapEvents(st.X, st.Y, s.now, defaultTapHold))
		s.now = s.now.Add(defaultTapHold)
	case "swipe":
		d := s.duration(st, defaultSwipeDuration)
		v.ReplayTouch(SwipeEvents(st.FromX, st.FromY, st.ToX, st.ToY, s.now, d, st.Steps))
		s.now = s.now.Add(d)
	case "pinch":
		d := s.duration(st, defaultPinchDuration)
		v.ReplayTouch(PinchEvents(st.X, st.Y, st.FromDist, st.ToDist, s.now, d, st.Steps))
		s.now = s.now.Add(d)
	case "wheel":
		v.Wheel(WheelEvent{X: st.X, Y: st.Y, DeltaY: st.DeltaY})
	case "drag":
		v.ReplayPointer(DragEvents(0, st.FromX, st.FromY, st.ToX, st.ToY, st.Steps))
	case "dblclick":
		v.DoubleClick(st.X, st.Y)
	case "key":
		v.HandleKey(scriptKeys[st.Key])
	case "resize":
		v.Resize()
	case "wait":
		s.now = s.now.Add(time.Duration(st.Ms) * time.Millisecond)
	}
	return true
}

// Run executes all remaining steps against v.
func (s *GestureScript) Run(v *Viewer) {
	for s.Step(v) {
	}
}

func (s *GestureScript) duration(st scriptStep, def time.Duration) time.Duration {
	if st.Ms > 0 {
		return time.Duration(st.Ms) * time.Millisecond
	}
	return def
}
