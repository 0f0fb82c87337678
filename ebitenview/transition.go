package ebitenview

import (
	"github.com/phanxgames/lightbox"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transition eases the displayed transform towards the one the viewer last
// emitted. Zoom changes animate; pure pans snap so drags track the pointer.
type transition struct {
	cur    lightbox.Transform
	target lightbox.Transform

	tweens   [3]*gween.Tween
	active   bool
	duration float32
	fn       ease.TweenFunc
}

func newTransition(seconds float32) *transition {
	return &transition{
		cur:      lightbox.Transform{Scale: 1},
		target:   lightbox.Transform{Scale: 1},
		duration: seconds,
		fn:       ease.OutCubic,
	}
}

// snap jumps straight to t, cancelling any running animation.
func (tr *transition) snap(t lightbox.Transform) {
	tr.cur = t
	tr.target = t
	tr.active = false
}

// retarget starts animating from the current displayed value to t.
func (tr *transition) retarget(t lightbox.Transform) {
	if tr.duration <= 0 || t.Scale == tr.target.Scale {
		tr.snap(t)
		return
	}
	tr.target = t
	tr.tweens[0] = gween.New(float32(tr.cur.TranslateX), float32(t.TranslateX), tr.duration, tr.fn)
	tr.tweens[1] = gween.New(float32(tr.cur.TranslateY), float32(t.TranslateY), tr.duration, tr.fn)
	tr.tweens[2] = gween.New(float32(tr.cur.Scale), float32(t.Scale), tr.duration, tr.fn)
	tr.active = true
}

// update advances the animation by dt seconds and returns the transform to
// draw with.
func (tr *transition) update(dt float32) lightbox.Transform {
	if !tr.active {
		return tr.cur
	}
	x, doneX := tr.tweens[0].Update(dt)
	y, doneY := tr.tweens[1].Update(dt)
	s, doneS := tr.tweens[2].Update(dt)
	if doneX && doneY && doneS {
		// Land exactly on the target rather than its float32 rounding.
		tr.snap(tr.target)
		return tr.cur
	}
	tr.cur = lightbox.Transform{TranslateX: float64(x), TranslateY: float64(y), Scale: float64(s)}
	return tr.cur
}
