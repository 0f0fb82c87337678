package ebitenview

import "github.com/phanxgames/lightbox"

// control identifies what a press landed on.
type control uint8

const (
	controlNone     control = iota // the image container: forwarded to the viewer
	controlClose                   // close button
	controlPrev                    // previous button
	controlNext                    // next button
	controlBackdrop                // outside the container; closes on click
	controlOpen                    // anywhere while closed; reopens
)

const (
	buttonSize   = 32
	buttonMargin = 4
	captionLine  = 16 // debug font line height
)

// layout holds the screen geometry derived from the window size.
type layout struct {
	window    lightbox.Rect
	container lightbox.Rect
	close     lightbox.Rect
	prev      lightbox.Rect
	next      lightbox.Rect
}

func computeLayout(width, height int, padding float64) layout {
	win := lightbox.Rect{Width: float64(width), Height: float64(height)}
	_, cy := win.Center()
	b := float64(buttonSize)
	return layout{
		window:    win,
		container: win.Inset(padding),
		close:     lightbox.Rect{X: win.Width - b - buttonMargin, Y: buttonMargin, Width: b, Height: b},
		prev:      lightbox.Rect{X: buttonMargin, Y: cy - b/2, Width: b, Height: b},
		next:      lightbox.Rect{X: win.Width - b - buttonMargin, Y: cy - b/2, Width: b, Height: b},
	}
}

// hit returns the control under (x, y). Buttons sit on top of the
// container.
func (l layout) hit(x, y float64) control {
	switch {
	case l.close.Contains(x, y):
		return controlClose
	case l.prev.Contains(x, y):
		return controlPrev
	case l.next.Contains(x, y):
		return controlNext
	case l.container.Contains(x, y):
		return controlNone
	}
	return controlBackdrop
}
