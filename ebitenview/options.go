package ebitenview

import (
	"image/color"
	"time"

	"github.com/phanxgames/lightbox"
)

// Options configures the Ebitengine host.
type Options struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	Width, Height int
	// Padding is the gap between the window edge and the image container.
	// The edges hold the buttons and the caption.
	Padding float64
	// Transition is how long the displayed transform takes to follow a zoom.
	// Zero snaps immediately.
	Transition time.Duration
	// Background fills the window behind the image while the viewer is open.
	Background color.Color
	// Start is the image index opened on the first frame.
	Start int
	// Engine holds the gesture tunables handed to lightbox.New.
	Engine lightbox.Options
}

// DefaultOptions returns the host defaults.
func DefaultOptions() Options {
	return Options{
		Title:      "lightbox",
		Width:      1280,
		Height:     800,
		Padding:    40,
		Transition: 150 * time.Millisecond,
		Background: color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xf0},
		Engine:     lightbox.DefaultOptions(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Padding <= 0 {
		o.Padding = d.Padding
	}
	if o.Transition < 0 {
		o.Transition = 0
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	return o
}
