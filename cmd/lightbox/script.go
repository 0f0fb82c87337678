package main

import (
	"fmt"
	"io"

	"github.com/phanxgames/lightbox"
	"github.com/phanxgames/lightbox/internal/config"
)

// traceTarget is a headless render target that logs every call it receives.
type traceTarget struct {
	w      io.Writer
	bounds lightbox.Rect
}

func (t *traceTarget) ContainerBounds() lightbox.Rect { return t.bounds }

func (t *traceTarget) LoadImage(req lightbox.LoadRequest) {
	fmt.Fprintf(t.w, "  load #%d %s\n", req.Index, req.Source)
}

func (t *traceTarget) ClearImage() { fmt.Fprintln(t.w, "  clear") }

func (t *traceTarget) SetTransform(tr lightbox.Transform) {}

func (t *traceTarget) SetCaption(caption string) {
	fmt.Fprintf(t.w, "  caption %q\n", caption)
}

// replayScript runs a gesture script against a viewer sized like the
// configured window and prints the state after every step.
func replayScript(w io.Writer, images []lightbox.Image, cfg *config.Config, data []byte) error {
	script, err := lightbox.LoadGestureScript(data)
	if err != nil {
		return err
	}

	win := lightbox.Rect{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	target := &traceTarget{w: w, bounds: win.Inset(cfg.Display.Padding)}
	v, err := lightbox.New(images, target, lightbox.WithOptions(cfg.EngineOptions()))
	if err != nil {
		return fmt.Errorf("creating viewer: %w", err)
	}

	for i := 0; script.Step(v); i++ {
		s := v.State()
		fmt.Fprintf(w, "%3d index=%d open=%t scale=%.4f pan=(%.2f, %.2f) base=%.4f\n",
			i, s.Index, s.Open, s.Scale, s.PanX, s.PanY, s.BaseScale)
	}
	return nil
}
