// Package ebitenview hosts a lightbox.Viewer in an Ebitengine window.
//
// The Game polls mouse, wheel, touch and keyboard input every frame and
// forwards it to the viewer, decodes images on a background goroutine and
// draws the current image with the viewer's transform, eased by a short
// tween on zoom. Prev, next and close buttons are drawn at the window
// edges; clicking outside the image container closes the viewer.
package ebitenview

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/lightbox"
)

// Game runs a lightbox.Viewer. It implements ebiten.Game and
// lightbox.RenderTarget.
type Game struct {
	viewer *lightbox.Viewer
	opts   Options
	loader *loader
	anim   *transition
	done   <-chan struct{}

	layout     layout
	winW, winH int
	resized    bool

	// Display state, written through the RenderTarget methods.
	img     *ebiten.Image
	imgW    float64
	imgH    float64
	pending lightbox.LoadID
	loadErr string
	caption string
	dispose []*ebiten.Image
	pixel   *ebiten.Image

	// Input state carried between frames.
	mouseDown    bool
	pressed      control
	lastX, lastY float64
	clicks       clickTracker
	touches      []lightbox.TouchPoint
	touchIDs     []ebiten.TouchID
	touchControl control
	touchFirst   lightbox.TouchPoint
}

// New creates a Game over images. The viewer starts closed; Run opens it at
// Options.Start.
func New(images []lightbox.Image, opts Options) (*Game, error) {
	o := opts.withDefaults()
	g := &Game{
		opts:   o,
		loader: newLoader(),
		anim:   newTransition(float32(o.Transition.Seconds())),
	}
	g.setWindowSize(o.Width, o.Height)

	v, err := lightbox.New(images, g, lightbox.WithOptions(o.Engine))
	if err != nil {
		return nil, fmt.Errorf("creating viewer: %w", err)
	}
	g.viewer = v
	return g, nil
}

// Viewer returns the engine driven by this game.
func (g *Game) Viewer() *lightbox.Viewer { return g.viewer }

// Run opens a window, shows images starting at opts.Start and blocks until
// the user quits or ctx is cancelled.
func Run(ctx context.Context, images []lightbox.Image, opts Options) error {
	g, err := New(images, opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g.done = ctx.Done()
	go g.loader.run(ctx)

	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g.viewer.Open(g.opts.Start)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	// Deallocate images replaced in the previous frame; Draw no longer
	// uses them.
	for _, img := range g.dispose {
		img.Deallocate()
	}
	g.dispose = g.dispose[:0]

	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}

	if g.resized {
		g.resized = false
		g.viewer.Resize()
	}
	g.drainLoads()

	if err := g.dispatch(g.pollInput(time.Now())); err != nil {
		return err
	}
	g.anim.update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// Layout implements ebiten.Game. The logical screen matches the window so
// one screen unit is one pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.winW || outsideHeight != g.winH {
		g.setWindowSize(outsideWidth, outsideHeight)
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

func (g *Game) setWindowSize(w, h int) {
	g.winW, g.winH = w, h
	g.layout = computeLayout(w, h, g.opts.Padding)
}

// drainLoads applies every decoded image the loader has finished.
func (g *Game) drainLoads() {
	for {
		r, ok := g.loader.poll()
		if !ok {
			return
		}
		if g.acceptLoad(r) {
			b := r.img.Bounds()
			g.img = ebiten.NewImageFromImage(r.img)
			g.imgW, g.imgH = float64(b.Dx()), float64(b.Dy())
		}
	}
}

// acceptLoad reports a finished load to the viewer. It returns true when
// the image should be displayed; stale results and failures are dropped.
func (g *Game) acceptLoad(r loadResult) bool {
	if r.err != nil {
		lightbox.Logger().Error("ebitenview: load failed",
			slog.String("source", r.req.Source),
			slog.Any("error", r.err))
		if r.req.ID == g.pending {
			g.loadErr = r.err.Error()
		}
		return false
	}
	b := r.img.Bounds()
	return g.viewer.ImageLoaded(r.req.ID, float64(b.Dx()), float64(b.Dy()))
}

// --- lightbox.RenderTarget ---

// ContainerBounds returns the window inset by Options.Padding.
func (g *Game) ContainerBounds() lightbox.Rect { return g.layout.container }

// LoadImage drops the displayed image and queues req on the loader.
func (g *Game) LoadImage(req lightbox.LoadRequest) {
	g.retire()
	g.pending = req.ID
	g.loadErr = ""
	g.loader.submit(req)
}

// ClearImage drops the displayed image and forgets any pending load.
func (g *Game) ClearImage() {
	g.retire()
	g.pending = 0
	g.loadErr = ""
}

// SetTransform eases towards t, or jumps there when nothing is displayed.
func (g *Game) SetTransform(t lightbox.Transform) {
	if g.img == nil {
		g.anim.snap(t)
		return
	}
	g.anim.retarget(t)
}

// SetCaption sets the text drawn under the image.
func (g *Game) SetCaption(caption string) { g.caption = caption }

// retire schedules the displayed image for deallocation on the next frame.
func (g *Game) retire() {
	if g.img != nil {
		g.dispose = append(g.dispose, g.img)
		g.img = nil
	}
}
