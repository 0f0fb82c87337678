package ebitenview

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/lightbox"
)

const (
	debugCharWidth = 6
	closedHint     = "Viewer closed. Enter or click to reopen, Q or Escape to quit."
)

var buttonColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.viewer.IsOpen() {
		ebitenutil.DebugPrintAt(screen, closedHint, buttonMargin, buttonMargin)
		return
	}
	screen.Fill(g.opts.Background)
	g.drawImage(screen)
	g.drawControls(screen)
	g.drawCaption(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), buttonMargin, int(g.layout.window.Height)-captionLine-buttonMargin)
}

func (g *Game) drawImage(screen *ebiten.Image) {
	c := g.layout.container
	switch {
	case g.img != nil:
	case g.loadErr != "":
		ebitenutil.DebugPrintAt(screen, "Could not load image: "+g.loadErr, int(c.X), int(c.Y))
		return
	default:
		ebitenutil.DebugPrintAt(screen, "Loading...", int(c.X), int(c.Y))
		return
	}

	// Clip to the container. SubImage keeps the parent's coordinates.
	clip := screen.SubImage(image.Rect(
		int(c.X), int(c.Y),
		int(c.X+c.Width), int(c.Y+c.Height),
	)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM = geoM(g.anim.cur.Matrix(c, g.imgW, g.imgH))
	clip.DrawImage(g.img, op)
}

func (g *Game) drawControls(screen *ebiten.Image) {
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}
	l := g.layout
	for _, b := range []struct {
		r     lightbox.Rect
		label string
	}{
		{l.close, "x"},
		{l.prev, "<"},
		{l.next, ">"},
	} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(b.r.Width, b.r.Height)
		op.GeoM.Translate(b.r.X, b.r.Y)
		op.ColorScale.ScaleWithColor(buttonColor)
		screen.DrawImage(g.pixel, op)

		cx, cy := b.r.Center()
		ebitenutil.DebugPrintAt(screen, b.label, int(cx)-debugCharWidth/2, int(cy)-captionLine/2)
	}
}

func (g *Game) drawCaption(screen *ebiten.Image) {
	if g.caption == "" {
		return
	}
	c := g.layout.container
	x := c.X + (c.Width-float64(textWidth(g.caption)))/2
	y := c.Y + c.Height + (g.layout.window.Height-c.Y-c.Height-captionLine)/2
	ebitenutil.DebugPrintAt(screen, g.caption, int(x), int(y))
}

// textWidth is the width in pixels of s in the debug font.
func textWidth(s string) int {
	return utf8.RuneCountInString(s) * debugCharWidth
}

// status returns the image counter and, while the cursor is over the
// image, the pixel under it.
func (g *Game) status() string {
	s := fmt.Sprintf("%d/%d", g.viewer.Index()+1, g.viewer.Len())
	if g.img == nil || !g.layout.container.Contains(g.lastX, g.lastY) {
		return s
	}
	ix, iy := g.anim.cur.ScreenToImage(g.layout.container, g.imgW, g.imgH, g.lastX, g.lastY)
	if ix >= 0 && iy >= 0 && ix < g.imgW && iy < g.imgH {
		s += fmt.Sprintf("  %d,%d", int(ix), int(iy))
	}
	return s
}

// geoM converts an affine matrix [a, b, c, d, tx, ty] to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var gm ebiten.GeoM
	gm.SetElement(0, 0, m[0])
	gm.SetElement(1, 0, m[1])
	gm.SetElement(0, 1, m[2])
	gm.SetElement(1, 1, m[3])
	gm.SetElement(0, 2, m[4])
	gm.SetElement(1, 2, m[5])
	return gm
}
