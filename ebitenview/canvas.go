// Package ebitenview hosts an arbor widget tree in an Ebitengine window.
//
// A View is both the arbor.Surface of the root widget and the ebiten.Game
// driving the window. Damage reported by the tree is repainted into a
// persistent back buffer that is copied to the screen each frame.
package ebitenview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/arbor"
)

// Glyph cell of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Canvas adapts an *ebiten.Image to arbor.Graphics. Rectangles are drawn
// by scaling a white pixel; the clip is applied by trimming each draw to
// the device clip.
type Canvas struct {
	target *ebiten.Image
	state  arbor.StateStack
}

// NewCanvas returns a canvas drawing into target.
func NewCanvas(target *ebiten.Image) *Canvas {
	c := &Canvas{}
	c.SetTarget(target)
	return c
}

// SetTarget switches the destination image and resets all state.
func (c *Canvas) SetTarget(target *ebiten.Image) {
	c.target = target
	b := target.Bounds()
	c.state.Reset(arbor.R(b.Min.X, b.Min.Y, b.Dx(), b.Dy()))
}

func (c *Canvas) Save() { c.state.Save() }

func (c *Canvas) Restore() {
	if !c.state.Restore() {
		panic("ebitenview: Restore without matching Save")
	}
}

func (c *Canvas) Translate(delta arbor.Point[int]) { c.state.Translate(delta) }

func (c *Canvas) SetColor(col arbor.Color) { c.state.SetColor(col) }

func (c *Canvas) Clip(r arbor.Rect[int]) { c.state.Clip(r) }

func (c *Canvas) IntersectClip(r arbor.Rect[int]) { c.state.IntersectClip(r) }

func (c *Canvas) LastClip() arbor.Rect[int] { return c.state.LastClip() }

func (c *Canvas) ClipEmpty() bool { return c.state.ClipEmpty() }

func (c *Canvas) FillRect(r arbor.Rect[float64]) {
	d := c.state.ToDevice(r).Intersection(arbor.RectAs[float64](c.state.DeviceClip()))
	if d.Empty() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(d.Width, d.Height)
	op.GeoM.Translate(d.X, d.Y)
	op.ColorScale.ScaleWithColor(c.state.Color().RGBA())
	c.target.DrawImage(ensureWhitePixel(), &op)
}

// DrawText prints with Ebitengine's debug font, which has a fixed white
// face; the current color is not applied.
func (c *Canvas) DrawText(s string, r arbor.Rect[float64], align arbor.Align) {
	clip := c.state.DeviceClip()
	if s == "" || clip.Empty() {
		return
	}
	d := c.state.ToDevice(r)
	fx, fy := align.Anchor()
	tw, th := textSize(s)
	x := d.X + (d.Width-tw)*fx
	y := d.Y + (d.Height-th)*fy

	sub := c.target.SubImage(image.Rect(clip.X, clip.Y, clip.Right(), clip.Bottom())).(*ebiten.Image)
	ebitenutil.DebugPrintAt(sub, s, int(x), int(y))
}

// textSize measures s in the debug font.
func textSize(s string) (w, h float64) {
	lines, cols, maxCols := 1, 0, 0
	for _, r := range s {
		if r == '\n' {
			lines++
			cols = 0
			continue
		}
		cols++
		maxCols = max(maxCols, cols)
	}
	return float64(maxCols * debugGlyphW), float64(lines * debugGlyphH)
}

var _ arbor.Graphics = (*Canvas)(nil)
