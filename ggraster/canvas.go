// Package ggraster renders arbor widget trees in software with gogpu/gg.
//
// A Surface owns a gg.Context and records damage reported by its elevated
// widget. Render repaints only the damaged area; the result can be read as
// an image or written to PNG.
package ggraster

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/phanxgames/arbor"
)

// Canvas adapts a gg.Context to arbor.Graphics. Translation and clipping
// are tracked in an arbor.StateStack and applied to every draw call in
// device space, so the context's own matrix stays at identity.
type Canvas struct {
	dc    *gg.Context
	state arbor.StateStack
	face  text.Face
}

// NewCanvas wraps dc. face may be nil, in which case DrawText is a no-op.
func NewCanvas(dc *gg.Context, face text.Face) *Canvas {
	c := &Canvas{dc: dc, face: face}
	c.Reset()
	if face != nil {
		dc.SetFont(face)
	}
	return c
}

// Reset restores the full-canvas clip and drops any saved state.
func (c *Canvas) Reset() {
	c.state.Reset(arbor.R(0, 0, c.dc.Width(), c.dc.Height()))
	c.dc.Identity()
}

// Context returns the wrapped gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

func (c *Canvas) Save() { c.state.Save() }

func (c *Canvas) Restore() {
	if !c.state.Restore() {
		panic("ggraster: Restore without matching Save")
	}
}

func (c *Canvas) Translate(delta arbor.Point[int]) { c.state.Translate(delta) }

func (c *Canvas) SetColor(col arbor.Color) { c.state.SetColor(col) }

func (c *Canvas) Clip(r arbor.Rect[int]) { c.state.Clip(r) }

func (c *Canvas) IntersectClip(r arbor.Rect[int]) { c.state.IntersectClip(r) }

func (c *Canvas) LastClip() arbor.Rect[int] { return c.state.LastClip() }

func (c *Canvas) ClipEmpty() bool { return c.state.ClipEmpty() }

// FillRect fills r trimmed to the current clip.
func (c *Canvas) FillRect(r arbor.Rect[float64]) {
	d := c.visible(r)
	if d.Empty() {
		return
	}
	c.dc.SetColor(c.state.Color().RGBA())
	c.dc.DrawRectangle(d.X, d.Y, d.Width, d.Height)
	if err := c.dc.Fill(); err != nil {
		arbor.Logger().Warn("ggraster: fill failed", "rect", d, "err", err)
	}
}

// DrawText draws text anchored inside r. Text is drawn only when r
// overlaps the clip; glyphs themselves are not trimmed.
func (c *Canvas) DrawText(s string, r arbor.Rect[float64], align arbor.Align) {
	if c.face == nil || s == "" || c.visible(r).Empty() {
		return
	}
	d := c.state.ToDevice(r)
	fx, fy := align.Anchor()
	c.dc.SetColor(c.state.Color().RGBA())
	c.dc.DrawStringAnchored(s, d.X+d.Width*fx, d.Y+d.Height*fy, fx, 1-fy)
}

func (c *Canvas) visible(r arbor.Rect[float64]) arbor.Rect[float64] {
	return c.state.ToDevice(r).Intersection(arbor.RectAs[float64](c.state.DeviceClip()))
}

var _ arbor.Graphics = (*Canvas)(nil)
