package arbor

import "io"

// Graphics is the drawing context a surface hands to Widget.Render.
//
// Coordinates passed to drawing and clipping calls are in the current local
// space, which Translate shifts. Save and Restore snapshot and restore the
// translation, clip and color.
type Graphics interface {
	Save()
	Restore()
	Translate(delta Point[int])
	SetColor(c Color)
	FillRect(r Rect[float64])
	DrawText(text string, r Rect[float64], align Align)
	// Clip replaces the current clip.
	Clip(r Rect[int])
	// IntersectClip narrows the current clip to its overlap with r.
	IntersectClip(r Rect[int])
	// LastClip returns the current clip in local coordinates.
	LastClip() Rect[int]
	// ClipEmpty reports whether nothing drawn now would be visible.
	ClipEmpty() bool
}

// Surface is a native drawing surface owned by an elevated widget.
// Repaint schedules a redraw of a damaged region given in the surface's
// local space. Coalescing and frame timing belong to the surface.
//
// A Surface that also implements io.Closer is closed when its widget is
// lowered or destroyed.
type Surface interface {
	Repaint(r Rect[int])
}

func releaseSurface(s Surface) {
	c, ok := s.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		Logger().Warn("arbor: surface close failed", "err", err)
	}
}

// DamageList is a Surface that records every repaint request. Headless
// hosts and tests use it to observe damage without a real surface.
type DamageList struct {
	rects  []Rect[int]
	closed bool
}

// Repaint records r.
func (d *DamageList) Repaint(r Rect[int]) {
	d.rects = append(d.rects, r)
}

// Damage returns the recorded regions. The returned slice MUST NOT be mutated.
func (d *DamageList) Damage() []Rect[int] {
	return d.rects
}

// Bounds returns the union of all recorded regions.
func (d *DamageList) Bounds() Rect[int] {
	var u Rect[int]
	for _, r := range d.rects {
		u = u.Union(r)
	}
	return u
}

// Take returns the recorded regions and clears the list.
func (d *DamageList) Take() []Rect[int] {
	rects := d.rects
	d.rects = nil
	return rects
}

// Close marks the list closed. It is called when the owning widget releases
// its surface.
func (d *DamageList) Close() error {
	d.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (d *DamageList) Closed() bool {
	return d.closed
}
