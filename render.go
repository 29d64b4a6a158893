package arbor

// Render paints w and its descendants into g. w must be elevated: only the
// widget owning a surface roots a paint traversal. The traversal strategy
// is chosen by w's RenderMode. In clipped mode the root is confined to its
// own bounds like every other widget.
//
// Elevated descendants are skipped; their own surfaces render them.
func (w *Widget) Render(g Graphics) {
	if g == nil {
		panic("arbor: Render called with nil graphics")
	}
	if !w.Elevated() {
		panic("arbor: Render called on a widget that is not elevated")
	}
	if globalDebug {
		debugCheckDestroyed(w, "Render")
	}
	if !w.visible || w.bounds.Empty() {
		return
	}
	if w.mode == RenderClipped {
		g.Save()
		g.IntersectClip(w.bounds.At(0, 0))
		if !g.ClipEmpty() {
			renderClipped(w, g)
		}
		g.Restore()
		return
	}
	renderUnclipped(w, g)
}

// renderUnclipped paints back to front with no clipping beyond what the
// caller set up. Children are drawn over their parent, so overlap is
// resolved by paint order alone.
func renderUnclipped(w *Widget, g Graphics) {
	cb := g.LastClip()

	g.Save()
	w.paint(g)
	g.Restore()

	for _, c := range w.children {
		if !c.visible || c.Elevated() {
			continue
		}
		g.Save()
		if cb.Intersects(c.bounds) {
			g.Translate(c.bounds.Pos())
			renderUnclipped(c, g)
		}
		g.Restore()
	}
}

// renderClipped skips the self-paint of any widget whose visible area is
// fully covered by opaque descendants, and confines every child to its own
// bounds.
func renderClipped(w *Widget, g Graphics) {
	cb := g.LastClip()

	if exposed := exposedRegion(w, cb); exposed.Empty() {
		Logger().Debug("arbor: self-paint occluded", "widget", w.Name, "clip", cb)
	} else {
		g.Save()
		g.IntersectClip(exposed.Bounds())
		w.paint(g)
		g.Restore()
	}

	for _, c := range w.children {
		if !c.visible || c.Elevated() {
			continue
		}
		g.Save()
		if cb.Intersects(c.bounds) {
			g.IntersectClip(c.bounds)
			if !g.ClipEmpty() {
				g.Translate(c.bounds.Pos())
				renderClipped(c, g)
			}
		}
		g.Restore()
	}
}

// exposedRegion returns the part of clip (w's local space) not hidden by
// opaque descendants.
func exposedRegion(w *Widget, clip Rect[int]) *Region {
	reg := NewRegion(clip)
	if reg.Empty() {
		return reg
	}
	var blockers []Rect[int]
	if !collectBlockers(w, clip, Point[int]{}, &blockers) {
		return reg
	}
	for _, b := range blockers {
		reg.Subtract(b)
		if reg.Empty() {
			break
		}
	}
	return reg
}

// collectBlockers scans w's children topmost first for opaque widgets
// overlapping clip. clip is in w's space; delta maps w's space to the space
// the scan started from. Non-opaque children are searched for opaque
// descendants. It reports whether any blocker was found.
func collectBlockers(w *Widget, clip Rect[int], delta Point[int], out *[]Rect[int]) bool {
	found := false
	for i := len(w.children) - 1; i >= 0; i-- {
		c := w.children[i]
		if !c.visible || c.Elevated() {
			continue
		}
		ncr := clip.Intersection(c.bounds)
		if ncr.Empty() {
			continue
		}
		if c.opaque {
			*out = append(*out, ncr.Add(delta))
			found = true
			continue
		}
		cpos := c.bounds.Pos()
		if collectBlockers(c, ncr.Sub(cpos), delta.Add(cpos), out) {
			found = true
		}
	}
	return found
}
