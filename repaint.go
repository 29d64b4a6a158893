package arbor

// Repaint invalidates the whole widget.
func (w *Widget) Repaint() {
	w.RepaintRect(w.bounds.At(0, 0))
}

// RepaintRect invalidates r, given in w's local space. The request bubbles
// up to the nearest elevated ancestor whose surface decides when the redraw
// happens. Hidden widgets and regions outside the widget are ignored.
func (w *Widget) RepaintRect(r Rect[int]) {
	for {
		if !w.visible {
			return
		}
		r = r.Intersection(w.bounds.At(0, 0))
		if r.Empty() {
			return
		}
		if w.Elevated() {
			w.surface.Repaint(r)
			return
		}
		if w.parent == nil {
			Logger().Debug("arbor: repaint reached a detached root",
				"widget", w.Name, "rect", r)
			return
		}
		r = r.Add(w.bounds.Pos())
		w = w.parent
	}
}
