package arbor

// PointerRouter runs the press, move and release state machine for one
// pointer over a widget tree. The widget that received PointerDown holds
// the grab and gets every following event until release, even when the
// pointer leaves it. Points are in the root's local space.
type PointerRouter struct {
	grab Ref
	down bool
	last Point[float64]
}

// Update feeds the current pointer position and button state, as read once
// per frame from an input device. Edges are turned into Press and Release;
// motion while held becomes Move.
func (r *PointerRouter) Update(root *Widget, p Point[float64], pressed bool) {
	switch {
	case pressed && !r.down:
		r.Press(root, p)
	case pressed && p != r.last:
		r.Move(root, p)
	case !pressed && r.down:
		r.Release(root, p)
	}
}

// Down reports whether the pointer is held.
func (r *PointerRouter) Down() bool { return r.down }

// Grabbed returns the widget holding the grab, or nil.
func (r *PointerRouter) Grabbed() *Widget { return r.grab.Widget() }

// Press finds the topmost PointerHandler under p and grabs it.
func (r *PointerRouter) Press(root *Widget, p Point[float64]) {
	r.down = true
	r.last = p
	r.grab = Ref{}
	if root == nil || root.destroyed {
		return
	}
	for w := root.WidgetAt(p); w != nil; w = w.parent {
		if _, ok := w.delegate.(PointerHandler); ok {
			r.grab = w.Ref()
			break
		}
		if w == root {
			break
		}
	}
	if h, w, local := r.target(root, p); h != nil {
		Logger().Debug("arbor: pointer grab", "widget", w.Name, "at", local)
		h.PointerDown(local)
	}
}

// Move reports motion to the grabbed widget.
func (r *PointerRouter) Move(root *Widget, p Point[float64]) {
	r.last = p
	if h, _, local := r.target(root, p); h != nil {
		h.PointerMove(local)
	}
}

// Release ends the grab.
func (r *PointerRouter) Release(root *Widget, p Point[float64]) {
	r.down = false
	r.last = p
	h, w, local := r.target(root, p)
	r.grab = Ref{}
	if h != nil {
		h.PointerUp(local, w.bounds.At(0, 0).Contains(local))
	}
}

// target resolves the grabbed widget and maps p into its space. The grab
// is dropped if the widget was destroyed or left root's tree.
func (r *PointerRouter) target(root *Widget, p Point[float64]) (PointerHandler, *Widget, Point[int]) {
	w := r.grab.Widget()
	if w == nil || root == nil || root.destroyed || !isAncestor(root, w) {
		r.grab = Ref{}
		return nil, nil, Point[int]{}
	}
	h, ok := w.delegate.(PointerHandler)
	if !ok {
		r.grab = Ref{}
		return nil, nil, Point[int]{}
	}
	return h, w, PointAs[int](ToLocal(w, root, p))
}
