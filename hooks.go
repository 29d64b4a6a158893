package arbor

// Painter draws a widget's own content. Paint is called with the graphics
// state translated to the widget's origin; child widgets are painted
// afterwards by the compositor.
type Painter interface {
	Paint(g Graphics)
}

// MoveObserver is told when the widget's position changed.
type MoveObserver interface {
	Moved()
}

// ResizeObserver is told when the widget's size changed.
type ResizeObserver interface {
	Resized()
}

// StructureObserver is told when the widget, or any ancestor, was attached
// to or detached from a parent.
type StructureObserver interface {
	ParentStructureChanged()
}

// ChildrenObserver is told when a child was added, removed, reordered or
// destroyed.
type ChildrenObserver interface {
	ChildrenChanged()
}

// ParentSizeObserver is told when the parent was resized.
type ParentSizeObserver interface {
	ParentSizeChanged()
}

// ChildSizeObserver is told when a direct child moved or was resized.
type ChildSizeObserver interface {
	ChildSizeChanged(child *Widget)
}

// Obstructor refines hit testing. Obstructed reports whether the widget
// claims the point (local coordinates). Widgets without it claim every
// point in their bounds.
type Obstructor interface {
	Obstructed(x, y int) bool
}

// PointerHandler receives pointer input in local coordinates. A widget that
// handled PointerDown keeps receiving PointerMove and PointerUp until the
// pointer is released, even outside its bounds.
type PointerHandler interface {
	PointerDown(p Point[int])
	PointerMove(p Point[int])
	PointerUp(p Point[int], inside bool)
}

// Ref is a liveness token for a widget. It stays safe to query after
// arbitrary code ran, including code that destroyed the widget.
type Ref struct {
	w *Widget
}

// Ref returns a liveness token for w.
func (w *Widget) Ref() Ref {
	return Ref{w: w}
}

// Valid reports whether the referenced widget still exists.
func (r Ref) Valid() bool {
	return r.w != nil && !r.w.destroyed
}

// Widget returns the referenced widget, or nil once it was destroyed.
func (r Ref) Widget() *Widget {
	if !r.Valid() {
		return nil
	}
	return r.w
}

// emit sends ev to the nearest sink on the path to the root.
func (w *Widget) emit(t EventType, child *Widget) {
	for p := w; p != nil; p = p.parent {
		if p.sink == nil {
			continue
		}
		ev := LayoutEvent{Type: t, WidgetID: w.ID, Name: w.Name, Bounds: w.bounds}
		if child != nil {
			ev.ChildID = child.ID
		}
		p.sink.EmitEvent(ev)
		return
	}
}

// --- Hook dispatch ---

func (w *Widget) paint(g Graphics) {
	if p, ok := w.delegate.(Painter); ok {
		p.Paint(g)
	}
}

func (w *Widget) moved() {
	w.emit(EventMoved, nil)
	if o, ok := w.delegate.(MoveObserver); ok {
		o.Moved()
	}
}

func (w *Widget) resized() {
	w.emit(EventResized, nil)
	if o, ok := w.delegate.(ResizeObserver); ok {
		o.Resized()
	}
}

func (w *Widget) parentStructureChanged() {
	w.emit(EventStructureChanged, nil)
	if o, ok := w.delegate.(StructureObserver); ok {
		o.ParentStructureChanged()
	}
}

func (w *Widget) notifyChildrenChanged() {
	w.emit(EventChildrenChanged, nil)
	if o, ok := w.delegate.(ChildrenObserver); ok {
		o.ChildrenChanged()
	}
}

func (w *Widget) parentSizeChanged() {
	w.emit(EventParentSizeChanged, nil)
	if o, ok := w.delegate.(ParentSizeObserver); ok {
		o.ParentSizeChanged()
	}
}

func (w *Widget) childSizeChanged(child *Widget) {
	w.emit(EventChildSizeChanged, child)
	if o, ok := w.delegate.(ChildSizeObserver); ok {
		o.ChildSizeChanged(child)
	}
}

func (w *Widget) obstructed(x, y int) bool {
	if o, ok := w.delegate.(Obstructor); ok {
		return o.Obstructed(x, y)
	}
	return true
}

// --- Notification traversals ---

// walkChildren visits w's children topmost first. visit may reshape the
// list; the walk then rescans from the top, skipping children already
// visited, so reordering never skips a child or visits one twice. It stops
// once ref is invalid.
func (w *Widget) walkChildren(ref Ref, visit func(c *Widget)) {
	if len(w.children) == 0 {
		return
	}
	seen := make(map[*Widget]struct{}, len(w.children))
	for i := len(w.children) - 1; i >= 0; {
		c := w.children[i]
		if _, ok := seen[c]; ok {
			i--
			continue
		}
		seen[c] = struct{}{}
		visit(c)
		if !ref.Valid() {
			return
		}
		i = w.resumeIndex(i, c)
	}
}

// resumeIndex returns the next slot to examine after visiting c at index i:
// the one below when c is still in place, the top of the list otherwise.
func (w *Widget) resumeIndex(i int, c *Widget) int {
	if i < len(w.children) && w.children[i] == c {
		return i - 1
	}
	return len(w.children) - 1
}

// notifyStructureChanged tells w and its whole subtree that the chain of
// ancestors changed. Hooks may destroy, detach or reorder any widget; the
// walk stops as soon as w itself is gone.
func (w *Widget) notifyStructureChanged() {
	ref := w.Ref()
	w.parentStructureChanged()
	if !ref.Valid() {
		return
	}
	w.walkChildren(ref, (*Widget).notifyStructureChanged)
}

// notifyMovedResized fires the move and resize hooks after a bounds change.
// The parent is always told its child changed, even when neither flag is set.
func (w *Widget) notifyMovedResized(moved, resized bool) {
	ref := w.Ref()
	if moved {
		w.moved()
		if !ref.Valid() {
			return
		}
	}
	if resized {
		w.resized()
		if !ref.Valid() {
			return
		}
		w.walkChildren(ref, (*Widget).parentSizeChanged)
		if !ref.Valid() {
			return
		}
	}
	if w.parent != nil {
		w.parent.childSizeChanged(w)
	}
}
