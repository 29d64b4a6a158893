package arbor

// widgetIDCounter is a plain counter (no atomic: arbor is single-threaded).
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// Widget is a node of the on-screen widget tree. A single struct serves
// every widget kind; behavior is supplied by a delegate implementing any of
// the hook interfaces in hooks.go.
//
// Bounds are expressed in the parent's local space. An elevated widget
// (one that owns a Surface) roots an independent space instead.
//
// Children are owned and ordered back to front: the last child is topmost.
type Widget struct {
	ID   uint32
	Name string

	parent   *Widget
	children []*Widget

	bounds  Rect[int]
	visible bool
	opaque  bool
	origin  Origin
	surface Surface
	mode    RenderMode

	delegate any
	style    *Style
	sink     EventSink

	destroyed bool
}

// NewWidget creates a visible, non-opaque widget with empty bounds.
func NewWidget(name string) *Widget {
	return &Widget{
		ID:      nextWidgetID(),
		Name:    name,
		visible: true,
	}
}

// SetDelegate sets the value that receives this widget's hooks. The
// delegate may implement any subset of Painter, MoveObserver,
// ResizeObserver, StructureObserver, ChildrenObserver, ParentSizeObserver,
// ChildSizeObserver and Obstructor; missing hooks are no-ops.
func (w *Widget) SetDelegate(d any) {
	w.delegate = d
}

// Delegate returns the hook receiver set with SetDelegate.
func (w *Widget) Delegate() any {
	return w.delegate
}

// --- Accessors ---

// Bounds returns the widget's rectangle in its parent's space.
func (w *Widget) Bounds() Rect[int] { return w.bounds }

// Pos returns the top-left of Bounds.
func (w *Widget) Pos() Point[int] { return w.bounds.Pos() }

// Width returns the widget's width.
func (w *Widget) Width() int { return w.bounds.Width }

// Height returns the widget's height.
func (w *Widget) Height() int { return w.bounds.Height }

// Visible reports the widget's own visibility flag. A hidden ancestor also
// prevents painting.
func (w *Widget) Visible() bool { return w.visible }

// Opaque reports whether the widget promises to paint every pixel of its
// bounds each frame.
func (w *Widget) Opaque() bool { return w.opaque }

// Elevated reports whether the widget owns a surface.
func (w *Widget) Elevated() bool { return w.origin == OriginSurface }

// Origin reports where the widget's coordinate space is anchored.
func (w *Widget) Origin() Origin { return w.origin }

// Surface returns the owned surface, or nil when not elevated.
func (w *Widget) Surface() Surface { return w.surface }

// Parent returns the parent widget, or nil for a root.
func (w *Widget) Parent() *Widget { return w.parent }

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (w *Widget) Children() []*Widget { return w.children }

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int { return len(w.children) }

// ChildAt returns the child at the given index.
func (w *Widget) ChildAt(index int) *Widget { return w.children[index] }

// IndexOf returns the index of child, or -1 if it is not a direct child.
func (w *Widget) IndexOf(child *Widget) int {
	for i, c := range w.children {
		if c == child {
			return i
		}
	}
	return -1
}

// IsDestroyed reports whether Destroy has been called.
func (w *Widget) IsDestroyed() bool { return w.destroyed }

// RenderMode returns the traversal used when this widget is rendered as a root.
func (w *Widget) RenderMode() RenderMode { return w.mode }

// SetRenderMode selects the traversal used when this widget is rendered as
// a root. It has no effect on non-elevated widgets.
func (w *Widget) SetRenderMode(m RenderMode) {
	if w.mode == m {
		return
	}
	w.mode = m
	w.Repaint()
}

// FindRoot returns the topmost ancestor, or w itself.
func (w *Widget) FindRoot() *Widget {
	r := w
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Contains reports whether other is a child of w, or any descendant when
// deep is true.
func (w *Widget) Contains(other *Widget, deep bool) bool {
	if other == nil {
		return false
	}
	if !deep {
		return other.parent == w
	}
	return other != w && isAncestor(w, other)
}

// --- Tree manipulation ---

// AddChild appends child as the topmost child of w.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of w (cycle).
func (w *Widget) AddChild(child *Widget) {
	w.AddChildAt(child, len(w.children))
}

// AddChildAt inserts child at the given z-order index.
// Same reparenting and cycle-check behavior as AddChild.
func (w *Widget) AddChildAt(child *Widget, index int) {
	if child == nil {
		panic("arbor: cannot add nil child")
	}
	if globalDebug {
		debugCheckDestroyed(w, "AddChild (parent)")
		debugCheckDestroyed(child, "AddChild (child)")
	}
	if isAncestor(child, w) {
		panic("arbor: adding child would create a cycle")
	}
	if index < 0 || index > len(w.children) {
		panic("arbor: child index out of range")
	}

	ref := w.Ref()
	if child.parent != nil {
		child.parent.RemoveChild(child)
		if !ref.Valid() || child.destroyed {
			return
		}
	}
	index = min(index, len(w.children))

	child.parent = w
	w.children = append(w.children, nil)
	copy(w.children[index+1:], w.children[index:])
	w.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}

	cref := child.Ref()
	child.notifyStructureChanged()
	if !ref.Valid() {
		return
	}
	w.notifyChildrenChanged()
	if cref.Valid() && child.parent == w {
		child.Repaint()
	}
}

// RemoveChild detaches child from w without destroying it.
// Panics if child's parent is not w.
func (w *Widget) RemoveChild(child *Widget) {
	if globalDebug {
		debugCheckDestroyed(w, "RemoveChild (parent)")
		debugCheckDestroyed(child, "RemoveChild (child)")
	}
	if child == nil || child.parent != w {
		panic("arbor: child's parent is not this widget")
	}
	vacated := w.detach(child)

	ref := w.Ref()
	child.notifyStructureChanged()
	if !ref.Valid() {
		return
	}
	w.notifyChildrenChanged()
	if ref.Valid() {
		w.RepaintRect(vacated)
	}
}

// RemoveFromParent detaches w from its parent.
// No-op if w has no parent.
func (w *Widget) RemoveFromParent() {
	if w.parent == nil {
		return
	}
	w.parent.RemoveChild(w)
}

// SetChildIndex moves child to a new z-order index among its siblings.
func (w *Widget) SetChildIndex(child *Widget, index int) {
	if child == nil || child.parent != w {
		panic("arbor: child's parent is not this widget")
	}
	nc := len(w.children)
	if index < 0 || index >= nc {
		panic("arbor: child index out of range")
	}
	oldIndex := w.IndexOf(child)
	if oldIndex == index {
		return
	}
	if oldIndex < index {
		copy(w.children[oldIndex:], w.children[oldIndex+1:index+1])
	} else {
		copy(w.children[index+1:], w.children[index:oldIndex])
	}
	w.children[index] = child

	ref := child.Ref()
	w.notifyChildrenChanged()
	if ref.Valid() {
		child.Repaint()
	}
}

// ToFront moves w to the top of its siblings.
func (w *Widget) ToFront() {
	if w.parent == nil {
		return
	}
	w.parent.SetChildIndex(w, len(w.parent.children)-1)
}

// --- Geometry and flags ---

// SetBounds moves and/or resizes the widget. Hooks fire synchronously and
// both the old and new areas are repainted.
func (w *Widget) SetBounds(b Rect[int]) {
	if globalDebug {
		debugCheckDestroyed(w, "SetBounds")
	}
	old := w.bounds
	if old == b {
		return
	}
	moved := old.Pos() != b.Pos()
	resized := old.Size() != b.Size()

	if w.visible {
		switch {
		case w.Elevated():
			w.bounds = b
			w.Repaint()
		case w.parent != nil:
			w.parent.RepaintRect(old)
			w.bounds = b
			w.parent.RepaintRect(b)
		}
	}
	w.bounds = b
	w.notifyMovedResized(moved, resized)
}

// SetPos moves the widget without resizing it.
func (w *Widget) SetPos(x, y int) {
	w.SetBounds(w.bounds.At(x, y))
}

// SetSize resizes the widget keeping its position.
func (w *Widget) SetSize(width, height int) {
	w.SetBounds(Rect[int]{w.bounds.X, w.bounds.Y, width, height})
}

// SetVisible shows or hides the widget.
func (w *Widget) SetVisible(v bool) {
	if w.visible == v {
		return
	}
	if !v {
		w.Repaint()
		w.visible = false
		return
	}
	w.visible = true
	w.Repaint()
}

// SetOpaque declares whether the widget paints every pixel of its bounds.
func (w *Widget) SetOpaque(v bool) {
	if w.opaque == v {
		return
	}
	w.opaque = v
	w.Repaint()
}

// SetStyle injects a style for this widget and its descendants.
func (w *Widget) SetStyle(s *Style) {
	w.style = s
	w.Repaint()
}

// Style returns the nearest style set on w or an ancestor. The result may
// be nil; Style methods fall back to built-in colors on a nil receiver.
func (w *Widget) Style() *Style {
	for p := w; p != nil; p = p.parent {
		if p.style != nil {
			return p.style
		}
	}
	return nil
}

// SetEventSink attaches a sink receiving LayoutEvents for w and its
// descendants. Pass nil to detach.
func (w *Widget) SetEventSink(sink EventSink) {
	w.sink = sink
}

// --- Elevation ---

// Elevate gives the widget its own surface. The widget's space is then
// anchored to the surface rather than offset by its position in the parent.
// A previously owned surface is released.
func (w *Widget) Elevate(s Surface) {
	if s == nil {
		panic("arbor: cannot elevate with a nil surface")
	}
	if globalDebug {
		debugCheckDestroyed(w, "Elevate")
	}
	if w.surface == s {
		return
	}
	if w.visible && w.parent != nil && !w.Elevated() {
		w.parent.RepaintRect(w.bounds)
	}
	if w.surface != nil {
		releaseSurface(w.surface)
	}
	w.surface = s
	w.origin = OriginSurface
	w.Repaint()
}

// Lower releases the owned surface and returns the widget to its parent's
// coordinate space.
func (w *Widget) Lower() {
	if !w.Elevated() {
		return
	}
	s := w.surface
	w.surface = nil
	w.origin = OriginParent
	releaseSurface(s)
	w.Repaint()
}

// --- Destruction ---

// Destroy detaches w from its parent, destroys every descendant and releases
// any owned surface. Refs to w and its descendants become invalid.
// Destroy is safe to call from inside a hook.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	parent := w.parent
	var vacated Rect[int]
	if parent != nil {
		vacated = parent.detach(w)
	}
	w.destroy()

	if parent == nil || parent.destroyed {
		return
	}
	ref := parent.Ref()
	parent.notifyChildrenChanged()
	if ref.Valid() {
		parent.RepaintRect(vacated)
	}
}

func (w *Widget) destroy() {
	w.destroyed = true
	children := w.children
	w.children = nil
	for _, c := range children {
		c.parent = nil
		c.destroy()
	}
	if w.surface != nil {
		s := w.surface
		w.surface = nil
		releaseSurface(s)
	}
	w.origin = OriginParent
	w.parent = nil
	w.delegate = nil
	w.style = nil
	w.sink = nil
}

// --- Helpers ---

// detach removes child from w.children and clears its parent link. It
// returns the area the child occupied, or the zero rectangle when nothing
// visible was vacated.
func (w *Widget) detach(child *Widget) Rect[int] {
	for i, c := range w.children {
		if c == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			break
		}
	}
	child.parent = nil
	if !child.visible || child.Elevated() {
		return Rect[int]{}
	}
	return child.bounds
}

// isAncestor reports whether candidate is w or an ancestor of w.
func isAncestor(candidate, w *Widget) bool {
	for p := w; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
