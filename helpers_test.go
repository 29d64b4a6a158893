package arbor

import "fmt"

// hookLog collects hook calls across a tree as "name:hook" strings.
type hookLog struct {
	calls []string
}

func (l *hookLog) add(name, hook string) {
	l.calls = append(l.calls, name+":"+hook)
}

func (l *hookLog) count(entry string) int {
	n := 0
	for _, c := range l.calls {
		if c == entry {
			n++
		}
	}
	return n
}

// probe is a delegate implementing every hook. Optional callbacks run
// after the call is logged.
type probe struct {
	w   *Widget
	log *hookLog

	fill Color

	onMoved     func()
	onResized   func()
	onStructure func()
	onChildren  func()
	onParent    func()
	onChild     func(*Widget)
}

func newProbe(name string, log *hookLog) *probe {
	p := &probe{w: NewWidget(name), log: log}
	p.w.SetDelegate(p)
	return p
}

func (p *probe) Paint(g Graphics) {
	p.log.add(p.w.Name, "paint")
	g.SetColor(p.fill)
	g.FillRect(RectAs[float64](p.w.Bounds().At(0, 0)))
}

func (p *probe) Moved() {
	p.log.add(p.w.Name, "moved")
	if p.onMoved != nil {
		p.onMoved()
	}
}

func (p *probe) Resized() {
	p.log.add(p.w.Name, "resized")
	if p.onResized != nil {
		p.onResized()
	}
}

func (p *probe) ParentStructureChanged() {
	p.log.add(p.w.Name, "structure")
	if p.onStructure != nil {
		p.onStructure()
	}
}

func (p *probe) ChildrenChanged() {
	p.log.add(p.w.Name, "children")
	if p.onChildren != nil {
		p.onChildren()
	}
}

func (p *probe) ParentSizeChanged() {
	p.log.add(p.w.Name, "parent-size")
	if p.onParent != nil {
		p.onParent()
	}
}

func (p *probe) ChildSizeChanged(child *Widget) {
	p.log.add(p.w.Name, fmt.Sprintf("child-size(%s)", child.Name))
	if p.onChild != nil {
		p.onChild(child)
	}
}

// newRoot returns an elevated root of the given size backed by a DamageList.
func newRoot(w, h int) (*Widget, *DamageList) {
	root := NewWidget("root")
	root.SetBounds(R(0, 0, w, h))
	d := &DamageList{}
	root.Elevate(d)
	d.Take()
	return root, d
}

// child creates a widget with bounds b and adds it to parent.
func child(parent *Widget, name string, b Rect[int]) *Widget {
	w := NewWidget(name)
	w.SetBounds(b)
	parent.AddChild(w)
	return w
}

// eventLog is an EventSink recording event types.
type eventLog struct {
	events []LayoutEvent
}

func (e *eventLog) EmitEvent(ev LayoutEvent) {
	e.events = append(e.events, ev)
}
