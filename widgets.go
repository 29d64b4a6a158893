package arbor

import "math"

// Box is a widget that fills its bounds with a single color. A Box with a
// fully opaque fill is marked opaque so it occludes what lies beneath it.
type Box struct {
	*Widget
	fill Color
}

// NewBox creates a Box with the given fill color.
func NewBox(name string, fill Color) *Box {
	b := &Box{Widget: NewWidget(name)}
	b.SetDelegate(b)
	b.SetFill(fill)
	return b
}

// Fill returns the fill color.
func (b *Box) Fill() Color { return b.fill }

// SetFill changes the fill color.
func (b *Box) SetFill(c Color) {
	b.fill = c
	b.SetOpaque(c.A >= 1)
	b.Repaint()
}

func (b *Box) Paint(g Graphics) {
	g.SetColor(b.fill)
	g.FillRect(RectAs[float64](b.Bounds().At(0, 0)))
}

// Label draws a line of text.
type Label struct {
	*Widget
	text     string
	align    Align
	color    Color
	hasColor bool
}

// NewLabel creates a label drawn with the style's text color.
func NewLabel(name, text string) *Label {
	l := &Label{Widget: NewWidget(name), text: text, align: AlignLeftMiddle}
	l.SetDelegate(l)
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText changes the label text.
func (l *Label) SetText(s string) {
	if l.text == s {
		return
	}
	l.text = s
	l.Repaint()
}

// SetAlign changes the text alignment.
func (l *Label) SetAlign(a Align) {
	l.align = a
	l.Repaint()
}

// SetColor overrides the style's text color.
func (l *Label) SetColor(c Color) {
	l.color = c
	l.hasColor = true
	l.Repaint()
}

func (l *Label) Paint(g Graphics) {
	c := l.color
	if !l.hasColor {
		c = l.Style().FindColor(ColorText)
	}
	g.SetColor(c)
	g.DrawText(l.text, RectAs[float64](l.Bounds().At(0, 0)), l.align)
}

// Button is a text button. It toggles when a press is released inside it.
type Button struct {
	*Widget
	text      string
	toggled   bool
	highlight bool
	down      bool

	// OnToggle, if set, is called after Toggle with the new state.
	OnToggle func(on bool)
}

// NewButton creates a button with the given caption.
func NewButton(name, text string) *Button {
	b := &Button{Widget: NewWidget(name), text: text}
	b.SetDelegate(b)
	b.SetOpaque(true)
	return b
}

// Text returns the caption.
func (b *Button) Text() string { return b.text }

// Toggled reports the toggle state.
func (b *Button) Toggled() bool { return b.toggled }

// Toggle flips the toggle state.
func (b *Button) Toggle() {
	b.toggled = !b.toggled
	b.Repaint()
	if b.OnToggle != nil {
		b.OnToggle(b.toggled)
	}
}

// SetHighlight marks the button hovered.
func (b *Button) SetHighlight(v bool) {
	if b.highlight == v {
		return
	}
	b.highlight = v
	b.Repaint()
}

// SetDown marks the button pressed.
func (b *Button) SetDown(v bool) {
	if b.down == v {
		return
	}
	b.down = v
	b.Repaint()
}

func (b *Button) PointerDown(Point[int]) { b.SetDown(true) }

func (b *Button) PointerMove(p Point[int]) {
	b.SetHighlight(b.Bounds().At(0, 0).Contains(p))
}

func (b *Button) PointerUp(_ Point[int], inside bool) {
	b.SetDown(false)
	b.SetHighlight(false)
	if inside {
		b.Toggle()
	}
}

func (b *Button) Paint(g Graphics) {
	s := b.Style()
	s.DrawButtonShape(g, b.Bounds(), b.toggled, b.highlight, b.down)
	s.DrawButtonText(g, b.Bounds(), b.text, b.toggled, b.highlight, b.down)
}

// Slider shows a value in [0, 1] as a thumb along a track.
type Slider struct {
	*Widget
	value    float64
	vertical bool

	// OnChange, if set, is called after the value changed.
	OnChange func(v float64)
}

// NewSlider creates a horizontal slider at value 0.
func NewSlider(name string) *Slider {
	s := &Slider{Widget: NewWidget(name)}
	s.SetDelegate(s)
	s.SetOpaque(true)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue sets the value, clamped to [0, 1].
func (s *Slider) SetValue(v float64) {
	v = math.Max(0, math.Min(1, v))
	if s.value == v {
		return
	}
	s.value = v
	s.Repaint()
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// Vertical reports whether the track runs top to bottom.
func (s *Slider) Vertical() bool { return s.vertical }

// SetVertical switches the track orientation.
func (s *Slider) SetVertical(v bool) {
	s.vertical = v
	s.Repaint()
}

// ThumbPos returns the thumb offset in pixels for the current value.
func (s *Slider) ThumbPos() float64 {
	b := s.Bounds()
	if s.vertical {
		return float64(b.Height) * (1 - s.value)
	}
	return float64(b.Width) * s.value
}

// ValueAt returns the value a pointer at p (local) selects.
func (s *Slider) ValueAt(p Point[int]) float64 {
	b := s.Bounds()
	if s.vertical {
		if b.Height == 0 {
			return 0
		}
		return 1 - float64(p.Y)/float64(b.Height)
	}
	if b.Width == 0 {
		return 0
	}
	return float64(p.X) / float64(b.Width)
}

func (s *Slider) PointerDown(p Point[int]) { s.SetValue(s.ValueAt(p)) }
func (s *Slider) PointerMove(p Point[int]) { s.SetValue(s.ValueAt(p)) }
func (s *Slider) PointerUp(p Point[int], _ bool) { s.SetValue(s.ValueAt(p)) }

func (s *Slider) Paint(g Graphics) {
	s.Style().DrawSlider(g, s.Bounds().At(0, 0), s.ThumbPos(), s.vertical)
}
