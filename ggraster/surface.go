package ggraster

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/arbor"
)

// Options configures a Surface.
type Options struct {
	// Background fills damaged areas before the tree is painted.
	// The zero value means opaque black.
	Background arbor.Color

	// FontSize is the text size in pixels. Default 14.
	FontSize float64

	// Font is TrueType or OpenType data. Defaults to Go Regular.
	Font []byte
}

// Surface is an arbor.Surface backed by an in-memory gg.Context.
// Repaint requests are merged into a single damage rectangle that the next
// Render call repaints.
type Surface struct {
	dc         *gg.Context
	canvas     *Canvas
	background arbor.Color
	damage     arbor.Rect[int]
	frames     int
	closed     bool
}

// NewSurface creates a width x height surface.
func NewSurface(width, height int, opts Options) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggraster: invalid surface size %dx%d", width, height)
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 14
	}
	if opts.Font == nil {
		opts.Font = goregular.TTF
	}
	if opts.Background == (arbor.Color{}) {
		opts.Background = arbor.ColorBlack
	}

	src, err := text.NewFontSource(opts.Font)
	if err != nil {
		return nil, fmt.Errorf("ggraster: load font: %w", err)
	}
	dc := gg.NewContext(width, height)
	return &Surface{
		dc:         dc,
		canvas:     NewCanvas(dc, src.Face(opts.FontSize)),
		background: opts.Background,
		damage:     arbor.R(0, 0, width, height),
	}, nil
}

// Repaint merges r into the pending damage.
func (s *Surface) Repaint(r arbor.Rect[int]) {
	if s.closed {
		return
	}
	s.damage = s.damage.Union(r.Intersection(s.Bounds()))
}

// Damage returns the area the next Render will repaint.
func (s *Surface) Damage() arbor.Rect[int] {
	return s.damage
}

// Bounds returns the surface rectangle at the origin.
func (s *Surface) Bounds() arbor.Rect[int] {
	return arbor.R(0, 0, s.dc.Width(), s.dc.Height())
}

// Frames returns how many Render calls actually painted.
func (s *Surface) Frames() int {
	return s.frames
}

// Render repaints the damaged area of root and clears the damage. root must
// be the widget this surface is elevated on. It reports whether anything
// was drawn.
func (s *Surface) Render(root *arbor.Widget) bool {
	if s.closed || s.damage.Empty() {
		return false
	}
	damage := s.damage
	s.damage = arbor.Rect[int]{}

	c := s.canvas
	c.Reset()
	c.Clip(damage)
	c.SetColor(s.background)
	c.FillRect(arbor.RectAs[float64](damage))
	root.Render(c)
	s.frames++

	arbor.Logger().Debug("ggraster: rendered", "damage", damage, "frame", s.frames)
	return true
}

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Close releases the context. Further repaints are ignored.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}

var _ arbor.Surface = (*Surface)(nil)
