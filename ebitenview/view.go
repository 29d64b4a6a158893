package ebitenview

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/arbor"
)

// ErrClosed is returned from Update once the view has been closed, which
// ends the Ebitengine loop.
var ErrClosed = errors.New("ebitenview: view closed")

// View is an arbor.Surface backed by an Ebitengine back buffer. It also
// implements ebiten.Game so it can be passed to ebiten.RunGame directly.
type View struct {
	root    *arbor.Widget
	cfg     RunConfig
	back    *ebiten.Image
	canvas  *Canvas
	damage  arbor.Rect[int]
	width   int
	height  int
	fps     *FPSLabel
	pointer arbor.PointerRouter
	closed  bool
}

// NewView creates a view for root. It does not elevate root; Run does, or
// the caller may call root.Elevate(view) itself.
func NewView(root *arbor.Widget, cfg RunConfig) *View {
	cfg = cfg.withDefaults()
	v := &View{
		root:   root,
		cfg:    cfg,
		width:  cfg.Width,
		height: cfg.Height,
		damage: arbor.R(0, 0, cfg.Width, cfg.Height),
	}
	if cfg.ShowFPS {
		v.fps = NewFPSLabel()
		v.fps.SetBounds(arbor.R(4, 4, 100, 32))
		root.AddChild(v.fps.Widget)
	}
	return v
}

// Repaint merges r into the damage repainted on the next Draw.
func (v *View) Repaint(r arbor.Rect[int]) {
	if v.closed {
		return
	}
	v.damage = v.damage.Union(r.Intersection(arbor.R(0, 0, v.width, v.height)))
}

// Damage returns the pending damage.
func (v *View) Damage() arbor.Rect[int] {
	return v.damage
}

// Close stops the view. The next Update returns ErrClosed.
func (v *View) Close() error {
	v.closed = true
	return nil
}

// Update implements ebiten.Game. The left mouse button is routed to the
// tree's PointerHandlers.
func (v *View) Update() error {
	if v.closed {
		return ErrClosed
	}
	dt := 1.0 / float64(ebiten.TPS())
	mx, my := ebiten.CursorPosition()
	v.pointer.Update(v.root, arbor.Pt(float64(mx), float64(my)), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	if v.fps != nil {
		v.fps.Tick(dt)
	}
	if v.cfg.UpdateFunc != nil {
		return v.cfg.UpdateFunc(dt)
	}
	return nil
}

// Draw implements ebiten.Game. Only the damaged area of the back buffer is
// repainted; the whole buffer is then copied to screen.
func (v *View) Draw(screen *ebiten.Image) {
	if v.back == nil {
		v.back = ebiten.NewImage(v.width, v.height)
		v.canvas = NewCanvas(v.back)
		v.damage = arbor.R(0, 0, v.width, v.height)
	}
	if !v.damage.Empty() && !v.closed {
		damage := v.damage
		v.damage = arbor.Rect[int]{}

		v.canvas.SetTarget(v.back)
		v.canvas.Clip(damage)
		v.canvas.SetColor(v.cfg.Background)
		v.canvas.FillRect(arbor.RectAs[float64](damage))
		v.root.Render(v.canvas)
	}
	screen.DrawImage(v.back, nil)
}

// Layout implements ebiten.Game. With Resizable set, the root widget
// follows the window size.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !v.cfg.Resizable {
		return v.width, v.height
	}
	if outsideWidth != v.width || outsideHeight != v.height {
		v.resize(outsideWidth, outsideHeight)
	}
	return v.width, v.height
}

func (v *View) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	v.width, v.height = w, h
	if v.back != nil {
		v.back.Deallocate()
		v.back = nil
	}
	v.root.SetSize(w, h)
	v.damage = arbor.R(0, 0, w, h)
}

var (
	_ arbor.Surface = (*View)(nil)
	_ ebiten.Game   = (*View)(nil)
)
