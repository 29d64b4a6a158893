package arbor

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 bounds components of a Widget at once.
// Create one via TweenPosition, TweenSize or TweenBounds and call
// Update(dt) each frame. Values are applied through SetBounds, so move and
// resize hooks fire and damage is reported as usual. If the widget is
// destroyed, even from one of those hooks, the group stops immediately.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]int // fieldX .. fieldHeight
	count  int
	target Ref
	Done   bool
}

const (
	fieldX = iota
	fieldY
	fieldWidth
	fieldHeight
)

// Update advances all tweens by dt seconds and applies the rounded values
// to the widget's bounds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	w := g.target.Widget()
	if w == nil {
		g.Done = true
		return
	}

	b := w.Bounds()
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		v := int(math.Round(float64(val)))
		switch g.fields[i] {
		case fieldX:
			b.X = v
		case fieldY:
			b.Y = v
		case fieldWidth:
			b.Width = v
		case fieldHeight:
			b.Height = v
		}
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	w.SetBounds(b)
	if !g.target.Valid() {
		g.Done = true
	}
}

func newTweenGroup(w *Widget) *TweenGroup {
	return &TweenGroup{target: w.Ref()}
}

func (g *TweenGroup) add(field int, from, to int, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(from), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenPosition creates a TweenGroup that moves w to (toX, toY) over
// duration seconds using the easing function.
func TweenPosition(w *Widget, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(w)
	g.add(fieldX, w.bounds.X, toX, duration, fn)
	g.add(fieldY, w.bounds.Y, toY, duration, fn)
	return g
}

// TweenSize creates a TweenGroup that resizes w to toW x toH.
func TweenSize(w *Widget, toW, toH int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(w)
	g.add(fieldWidth, w.bounds.Width, toW, duration, fn)
	g.add(fieldHeight, w.bounds.Height, toH, duration, fn)
	return g
}

// TweenBounds creates a TweenGroup that animates every bounds component
// toward to.
func TweenBounds(w *Widget, to Rect[int], duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(w)
	g.add(fieldX, w.bounds.X, to.X, duration, fn)
	g.add(fieldY, w.bounds.Y, to.Y, duration, fn)
	g.add(fieldWidth, w.bounds.Width, to.Width, duration, fn)
	g.add(fieldHeight, w.bounds.Height, to.Height, duration, fn)
	return g
}
