package arbor

import "fmt"

// Number is the set of numeric types that points and rectangles can be
// expressed in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a 2D coordinate. The origin is the top-left of the owning space,
// with Y increasing downward.
type Point[T Number] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns p translated by o.
func (p Point[T]) Add(o Point[T]) Point[T] {
	return Point[T]{p.X + o.X, p.Y + o.Y}
}

// Sub returns p translated by -o.
func (p Point[T]) Sub(o Point[T]) Point[T] {
	return Point[T]{p.X - o.X, p.Y - o.Y}
}

// Mul scales both components by f.
func (p Point[T]) Mul(f T) Point[T] {
	return Point[T]{p.X * f, p.Y * f}
}

// Div divides both components by f.
func (p Point[T]) Div(f T) Point[T] {
	return Point[T]{p.X / f, p.Y / f}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("%v %v", p.X, p.Y)
}

// PointAs converts a point to another numeric type. Float to integer
// conversion truncates toward zero.
func PointAs[U, T Number](p Point[T]) Point[U] {
	return Point[U]{U(p.X), U(p.Y)}
}

// Rect is an axis-aligned rectangle: position plus size.
type Rect[T Number] struct {
	X, Y, Width, Height T
}

// R is shorthand for Rect[T]{x, y, w, h}.
func R[T Number](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, Width: w, Height: h}
}

// RectAs converts a rectangle to another numeric type.
func RectAs[U, T Number](r Rect[T]) Rect[U] {
	return Rect[U]{U(r.X), U(r.Y), U(r.Width), U(r.Height)}
}

// Pos returns the top-left corner.
func (r Rect[T]) Pos() Point[T] {
	return Point[T]{r.X, r.Y}
}

// Size returns the width and height as a point.
func (r Rect[T]) Size() Point[T] {
	return Point[T]{r.Width, r.Height}
}

// Right returns X + Width.
func (r Rect[T]) Right() T {
	return r.X + r.Width
}

// Bottom returns Y + Height.
func (r Rect[T]) Bottom() T {
	return r.Y + r.Height
}

// Empty reports whether the rectangle has no positive area.
func (r Rect[T]) Empty() bool {
	var zero T
	return r.Width <= zero || r.Height <= zero
}

// At returns a copy of r with its top-left corner moved to (x, y).
func (r Rect[T]) At(x, y T) Rect[T] {
	return Rect[T]{x, y, r.Width, r.Height}
}

// Contains reports whether p lies inside r. The test is half-open: the left
// and top edges are inside, the right and bottom edges are not.
func (r Rect[T]) Contains(p Point[T]) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.Width && p.Y < r.Y+r.Height
}

// ContainsRect reports whether o lies entirely within r. Shared edges count
// as inside.
func (r Rect[T]) ContainsRect(o Rect[T]) bool {
	return r.X <= o.X && r.Y <= o.Y &&
		r.X+r.Width >= o.X+o.Width &&
		r.Y+r.Height >= o.Y+o.Height
}

// Intersects reports whether r and o overlap by a positive amount on both
// axes. Rectangles that only share an edge, or either of which is empty, do
// not intersect.
func (r Rect[T]) Intersects(o Rect[T]) bool {
	var zero T
	return r.X+r.Width > o.X && r.Y+r.Height > o.Y &&
		r.X < o.X+o.Width && r.Y < o.Y+o.Height &&
		r.Width > zero && r.Height > zero &&
		o.Width > zero && o.Height > zero
}

// Intersection returns the overlapping region of r and o, or the zero
// rectangle when they do not intersect.
func (r Rect[T]) Intersection(o Rect[T]) Rect[T] {
	if !r.Intersects(o) {
		return Rect[T]{}
	}
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	return Rect[T]{
		X:      x,
		Y:      y,
		Width:  min(r.X+r.Width, o.X+o.Width) - x,
		Height: min(r.Y+r.Height, o.Y+o.Height) - y,
	}
}

// Union returns the smallest rectangle containing both r and o. Empty
// rectangles are ignored.
func (r Rect[T]) Union(o Rect[T]) Rect[T] {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect[T]{
		X:      x,
		Y:      y,
		Width:  max(r.X+r.Width, o.X+o.Width) - x,
		Height: max(r.Y+r.Height, o.Y+o.Height) - y,
	}
}

// Add returns r translated by d.
func (r Rect[T]) Add(d Point[T]) Rect[T] {
	return Rect[T]{r.X + d.X, r.Y + d.Y, r.Width, r.Height}
}

// Sub returns r translated by -d.
func (r Rect[T]) Sub(d Point[T]) Rect[T] {
	return Rect[T]{r.X - d.X, r.Y - d.Y, r.Width, r.Height}
}

// Mul scales every component by f.
func (r Rect[T]) Mul(f T) Rect[T] {
	return Rect[T]{r.X * f, r.Y * f, r.Width * f, r.Height * f}
}

// Div divides every component by f.
func (r Rect[T]) Div(f T) Rect[T] {
	return Rect[T]{r.X / f, r.Y / f, r.Width / f, r.Height / f}
}

// Reduce shrinks the rectangle by dx on the left and right and by dy on the
// top and bottom, keeping the same center. Negative amounts grow it.
func (r Rect[T]) Reduce(dx, dy T) Rect[T] {
	return Rect[T]{r.X + dx, r.Y + dy, r.Width - dx*2, r.Height - dy*2}
}

// Bigger returns r grown by amount on every side.
func (r Rect[T]) Bigger(amount T) Rect[T] {
	return r.Reduce(-amount, -amount)
}

// Smaller returns r shrunk by amount on every side.
func (r Rect[T]) Smaller(amount T) Rect[T] {
	return r.Reduce(amount, amount)
}

// SmallerXY returns r shrunk by ax horizontally and ay vertically on each side.
func (r Rect[T]) SmallerXY(ax, ay T) Rect[T] {
	return r.Reduce(ax, ay)
}

// SliceTop removes a strip of the given height from the top of r and
// returns it. r keeps the remainder below the strip.
func (r *Rect[T]) SliceTop(amount T) Rect[T] {
	s := *r
	s.Height = amount
	r.Y += amount
	r.Height -= amount
	return s
}

// SliceLeft removes a strip of the given width from the left of r and
// returns it. r keeps the remainder to the right.
func (r *Rect[T]) SliceLeft(amount T) Rect[T] {
	s := *r
	s.Width = amount
	r.X += amount
	r.Width -= amount
	return s
}

// SliceBottom removes a strip of the given height from the bottom of r and
// returns it. r keeps the remainder above the strip.
func (r *Rect[T]) SliceBottom(amount T) Rect[T] {
	s := *r
	s.Y = r.Y + r.Height - amount
	s.Height = amount
	r.Height -= amount
	return s
}

// SliceRight removes a strip of the given width from the right of r and
// returns it. r keeps the remainder to the left.
func (r *Rect[T]) SliceRight(amount T) Rect[T] {
	s := *r
	s.X = r.X + r.Width - amount
	s.Width = amount
	r.Width -= amount
	return s
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v %v %v %v", r.X, r.Y, r.Width, r.Height)
}
