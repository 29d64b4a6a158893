package arbor

import "testing"

func TestRectContainsPointHalfOpen(t *testing.T) {
	r := R(10, 20, 30, 40)
	tests := []struct {
		p    Point[int]
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(39, 59), true},
		{Pt(40, 20), false},
		{Pt(10, 60), false},
		{Pt(9, 20), false},
		{Pt(25, 19), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tt.p, got, tt.want)
		}
	}
}

func TestRectContainsRectInclusive(t *testing.T) {
	r := R(0, 0, 100, 100)
	if !r.ContainsRect(r) {
		t.Error("rect should contain itself")
	}
	if !r.ContainsRect(R(0, 0, 100, 50)) {
		t.Error("shared edges should count as inside")
	}
	if r.ContainsRect(R(50, 50, 51, 10)) {
		t.Error("rect extending past the right edge should not be contained")
	}
}

func TestRectIntersects(t *testing.T) {
	a := R(0, 0, 10, 10)
	tests := []struct {
		name string
		b    Rect[int]
		want bool
	}{
		{"overlap", R(5, 5, 10, 10), true},
		{"inside", R(2, 2, 2, 2), true},
		{"touch right edge", R(10, 0, 10, 10), false},
		{"touch bottom edge", R(0, 10, 10, 10), false},
		{"disjoint", R(20, 20, 5, 5), false},
		{"zero width", R(5, 5, 0, 10), false},
		{"negative height", R(5, 5, 10, -3), false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Intersects(a); got != tt.want {
			t.Errorf("%s: reversed Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
	if R(0, 0, 0, 0).Intersects(R(0, 0, 0, 0)) {
		t.Error("empty rectangles must not intersect")
	}
}

func TestRectIntersectionCanonicalEmpty(t *testing.T) {
	a := R(0, 0, 10, 10)
	for _, b := range []Rect[int]{R(10, 0, 5, 5), R(-5, -5, 5, 5), R(3, 3, 0, 4), R(30, 30, 1, 1)} {
		got := a.Intersection(b)
		if a.Intersects(b) {
			t.Fatalf("%v and %v unexpectedly intersect", a, b)
		}
		if got != (Rect[int]{}) {
			t.Errorf("%v.Intersection(%v) = %v, want zero rect", a, b, got)
		}
	}
	if got := a.Intersection(R(5, -5, 10, 10)); got != R(5, 0, 5, 5) {
		t.Errorf("Intersection = %v, want %v", got, R(5, 0, 5, 5))
	}
}

func TestRectIntersectionFloat(t *testing.T) {
	a := R(0.5, 0.5, 1.0, 1.0)
	b := R(1.0, 1.0, 2.0, 2.0)
	if got, want := a.Intersection(b), R(1.0, 1.0, 0.5, 0.5); got != want {
		t.Errorf("Intersection = %v, want %v", got, want)
	}
}

func TestRectSliceTop(t *testing.T) {
	r := R(5, 10, 100, 50)
	orig := r
	top := r.SliceTop(20)
	if top != R(5, 10, 100, 20) {
		t.Errorf("strip = %v, want %v", top, R(5, 10, 100, 20))
	}
	if r != R(5, 30, 100, 30) {
		t.Errorf("remainder = %v, want %v", r, R(5, 30, 100, 30))
	}
	if top.Union(r) != orig {
		t.Errorf("union = %v, want %v", top.Union(r), orig)
	}
}

func TestRectSliceLeft(t *testing.T) {
	r := R(0, 0, 100, 50)
	left := r.SliceLeft(30)
	if left != R(0, 0, 30, 50) {
		t.Errorf("strip = %v, want {0 0 30 50}", left)
	}
	if r != R(30, 0, 70, 50) {
		t.Errorf("remainder = %v, want {30 0 70 50}", r)
	}
}

func TestRectSliceBottomRight(t *testing.T) {
	r := R(0, 0, 100, 50)
	bottom := r.SliceBottom(10)
	if bottom != R(0, 40, 100, 10) || r != R(0, 0, 100, 40) {
		t.Errorf("SliceBottom: strip %v remainder %v", bottom, r)
	}
	right := r.SliceRight(25)
	if right != R(75, 0, 25, 40) || r != R(0, 0, 75, 40) {
		t.Errorf("SliceRight: strip %v remainder %v", right, r)
	}
}

func TestRectReduceKeepsCenter(t *testing.T) {
	r := R(10, 10, 100, 60)
	got := r.Reduce(5, 10)
	if got != R(15, 20, 90, 40) {
		t.Errorf("Reduce = %v, want {15 20 90 40}", got)
	}
	if r.Bigger(2) != R(8, 8, 104, 64) {
		t.Errorf("Bigger = %v", r.Bigger(2))
	}
	if r.Smaller(2) != R(12, 12, 96, 56) {
		t.Errorf("Smaller = %v", r.Smaller(2))
	}
	if r.SmallerXY(1, 3) != R(11, 13, 98, 54) {
		t.Errorf("SmallerXY = %v", r.SmallerXY(1, 3))
	}
}

func TestRectArithmetic(t *testing.T) {
	r := R(1.0, 2.0, 3.0, 4.0)
	if got := r.Mul(0.5); got != R(0.5, 1.0, 1.5, 2.0) {
		t.Errorf("Mul = %v", got)
	}
	if got := r.Add(Pt(1.0, 1.0)); got != R(2.0, 3.0, 3.0, 4.0) {
		t.Errorf("Add = %v", got)
	}
	if got := r.Div(2); got != R(0.5, 1.0, 1.5, 2.0) {
		t.Errorf("Div = %v", got)
	}
}

func TestRectEmpty(t *testing.T) {
	if !R(0, 0, 0, 10).Empty() || !R(0, 0, 10, -1).Empty() {
		t.Error("non-positive size should be empty")
	}
	if R(0, 0, 1, 1).Empty() {
		t.Error("1x1 should not be empty")
	}
}

func TestRectUnionIgnoresEmpty(t *testing.T) {
	a := R(0, 0, 10, 10)
	if got := a.Union(Rect[int]{}); got != a {
		t.Errorf("Union with empty = %v, want %v", got, a)
	}
	if got := (Rect[int]{}).Union(a); got != a {
		t.Errorf("empty.Union = %v, want %v", got, a)
	}
	if got := a.Union(R(20, 5, 5, 10)); got != R(0, 0, 25, 15) {
		t.Errorf("Union = %v, want {0 0 25 15}", got)
	}
}

func TestPointAsTruncates(t *testing.T) {
	if got := PointAs[int](Pt(1.9, -1.9)); got != Pt(1, -1) {
		t.Errorf("PointAs = %v, want {1 -1}", got)
	}
}
