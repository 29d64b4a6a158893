package arbor

// Region is a set of non-overlapping rectangles. The clip-aware render
// pass uses it to find what part of a widget its opaque children leave
// uncovered.
type Region struct {
	rects []Rect[int]
}

// NewRegion returns a region covering r.
func NewRegion(r Rect[int]) *Region {
	reg := &Region{}
	if !r.Empty() {
		reg.rects = append(reg.rects, r)
	}
	return reg
}

// Subtract removes cut from the region. Each affected rectangle is split
// into at most four strips around the cut.
func (reg *Region) Subtract(cut Rect[int]) {
	if cut.Empty() || len(reg.rects) == 0 {
		return
	}
	out := reg.rects[:0:0]
	for _, r := range reg.rects {
		if !r.Intersects(cut) {
			out = append(out, r)
			continue
		}
		rest := r
		if top := cut.Y - rest.Y; top > 0 {
			out = append(out, rest.SliceTop(top))
		}
		if bottom := rest.Bottom() - cut.Bottom(); bottom > 0 {
			out = append(out, rest.SliceBottom(bottom))
		}
		if left := cut.X - rest.X; left > 0 {
			out = append(out, rest.SliceLeft(left))
		}
		if right := rest.Right() - cut.Right(); right > 0 {
			out = append(out, rest.SliceRight(right))
		}
	}
	reg.rects = out
}

// Empty reports whether nothing is left.
func (reg *Region) Empty() bool {
	return len(reg.rects) == 0
}

// Bounds returns the smallest rectangle enclosing the region.
func (reg *Region) Bounds() Rect[int] {
	var u Rect[int]
	for _, r := range reg.rects {
		u = u.Union(r)
	}
	return u
}

// Rects returns the region's rectangles. The returned slice MUST NOT be mutated.
func (reg *Region) Rects() []Rect[int] {
	return reg.rects
}

// Area returns the total area covered.
func (reg *Region) Area() int {
	a := 0
	for _, r := range reg.rects {
		a += r.Width * r.Height
	}
	return a
}
