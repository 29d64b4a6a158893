package arbor

// toParentSpace maps a point in w's local space into its parent's space.
// An elevated widget roots its own space, so no offset is applied.
func toParentSpace(w *Widget, p Point[float64]) Point[float64] {
	if w.Elevated() {
		return p
	}
	return p.Add(PointAs[float64](w.bounds.Pos()))
}

// fromParentSpace is the inverse of toParentSpace.
func fromParentSpace(w *Widget, p Point[float64]) Point[float64] {
	if w.Elevated() {
		return p
	}
	return p.Sub(PointAs[float64](w.bounds.Pos()))
}

// fromAncestorSpace maps p from ancestor's space down into target's space.
// ancestor must be a strict ancestor of target, or nil to start above the
// root.
func fromAncestorSpace(ancestor, target *Widget, p Point[float64]) Point[float64] {
	var chain []*Widget
	for w := target; w != nil && w != ancestor; w = w.parent {
		chain = append(chain, w)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		p = fromParentSpace(chain[i], p)
	}
	return p
}

// ToLocal converts p from source's local space into target's local space.
// The two widgets are joined through their nearest common ancestor, or
// through the space above the roots when they share none. A nil source
// means p is given above target's root; a nil target returns that space.
func ToLocal(target, source *Widget, p Point[float64]) Point[float64] {
	if target == source {
		return p
	}

	ancestors := make(map[*Widget]struct{})
	for w := target; w != nil; w = w.parent {
		ancestors[w] = struct{}{}
	}

	for src := source; src != nil; src = src.parent {
		if src == target {
			return p
		}
		if _, ok := ancestors[src]; ok {
			return fromAncestorSpace(src, target, p)
		}
		p = toParentSpace(src, p)
	}
	if target == nil {
		return p
	}
	return fromAncestorSpace(nil, target, p)
}

// ToLocal converts p from source's local space into w's local space.
func (w *Widget) ToLocal(source *Widget, p Point[float64]) Point[float64] {
	return ToLocal(w, source, p)
}

// FromLocal converts p from w's local space into target's local space.
func (w *Widget) FromLocal(target *Widget, p Point[float64]) Point[float64] {
	return ToLocal(target, w, p)
}

// WidgetAt returns the topmost visible descendant of w under p (w's local
// space), or w itself when no child claims the point. It returns nil when
// p lies outside w or w declines it through Obstructor. Points are
// truncated toward zero before testing, so (-0.5, y) falls in column 0.
func (w *Widget) WidgetAt(p Point[float64]) *Widget {
	if !w.hit(p) {
		return nil
	}
	for i := len(w.children) - 1; i >= 0; i-- {
		c := w.children[i]
		if !c.visible || c.Elevated() {
			continue
		}
		if found := c.WidgetAt(fromParentSpace(c, p)); found != nil {
			return found
		}
	}
	return w
}

func (w *Widget) hit(p Point[float64]) bool {
	ip := PointAs[int](p)
	return w.bounds.At(0, 0).Contains(ip) && w.obstructed(ip.X, ip.Y)
}
