package arbor

// graphicsState is one snapshot of a StateStack.
type graphicsState struct {
	origin Point[int] // device-space offset of the local origin
	clip   Rect[int]  // device space
	color  Color
}

// StateStack tracks the translation, clip and color that every Graphics
// implementation must keep, so backends only translate the result into
// their own draw calls.
type StateStack struct {
	cur   graphicsState
	saved []graphicsState
}

// NewStateStack returns a stack whose clip covers the device rectangle.
func NewStateStack(device Rect[int]) StateStack {
	return StateStack{cur: graphicsState{clip: device, color: ColorBlack}}
}

// Reset discards saved states and restarts from device with no translation.
func (s *StateStack) Reset(device Rect[int]) {
	s.saved = s.saved[:0]
	s.cur = graphicsState{clip: device, color: ColorBlack}
}

// Save pushes the current state.
func (s *StateStack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore pops the last saved state. It reports false if nothing was saved.
func (s *StateStack) Restore() bool {
	n := len(s.saved)
	if n == 0 {
		return false
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
	return true
}

// Depth returns the number of saved states.
func (s *StateStack) Depth() int {
	return len(s.saved)
}

// Translate shifts the local origin by delta.
func (s *StateStack) Translate(delta Point[int]) {
	s.cur.origin = s.cur.origin.Add(delta)
}

// Origin returns the device-space position of the local origin.
func (s *StateStack) Origin() Point[int] {
	return s.cur.origin
}

// SetColor sets the current color.
func (s *StateStack) SetColor(c Color) {
	s.cur.color = c
}

// Color returns the current color.
func (s *StateStack) Color() Color {
	return s.cur.color
}

// Clip replaces the clip with r given in local coordinates.
func (s *StateStack) Clip(r Rect[int]) {
	s.cur.clip = r.Add(s.cur.origin)
	if s.cur.clip.Empty() {
		s.cur.clip = Rect[int]{}
	}
}

// IntersectClip narrows the clip to its overlap with r given in local
// coordinates.
func (s *StateStack) IntersectClip(r Rect[int]) {
	s.cur.clip = s.cur.clip.Intersection(r.Add(s.cur.origin))
}

// LastClip returns the clip in local coordinates, or the zero rectangle when
// the clip is empty.
func (s *StateStack) LastClip() Rect[int] {
	if s.cur.clip.Empty() {
		return Rect[int]{}
	}
	return s.cur.clip.Sub(s.cur.origin)
}

// DeviceClip returns the clip in device coordinates.
func (s *StateStack) DeviceClip() Rect[int] {
	return s.cur.clip
}

// ClipEmpty reports whether the clip has no area.
func (s *StateStack) ClipEmpty() bool {
	return s.cur.clip.Empty()
}

// ToDevice maps a local rectangle to device coordinates.
func (s *StateStack) ToDevice(r Rect[float64]) Rect[float64] {
	return r.Add(PointAs[float64](s.cur.origin))
}
