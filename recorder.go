package arbor

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpSave OpKind = iota
	OpRestore
	OpTranslate
	OpSetColor
	OpFillRect
	OpDrawText
	OpClip
	OpIntersectClip
)

func (k OpKind) String() string {
	switch k {
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpTranslate:
		return "translate"
	case OpSetColor:
		return "set-color"
	case OpFillRect:
		return "fill-rect"
	case OpDrawText:
		return "draw-text"
	case OpClip:
		return "clip"
	case OpIntersectClip:
		return "intersect-clip"
	}
	return "unknown"
}

// Op is one recorded drawing operation. Device holds the operation's
// rectangle mapped to device space (fills, text, clips); Clip is the device
// clip in effect once the operation completed.
type Op struct {
	Kind   OpKind
	Rect   Rect[float64]
	Device Rect[float64]
	Delta  Point[int]
	Color  Color
	Text   string
	Align  Align
	Clip   Rect[int]
}

// Recorder is a Graphics that records operations into a display list
// instead of rasterizing them. Fills and text that fall entirely outside the
// clip are recorded with an empty Device rectangle and count as culled.
type Recorder struct {
	device Rect[int]
	state  StateStack
	ops    []Op
}

// NewRecorder returns a Recorder for a device of the given size.
func NewRecorder(width, height int) *Recorder {
	device := R(0, 0, width, height)
	return &Recorder{device: device, state: NewStateStack(device)}
}

// Reset clears the display list and the state stack.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.state.Reset(r.device)
}

// Ops returns the display list. The returned slice MUST NOT be mutated.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Fills returns the fill operations whose device rectangle is visible
// under the clip in effect when they were recorded.
func (r *Recorder) Fills() []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == OpFillRect && !op.Device.Empty() {
			out = append(out, op)
		}
	}
	return out
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int {
	return r.state.Depth()
}

func (r *Recorder) record(op Op) {
	op.Clip = r.state.DeviceClip()
	r.ops = append(r.ops, op)
}

func (r *Recorder) Save() {
	r.state.Save()
	r.record(Op{Kind: OpSave})
}

func (r *Recorder) Restore() {
	if !r.state.Restore() {
		panic("arbor: Restore without matching Save")
	}
	r.record(Op{Kind: OpRestore})
}

func (r *Recorder) Translate(delta Point[int]) {
	r.state.Translate(delta)
	r.record(Op{Kind: OpTranslate, Delta: delta})
}

func (r *Recorder) SetColor(c Color) {
	r.state.SetColor(c)
	r.record(Op{Kind: OpSetColor, Color: c})
}

func (r *Recorder) FillRect(rect Rect[float64]) {
	r.record(Op{
		Kind:   OpFillRect,
		Rect:   rect,
		Device: r.visible(rect),
		Color:  r.state.Color(),
	})
}

func (r *Recorder) DrawText(text string, rect Rect[float64], align Align) {
	r.record(Op{
		Kind:   OpDrawText,
		Rect:   rect,
		Device: r.visible(rect),
		Color:  r.state.Color(),
		Text:   text,
		Align:  align,
	})
}

func (r *Recorder) Clip(rect Rect[int]) {
	r.state.Clip(rect)
	r.record(Op{Kind: OpClip, Rect: RectAs[float64](rect)})
}

func (r *Recorder) IntersectClip(rect Rect[int]) {
	r.state.IntersectClip(rect)
	r.record(Op{Kind: OpIntersectClip, Rect: RectAs[float64](rect)})
}

func (r *Recorder) LastClip() Rect[int] {
	return r.state.LastClip()
}

func (r *Recorder) ClipEmpty() bool {
	return r.state.ClipEmpty()
}

// visible maps rect to device space and trims it to the clip.
func (r *Recorder) visible(rect Rect[float64]) Rect[float64] {
	return r.state.ToDevice(rect).Intersection(RectAs[float64](r.state.DeviceClip()))
}
