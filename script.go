package arbor

import (
	"encoding/json"
	"fmt"
)

// ScriptStep is a single action in a script.
type ScriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []ScriptStep `json:"steps"`
}

// pointerEvent is one queued pointer event in root space.
type pointerEvent struct {
	pos   Point[float64]
	phase pointerPhase
}

type pointerPhase uint8

const (
	pointerDown pointerPhase = iota
	pointerMove
	pointerUp
)

// Script sequences injected pointer input and snapshots across frames, so
// a headless host can drive a widget tree without a real input device.
// Call Step once per frame.
type Script struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool

	queue  []pointerEvent
	router PointerRouter
	err    error
}

// LoadScript parses a JSON script of the form {"steps": [...]}. Actions
// are "click", "drag", "wait" and "snapshot".
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "drag", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step ran and all queued input was delivered.
func (s *Script) Done() bool {
	return s.done
}

// Err returns the first snapshot error, if any.
func (s *Script) Err() error {
	return s.err
}

// Press queues a pointer press at p (root space).
func (s *Script) Press(p Point[float64]) {
	s.queue = append(s.queue, pointerEvent{pos: p, phase: pointerDown})
}

// Move queues a pointer move with the button held.
func (s *Script) Move(p Point[float64]) {
	s.queue = append(s.queue, pointerEvent{pos: p, phase: pointerMove})
}

// Release queues a pointer release.
func (s *Script) Release(p Point[float64]) {
	s.queue = append(s.queue, pointerEvent{pos: p, phase: pointerUp})
}

// Click queues a press and release at p. It consumes two frames.
func (s *Script) Click(p Point[float64]) {
	s.Press(p)
	s.Release(p)
}

// Drag queues a press at from, frames-2 interpolated moves and a release
// at to. frames is at least 2.
func (s *Script) Drag(from, to Point[float64], frames int) {
	frames = max(frames, 2)
	s.Press(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.Move(from.Add(to.Sub(from).Mul(t)))
	}
	s.Release(to)
}

// Step advances the script by one frame and delivers at most one queued
// pointer event to root's tree. snapshot is called for "snapshot" steps;
// it may be nil.
func (s *Script) Step(root *Widget, snapshot func(label string) error) {
	if s.done {
		return
	}
	s.advance(snapshot)
	s.deliver(root)
	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(s.queue) == 0 {
		s.done = true
	}
}

func (s *Script) advance(snapshot func(label string) error) {
	if len(s.queue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		return
	}

	st := s.steps[s.cursor]
	s.cursor++
	Logger().Debug("arbor: script step", "index", s.cursor-1, "action", st.Action)

	switch st.Action {
	case "snapshot":
		if snapshot != nil {
			if err := snapshot(st.Label); err != nil {
				Logger().Warn("arbor: script snapshot failed", "label", st.Label, "err", err)
				if s.err == nil {
					s.err = err
				}
			}
		}
	case "click":
		s.Click(Pt(st.X, st.Y))
	case "drag":
		s.Drag(Pt(st.FromX, st.FromY), Pt(st.ToX, st.ToY), st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}

// deliver pops one queued event and hands it to the router.
func (s *Script) deliver(root *Widget) {
	if len(s.queue) == 0 {
		return
	}
	ev := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]

	switch ev.phase {
	case pointerDown:
		s.router.Press(root, ev.pos)
	case pointerMove:
		s.router.Move(root, ev.pos)
	case pointerUp:
		s.router.Release(root, ev.pos)
	}
}
