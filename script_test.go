package arbor

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"invalid json", `{`, "parse script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
	}
	for _, tt := range tests {
		_, err := LoadScript([]byte(tt.src))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want it to contain %q", tt.name, err, tt.want)
		}
	}
}

func runScript(t *testing.T, s *Script, root *Widget, snap func(string) error, limit int) int {
	t.Helper()
	frames := 0
	for !s.Done() {
		if frames >= limit {
			t.Fatalf("script not done after %d frames", limit)
		}
		s.Step(root, snap)
		frames++
	}
	return frames
}

func TestScriptClickTogglesButton(t *testing.T) {
	root, _ := newRoot(200, 200)
	panel := child(root, "panel", R(20, 20, 100, 100))
	b := NewButton("b", "ok")
	b.SetBounds(R(10, 10, 50, 20))
	panel.AddChild(b.Widget)

	s, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 40, "y": 35}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if n := runScript(t, s, root, nil, 10); n != 2 {
		t.Errorf("frames = %d, want 2", n)
	}
	if !b.Toggled() {
		t.Error("button should be toggled after click")
	}
}

func TestScriptClickOutsideHandlerIsIgnored(t *testing.T) {
	root, _ := newRoot(200, 200)
	b := NewButton("b", "ok")
	b.SetBounds(R(10, 10, 50, 20))
	root.AddChild(b.Widget)

	s, _ := LoadScript([]byte(`{"steps": [{"action": "click", "x": 150, "y": 150}]}`))
	runScript(t, s, root, nil, 10)

	if b.Toggled() {
		t.Error("click outside should not toggle")
	}
}

func TestScriptReleaseOutsideDoesNotToggle(t *testing.T) {
	root, _ := newRoot(200, 200)
	b := NewButton("b", "ok")
	b.SetBounds(R(10, 10, 50, 20))
	root.AddChild(b.Widget)

	s := &Script{steps: []ScriptStep{{Action: "wait", Frames: 1}}}
	s.Press(Pt(20.0, 20.0))
	s.Release(Pt(150.0, 150.0))
	runScript(t, s, root, nil, 10)

	if b.Toggled() {
		t.Error("release outside the button should not toggle")
	}
}

func TestScriptDragSlider(t *testing.T) {
	root, _ := newRoot(200, 200)
	sl := NewSlider("s")
	sl.SetBounds(R(0, 50, 100, 10))
	root.AddChild(sl.Widget)

	var seen []float64
	sl.OnChange = func(v float64) { seen = append(seen, v) }

	s, _ := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 10, "fromY": 55, "toX": 50, "toY": 55, "frames": 3}
	]}`))
	if n := runScript(t, s, root, nil, 10); n != 3 {
		t.Errorf("frames = %d, want 3", n)
	}
	if want := []float64{0.1, 0.3, 0.5}; !slices.Equal(seen, want) {
		t.Errorf("values = %v, want %v", seen, want)
	}
}

func TestScriptSnapshotsAndWait(t *testing.T) {
	root, _ := newRoot(10, 10)
	var labels []string
	snap := func(label string) error {
		labels = append(labels, label)
		return nil
	}

	s, _ := LoadScript([]byte(`{"steps": [
		{"action": "snapshot", "label": "a"},
		{"action": "wait", "frames": 3},
		{"action": "snapshot", "label": "b"}
	]}`))
	if n := runScript(t, s, root, snap, 20); n != 5 {
		t.Errorf("frames = %d, want 5", n)
	}
	if want := []string{"a", "b"}; !slices.Equal(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestScriptSnapshotError(t *testing.T) {
	root, _ := newRoot(10, 10)
	boom := errors.New("boom")
	s, _ := LoadScript([]byte(`{"steps": [{"action": "snapshot", "label": "x"}]}`))
	runScript(t, s, root, func(string) error { return boom }, 5)

	if !errors.Is(s.Err(), boom) {
		t.Errorf("Err = %v, want boom", s.Err())
	}
}

func TestScriptGrabSurvivesDestroy(t *testing.T) {
	root, _ := newRoot(200, 200)
	b := NewButton("b", "ok")
	b.SetBounds(R(10, 10, 50, 20))
	root.AddChild(b.Widget)

	s := &Script{steps: []ScriptStep{{Action: "wait", Frames: 1}}}
	s.Click(Pt(20.0, 20.0))
	s.Step(root, nil) // press
	b.Destroy()
	runScript(t, s, root, nil, 5) // release must not reach the destroyed button

	if b.Toggled() {
		t.Error("destroyed button received release")
	}
}
