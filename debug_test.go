package arbor

import (
	"strings"
	"testing"
)

func TestDebugToggle(t *testing.T) {
	if DebugEnabled() {
		t.Fatal("debug should be off by default")
	}
	SetDebug(true)
	if !DebugEnabled() {
		t.Error("SetDebug(true) did not enable")
	}
	SetDebug(false)
}

func TestDebugOffIgnoresDestroyed(t *testing.T) {
	w := NewWidget("gone")
	w.Destroy()
	w.SetBounds(R(0, 0, 1, 1)) // no panic outside debug mode
}

func TestDumpTree(t *testing.T) {
	root, _ := newRoot(100, 100)
	a := child(root, "a", R(1, 2, 3, 4))
	a.SetOpaque(true)
	b := child(a, "b", R(0, 0, 1, 1))
	b.SetVisible(false)

	out := DumpTree(root)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "root#") || !strings.HasSuffix(lines[0], " elevated") {
		t.Errorf("root line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  a#") || !strings.HasSuffix(lines[1], " opaque") {
		t.Errorf("a line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "    b#") || !strings.HasSuffix(lines[2], " hidden") {
		t.Errorf("b line = %q", lines[2])
	}
}
