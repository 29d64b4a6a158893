package ggraster

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/arbor"
)

func newTestSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := NewSurface(w, h, Options{Background: arbor.ColorHex(0x000000ff)})
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewSurfaceInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewSurface(size[0], size[1], Options{}); err == nil {
			t.Errorf("NewSurface(%d, %d) succeeded, want error", size[0], size[1])
		}
	}
}

func TestSurfaceDamageUnion(t *testing.T) {
	s := newTestSurface(t, 100, 50)
	if got := s.Damage(); got != arbor.R(0, 0, 100, 50) {
		t.Errorf("initial damage = %v, want full surface", got)
	}

	root := arbor.NewWidget("root")
	root.SetBounds(arbor.R(0, 0, 100, 50))
	root.Elevate(s)
	s.Render(root)
	if !s.Damage().Empty() {
		t.Fatalf("damage after render = %v, want empty", s.Damage())
	}

	s.Repaint(arbor.R(10, 10, 5, 5))
	s.Repaint(arbor.R(90, 40, 50, 50))
	if got := s.Damage(); got != arbor.R(10, 10, 90, 40) {
		t.Errorf("damage = %v, want {10 10 90 40}", got)
	}
}

func TestSurfaceRenderSkipsWithoutDamage(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	root := arbor.NewWidget("root")
	root.SetBounds(arbor.R(0, 0, 20, 20))
	root.Elevate(s)

	if !s.Render(root) {
		t.Fatal("first render should draw")
	}
	if s.Render(root) {
		t.Error("render without damage should not draw")
	}
	if s.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", s.Frames())
	}
}

func TestSurfaceRenderPixels(t *testing.T) {
	for _, mode := range []arbor.RenderMode{arbor.RenderUnclipped, arbor.RenderClipped} {
		s := newTestSurface(t, 40, 40)
		root := arbor.NewWidget("root")
		root.SetBounds(arbor.R(0, 0, 40, 40))
		root.SetRenderMode(mode)
		box := arbor.NewBox("box", arbor.ColorHex(0xff0000ff))
		box.SetBounds(arbor.R(10, 10, 20, 20))
		root.AddChild(box.Widget)
		root.Elevate(s)

		s.Render(root)
		img := s.Image()

		red := color.NRGBA{R: 255, A: 255}
		black := color.NRGBA{A: 255}
		if got := img.NRGBAAt(15, 15); got != red {
			t.Errorf("%v: inside box = %v, want red", mode, got)
		}
		if got := img.NRGBAAt(5, 5); got != black {
			t.Errorf("%v: background = %v, want black", mode, got)
		}
		if got := img.NRGBAAt(30, 30); got != black {
			t.Errorf("%v: just outside box = %v, want black", mode, got)
		}

		box.SetFill(arbor.ColorHex(0x00ff00ff))
		if got := s.Damage(); got != arbor.R(10, 10, 20, 20) {
			t.Errorf("%v: damage after SetFill = %v", mode, got)
		}
		s.Render(root)
		if got := s.Image().NRGBAAt(15, 15); got != (color.NRGBA{G: 255, A: 255}) {
			t.Errorf("%v: repainted box = %v, want green", mode, got)
		}
	}
}

func TestSurfaceCloseIgnoresRepaint(t *testing.T) {
	s, err := NewSurface(10, 10, Options{})
	if err != nil {
		t.Fatal(err)
	}
	root := arbor.NewWidget("root")
	root.SetBounds(arbor.R(0, 0, 10, 10))
	root.Elevate(s)
	s.Render(root)

	root.Lower()
	s.Repaint(arbor.R(0, 0, 5, 5))
	if !s.Damage().Empty() {
		t.Errorf("closed surface recorded damage %v", s.Damage())
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
}

func TestSnapshotWritesPNG(t *testing.T) {
	s := newTestSurface(t, 8, 8)
	dir := filepath.Join(t.TempDir(), "shots")

	path, err := s.Snapshot(dir, "hello world")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !strings.HasSuffix(path, "_hello_world.png") {
		t.Errorf("path = %q, want sanitized label suffix", path)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("snapshot file missing or empty: %v", err)
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"frame-01.a", "frame-01.a"},
		{"a/b c", "a_b_c"},
		{"clipped:60", "clipped_60"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
