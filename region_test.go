package arbor

import "testing"

func TestRegionSubtractCovers(t *testing.T) {
	reg := NewRegion(R(0, 0, 100, 100))
	reg.Subtract(R(-10, -10, 200, 200))
	if !reg.Empty() {
		t.Errorf("region should be empty, got %v", reg.Rects())
	}
}

func TestRegionSubtractHole(t *testing.T) {
	reg := NewRegion(R(0, 0, 100, 100))
	reg.Subtract(R(25, 25, 50, 50))
	if got := reg.Area(); got != 100*100-50*50 {
		t.Errorf("Area = %d, want %d", got, 100*100-50*50)
	}
	if got := len(reg.Rects()); got != 4 {
		t.Errorf("rect count = %d, want 4", got)
	}
	for _, r := range reg.Rects() {
		if r.Intersects(R(25, 25, 50, 50)) {
			t.Errorf("%v overlaps the hole", r)
		}
	}
	if reg.Bounds() != R(0, 0, 100, 100) {
		t.Errorf("Bounds = %v", reg.Bounds())
	}
}

func TestRegionSubtractTopHalf(t *testing.T) {
	reg := NewRegion(R(0, 0, 800, 600))
	reg.Subtract(R(0, 0, 800, 300))
	if reg.Bounds() != R(0, 300, 800, 300) {
		t.Errorf("Bounds = %v, want {0 300 800 300}", reg.Bounds())
	}
}

func TestRegionSubtractDisjoint(t *testing.T) {
	reg := NewRegion(R(0, 0, 10, 10))
	reg.Subtract(R(10, 0, 10, 10))
	if reg.Area() != 100 {
		t.Errorf("Area = %d, want 100", reg.Area())
	}
}

func TestRegionEmptyStart(t *testing.T) {
	reg := NewRegion(R(0, 0, 0, 10))
	if !reg.Empty() {
		t.Error("region from empty rect should be empty")
	}
	reg.Subtract(R(0, 0, 5, 5))
	if !reg.Empty() {
		t.Error("subtracting from empty region should stay empty")
	}
}

func TestRegionMultipleCuts(t *testing.T) {
	reg := NewRegion(R(0, 0, 100, 100))
	reg.Subtract(R(0, 0, 50, 100))
	reg.Subtract(R(50, 0, 50, 60))
	if reg.Bounds() != R(50, 60, 50, 40) {
		t.Errorf("Bounds = %v, want {50 60 50 40}", reg.Bounds())
	}
	reg.Subtract(R(50, 60, 50, 40))
	if !reg.Empty() {
		t.Errorf("region should be empty, got %v", reg.Rects())
	}
}
