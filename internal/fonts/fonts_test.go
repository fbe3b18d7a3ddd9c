package fonts

import (
	"math"
	"testing"
)

func TestCellMeasurer(t *testing.T) {
	m := CellMeasurer{}
	if got := m.Advance('a', 10); math.Abs(got-6) > 1e-9 {
		t.Errorf("expected 6, got %f", got)
	}
	if got := m.Advance('漢', 10); math.Abs(got-12) > 1e-9 {
		t.Errorf("wide rune should take two columns, got %f", got)
	}
	if got := Width(m, "abc", 20); math.Abs(got-36) > 1e-9 {
		t.Errorf("expected 36, got %f", got)
	}
}

func TestGridMeasurer(t *testing.T) {
	m := GridMeasurer{CellW: 8}
	if a, b := m.Advance('a', 10), m.Advance('a', 22); a != 8 || b != 8 {
		t.Errorf("advance should be one cell at any size, got %f and %f", a, b)
	}
	if got := m.Advance('漢', 10); got != 16 {
		t.Errorf("wide rune should take two cells, got %f", got)
	}
}

func TestMonoFaces(t *testing.T) {
	faces, err := LoadMono()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	small := faces.Advance('M', 10)
	large := faces.Advance('M', 20)
	if small <= 0 || large <= small {
		t.Errorf("advance should grow with size: %f -> %f", small, large)
	}
	if a, b := faces.Advance('i', 14), faces.Advance('W', 14); math.Abs(a-b) > 1e-9 {
		t.Errorf("mono font should have equal advances, got %f and %f", a, b)
	}
	if faces.Face(14) != faces.Face(14.2) {
		t.Error("faces should be cached by rounded size")
	}
}

func TestBasicFace(t *testing.T) {
	if (Basic{}).Face(40) == nil {
		t.Error("basic face should always be available")
	}
}
