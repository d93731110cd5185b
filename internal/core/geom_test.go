package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name           string
		outerW, outerH int
		w, h           int
		wantX, wantY   int
	}{
		{"fits", 80, 24, 20, 10, 30, 7},
		{"exact", 15, 15, 15, 15, 0, 0},
		{"larger than area", 10, 10, 14, 12, -2, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := CenteredRect(tc.outerW, tc.outerH, tc.w, tc.h)
			if r.X != tc.wantX || r.Y != tc.wantY {
				t.Errorf("CenteredRect() origin = (%d, %d), expected (%d, %d)", r.X, r.Y, tc.wantX, tc.wantY)
			}
			if r.W != tc.w || r.H != tc.h {
				t.Errorf("CenteredRect() size = %dx%d, expected %dx%d", r.W, r.H, tc.w, tc.h)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
		{1, 0, 0, 0},    // degenerate range
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestActionIsMovement(t *testing.T) {
	movement := []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionJump}
	for _, a := range movement {
		if !a.IsMovement() {
			t.Errorf("%s should be a movement action", a)
		}
	}

	other := []Action{ActionNone, ActionRestart, ActionHelp, ActionQuit, Action(99)}
	for _, a := range other {
		if a.IsMovement() {
			t.Errorf("%s should not be a movement action", a)
		}
	}

	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q, expected Unknown", Action(99).String())
	}
}
