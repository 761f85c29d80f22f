package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", NewRectF(0, 0, 10, 10), NewRectF(5, 5, 10, 10), true},
		{"apart horizontally", NewRectF(0, 0, 10, 10), NewRectF(15, 0, 10, 10), false},
		{"apart vertically", NewRectF(0, 0, 10, 10), NewRectF(0, 15, 10, 10), false},
		{"touching edge", NewRectF(0, 0, 10, 10), NewRectF(10, 0, 10, 10), false},
		{"contained", NewRectF(0, 0, 20, 20), NewRectF(5, 5, 5, 5), true},
		{"fractional overlap", NewRectF(0, 0, 10, 10), NewRectF(9.5, 9.5, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFCenter(t *testing.T) {
	cx, cy := NewRectF(10, 20, 70, 18).Center()
	if cx != 45 || cy != 29 {
		t.Errorf("Center() = (%v, %v), expected (45, 29)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{300, 0, 255, 255},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5) = %v, expected 0", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5) = %v, expected 1", got)
	}
	if got := AbsF(-2.5); got != 2.5 {
		t.Errorf("AbsF(-2.5) = %v, expected 2.5", got)
	}
}

func TestRGBClampsChannels(t *testing.T) {
	c := RGB(260, -4, 128)
	if c.R != 255 || c.G != 0 || c.B != 128 {
		t.Errorf("RGB clamp = %+v, expected (255,0,128)", c)
	}
	if c.Hex() != "#ff0080" {
		t.Errorf("Hex() = %q, expected #ff0080", c.Hex())
	}
	if ColorDefault.Hex() != "" {
		t.Error("default color should have empty hex")
	}
	if dim := RGB(200, 100, 50).Scale(0.5); dim.R != 100 || dim.G != 50 || dim.B != 25 {
		t.Errorf("Scale(0.5) = %+v", dim)
	}
}
