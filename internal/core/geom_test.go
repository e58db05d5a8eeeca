package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "right edge touches left edge",
			a:        NewRect(100, 560, 40, 40),
			b:        NewRect(140, 300, 30, 300),
			expected: false,
		},
		{
			name:     "bottom edge touches top edge",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.9, 9.9, 10, 10),
			expected: true,
		},
		{
			name:     "corner touch",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 5, 5),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestRotateAround(t *testing.T) {
	offsets := []Point{{X: 10, Y: 0}, {X: 0, Y: 10}}

	tests := []struct {
		name string
		deg  float64
		want []Point
	}{
		{"no rotation", 0, []Point{{X: 110, Y: 50}, {X: 100, Y: 60}}},
		{"quarter turn", 90, []Point{{X: 100, Y: 60}, {X: 90, Y: 50}}},
		{"half turn", 180, []Point{{X: 90, Y: 50}, {X: 100, Y: 40}}},
		{"full turn", 360, []Point{{X: 110, Y: 50}, {X: 100, Y: 60}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RotateAround(offsets, 100, 50, tc.deg)
			for i := range got {
				if math.Abs(got[i].X-tc.want[i].X) > 1e-9 || math.Abs(got[i].Y-tc.want[i].Y) > 1e-9 {
					t.Errorf("point %d = %+v, expected %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestPointInPolygon(t *testing.T) {
	tri := []Point{{X: 20, Y: 0}, {X: 0, Y: 40}, {X: 40, Y: 40}}

	if !PointInPolygon(tri, 20, 30) {
		t.Error("point near the base should be inside the triangle")
	}
	if PointInPolygon(tri, 2, 2) {
		t.Error("top-left corner of the bounding box should be outside the triangle")
	}
	if PointInPolygon(tri, 50, 20) {
		t.Error("point right of the triangle should be outside")
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorLightBlue.Hex(); got != "#add8e6" {
		t.Errorf("ColorLightBlue.Hex() = %q, expected #add8e6", got)
	}
	if got := ColorDefault.Hex(); got != "" {
		t.Errorf("ColorDefault.Hex() = %q, expected empty", got)
	}
}
