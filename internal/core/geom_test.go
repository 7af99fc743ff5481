package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRingPoints(t *testing.T) {
	points := RingPoints(40, 12, 20, 10, 4)
	if len(points) != 4 {
		t.Fatalf("RingPoints returned %d points, expected 4", len(points))
	}

	expected := []Point{
		{40, 2},  // top
		{60, 12}, // right
		{40, 22}, // bottom
		{20, 12}, // left
	}
	for i, p := range expected {
		if points[i] != p {
			t.Errorf("point %d = %v, expected %v", i, points[i], p)
		}
	}

	if RingPoints(0, 0, 1, 1, 0) != nil {
		t.Error("RingPoints with n=0 should return nil")
	}
}

func TestRingPointsDistinct(t *testing.T) {
	points := RingPoints(40, 12, 24, 10, 12)
	seen := make(map[Point]bool)
	for _, p := range points {
		if seen[p] {
			t.Errorf("duplicate ring point %v", p)
		}
		seen[p] = true
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
