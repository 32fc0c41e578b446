package core

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	v := Vec{3, 4}

	if got := v.Add(Vec{1, -2}); got != (Vec{4, 2}) {
		t.Errorf("Add() = %v", got)
	}
	if got := v.Scale(2); got != (Vec{6, 8}) {
		t.Errorf("Scale() = %v", got)
	}
	if got := v.Len(); got != 5 {
		t.Errorf("Len() = %v, want 5", got)
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(100, 50, 24, 20)

	if r.X != 88 || r.Y != 40 {
		t.Errorf("top-left (%v, %v), want (88, 40)", r.X, r.Y)
	}
	if r.Right() != 112 || r.Bottom() != 60 {
		t.Errorf("edges (%v, %v), want (112, 60)", r.Right(), r.Bottom())
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 4, H: 4}, true},
		{"touching edges", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"separate", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"vertical miss", Rect{X: 0, Y: 15, W: 10, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	if !r.Contains(5, 5) {
		t.Error("center point not contained")
	}
	if !r.Contains(0, 0) {
		t.Error("top-left corner not contained")
	}
	if r.Contains(10, 10) {
		t.Error("exclusive bottom-right corner contained")
	}
}

func TestInCircle(t *testing.T) {
	if !InCircle(3, 4, 0, 0, 5) {
		t.Error("point on the radius should be inside")
	}
	if InCircle(3, 4.01, 0, 0, 5) {
		t.Error("point past the radius should be outside")
	}
	if !InCircle(7, 7, 7, 7, 0.1) {
		t.Error("center point should be inside")
	}
}

func TestSafeDist(t *testing.T) {
	if got := SafeDist(3, 4); got != 5 {
		t.Errorf("SafeDist(3, 4) = %v, want 5", got)
	}
	// Degenerate zero distance substitutes 1.0 so division stays defined
	if got := SafeDist(0, 0); got != 1 {
		t.Errorf("SafeDist(0, 0) = %v, want 1", got)
	}
	if math.IsNaN(100 / SafeDist(0, 0)) {
		t.Error("division by SafeDist produced NaN")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %v", got)
	}
}
