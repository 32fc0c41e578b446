package intent

import (
	"math"
	"testing"
)

func TestFromAxesDeadzone(t *testing.T) {
	tests := []struct {
		name   string
		ax, ay float64
		wantX  float64
		wantY  float64
	}{
		{"zero", 0, 0, 0, 0},
		{"below deadzone", 0.1, -0.15, 0, 0},
		{"just below", 0.199, 0.199, 0, 0},
		{"x only", 0.5, 0.1, 0.5, 0},
		{"y only", 0.05, -0.7, 0, -0.7},
		{"full deflection", 1, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := FromAxes(tt.ax, tt.ay)
			if in.MoveX != tt.wantX || in.MoveY != tt.wantY {
				t.Errorf("FromAxes(%v, %v) = (%v, %v), want (%v, %v)",
					tt.ax, tt.ay, in.MoveX, in.MoveY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestFromAxesMagnitudeClamp(t *testing.T) {
	// A diagonal full deflection must not exceed unit magnitude
	in := FromAxes(1, 1)
	if l := math.Hypot(in.MoveX, in.MoveY); math.Abs(l-1) > 1e-9 {
		t.Errorf("clamped magnitude %v, want 1", l)
	}

	// In-range vectors pass through untouched
	in = FromAxes(0.6, 0.3)
	if in.MoveX != 0.6 || in.MoveY != 0.3 {
		t.Errorf("in-range vector altered: (%v, %v)", in.MoveX, in.MoveY)
	}
}

func TestFromDigital(t *testing.T) {
	in := FromDigital(1, 0)
	if in.MoveX != 1 || in.MoveY != 0 {
		t.Errorf("FromDigital(1, 0) = (%v, %v)", in.MoveX, in.MoveY)
	}

	in = FromDigital(0, 0)
	if in.MoveX != 0 || in.MoveY != 0 {
		t.Errorf("FromDigital(0, 0) = (%v, %v)", in.MoveX, in.MoveY)
	}

	// Diagonals normalize to unit length
	in = FromDigital(1, -1)
	if l := math.Hypot(in.MoveX, in.MoveY); math.Abs(l-1) > 1e-9 {
		t.Errorf("diagonal magnitude %v, want 1", l)
	}
	if in.MoveX <= 0 || in.MoveY >= 0 {
		t.Errorf("diagonal direction wrong: (%v, %v)", in.MoveX, in.MoveY)
	}
}

func TestFlagsUntouchedByTranslators(t *testing.T) {
	if in := FromAxes(0.5, 0.5); in.Shoot || in.Boost || in.Shield {
		t.Error("FromAxes set action flags")
	}
	if in := FromDigital(1, 1); in.Shoot || in.Boost || in.Shield {
		t.Error("FromDigital set action flags")
	}
}
