// Package intent defines the normalized per-frame input signal consumed by
// the simulation, decoupled from any specific input device. The host shell
// (keyboard, gamepad, SSH session) translates raw device state into an
// Intent once per frame; the simulation performs no further deadzone or
// normalization work.
package intent

import "math"

// Deadzone is the analog axis magnitude below which input reads as zero.
const Deadzone = 0.20

// Intent is the per-frame input tuple: a movement vector with both
// components in [-1, 1] (pre-normalized if diagonal) and three action flags.
type Intent struct {
	MoveX  float64
	MoveY  float64
	Shoot  bool
	Boost  bool
	Shield bool
}

// FromAxes builds an Intent movement vector from raw analog axis values,
// applying the deadzone per axis and clamping the combined magnitude to 1.
// Action flags are left for the caller to set.
func FromAxes(ax, ay float64) Intent {
	if math.Abs(ax) < Deadzone {
		ax = 0
	}
	if math.Abs(ay) < Deadzone {
		ay = 0
	}
	if l := math.Hypot(ax, ay); l > 1.0 {
		ax /= l
		ay /= l
	}
	return Intent{MoveX: ax, MoveY: ay}
}

// FromDigital builds an Intent movement vector from digital direction
// presses (-1, 0, or 1 per axis), normalizing diagonals to unit length.
// When a host carries both analog and digital sources, digital presses take
// priority.
func FromDigital(dx, dy int) Intent {
	mx, my := float64(dx), float64(dy)
	if l := math.Hypot(mx, my); l > 0 {
		mx /= l
		my /= l
	}
	return Intent{MoveX: mx, MoveY: my}
}
