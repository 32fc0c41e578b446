package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/padprobe/padprobe/internal/intent"
)

// Action is a semantic input action derived from a key press, abstracted
// from physical bindings.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionShoot
	ActionBoost
	ActionShield
)

const actionCount = 8

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShoot:
		return "Shoot"
	case ActionBoost:
		return "Boost"
	case ActionShield:
		return "Shield"
	default:
		return "None"
	}
}

// Control is a host-level command that never reaches the simulation.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlToggleProbe
	ControlToggleLog
	ControlClearLog
)

// holdTicks is how many frames a key press counts as held. Terminals only
// deliver key-down events (with autorepeat), so each press opens a short
// hold window that autorepeat keeps refreshed.
const holdTicks = 10

// KeyMapper translates Bubble Tea key messages into game actions and host
// controls, and tracks per-action hold windows across frames.
type KeyMapper struct {
	holds [actionCount]int
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message. Exactly one of the returns is set.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (Action, Control) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionNone, ControlQuit
	case "tab":
		return ActionNone, ControlToggleProbe
	case "l":
		return ActionNone, ControlToggleLog
	case "c":
		return ActionNone, ControlClearLog
	case "up", "w":
		return ActionUp, ControlNone
	case "down", "s":
		return ActionDown, ControlNone
	case "left", "a":
		return ActionLeft, ControlNone
	case "right", "d":
		return ActionRight, ControlNone
	case " ":
		return ActionShoot, ControlNone
	case "x":
		return ActionBoost, ControlNone
	case "z":
		return ActionShield, ControlNone
	}
	return ActionNone, ControlNone
}

// Press refreshes the hold window for an action.
func (km *KeyMapper) Press(a Action) {
	if a > ActionNone && int(a) < actionCount {
		km.holds[a] = holdTicks
	}
}

// Held reports whether an action's hold window is still open.
func (km *KeyMapper) Held(a Action) bool {
	return km.holds[a] > 0
}

// Tick returns the intent for the frame and then closes every hold window
// by one frame, so a press counts for exactly holdTicks intents. Diagonal
// movement is normalized by the translator.
func (km *KeyMapper) Tick() intent.Intent {
	dx, dy := 0, 0
	if km.Held(ActionLeft) {
		dx--
	}
	if km.Held(ActionRight) {
		dx++
	}
	if km.Held(ActionUp) {
		dy--
	}
	if km.Held(ActionDown) {
		dy++
	}

	in := intent.FromDigital(dx, dy)
	in.Shoot = km.Held(ActionShoot)
	in.Boost = km.Held(ActionBoost)
	in.Shield = km.Held(ActionShield)

	for i := range km.holds {
		if km.holds[i] > 0 {
			km.holds[i]--
		}
	}
	return in
}
