package tui

import (
	"fmt"

	"github.com/padprobe/padprobe/internal/core"
	"github.com/padprobe/padprobe/internal/intent"
)

// RenderProbe draws the input diagnostics view: a stick diamond showing the
// active movement directions, indicators for the three action flags, the
// translated intent values, and the tail of the session log. This is the
// debugging surface the utility exists for; the game is the playground that
// exercises it.
func RenderProbe(dst *core.Screen, in intent.Intent, km *KeyMapper, logLines []string) {
	dst.Clear()

	dst.DrawText(1, 0, "padprobe - input probe", core.ColorBrightBlue)
	dst.DrawHLine(0, 1, dst.Width(), ruleChar, core.ColorDimGray)

	// Stick diamond, left side
	cx, cy := 12, 6
	drawDir(dst, cx, cy-2, '▲', km.Held(ActionUp))
	drawDir(dst, cx, cy+2, '▼', km.Held(ActionDown))
	drawDir(dst, cx-4, cy, '◀', km.Held(ActionLeft))
	drawDir(dst, cx+4, cy, '▶', km.Held(ActionRight))
	dst.SetCell(cx, cy, '+', core.ColorGray)

	// Action cluster, right of the stick
	bx := cx + 14
	drawButton(dst, bx, cy-2, "SHOOT", km.Held(ActionShoot), core.ColorBrightYellow)
	drawButton(dst, bx, cy, "BOOST", km.Held(ActionBoost), core.ColorBrightGreen)
	drawButton(dst, bx, cy+2, "SHIELD", km.Held(ActionShield), core.ColorBrightCyan)

	// Translated intent readout
	ix := bx + 14
	dst.DrawText(ix, cy-2, fmt.Sprintf("move.x % .3f", in.MoveX), core.ColorWhite)
	dst.DrawText(ix, cy-1, fmt.Sprintf("move.y % .3f", in.MoveY), core.ColorWhite)
	dst.DrawText(ix, cy+1, fmt.Sprintf("shoot=%v boost=%v shield=%v", in.Shoot, in.Boost, in.Shield), core.ColorGray)

	// Log tail fills the rest of the screen
	logTop := cy + 5
	dst.DrawHLine(0, logTop-1, dst.Width(), ruleChar, core.ColorDimGray)
	rows := dst.Height() - logTop - 1
	if rows < 1 {
		return
	}
	start := 0
	if len(logLines) > rows {
		start = len(logLines) - rows
	}
	for i, line := range logLines[start:] {
		dst.DrawText(1, logTop+i, line, core.ColorGray)
	}

	dst.DrawText(1, dst.Height()-1, "tab game · c clear log · q quit", core.ColorDimGray)
}

// drawDir renders one stick direction marker.
func drawDir(dst *core.Screen, x, y int, r rune, active bool) {
	c := core.ColorDimGray
	if active {
		c = core.ColorBrightBlue
	}
	dst.SetCell(x, y, r, c)
}

// drawButton renders one action indicator with its label.
func drawButton(dst *core.Screen, x, y int, label string, active bool, c core.Color) {
	glyph, labelColor := '○', core.ColorDimGray
	if active {
		glyph, labelColor = '●', c
	}
	dst.SetCell(x, y, glyph, labelColor)
	dst.DrawText(x+2, y, label, labelColor)
}
