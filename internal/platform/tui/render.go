package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/padprobe/padprobe/internal/core"
	"github.com/padprobe/padprobe/internal/sim"
)

// Glyphs for world elements.
const (
	starNear   = '·'
	starFar    = '.'
	shipChar   = '▶'
	shotChar   = '─'
	shardChar  = '✦'
	blobChar   = '◉'
	redChar    = '■'
	snakeChar  = '●'
	snakeHead  = '◎'
	ruleChar   = '─'
	energyFull = '█'
	energyEmpt = '░'
)

// Screen rows reserved around the playfield.
const (
	hudRows  = 1 // top: energy bar + score
	helpRows = 1 // bottom: key help
)

const energyBarWidth = 20

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDimGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// RenderWorld draws a world snapshot into the screen buffer, scaling the
// pixel-space playfield onto the available character cells. Draw order is
// back to front: stars, shards, projectiles, enemies, ship, HUD.
func RenderWorld(dst *core.Screen, snap sim.Snapshot) {
	dst.Clear()

	cols := dst.Width()
	rows := dst.Height() - hudRows - helpRows
	if cols < 1 || rows < 1 || snap.Width <= 0 || snap.Height <= 0 {
		return
	}

	cellX := func(x float64) int { return int(x / snap.Width * float64(cols)) }
	cellY := func(y float64) int { return hudRows + int(y/snap.Height*float64(rows)) }

	for _, s := range snap.Stars {
		if s.Layer > 1.0 {
			dst.SetCell(cellX(s.X), cellY(s.Y), starNear, core.ColorGray)
		} else {
			dst.SetCell(cellX(s.X), cellY(s.Y), starFar, core.ColorDimGray)
		}
	}

	for _, s := range snap.Shards {
		dst.SetCell(cellX(s.X), cellY(s.Y), shardChar, core.ColorBrightCyan)
	}

	for _, p := range snap.PlayerShots {
		dst.SetCell(cellX(p.X), cellY(p.Y), shotChar, core.ColorBrightYellow)
	}
	for _, p := range snap.EnemyShots {
		dst.SetCell(cellX(p.X), cellY(p.Y), shotChar, core.ColorBrightRed)
	}

	for _, e := range snap.Enemies {
		drawEnemy(dst, e, cellX, cellY)
	}

	px, py := cellX(snap.Player.X), cellY(snap.Player.Y)
	if snap.Player.ShieldActive {
		dst.SetCell(px-1, py, '(', core.ColorBrightCyan)
		dst.SetCell(px+1, py, ')', core.ColorBrightCyan)
	}
	shipColor := core.ColorBrightBlue
	if snap.Player.BoostActive {
		shipColor = core.ColorBrightWhite
	}
	dst.SetCell(px, py, shipChar, shipColor)

	drawHUD(dst, snap)
	dst.DrawText(1, dst.Height()-1, "arrows/wasd move · space shoot · x boost · z shield · tab probe · l log · q quit", core.ColorDimGray)
}

// drawEnemy renders one enemy with its variant glyph and color.
func drawEnemy(dst *core.Screen, e sim.EnemyView, cellX, cellY func(float64) int) {
	switch e.Kind {
	case sim.KindAsteroid:
		x, y := cellX(e.X), cellY(e.Y)
		dst.SetCell(x, y, 'O', core.ColorGray)
		// Big rocks get a wider body
		if e.Radius >= 20 {
			dst.SetCell(x-1, y, '(', core.ColorDimGray)
			dst.SetCell(x+1, y, ')', core.ColorDimGray)
		}
	case sim.KindBlob:
		dst.SetCell(cellX(e.X), cellY(e.Y), blobChar, core.ColorBrightGreen)
	case sim.KindRed:
		dst.SetCell(cellX(e.X), cellY(e.Y), redChar, core.ColorBrightRed)
	case sim.KindSnake:
		for i := len(e.Segments) - 1; i >= 1; i-- {
			seg := e.Segments[i]
			dst.SetCell(cellX(seg.X), cellY(seg.Y), snakeChar, core.ColorMagenta)
		}
		if len(e.Segments) > 0 {
			dst.SetCell(cellX(e.Segments[0].X), cellY(e.Segments[0].Y), snakeHead, core.ColorBrightMagenta)
		}
	}
}

// drawHUD renders the energy bar and score on the top row.
func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	pct := 0.0
	if snap.Player.EnergyMax > 0 {
		pct = snap.Player.Energy / snap.Player.EnergyMax
	}
	filled := int(pct * float64(energyBarWidth))

	dst.DrawText(0, 0, "NRG ", core.ColorWhite)
	for i := 0; i < energyBarWidth; i++ {
		if i < filled {
			dst.SetCell(4+i, 0, energyFull, core.ColorBrightBlue)
		} else {
			dst.SetCell(4+i, 0, energyEmpt, core.ColorDimGray)
		}
	}

	status := ""
	if snap.Player.BoostActive {
		status += " BOOST"
	}
	if snap.Player.ShieldActive {
		status += " SHIELD"
	}
	dst.DrawText(4+energyBarWidth+1, 0, status, core.ColorBrightCyan)

	score := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawText(dst.Width()-len(score)-1, 0, score, core.ColorWhite)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
