package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/sim"
	"github.com/lixenwraith/hillclimb/stunt"
	"github.com/lixenwraith/hillclimb/terrain"
	"github.com/lixenwraith/hillclimb/vmath"
)

var (
	styleSky     = tcell.StyleDefault.Background(tcell.NewRGBColor(18, 24, 38))
	styleSurface = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 200, 80)).Background(tcell.NewRGBColor(18, 24, 38))
	styleGround  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 60, 30)).Background(tcell.NewRGBColor(60, 40, 20))
	styleCoin    = styleSky.Foreground(tcell.ColorGold).Bold(true)
	styleFuel    = styleSky.Foreground(tcell.ColorRed).Bold(true)
	styleBody    = styleSky.Foreground(tcell.ColorSilver)
	styleWheel   = styleSky.Foreground(tcell.ColorWhite).Bold(true)
	styleHead    = styleSky.Foreground(tcell.ColorYellow)
	styleCrash   = styleSky.Foreground(tcell.ColorRed).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
)

// Runes
const (
	runeSurface = '▀'
	runeGround  = '▓'
	runeCoin    = '$'
	runeFuel    = 'F'
	runeBody    = '='
	runeWheel   = 'O'
	runeHead    = '@'
)

// Terminal rasterizes snapshots onto a tcell screen
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a renderer for screen
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Draw renders one frame and shows it
func (r *Terminal) Draw(s sim.Snapshot) {
	cols, rows := r.screen.Size()
	r.screen.SetStyle(styleSky)
	r.screen.Clear()
	if cols <= 0 || rows <= HUDRows {
		r.screen.Show()
		return
	}
	v := NewViewport(s, cols, rows)

	r.drawTerrain(v, s.Terrain)
	r.drawCollectibles(v, s.Collectibles)
	r.drawRig(v, s)
	r.drawHUD(cols, s)
	if s.Terminal != nil {
		r.drawReport(cols, rows, s.Terminal)
	}
	r.screen.Show()
}

func (r *Terminal) drawTerrain(v Viewport, samples []terrain.Sample) {
	for col := range v.Cols {
		gy, ok := HeightIn(samples, v.WorldX(col))
		if !ok {
			continue
		}
		_, surface := v.Cell(vmath.V2(0, gy))
		surface = max(surface, HUDRows)
		for row := surface; row < v.Rows; row++ {
			if row == surface {
				r.screen.SetContent(col, row, runeSurface, nil, styleSurface)
			} else {
				r.screen.SetContent(col, row, runeGround, nil, styleGround)
			}
		}
	}
}

func (r *Terminal) drawCollectibles(v Viewport, items []terrain.Collectible) {
	for _, c := range items {
		col, row := v.Cell(vmath.V2(c.X, c.Y))
		if !v.Visible(col, row) {
			continue
		}
		if c.Kind == terrain.KindFuel {
			r.screen.SetContent(col, row, runeFuel, nil, styleFuel)
		} else {
			r.screen.SetContent(col, row, runeCoin, nil, styleCoin)
		}
	}
}

func (r *Terminal) drawRig(v Viewport, s sim.Snapshot) {
	r.line(v, s.Rear, s.Chassis, runeBody, styleBody)
	r.line(v, s.Chassis, s.Front, runeBody, styleBody)
	r.plot(v, s.Rear, runeWheel, styleWheel)
	r.plot(v, s.Front, runeWheel, styleWheel)

	head := styleHead
	if s.Terminal != nil && s.Terminal.Cause == sim.CauseHeadStrike {
		head = styleCrash
	}
	r.plot(v, s.Head, runeHead, head)
}

func (r *Terminal) plot(v Viewport, p vmath.Vec2, ch rune, style tcell.Style) {
	if col, row := v.Cell(p); v.Visible(col, row) {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// line draws between two world points with Bresenham stepping in cell space
func (r *Terminal) line(v Viewport, a, b vmath.Vec2, ch rune, style tcell.Style) {
	x0, y0 := v.Cell(a)
	x1, y1 := v.Cell(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		if v.Visible(x0, y0) {
			r.screen.SetContent(x0, y0, ch, nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// HUD formats the status line for a snapshot
func HUD(s sim.Snapshot) string {
	st := s.State
	line := fmt.Sprintf(" FUEL %s  NITRO %s  %7.1fm  $%d",
		Bar(st.Fuel, parameter.FuelMax, 10), Bar(st.Nitro, parameter.NitroMax, 10), st.Distance, st.Coins)
	if st.Stunt == stunt.Airborne {
		line += fmt.Sprintf("  AIR %.1fs", float64(st.AirTicks)/parameter.TickRate)
	}
	return line
}

// Bar renders value/limit as a fixed-width gauge
func Bar(value, limit float64, width int) string {
	filled := int(value / limit * float64(width))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func (r *Terminal) drawHUD(cols int, s sim.Snapshot) {
	r.text(0, 0, cols, padRight(HUD(s), cols), styleHUD)
}

func (r *Terminal) drawReport(cols, rows int, rep *sim.Report) {
	msg := fmt.Sprintf("  RUN OVER: %s  %.1fm  $%d  air %.1fs  ", rep.Cause, rep.FinalDistance, rep.FinalCoins, rep.AirTimeSeconds)
	x := max((cols-len([]rune(msg)))/2, 0)
	r.text(x, rows/2, cols, msg, styleBanner)
}

func (r *Terminal) text(x, y, cols int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= cols {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func padRight(s string, n int) string {
	if pad := n - len([]rune(s)); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
