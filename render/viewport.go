package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/hillclimb/sim"
	"github.com/lixenwraith/hillclimb/terrain"
	"github.com/lixenwraith/hillclimb/vmath"
)

const (
	// CellAspect is terminal cell height over width
	CellAspect = 2.0
	// ChassisRow is the fraction of the play area above the chassis
	ChassisRow = 0.55
	// HUDRows is reserved at the top of the screen
	HUDRows = 1
)

// Viewport maps world space onto terminal cells
type Viewport struct {
	Cols, Rows int
	Left, Top  float64 // World coordinates of the top-left cell corner
	CellW      float64
	CellH      float64
}

// NewViewport fits the snapshot's view width to cols, following the chassis vertically
func NewViewport(s sim.Snapshot, cols, rows int) Viewport {
	cols = max(cols, 1)
	play := max(rows-HUDRows, 1)
	cellW := s.ViewWidth / float64(cols)
	cellH := cellW * CellAspect
	return Viewport{
		Cols:  cols,
		Rows:  rows,
		Left:  s.Camera,
		Top:   s.Chassis[1] - float64(play)*cellH*ChassisRow - float64(HUDRows)*cellH,
		CellW: cellW,
		CellH: cellH,
	}
}

// Cell returns the cell containing p
func (v Viewport) Cell(p vmath.Vec2) (col, row int) {
	return int(math.Floor((p[0] - v.Left) / v.CellW)), int(math.Floor((p[1] - v.Top) / v.CellH))
}

// WorldX returns the world x at the center of col
func (v Viewport) WorldX(col int) float64 {
	return v.Left + (float64(col)+0.5)*v.CellW
}

// WorldY returns the world y at the center of row
func (v Viewport) WorldY(row int) float64 {
	return v.Top + (float64(row)+0.5)*v.CellH
}

// Visible reports whether a cell lies in the play area below the HUD
func (v Viewport) Visible(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= HUDRows && row < v.Rows
}

// HeightIn interpolates ground height from a sample window, false outside it
func HeightIn(samples []terrain.Sample, x float64) (float64, bool) {
	n := len(samples)
	if n < 2 || x < samples[0].X || x > samples[n-1].X {
		return 0, false
	}
	i := sort.Search(n, func(i int) bool { return samples[i].X > x })
	if i >= n {
		return samples[n-1].Y, true
	}
	a, b := samples[i-1], samples[i]
	return vmath.Lerp(a.Y, b.Y, (x-a.X)/(b.X-a.X)), true
}
