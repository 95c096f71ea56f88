package render

import (
	"math"

	"github.com/lixenwraith/rockstorm/parameter"
	"github.com/lixenwraith/rockstorm/vmath"
)

// Viewport maps between terminal cells and world coordinates
// The top HUDRows rows hold the HUD, the playfield starts below them with world Y growing downward
type Viewport struct {
	Cols int
	Rows int
}

// FieldRows returns the playfield height in cells
func (v Viewport) FieldRows() int {
	return max(v.Rows-parameter.HUDRows, 0)
}

// WorldSize returns the world extent covered by the playfield
func (v Viewport) WorldSize() (width, height float64) {
	return float64(v.Cols) * parameter.CellWorldWidth, float64(v.FieldRows()) * parameter.CellWorldHeight
}

// CellToWorld returns the world position of a cell's center
func (v Viewport) CellToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(x) + 0.5) * parameter.CellWorldWidth,
		Y: (float64(y-parameter.HUDRows) + 0.5) * parameter.CellWorldHeight,
	}
}

// WorldToCell returns the cell containing p, ok is false outside the playfield
func (v Viewport) WorldToCell(p vmath.Vec2) (x, y int, ok bool) {
	cx := int(math.Floor(p.X / parameter.CellWorldWidth))
	cy := int(math.Floor(p.Y / parameter.CellWorldHeight))
	if cx < 0 || cx >= v.Cols || cy < 0 || cy >= v.FieldRows() {
		return 0, 0, false
	}
	return cx, cy + parameter.HUDRows, true
}
