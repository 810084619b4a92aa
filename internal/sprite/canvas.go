package sprite

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/grid"
)

// Cell scale limits for projecting one grid cell onto the terminal.
const (
	minCellCols = 3
	maxCellCols = 16
	minCellRows = 1
	maxCellRows = 4
)

// Canvas is a drawing surface over a core.Screen. Pixel coordinates are
// scaled so one grid cell covers CellCols x CellRows terminal cells.
type Canvas struct {
	dst      *core.Screen
	layout   grid.Layout
	cellCols int
	cellRows int
	originX  int // Screen column of canvas pixel x=0
	originY  int // Screen row of canvas pixel y=0
}

// NewCanvas fits the layout's visible field into dst below a reserved
// header of headerRows lines and centers it horizontally.
func NewCanvas(dst *core.Screen, layout grid.Layout, headerRows int) *Canvas {
	columns := max(layout.MaxColumn(), 1)
	rows := max(layout.MaxRow(), 1)

	cellCols := core.Clamp(dst.Width()/columns, minCellCols, maxCellCols)
	cellRows := core.Clamp((dst.Height()-headerRows-1)/rows, minCellRows, maxCellRows)

	return &Canvas{
		dst:      dst,
		layout:   layout,
		cellCols: cellCols,
		cellRows: cellRows,
		originX:  core.Max((dst.Width()-columns*cellCols)/2, 0),
		originY:  headerRows,
	}
}

// CellCols returns the terminal columns used per grid column.
func (c *Canvas) CellCols() int {
	return c.cellCols
}

// CellRows returns the terminal rows used per grid row.
func (c *Canvas) CellRows() int {
	return c.cellRows
}

// FieldRect returns the screen area covered by the visible grid.
func (c *Canvas) FieldRect() core.Rect {
	return core.NewRect(c.originX, c.originY,
		c.layout.MaxColumn()*c.cellCols, c.layout.MaxRow()*c.cellRows)
}

// Project converts a canvas pixel position to a screen cell position.
func (c *Canvas) Project(x, y int) (int, int) {
	sx := c.originX + core.FloorDiv(x*c.cellCols, c.layout.CellW)
	sy := c.originY + core.FloorDiv(y*c.cellRows, c.layout.CellH)
	return sx, sy
}

// DrawImage draws img with its top-left corner at canvas pixel (x, y).
// The glyph art is stretched nearest-neighbor over the projected box and
// anything outside the visible field is clipped.
func (c *Canvas) DrawImage(img Image, x, y int) {
	if img.Empty() {
		return
	}

	top := y + img.ArtOffsetY
	x0, y0 := c.Project(x, top)
	x1, y1 := c.Project(x+img.Width, top+img.ArtHeight)
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return
	}

	field := c.FieldRect()
	artH := len(img.Art)
	artW := len(img.Art[0])
	if artW == 0 {
		return
	}

	for dy := 0; dy < h; dy++ {
		row := img.Art[dy*artH/h]
		for dx := 0; dx < w; dx++ {
			r := row[dx*artW/w]
			if r == ' ' {
				continue
			}
			sx, sy := x0+dx, y0+dy
			if !field.Contains(sx, sy) {
				continue
			}
			c.dst.SetColored(sx, sy, r, img.Color)
		}
	}
}
