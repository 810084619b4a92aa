// Package grid maps 1-based grid cells to canvas pixel positions and back.
//
// Columns grow to the right and rows grow downward. Row 0 lies above the
// visible field and only appears while deriving coordinates. All functions
// are pure; a Layout is a plain value that can be shared freely.
package grid

import "github.com/vovakirdan/tui-crossing/internal/core"

// Reference layout constants.
const (
	DefaultCellW                   = 101
	DefaultCellH                   = 83
	DefaultCanvasW                 = 505
	DefaultCanvasH                 = 606
	DefaultSpriteOffset            = 25
	DefaultPlayerOffset            = 9
	DefaultPlayerSpriteHeightGuard = 171
)

// Layout holds the pixel geometry of the playing field.
type Layout struct {
	CellW   int // Column width in pixels
	CellH   int // Row height in pixels
	CanvasW int // Canvas width in pixels
	CanvasH int // Canvas height in pixels

	// SpriteOffset lifts hazards and obstacles so they sit centered in a cell.
	SpriteOffset int

	// PlayerOffset lifts the player sprite. It is a separate cosmetic tunable
	// and is not derived from SpriteOffset.
	PlayerOffset int

	// PlayerSpriteHeightGuard is the sprite height used by the downward
	// bound check of player moves.
	PlayerSpriteHeightGuard int
}

// DefaultLayout returns the reference 5x6 field on a 505x606 canvas.
func DefaultLayout() Layout {
	return Layout{
		CellW:                   DefaultCellW,
		CellH:                   DefaultCellH,
		CanvasW:                 DefaultCanvasW,
		CanvasH:                 DefaultCanvasH,
		SpriteOffset:            DefaultSpriteOffset,
		PlayerOffset:            DefaultPlayerOffset,
		PlayerSpriteHeightGuard: DefaultPlayerSpriteHeightGuard,
	}
}

// CellOrigin returns the top-left pixel of a hazard or obstacle sprite in the cell.
func (l Layout) CellOrigin(column, row int) (x, y int) {
	return (column - 1) * l.CellW, (row-1)*l.CellH - l.SpriteOffset
}

// PlayerOrigin returns the top-left pixel of the player sprite in the cell.
func (l Layout) PlayerOrigin(column, row int) (x, y int) {
	return (column - 1) * l.CellW, (row-1)*l.CellH - l.PlayerOffset
}

// CellAt returns the cell whose CellOrigin region contains the pixel.
// It inverts CellOrigin exactly for origins and floors everything else.
func (l Layout) CellAt(x, y int) (column, row int) {
	return core.FloorDiv(x, l.CellW) + 1, core.FloorDiv(y+l.SpriteOffset, l.CellH) + 1
}

// RowTop returns the y pixel of the top edge of a row, without sprite offsets.
func (l Layout) RowTop(row int) int {
	return (row - 1) * l.CellH
}

// MaxColumn returns the number of whole columns on the canvas.
func (l Layout) MaxColumn() int {
	return l.CanvasW / l.CellW
}

// MaxRow returns the last row the player sprite fits in above the bottom edge.
func (l Layout) MaxRow() int {
	return (l.CanvasH-l.PlayerSpriteHeightGuard+l.PlayerOffset)/l.CellH + 1
}

// Contains reports whether the cell lies within [1, MaxColumn] x [1, MaxRow].
func (l Layout) Contains(column, row int) bool {
	return column >= 1 && column <= l.MaxColumn() && row >= 1 && row <= l.MaxRow()
}
