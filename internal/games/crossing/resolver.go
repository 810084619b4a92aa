package crossing

import "github.com/vovakirdan/tui-crossing/internal/grid"

// Position is the full movement state of the player.
type Position struct {
	X, Y        int
	Column, Row int
}

// Resolver validates single-cell player moves.
//
// The bound checks look at the pre-move pixel coordinate on each axis,
// not the grid cell, so the reachable area depends on the sprite offsets.
// After a tentative move the destination is checked against the blocked
// cells and the whole move is dropped if it is occupied.
type Resolver struct {
	layout  grid.Layout
	blocked Occupancy
}

// NewResolver creates a resolver. A nil blocked set, or a nil *Registry, means no obstacles.
func NewResolver(layout grid.Layout, blocked Occupancy) *Resolver {
	return &Resolver{layout: layout, blocked: blocked}
}

// Resolve returns the position after attempting d from p. A rejected move
// returns p unchanged.
func (r *Resolver) Resolve(p Position, d Direction) Position {
	next := r.tentative(p, d)
	if r.blocked != nil && r.blocked.Occupies(next.Column, next.Row) {
		return p
	}
	return next
}

// tentative applies the bound check for d and, if it passes, moves one cell.
func (r *Resolver) tentative(p Position, d Direction) Position {
	l := r.layout
	switch d {
	case DirLeft:
		if p.X-l.CellW >= 0 {
			p.X -= l.CellW
			p.Column--
		}
	case DirRight:
		if p.X+l.CellW < l.CanvasW {
			p.X += l.CellW
			p.Column++
		}
	case DirUp:
		// CellH/2 is fractional for odd row heights
		if float64(p.Y)-float64(l.CellH)/2 >= 0 {
			p.Y -= l.CellH
			p.Row--
		}
	case DirDown:
		if p.Y+l.PlayerSpriteHeightGuard+l.CellH <= l.CanvasH {
			p.Y += l.CellH
			p.Row++
		}
	}
	return p
}
