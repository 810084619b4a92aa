package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/grid"
)

// Player is the grid-bound actor controlled by the user.
// It always rests on a cell and moves one whole cell per command.
type Player struct {
	SpriteID string

	layout   grid.Layout
	home     Cell
	pos      Position
	resolver *Resolver
}

// NewPlayer creates a player at its home cell. Moves into cells reported
// by blocked are rejected.
func NewPlayer(layout grid.Layout, spriteID string, home Cell, blocked Occupancy) *Player {
	p := &Player{
		SpriteID: spriteID,
		layout:   layout,
		home:     home,
		resolver: NewResolver(layout, blocked),
	}
	p.Reset()
	return p
}

// Reset returns the player to the home cell.
func (p *Player) Reset() {
	x, y := p.layout.PlayerOrigin(p.home.Column, p.home.Row)
	p.pos = Position{X: x, Y: y, Column: p.home.Column, Row: p.home.Row}
}

// HandleCommand attempts a single-cell move and reports whether it was
// committed. Out-of-bounds and blocked moves leave the player untouched,
// as does DirNone.
func (p *Player) HandleCommand(d Direction) bool {
	before := p.pos
	p.pos = p.resolver.Resolve(before, d)
	return p.pos != before
}

// Position returns the player's current movement state.
func (p *Player) Position() Position {
	return p.pos
}

// Home returns the player's home cell.
func (p *Player) Home() Cell {
	return p.home
}

// Draw renders the player. It does not change any state.
func (p *Player) Draw(res Resources, dst Surface) {
	dst.DrawImage(res.Get(p.SpriteID), p.pos.X, p.pos.Y)
}

// Box returns the lane-height hit box of the player.
func (p *Player) Box() core.Rect {
	return core.NewRect(p.pos.X, p.layout.RowTop(p.pos.Row), p.layout.CellW, p.layout.CellH)
}
