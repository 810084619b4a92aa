package crossing

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/grid"
)

// Cell is a 1-based grid position.
type Cell struct {
	Column, Row int
}

// Bounds is the inclusive range of cells obstacles may be placed in.
type Bounds struct {
	MinColumn, MaxColumn int
	MinRow, MaxRow       int
}

// Obstacle is a rock the player cannot step on. It never moves.
type Obstacle struct {
	SpriteID    string
	Column, Row int
	X, Y        int // Pixel origin, fixed at creation
}

// OccupiesSpace reports whether the obstacle sits exactly on the cell.
func (o Obstacle) OccupiesSpace(column, row int) bool {
	return column == o.Column && row == o.Row
}

// Registry is the fixed set of obstacles for one game.
// It is read-only after construction.
type Registry struct {
	obstacles []Obstacle
}

// NewRegistry places count obstacles at uniformly random cells within bounds.
// Overlapping placements are kept as they are.
func NewRegistry(rng *rand.Rand, count int, bounds Bounds, layout grid.Layout, spriteID string) *Registry {
	cells := make([]Cell, 0, max(count, 0))
	for i := 0; i < count; i++ {
		cells = append(cells, Cell{
			Column: bounds.MinColumn + rng.Intn(bounds.MaxColumn-bounds.MinColumn+1),
			Row:    bounds.MinRow + rng.Intn(bounds.MaxRow-bounds.MinRow+1),
		})
	}
	return NewRegistryAt(layout, spriteID, cells...)
}

// NewRegistryAt places one obstacle on each given cell.
func NewRegistryAt(layout grid.Layout, spriteID string, cells ...Cell) *Registry {
	r := &Registry{obstacles: make([]Obstacle, 0, len(cells))}
	for _, c := range cells {
		x, y := layout.CellOrigin(c.Column, c.Row)
		r.obstacles = append(r.obstacles, Obstacle{
			SpriteID: spriteID,
			Column:   c.Column,
			Row:      c.Row,
			X:        x,
			Y:        y,
		})
	}
	return r
}

// Occupies reports whether any obstacle sits on the cell.
// A nil registry occupies nothing.
func (r *Registry) Occupies(column, row int) bool {
	if r == nil {
		return false
	}
	for _, o := range r.obstacles {
		if o.OccupiesSpace(column, row) {
			return true
		}
	}
	return false
}

// Obstacles returns a copy of the obstacle set.
func (r *Registry) Obstacles() []Obstacle {
	out := make([]Obstacle, len(r.obstacles))
	copy(out, r.obstacles)
	return out
}

// Len returns the number of obstacles, overlaps included.
func (r *Registry) Len() int {
	return len(r.obstacles)
}

// Draw renders every obstacle.
func (r *Registry) Draw(res Resources, dst Surface) {
	for _, o := range r.obstacles {
		dst.DrawImage(res.Get(o.SpriteID), o.X, o.Y)
	}
}
