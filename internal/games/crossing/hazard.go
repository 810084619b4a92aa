package crossing

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/grid"
)

// Motion holds the random ranges a hazard draws from on reset.
type Motion struct {
	MinSpeed   int // Pixels per second, inclusive
	MaxSpeed   int // Exclusive
	MinStagger int // Extra pixels left of the canvas, inclusive
	MaxStagger int // Inclusive
}

// Hazard is a bug that crawls rightward along one row forever.
type Hazard struct {
	SpriteID string

	row    int
	x, y   int
	speed  int
	layout grid.Layout
	motion Motion
	rng    *rand.Rand
}

// NewHazard creates a hazard in row and places it off-screen.
func NewHazard(row int, spriteID string, layout grid.Layout, motion Motion, rng *rand.Rand) *Hazard {
	h := &Hazard{
		SpriteID: spriteID,
		row:      row,
		layout:   layout,
		motion:   motion,
		rng:      rng,
	}
	h.Reset()
	return h
}

// Reset staggers the hazard a random distance left of the canvas and
// picks a new speed.
func (h *Hazard) Reset() {
	stagger := h.motion.MinStagger + h.rng.Intn(h.motion.MaxStagger-h.motion.MinStagger+1)
	h.x = -(h.layout.CellW + stagger)
	_, h.y = h.layout.CellOrigin(1, h.row)
	h.speed = h.motion.MinSpeed + h.rng.Intn(h.motion.MaxSpeed-h.motion.MinSpeed)
}

// Advance moves the hazard by speed*dt pixels, rounding half up.
// Once it passes the right edge it wraps to just left of the canvas,
// keeping its speed. The wrap does not restagger like Reset does.
func (h *Hazard) Advance(dt float64, res Resources) {
	h.x = int(math.Floor(float64(h.x) + float64(h.speed)*dt + 0.5))
	if h.x > h.layout.CanvasW {
		h.x = -res.Get(h.SpriteID).Width
	}
}

// Draw renders the hazard at its current position.
func (h *Hazard) Draw(res Resources, dst Surface) {
	dst.DrawImage(res.Get(h.SpriteID), h.x, h.y)
}

// Row returns the fixed row of the hazard.
func (h *Hazard) Row() int {
	return h.row
}

// Position returns the pixel origin of the hazard sprite.
func (h *Hazard) Position() (x, y int) {
	return h.x, h.y
}

// Speed returns the current speed in pixels per second.
func (h *Hazard) Speed() int {
	return h.speed
}

// Box returns the lane-height hit box of the hazard.
func (h *Hazard) Box(res Resources) core.Rect {
	return core.NewRect(h.x, h.layout.RowTop(h.row), res.Get(h.SpriteID).Width, h.layout.CellH)
}
