package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

// Resources looks up sprite images by id.
type Resources interface {
	Get(id string) sprite.Image
}

// Surface draws an image with its top-left corner at a canvas pixel.
type Surface interface {
	DrawImage(img sprite.Image, x, y int)
}

// Occupancy answers whether a grid cell is blocked.
type Occupancy interface {
	Occupies(column, row int) bool
}

// Direction is a single-cell player move.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// DirectionFromAction maps a platform action to a move.
// Anything that is not a movement action maps to DirNone.
func DirectionFromAction(a core.Action) Direction {
	switch a {
	case core.ActionLeft:
		return DirLeft
	case core.ActionUp:
		return DirUp
	case core.ActionRight:
		return DirRight
	case core.ActionDown:
		return DirDown
	default:
		return DirNone
	}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}
