package crossing

import "github.com/vovakirdan/tui-crossing/internal/sprite"

// fakeResources serves fixed images by id; unknown ids get the zero image.
type fakeResources map[string]sprite.Image

func (f fakeResources) Get(id string) sprite.Image {
	return f[id]
}

// cellSet is an Occupancy backed by a set of cells.
type cellSet map[Cell]bool

func (c cellSet) Occupies(column, row int) bool {
	return c[Cell{Column: column, Row: row}]
}

type drawCall struct {
	id   string
	x, y int
}

// recordingSurface remembers every draw call.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) DrawImage(img sprite.Image, x, y int) {
	s.calls = append(s.calls, drawCall{id: img.ID, x: x, y: y})
}

var testResources = fakeResources{
	"bug":  {ID: "bug", Width: 101, Height: 171},
	"rock": {ID: "rock", Width: 101, Height: 171},
	"girl": {ID: "girl", Width: 101, Height: 171},
}
