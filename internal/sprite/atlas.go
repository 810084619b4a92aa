// Package sprite provides the image lookup and drawing surface used by games.
// Images are glyph art described in YAML; the Canvas draws them onto a
// core.Screen by projecting canvas pixel positions onto terminal cells.
package sprite

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

//go:embed sheets/crossing.yaml
var defaultSheetYAML []byte

// Image is a drawable sprite. Width and Height are in canvas pixels.
type Image struct {
	ID         string
	Width      int
	Height     int
	ArtOffsetY int // Transparent pixels above the glyphs
	ArtHeight  int // Pixel height covered by the glyphs
	Color      core.Color
	Art        [][]rune // Rows of equal length; ' ' is transparent
}

// Empty reports whether the image has nothing to draw.
func (img Image) Empty() bool {
	return img.Width <= 0 || len(img.Art) == 0
}

// sheetFile is the on-disk YAML layout of a sprite sheet.
type sheetFile struct {
	Sprites []struct {
		ID         string   `yaml:"id"`
		Width      int      `yaml:"width"`
		Height     int      `yaml:"height"`
		ArtOffsetY int      `yaml:"art_offset_y"`
		ArtHeight  int      `yaml:"art_height"`
		Color      string   `yaml:"color"`
		Art        []string `yaml:"art"`
	} `yaml:"sprites"`
}

// Atlas resolves sprite ids to images.
type Atlas struct {
	images map[string]Image
}

// Parse builds an atlas from a YAML sprite sheet.
func Parse(data []byte) (*Atlas, error) {
	var sheet sheetFile
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("sprite: cannot parse sheet: %w", err)
	}

	a := &Atlas{images: make(map[string]Image, len(sheet.Sprites))}
	for _, s := range sheet.Sprites {
		if s.ID == "" {
			return nil, fmt.Errorf("sprite: sheet entry without id")
		}
		if _, dup := a.images[s.ID]; dup {
			return nil, fmt.Errorf("sprite: duplicate id %q", s.ID)
		}
		if s.Width < 0 || s.Height < 0 {
			return nil, fmt.Errorf("sprite: %q has negative size", s.ID)
		}
		artHeight := s.ArtHeight
		if artHeight <= 0 {
			artHeight = s.Height
		}
		a.images[s.ID] = Image{
			ID:         s.ID,
			Width:      s.Width,
			Height:     s.Height,
			ArtOffsetY: s.ArtOffsetY,
			ArtHeight:  artHeight,
			Color:      core.ParseColor(s.Color),
			Art:        normalizeArt(s.Art),
		}
	}
	return a, nil
}

// Default returns the atlas built from the embedded sprite sheet.
// It panics if the embedded sheet is malformed.
func Default() *Atlas {
	a, err := Parse(defaultSheetYAML)
	if err != nil {
		panic(err)
	}
	return a
}

// Get returns the image for id. Unknown ids yield a zero-size image with
// only the ID set, which draws nothing.
func (a *Atlas) Get(id string) Image {
	if img, ok := a.images[id]; ok {
		return img
	}
	return Image{ID: id}
}

// Has reports whether the atlas defines id.
func (a *Atlas) Has(id string) bool {
	_, ok := a.images[id]
	return ok
}

// normalizeArt pads all rows to the widest row.
func normalizeArt(rows []string) [][]rune {
	width := 0
	out := make([][]rune, len(rows))
	for i, r := range rows {
		out[i] = []rune(r)
		width = max(width, len(out[i]))
	}
	for i := range out {
		for len(out[i]) < width {
			out[i] = append(out[i], ' ')
		}
	}
	return out
}
