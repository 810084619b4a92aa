package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-crossing/internal/grid"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the reference crossing configuration.
// It mirrors defaults/crossing.yaml.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Grid: GridConfig{
			CellWidth:               grid.DefaultCellW,
			CellHeight:              grid.DefaultCellH,
			CanvasWidth:             grid.DefaultCanvasW,
			CanvasHeight:            grid.DefaultCanvasH,
			SpriteOffset:            grid.DefaultSpriteOffset,
			PlayerOffset:            grid.DefaultPlayerOffset,
			PlayerSpriteHeightGuard: grid.DefaultPlayerSpriteHeightGuard,
		},
		Obstacles: ObstacleConfig{
			Count:     3,
			MinColumn: 1,
			MaxColumn: 5,
			MinRow:    1,
			MaxRow:    6,
		},
		Hazards: HazardConfig{
			Rows:       []int{4, 3, 3, 2, 2, 2},
			MinSpeed:   50,
			MaxSpeed:   150,
			MinStagger: 1,
			MaxStagger: 500,
		},
		Player: PlayerConfig{
			HomeColumn: 3,
			HomeRow:    6,
		},
		Rules: RulesConfig{
			ResetOnHazardHit: false,
		},
		Sprites: SpriteIDsConfig{
			Hazard:   "images/enemy-bug.png",
			Player:   "images/char-horn-girl.png",
			Obstacle: "images/Rock.png",
			Water:    "images/water-block.png",
			Stone:    "images/stone-block.png",
			Grass:    "images/grass-block.png",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
