// Package config provides YAML-based game configuration loading,
// validation, and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossing/internal/grid"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Hazards   HazardConfig    `yaml:"hazards"`
	Player    PlayerConfig    `yaml:"player"`
	Rules     RulesConfig     `yaml:"rules"`
	Sprites   SpriteIDsConfig `yaml:"sprites"`
}

// GridConfig defines the pixel geometry of the field.
type GridConfig struct {
	CellWidth               int `yaml:"cell_width"`
	CellHeight              int `yaml:"cell_height"`
	CanvasWidth             int `yaml:"canvas_width"`
	CanvasHeight            int `yaml:"canvas_height"`
	SpriteOffset            int `yaml:"sprite_offset"`
	PlayerOffset            int `yaml:"player_offset"`
	PlayerSpriteHeightGuard int `yaml:"player_sprite_height_guard"`
}

// ObstacleConfig defines how many rocks are placed and where they may land.
type ObstacleConfig struct {
	Count     int `yaml:"count"`
	MinColumn int `yaml:"min_column"`
	MaxColumn int `yaml:"max_column"`
	MinRow    int `yaml:"min_row"`
	MaxRow    int `yaml:"max_row"`
}

// HazardConfig defines the hazard lanes and motion ranges.
type HazardConfig struct {
	Rows       []int `yaml:"rows"`        // One hazard per entry, in that row
	MinSpeed   int   `yaml:"min_speed"`   // Inclusive, pixels per second
	MaxSpeed   int   `yaml:"max_speed"`   // Exclusive
	MinStagger int   `yaml:"min_stagger"` // Inclusive, extra pixels left of the canvas
	MaxStagger int   `yaml:"max_stagger"` // Inclusive
}

// PlayerConfig defines the player's home cell.
type PlayerConfig struct {
	HomeColumn int `yaml:"home_column"`
	HomeRow    int `yaml:"home_row"`
}

// RulesConfig toggles optional rules.
type RulesConfig struct {
	// ResetOnHazardHit sends the player home when a hazard touches them.
	ResetOnHazardHit bool `yaml:"reset_on_hazard_hit"`
}

// SpriteIDsConfig names the sprite used for each entity and lane.
type SpriteIDsConfig struct {
	Hazard   string `yaml:"hazard"`
	Player   string `yaml:"player"`
	Obstacle string `yaml:"obstacle"`
	Water    string `yaml:"water"`
	Stone    string `yaml:"stone"`
	Grass    string `yaml:"grass"`
}

// Layout converts the grid section into a grid.Layout.
func (c CrossingConfig) Layout() grid.Layout {
	return grid.Layout{
		CellW:                   c.Grid.CellWidth,
		CellH:                   c.Grid.CellHeight,
		CanvasW:                 c.Grid.CanvasWidth,
		CanvasH:                 c.Grid.CanvasHeight,
		SpriteOffset:            c.Grid.SpriteOffset,
		PlayerOffset:            c.Grid.PlayerOffset,
		PlayerSpriteHeightGuard: c.Grid.PlayerSpriteHeightGuard,
	}
}

// Validate reports every impossible value at once.
// The returned error matches ErrInvalidConfig with errors.Is.
func (c CrossingConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	g := c.Grid
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		add("grid: cell size must be positive, got %dx%d", g.CellWidth, g.CellHeight)
	}
	if g.CanvasWidth < g.CellWidth || g.CanvasHeight < g.CellHeight {
		add("grid: canvas %dx%d smaller than one cell", g.CanvasWidth, g.CanvasHeight)
	}

	// Remaining checks need a usable layout
	if len(errs) > 0 {
		return joinInvalid(errs)
	}
	layout := c.Layout()
	if layout.MaxRow() < 1 {
		add("grid: player sprite guard %d leaves no playable row", g.PlayerSpriteHeightGuard)
	}

	// The move guards test pixels, so they must stop exactly at the grid edges
	if g.CanvasWidth%g.CellWidth != 0 {
		add("grid: canvas width %d is not a multiple of cell width %d", g.CanvasWidth, g.CellWidth)
	}
	half := float64(g.CellHeight) / 2
	if float64(-g.PlayerOffset)-half >= 0 {
		add("grid: player offset %d lets the player move above row 1", g.PlayerOffset)
	}
	if layout.MaxRow() >= 2 && float64(g.CellHeight-g.PlayerOffset)-half < 0 {
		add("grid: player offset %d blocks moving up from row 2", g.PlayerOffset)
	}

	o := c.Obstacles
	if o.Count < 0 {
		add("obstacles: count must not be negative, got %d", o.Count)
	}
	if o.MinColumn > o.MaxColumn || o.MinRow > o.MaxRow {
		add("obstacles: bounds are inverted")
	}
	if o.Count > 0 && (!layout.Contains(o.MinColumn, o.MinRow) || !layout.Contains(o.MaxColumn, o.MaxRow)) {
		add("obstacles: bounds [%d,%d]x[%d,%d] leave the grid", o.MinColumn, o.MaxColumn, o.MinRow, o.MaxRow)
	}

	h := c.Hazards
	for _, row := range h.Rows {
		if row < 1 || row > layout.MaxRow() {
			add("hazards: row %d outside [1,%d]", row, layout.MaxRow())
		}
	}
	if h.MinSpeed <= 0 || h.MaxSpeed <= h.MinSpeed {
		add("hazards: speed range [%d,%d) is empty or not positive", h.MinSpeed, h.MaxSpeed)
	}
	if h.MinStagger < 0 || h.MaxStagger < h.MinStagger {
		add("hazards: stagger range [%d,%d] is invalid", h.MinStagger, h.MaxStagger)
	}

	if !layout.Contains(c.Player.HomeColumn, c.Player.HomeRow) {
		add("player: home cell (%d,%d) outside the grid", c.Player.HomeColumn, c.Player.HomeRow)
	}

	if len(errs) > 0 {
		return joinInvalid(errs)
	}
	return nil
}

func joinInvalid(errs []error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Empty or unknown values
// return "" which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// speedScale returns the hazard speed multiplier for a preset.
func speedScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.6
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyCrossingPreset rescales the hazard speed range for a difficulty preset.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	scale := speedScale(preset)
	if scale == 1.0 {
		return
	}
	cfg.Hazards.MinSpeed = max(int(math.Round(float64(cfg.Hazards.MinSpeed)*scale)), 1)
	cfg.Hazards.MaxSpeed = max(int(math.Round(float64(cfg.Hazards.MaxSpeed)*scale)), cfg.Hazards.MinSpeed+1)
}
