// Package crossing implements a lane-crossing arcade game. The player hops
// across a 5x6 grid while bugs crawl along the stone lanes and rocks block
// random cells.
package crossing

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/grid"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

// Game identifiers.
const (
	ClassicID  = "crossing"
	SurvivalID = "crossing_survival"
)

// hudRows is the number of screen lines above the field.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game owns every entity of one crossing session and drives them per frame.
type Game struct {
	id       string
	survival bool

	cfg     config.CrossingConfig
	layout  grid.Layout
	runtime core.RuntimeConfig
	atlas   *sprite.Atlas
	rng     *rand.Rand

	obstacles *Registry
	hazards   []*Hazard
	player    *Player

	paused bool
	hits   int
	frames uint64
}

// New creates the classic game, where bugs and the player never interact.
func New() *Game {
	return &Game{id: ClassicID, atlas: sprite.Default()}
}

// NewSurvival creates the variant where touching a bug sends the player home.
func NewSurvival() *Game {
	return &Game{id: SurvivalID, survival: true, atlas: sprite.Default()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.survival {
		return "Crossing (Survival)"
	}
	return "Crossing"
}

// Reset loads configuration and builds a fresh field.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		cfg = config.DefaultCrossingConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrossingPreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig builds a fresh field from an explicit configuration.
// The config must be valid.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.CrossingConfig) {
	if g.survival {
		cfg.Rules.ResetOnHazardHit = true
	}

	g.runtime = runtime
	g.cfg = cfg
	g.layout = cfg.Layout()
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.paused = false
	g.hits = 0
	g.frames = 0

	g.obstacles = NewRegistry(g.rng, cfg.Obstacles.Count, Bounds{
		MinColumn: cfg.Obstacles.MinColumn,
		MaxColumn: cfg.Obstacles.MaxColumn,
		MinRow:    cfg.Obstacles.MinRow,
		MaxRow:    cfg.Obstacles.MaxRow,
	}, g.layout, cfg.Sprites.Obstacle)

	motion := Motion{
		MinSpeed:   cfg.Hazards.MinSpeed,
		MaxSpeed:   cfg.Hazards.MaxSpeed,
		MinStagger: cfg.Hazards.MinStagger,
		MaxStagger: cfg.Hazards.MaxStagger,
	}
	g.hazards = make([]*Hazard, 0, len(cfg.Hazards.Rows))
	for _, row := range cfg.Hazards.Rows {
		g.hazards = append(g.hazards, NewHazard(row, cfg.Sprites.Hazard, g.layout, motion, g.rng))
	}

	home := Cell{Column: cfg.Player.HomeColumn, Row: cfg.Player.HomeRow}
	g.player = NewPlayer(g.layout, cfg.Sprites.Player, home, g.obstacles)
}

// Step advances the game by dt seconds and applies the frame's moves.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frames++

	for _, h := range g.hazards {
		h.Advance(dt, g.atlas)
	}

	for _, a := range in.Queue {
		if a.IsMove() {
			g.player.HandleCommand(DirectionFromAction(a))
		}
	}

	if g.cfg.Rules.ResetOnHazardHit && g.playerHit() {
		g.player.Reset()
		g.hits++
	}

	return core.StepResult{State: g.State()}
}

// playerHit reports whether any hazard overlaps the player's lane box.
func (g *Game) playerHit() bool {
	box := g.player.Box()
	for _, h := range g.hazards {
		if h.Row() == g.player.Position().Row && h.Box(g.atlas).Intersects(box) {
			return true
		}
	}
	return false
}

// Render draws the field, all entities and the HUD. It does not change state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	canvas := sprite.NewCanvas(dst, g.layout, hudRows)
	g.drawLanes(canvas)
	g.obstacles.Draw(g.atlas, canvas)
	for _, h := range g.hazards {
		h.Draw(g.atlas, canvas)
	}
	g.player.Draw(g.atlas, canvas)

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawLanes tiles the field: water on the top row, stone under hazard
// lanes, grass elsewhere.
func (g *Game) drawLanes(canvas *sprite.Canvas) {
	stone := make(map[int]bool, len(g.hazards))
	for _, h := range g.hazards {
		stone[h.Row()] = true
	}

	for row := 1; row <= g.layout.MaxRow(); row++ {
		id := g.cfg.Sprites.Grass
		switch {
		case row == 1:
			id = g.cfg.Sprites.Water
		case stone[row]:
			id = g.cfg.Sprites.Stone
		}
		tile := g.atlas.Get(id)
		for col := 1; col <= g.layout.MaxColumn(); col++ {
			canvas.DrawImage(tile, (col-1)*g.layout.CellW, g.layout.RowTop(row))
		}
	}
}

// drawHUD draws the title and player cell on the top line.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(1, 0, " "+g.Title()+" ")

	pos := g.player.Position()
	status := fmt.Sprintf(" Col %d  Row %d ", pos.Column, pos.Row)
	if g.survival {
		status = fmt.Sprintf(" Hits: %d |%s", g.hits, status)
	}
	dst.DrawText(dst.Width()-len(status)-1, 0, status)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused: g.paused,
		Hits:   g.hits,
	}
}

// Player returns the player actor.
func (g *Game) Player() *Player {
	return g.player
}

// Hazards returns the active hazards.
func (g *Game) Hazards() []*Hazard {
	return g.hazards
}

// Obstacles returns the obstacle registry.
func (g *Game) Obstacles() *Registry {
	return g.obstacles
}

// Register the game with the registry
func init() {
	registry.Register(ClassicID, func() registry.Game {
		return New()
	})
	registry.Register(SurvivalID, func() registry.Game {
		return NewSurvival()
	})
}
