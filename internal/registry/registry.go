// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "crossing").
	// Used for CLI commands and the menu.
	ID() string

	// Title returns a human-readable name for display (e.g., "Crossing").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when the player restarts.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds of elapsed frame time.
	// Input is abstracted to platform-level actions (Left, Pause, etc.).
	// Returns the result of this frame including current game state.
	Step(dt float64, in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

// set is a concurrency-safe collection of factories keyed by game ID.
type set struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func newSet() *set {
	return &set{entries: make(map[string]entry)}
}

var games = newSet()

func (s *set) register(id string, f Factory) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Title comes from a throwaway instance
	s.entries[id] = entry{factory: f, title: f().Title()}
}

func (s *set) list() []GameInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]GameInfo, 0, len(s.entries))
	for id, e := range s.entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

func (s *set) create(id string) (Game, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

func (s *set) exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[id]
	return ok
}

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	games.register(id, f)
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	return games.list()
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	return games.create(id)
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	return games.exists(id)
}
