package crossing

// HazardSnapshot is the observable state of one hazard.
type HazardSnapshot struct {
	Row   int
	X, Y  int
	Speed int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frames    uint64
	Paused    bool
	Hits      int
	Player    Position
	Obstacles []Cell
	Hazards   []HazardSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frames: g.frames,
		Paused: g.paused,
		Hits:   g.hits,
		Player: g.player.Position(),
	}
	for _, o := range g.obstacles.Obstacles() {
		s.Obstacles = append(s.Obstacles, Cell{Column: o.Column, Row: o.Row})
	}
	for _, h := range g.hazards {
		x, y := h.Position()
		s.Hazards = append(s.Hazards, HazardSnapshot{Row: h.Row(), X: x, Y: y, Speed: h.Speed()})
	}
	return s
}
