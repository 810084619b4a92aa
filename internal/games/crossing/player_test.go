package crossing

import (
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/grid"
)

var homeCell = Cell{Column: 3, Row: 6}

func TestPlayerStartsHome(t *testing.T) {
	p := NewPlayer(grid.DefaultLayout(), "girl", homeCell, nil)

	want := Position{X: 202, Y: 406, Column: 3, Row: 6}
	if got := p.Position(); got != want {
		t.Errorf("Position() = %+v, expected %+v", got, want)
	}
	if p.Home() != homeCell {
		t.Errorf("Home() = %+v, expected %+v", p.Home(), homeCell)
	}
}

func TestPlayerMoveLeftFromHome(t *testing.T) {
	p := NewPlayer(grid.DefaultLayout(), "girl", homeCell, nil)
	before := p.Position()

	if !p.HandleCommand(DirLeft) {
		t.Fatal("HandleCommand(left) should be accepted")
	}
	got := p.Position()
	if got.Column != 2 || got.Row != 6 {
		t.Errorf("cell = (%d,%d), expected (2,6)", got.Column, got.Row)
	}
	if got.X != before.X-101 || got.Y != before.Y {
		t.Errorf("pixels = (%d,%d), expected (%d,%d)", got.X, got.Y, before.X-101, before.Y)
	}
}

func TestPlayerRejectedAtLeftEdge(t *testing.T) {
	p := NewPlayer(grid.DefaultLayout(), "girl", Cell{Column: 1, Row: 6}, nil)
	before := p.Position()

	if p.HandleCommand(DirLeft) {
		t.Error("HandleCommand(left) at column 1 should be rejected")
	}
	if p.Position() != before {
		t.Errorf("Position() = %+v, expected unchanged %+v", p.Position(), before)
	}
}

func TestPlayerObstacleRollback(t *testing.T) {
	layout := grid.DefaultLayout()
	rocks := NewRegistryAt(layout, "rock", Cell{Column: 2, Row: 6})
	p := NewPlayer(layout, "girl", homeCell, rocks)
	before := p.Position()

	if p.HandleCommand(DirLeft) {
		t.Error("HandleCommand(left) into obstacle should be rejected")
	}
	if p.Position() != before {
		t.Errorf("Position() = %+v, expected full rollback to %+v", p.Position(), before)
	}
}

func TestPlayerWalksToTopRow(t *testing.T) {
	p := NewPlayer(grid.DefaultLayout(), "girl", homeCell, nil)

	for i := 0; i < 5; i++ {
		if !p.HandleCommand(DirUp) {
			t.Fatalf("move %d up was rejected", i+1)
		}
	}
	if p.HandleCommand(DirUp) {
		t.Error("moving above row 1 should be rejected")
	}

	want := Position{X: 202, Y: -9, Column: 3, Row: 1}
	if got := p.Position(); got != want {
		t.Errorf("Position() = %+v, expected %+v", got, want)
	}

	p.Reset()
	if p.Position().Row != 6 || p.Position().Column != 3 {
		t.Errorf("Reset() left player at %+v", p.Position())
	}
}

func TestPlayerDrawHasNoSideEffects(t *testing.T) {
	p := NewPlayer(grid.DefaultLayout(), "girl", homeCell, nil)
	before := p.Position()

	var s recordingSurface
	p.Draw(testResources, &s)
	p.Draw(testResources, &s)

	if p.Position() != before {
		t.Error("Draw() changed the player position")
	}
	if len(s.calls) != 2 || s.calls[0] != (drawCall{id: "girl", x: 202, y: 406}) {
		t.Errorf("draw calls = %+v", s.calls)
	}
}

func TestPlayerBox(t *testing.T) {
	p := NewPlayer(grid.DefaultLayout(), "girl", homeCell, nil)

	want := core.NewRect(202, 415, 101, 83)
	if got := p.Box(); got != want {
		t.Errorf("Box() = %+v, expected %+v", got, want)
	}
}

func TestDirectionFromAction(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Direction
	}{
		{core.ActionLeft, DirLeft},
		{core.ActionUp, DirUp},
		{core.ActionRight, DirRight},
		{core.ActionDown, DirDown},
		{core.ActionPause, DirNone},
		{core.ActionNone, DirNone},
	}

	for _, tt := range tests {
		if got := DirectionFromAction(tt.action); got != tt.want {
			t.Errorf("DirectionFromAction(%v) = %v, expected %v", tt.action, got, tt.want)
		}
	}
}
