package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// recordingGame remembers what the platform fed it.
type recordingGame struct {
	resets int
	steps  []float64
	queues [][]core.Action
	paused bool
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(core.RuntimeConfig) {
	g.resets++
}

func (g *recordingGame) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	g.steps = append(g.steps, dt)
	g.queues = append(g.queues, append([]core.Action(nil), in.Queue...))
	return core.StepResult{State: g.State()}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "field")
}

func (g *recordingGame) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"k", runeKey('k'), core.ActionUp},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"j", runeKey('j'), core.ActionDown},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"b", runeKey('b'), core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestFrameClock(t *testing.T) {
	c := newFrameClock(1.0 / 60)
	start := time.Unix(1000, 0)

	if dt := c.Delta(start); dt != 1.0/60 {
		t.Errorf("first Delta() = %v, expected nominal 1/60", dt)
	}
	if dt := c.Delta(start.Add(100 * time.Millisecond)); dt != 0.1 {
		t.Errorf("Delta() after 100ms = %v, expected 0.1", dt)
	}
	if dt := c.Delta(start.Add(5 * time.Second)); dt != maxFrameDelta {
		t.Errorf("Delta() after a stall = %v, expected clamp %v", dt, maxFrameDelta)
	}
	if dt := c.Delta(start); dt != 1.0/60 {
		t.Errorf("Delta() with clock going backwards = %v, expected nominal", dt)
	}

	c.Restart()
	if dt := c.Delta(start.Add(time.Hour)); dt != 1.0/60 {
		t.Errorf("Delta() after Restart() = %v, expected nominal", dt)
	}
}

func newTestModel(g *recordingGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 50, Seed: 7})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m.Init()

	m = update(t, m, runeKey('h'))
	m = update(t, m, runeKey('h'))
	m = update(t, m, runeKey('z'))
	if len(g.steps) != 0 {
		t.Fatal("keys should not step the game")
	}

	now := time.Unix(2000, 0)
	m = update(t, m, TickMsg(now))

	if len(g.queues) != 1 {
		t.Fatalf("steps = %d, expected 1", len(g.queues))
	}
	queue := g.queues[0]
	if len(queue) != 2 || queue[0] != core.ActionLeft || queue[1] != core.ActionLeft {
		t.Errorf("queued actions = %v, expected [Left Left]", queue)
	}
	if g.steps[0] != 0.02 {
		t.Errorf("first dt = %v, expected 1/TickRate", g.steps[0])
	}

	update(t, m, TickMsg(now.Add(40*time.Millisecond)))
	if len(g.queues[1]) != 0 {
		t.Error("input should be cleared after each tick")
	}
	if g.steps[1] != 0.04 {
		t.Errorf("second dt = %v, expected 0.04", g.steps[1])
	}
}

func TestModelRestart(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m.Init()

	m = update(t, m, runeKey('r'))
	update(t, m, TickMsg(time.Unix(3000, 0)))

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if len(g.steps) != 0 {
		t.Error("restart tick should not step the old game")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}

	m = update(t, newTestModel(g), runeKey('b'))
	if m.BackToMenu() {
		t.Error("standalone game should ignore the back key")
	}

	m = update(t, newTestModel(g).withMenu(), runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b should return to the menu inside a session")
	}
}

func TestModelViewReservesFooter(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 12 {
		t.Errorf("view has %d lines, expected 12", len(lines))
	}
	if !strings.Contains(lines[0], "field") {
		t.Error("first line should come from the game")
	}
	if !strings.Contains(view, "left") {
		t.Error("footer should list key help")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.Set(1, 0, 'b')
	s.Set(0, 1, 'c')

	out := RenderScreen(s)
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") || !strings.Contains(out, "c") {
		t.Errorf("RenderScreen() = %q, missing cells", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should have one newline, got %q", out)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("centerText() = %q, expected unchanged", got)
	}
}
