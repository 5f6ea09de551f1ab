package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/frames"
	"github.com/vovakirdan/space-garbage/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Set(0, 0, 'a')
	s.SetCell(1, 0, core.Cell{Rune: '*', Attr: core.AttrBold})
	s.SetCell(2, 1, core.Cell{Rune: '.', Attr: core.AttrDim})

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	for _, want := range []string{"a", "*", "."} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output misses %q: %q", want, out)
		}
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()

	art, err := frames.Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.FrozenCalendar = true
	g, err := game.New(game.Options{Config: cfg, Art: art, Rows: 24, Cols: 80, Seed: 7})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return NewModel(g, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelTicksAndPauses(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init returned no tick command")
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if m.State().Tick != 1 {
		t.Fatalf("Tick = %d, want 1", m.State().Tick)
	}

	m, _ = update(t, m, runeKey('p'))
	if !m.State().Paused {
		t.Fatal("p did not pause")
	}
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.State().Tick != 1 {
		t.Errorf("paused game advanced to tick %d", m.State().Tick)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("pause overlay not shown")
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.State().Tick != 2 {
		t.Errorf("Tick after resume = %d, want 2", m.State().Tick)
	}
}

func TestModelSteersRocket(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.game.Input().Has(core.ActionLeft) {
		t.Fatal("left arrow not forwarded to the controls")
	}
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.game.Input().Has(core.ActionLeft) {
		t.Error("steering not consumed by the tick")
	}
}

func TestModelRestartOnlyAfterCrash(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, runeKey('r'))
	if m.State().Tick != 1 {
		t.Fatalf("r restarted a running game (tick %d)", m.State().Tick)
	}

	// Rocket starts centred at row 8, column 37.
	m.game.World().Obstacles.Add(engine.NewObstacle(9, 38, 1, 1))
	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.State().GameOver {
		t.Fatal("rocket did not crash")
	}

	m, _ = update(t, m, runeKey('p'))
	if m.State().Paused {
		t.Error("game over screen can be paused")
	}

	m, _ = update(t, m, runeKey('r'))
	if m.State().GameOver || m.State().Tick != 0 {
		t.Errorf("state after restart = %+v", m.State())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("view not cleared on quit")
	}
}
