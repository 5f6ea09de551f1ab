package engine

import (
	"testing"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/frames"
)

// newTestWorld builds a board, a world on the default configuration and a
// scheduler. mutate may adjust the configuration before the world is built.
func newTestWorld(t *testing.T, rows, cols int, mutate func(*config.Config)) (*World, *Board, *Scheduler) {
	t.Helper()

	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	art, err := frames.Embedded()
	if err != nil {
		t.Fatalf("Embedded art: %v", err)
	}

	board := NewBoard(rows, cols, cfg.HUD.Width)
	w := NewWorld(&cfg, art, board, 42)
	s := NewScheduler(w, cfg.Tick)
	s.SetPace(0)
	return w, board, s
}

// frozenAt pins the calendar to one year.
func frozenAt(year int) func(*config.Config) {
	return func(c *config.Config) {
		c.StartingYear = year
		c.FrozenCalendar = true
	}
}

// funcTask is a task whose step is supplied by the test.
type funcTask struct {
	kind  Kind
	step  func(w *World) (Status, error)
	steps int
}

func (f *funcTask) Kind() Kind { return f.kind }

func (f *funcTask) Step(w *World) (Status, error) {
	f.steps++
	if f.step == nil {
		return Continue, nil
	}
	return f.step(w)
}

// heldControls reports the same input on every read.
type heldControls struct {
	rowDir, colDir int
	fire           bool
}

func (c heldControls) ReadControls() (int, int, bool) {
	return c.rowDir, c.colDir, c.fire
}

type countingBeeper struct {
	n int
}

func (b *countingBeeper) Beep() { b.n++ }

func block(rows, cols int) *core.Frame {
	line := make([]rune, cols)
	for i := range line {
		line[i] = '#'
	}
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = string(line)
	}
	return &core.Frame{Rows: rows, Cols: cols, Lines: lines}
}
