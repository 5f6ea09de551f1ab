package engine

import (
	"fmt"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// YearTicker keeps the current year and its milestone phrase in the HUD box.
type YearTicker struct {
	row, col int
	width    int
	phrases  map[int]string
	drawn    *core.Frame
}

// NewYearTicker creates the HUD text task. Text is right-aligned within
// width columns starting at (row, col).
func NewYearTicker(row, col, width int, phrases map[int]string) *YearTicker {
	return &YearTicker{row: row, col: col, width: width, phrases: phrases}
}

// Kind implements Task.
func (y *YearTicker) Kind() Kind { return KindYear }

// Step implements Task.
func (y *YearTicker) Step(w *World) (Status, error) {
	if y.drawn != nil {
		w.Surface.DrawFrame(float64(y.row), float64(y.col), y.drawn, true)
	}
	y.drawn = core.TextFrame(YearText(w.Year(), y.phrases[w.Year()], y.width))
	w.Surface.DrawFrame(float64(y.row), float64(y.col), y.drawn, false)
	return Continue, nil
}

// YearText formats the HUD line for a year, right-aligned to width.
func YearText(year int, phrase string, width int) string {
	return fmt.Sprintf("%*s", width, fmt.Sprintf("%s      Year %d    ", phrase, year))
}

// GameOver keeps the game-over banner centred on the board forever.
type GameOver struct {
	frame    *core.Frame
	row, col float64
	shown    bool
}

// NewGameOver creates the banner task.
func NewGameOver(frame *core.Frame) *GameOver {
	return &GameOver{frame: frame}
}

// Kind implements Task.
func (g *GameOver) Kind() Kind { return KindGameOver }

// Step implements Task.
func (g *GameOver) Step(w *World) (Status, error) {
	if g.frame == nil {
		return Continue, nil
	}
	if g.shown {
		w.Surface.DrawFrame(g.row, g.col, g.frame, true)
	}
	rows, cols := w.Surface.Size()
	g.row = float64(rows/2 - g.frame.Rows/2)
	g.col = float64(cols/2 - g.frame.Cols/2)
	w.Surface.DrawFrame(g.row, g.col, g.frame, false)
	g.shown = true
	return Continue, nil
}
