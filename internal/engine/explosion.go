package engine

import "github.com/vovakirdan/space-garbage/internal/core"

// Explosion plays its frames once, centred on a point. Each frame is shown
// for one tick and followed by one blank tick.
type Explosion struct {
	row, col float64 // centre
	frames   []*core.Frame
	i        int
	started  bool
	shown    bool
}

// NewExplosion creates an explosion centred on (row, col).
func NewExplosion(row, col float64, frames []*core.Frame) *Explosion {
	return &Explosion{row: row, col: col, frames: frames}
}

// Kind implements Task.
func (e *Explosion) Kind() Kind { return KindExplosion }

// Step implements Task.
func (e *Explosion) Step(w *World) (Status, error) {
	if !e.started {
		e.started = true
		w.Beeper.Beep()
	}
	if e.shown {
		f := e.frames[e.i]
		row, col := e.corner(f)
		w.Surface.DrawFrame(row, col, f, true)
		e.shown = false
		e.i++
		return Continue, nil
	}
	if e.i >= len(e.frames) {
		return Done, nil
	}
	f := e.frames[e.i]
	row, col := e.corner(f)
	w.Surface.DrawFrame(row, col, f, false)
	e.shown = true
	return Continue, nil
}

func (e *Explosion) corner(f *core.Frame) (row, col float64) {
	return e.row - float64(f.Rows)/2, e.col - float64(f.Cols)/2
}
