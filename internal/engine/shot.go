package engine

import "github.com/vovakirdan/space-garbage/internal/core"

var (
	shotFlash  = core.TextFrame("*")
	shotMuzzle = core.TextFrame("O")
	shotBolt   = core.TextFrame("|")
	shotBeam   = core.TextFrame("-")
)

type shotStage int

const (
	stageFlash shotStage = iota
	stageMuzzle
	stageFlying
)

// Shot is a plasma projectile. It shows a muzzle flash for two ticks, then
// flies in a straight line until it leaves the playfield or hits garbage.
// A hit is reported through the registry's hand-off set.
type Shot struct {
	row, col           float64
	rowSpeed, colSpeed float64
	stage              shotStage
	drawn              *core.Frame
	dRow, dCol         float64
}

// NewShot creates a projectile starting at (row, col).
func NewShot(row, col, rowSpeed, colSpeed float64) *Shot {
	return &Shot{row: row, col: col, rowSpeed: rowSpeed, colSpeed: colSpeed}
}

// Kind implements Task.
func (s *Shot) Kind() Kind { return KindShot }

// Position returns where the projectile currently is.
func (s *Shot) Position() (row, col float64) {
	return s.row, s.col
}

// Step implements Task.
func (s *Shot) Step(w *World) (Status, error) {
	if s.drawn != nil {
		w.Surface.DrawFrame(s.dRow, s.dCol, s.drawn, true)
		s.drawn = nil
	}

	switch s.stage {
	case stageFlash:
		w.Beeper.Beep()
		s.draw(w, shotFlash)
		s.stage = stageMuzzle
		return Continue, nil
	case stageMuzzle:
		s.draw(w, shotMuzzle)
		s.stage = stageFlying
		return Continue, nil
	}

	s.row += s.rowSpeed
	s.col += s.colSpeed

	maxRow, maxCol := w.Surface.Size()
	pad := float64(w.Config.Padding)
	if s.row <= 0 || s.row >= float64(maxRow)-pad || s.col <= 0 || s.col >= float64(maxCol)-pad {
		return Done, nil
	}

	if o := w.Obstacles.At(s.row, s.col); o != nil {
		w.Obstacles.MarkHit(o)
		return Done, nil
	}

	if s.colSpeed != 0 {
		s.draw(w, shotBeam)
	} else {
		s.draw(w, shotBolt)
	}
	return Continue, nil
}

func (s *Shot) draw(w *World, f *core.Frame) {
	w.Surface.DrawFrame(s.row, s.col, f, false)
	s.drawn, s.dRow, s.dCol = f, s.row, s.col
}
