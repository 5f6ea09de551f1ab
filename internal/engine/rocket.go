package engine

import (
	"fmt"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/physics"
)

// Rocket is the player craft. Each tick it erases its previous frame, steers,
// checks for a collision, optionally fires and draws its next animation frame.
type Rocket struct {
	row, col           float64
	rowSpeed, colSpeed float64
	rows, cols         int

	cycle []*core.Frame
	next  int
	drawn *core.Frame
	dRow  float64
	dCol  float64
}

// NewRocket creates a rocket at (row, col) animating through cycle.
// Use RocketCycle to expand distinct frames into a per-tick cycle.
func NewRocket(row, col float64, cycle []*core.Frame) *Rocket {
	r := &Rocket{row: row, col: col, cycle: cycle}
	for _, f := range cycle {
		r.rows = max(r.rows, f.Rows)
		r.cols = max(r.cols, f.Cols)
	}
	return r
}

// RocketCycle repeats each frame for the number of ticks given in holds.
// Frames without a hold entry are shown for one tick.
func RocketCycle(frames []*core.Frame, holds []int) []*core.Frame {
	var out []*core.Frame
	for i, f := range frames {
		n := 1
		if i < len(holds) && holds[i] > 0 {
			n = holds[i]
		}
		for range n {
			out = append(out, f)
		}
	}
	return out
}

// Kind implements Task.
func (r *Rocket) Kind() Kind { return KindRocket }

// Position returns the rocket's top-left corner.
func (r *Rocket) Position() (row, col float64) {
	return r.row, r.col
}

// Size returns the rocket's frame extent.
func (r *Rocket) Size() (rows, cols int) {
	return r.rows, r.cols
}

// HitBox returns the rocket's collision box: the frame minus its trailing
// jet rows.
func (r *Rocket) HitBox(jetRows int) core.Box {
	return core.NewBox(r.row, r.col, float64(max(r.rows-jetRows, 0)), float64(r.cols))
}

// Step implements Task.
func (r *Rocket) Step(w *World) (Status, error) {
	if len(r.cycle) == 0 {
		return Done, fmt.Errorf("rocket: %w", ErrNoFrames)
	}
	if r.drawn != nil {
		w.Surface.DrawFrame(r.dRow, r.dCol, r.drawn, true)
		r.drawn = nil
	}

	cfg := w.Config
	rowDir, colDir, fire := w.Controls.ReadControls()

	lim := physics.Limits{
		RowSpeed:    cfg.Rocket.Physics.RowSpeedLimit,
		ColumnSpeed: cfg.Rocket.Physics.ColumnSpeedLimit,
		Fading:      cfg.Rocket.Physics.Fading,
	}
	var err error
	r.rowSpeed, r.colSpeed, err = physics.UpdateSpeed(r.rowSpeed, r.colSpeed, rowDir, colDir, lim)
	if err != nil {
		return Done, fmt.Errorf("rocket: %w", err)
	}

	maxRow, maxCol := w.Surface.Size()
	pad := float64(cfg.Padding)
	r.row = physics.LimitBoundary(r.row+r.rowSpeed, pad, float64(maxRow-r.rows)-pad)
	r.col = physics.LimitBoundary(r.col+r.colSpeed, pad, float64(maxCol-r.cols)-pad)

	if o := w.Obstacles.Colliding(r.HitBox(cfg.Rocket.JetRows)); o != nil {
		w.Log.Info("rocket destroyed", "year", w.Year(), "row", r.row, "col", r.col)
		w.Spawn(NewGameOver(gameOverFrame(w)))
		return Done, nil
	}

	if fire && w.Year() >= cfg.CannonUnlockedYear {
		w.Spawn(NewShot(r.row-1, r.col+float64(r.cols/2), cfg.Shot.RowSpeed, cfg.Shot.ColumnSpeed))
	}

	f := r.cycle[r.next]
	r.next = (r.next + 1) % len(r.cycle)
	w.Surface.DrawFrame(r.row, r.col, f, false)
	r.drawn, r.dRow, r.dCol = f, r.row, r.col
	return Continue, nil
}

func gameOverFrame(w *World) *core.Frame {
	if w.Art == nil {
		return nil
	}
	return w.Art.GameOver
}
