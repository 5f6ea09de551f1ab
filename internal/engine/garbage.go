package engine

import (
	"fmt"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/frames"
)

// Garbage is a falling obstacle. While it is on screen it keeps exactly one
// obstacle registered; if a shot marks that obstacle, the garbage explodes
// on its next step.
type Garbage struct {
	frame    *core.Frame
	row, col float64
	speed    float64
	started  bool
	obstacle *Obstacle
}

// NewGarbage creates garbage that enters at the top of column col.
func NewGarbage(frame *core.Frame, col, speed float64) *Garbage {
	return &Garbage{frame: frame, col: col, speed: speed}
}

// Kind implements Task.
func (g *Garbage) Kind() Kind { return KindGarbage }

// Position returns the garbage's top-left corner.
func (g *Garbage) Position() (row, col float64) {
	return g.row, g.col
}

// Obstacle returns the obstacle registered for the current tick, if any.
func (g *Garbage) Obstacle() *Obstacle {
	return g.obstacle
}

// Step implements Task.
func (g *Garbage) Step(w *World) (Status, error) {
	if g.frame == nil {
		return Done, fmt.Errorf("garbage: %w", ErrNoFrames)
	}
	maxRow, maxCol := w.Surface.Size()

	if !g.started {
		g.started = true
		g.col = core.ClampF(g.col, 0, float64(maxCol-1))
	} else if g.obstacle != nil {
		ob := g.obstacle
		g.obstacle = nil
		w.Surface.DrawFrame(g.row, g.col, g.frame, true)
		w.Obstacles.Remove(ob)

		if w.Obstacles.TakeHit(ob) {
			row, col := ob.Center()
			w.Spawn(NewExplosion(row, col, explosionFrames(w)))
			return Done, nil
		}
		g.row += g.speed
	}

	if g.row >= float64(maxRow) {
		return Done, nil
	}

	w.Surface.DrawFrame(g.row, g.col, g.frame, false)
	g.obstacle = NewObstacle(g.row, g.col, g.frame.Rows, g.frame.Cols)
	w.Obstacles.Add(g.obstacle)
	return Continue, nil
}

func explosionFrames(w *World) []*core.Frame {
	if w.Art == nil {
		return nil
	}
	return frames.Frames(w.Art.Explosion)
}

// Spawner releases garbage at a rate set by the current year.
// Consecutive spawns are exactly the scheduled delay apart.
type Spawner struct {
	art  []*core.Frame
	wait int
}

// NewSpawner creates a spawner choosing uniformly among frames.
func NewSpawner(art []*core.Frame) *Spawner {
	return &Spawner{art: art}
}

// Kind implements Task.
func (s *Spawner) Kind() Kind { return KindSpawner }

// Step implements Task.
func (s *Spawner) Step(w *World) (Status, error) {
	if s.wait > 0 {
		s.wait--
		return Continue, nil
	}
	delay, ok := w.Schedule.Delay(w.Year())
	if !ok {
		return Continue, nil
	}
	if len(s.art) == 0 {
		return Done, fmt.Errorf("spawner: %w", ErrNoFrames)
	}

	frame := s.art[w.Rand.Intn(len(s.art))]
	_, maxCol := w.Surface.Size()
	col := 1
	if span := maxCol - frame.Cols; span > 1 {
		col = 1 + w.Rand.Intn(span)
	}

	w.Spawn(NewGarbage(frame, float64(col), w.Config.Garbage.FallSpeed))
	w.Log.Debug("garbage spawned", "year", w.Year(), "col", col, "next", delay)
	s.wait = delay - 1
	return Continue, nil
}
