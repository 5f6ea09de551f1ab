package engine

import (
	"slices"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// Obstacle is the collision box of one piece of garbage for one tick.
// Identity matters: the hand-off set is keyed by pointer.
type Obstacle struct {
	core.Box
}

// NewObstacle creates an obstacle covering a frame drawn at (row, col).
func NewObstacle(row, col float64, rows, cols int) *Obstacle {
	return &Obstacle{Box: core.NewBox(row, col, float64(rows), float64(cols))}
}

// Registry holds the obstacles live this tick plus the hand-off set of
// obstacles that shots have hit. Shots write the hand-off set; the owning
// garbage task consumes its entry on its next step.
type Registry struct {
	live []*Obstacle
	hits map[*Obstacle]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{hits: make(map[*Obstacle]struct{})}
}

// Add registers an obstacle.
func (r *Registry) Add(o *Obstacle) {
	r.live = append(r.live, o)
}

// Remove deregisters an obstacle and reports whether it was present.
func (r *Registry) Remove(o *Obstacle) bool {
	i := slices.Index(r.live, o)
	if i < 0 {
		return false
	}
	r.live = slices.Delete(r.live, i, i+1)
	return true
}

// Len returns the number of live obstacles.
func (r *Registry) Len() int {
	return len(r.live)
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (r *Registry) Obstacles() []*Obstacle {
	return r.live
}

// At returns the first live obstacle containing the point, or nil.
func (r *Registry) At(row, col float64) *Obstacle {
	for _, o := range r.live {
		if o.Contains(row, col) {
			return o
		}
	}
	return nil
}

// Colliding returns the first live obstacle overlapping the box, or nil.
func (r *Registry) Colliding(b core.Box) *Obstacle {
	for _, o := range r.live {
		if o.Intersects(b) {
			return o
		}
	}
	return nil
}

// MarkHit records that a shot struck the obstacle. Marking twice is a no-op.
func (r *Registry) MarkHit(o *Obstacle) {
	r.hits[o] = struct{}{}
}

// TakeHit removes the obstacle from the hand-off set and reports whether it
// had been hit.
func (r *Registry) TakeHit(o *Obstacle) bool {
	if _, ok := r.hits[o]; !ok {
		return false
	}
	delete(r.hits, o)
	return true
}

// Hits returns the size of the hand-off set.
func (r *Registry) Hits() int {
	return len(r.hits)
}
