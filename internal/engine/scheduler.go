package engine

import (
	"context"
	"fmt"
	"time"
)

// Scheduler owns the live task list and drives it one tick at a time.
//
// A tick resumes every live task once, in insertion order, then publishes the
// surface and advances the simulated clock. Tasks spawned during a pass are
// queued and join the live list when the pass ends, so they first run on the
// following tick. Tasks added outside a pass are live immediately.
type Scheduler struct {
	world   *World
	tasks   []Task
	pending []Task
	inPass  bool
	tick    time.Duration
	pace    time.Duration
	ticks   int
}

// NewScheduler creates a scheduler for the world and binds the world's spawn
// hook to it. Run waits tick between passes; SetPace changes that.
func NewScheduler(w *World, tick time.Duration) *Scheduler {
	s := &Scheduler{world: w, tick: tick, pace: tick}
	w.spawn = s.Add
	return s
}

// World returns the context handed to every task.
func (s *Scheduler) World() *World {
	return s.world
}

// SetPace sets the wall-clock wait between ticks in Run. Zero runs flat out.
func (s *Scheduler) SetPace(d time.Duration) {
	s.pace = d
}

// Add registers a task.
func (s *Scheduler) Add(t Task) {
	if t == nil {
		return
	}
	if s.inPass {
		s.pending = append(s.pending, t)
		return
	}
	s.tasks = append(s.tasks, t)
}

// Len returns the number of registered tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks) + len(s.pending)
}

// Count returns the number of registered tasks of one kind.
func (s *Scheduler) Count(k Kind) int {
	n := 0
	for _, t := range s.tasks {
		if t.Kind() == k {
			n++
		}
	}
	for _, t := range s.pending {
		if t.Kind() == k {
			n++
		}
	}
	return n
}

// Ticks returns how many ticks have completed.
func (s *Scheduler) Ticks() int {
	return s.ticks
}

// Tick runs one full scheduler tick.
func (s *Scheduler) Tick() {
	s.inPass = true
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if s.resume(t) == Continue {
			live = append(live, t)
		}
	}
	clear(s.tasks[len(live):])
	s.tasks = append(live, s.pending...)
	clear(s.pending)
	s.pending = s.pending[:0]
	s.inPass = false

	s.world.Surface.Flush()
	s.ticks++
	if s.world.Clock.Advance(s.tick) {
		s.world.Log.Debug("year changed", "year", s.world.Clock.Year(), "tasks", len(s.tasks))
	}
}

// Run ticks until ctx is done or maxTicks ticks have run. maxTicks <= 0 runs
// until cancellation. It returns ctx.Err() when cancelled, nil otherwise.
func (s *Scheduler) Run(ctx context.Context, maxTicks int) error {
	var ticker *time.Ticker
	if s.pace > 0 {
		ticker = time.NewTicker(s.pace)
		defer ticker.Stop()
	}

	for n := 0; maxTicks <= 0 || n < maxTicks; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Tick()

		if ticker == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// resume steps one task, isolating the rest of the game from its failures.
func (s *Scheduler) resume(t Task) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			s.world.Log.Error("task panicked", "kind", t.Kind(), "panic", fmt.Sprint(r))
			status = Done
		}
	}()

	status, err := t.Step(s.world)
	if err != nil {
		s.world.Log.Error("task failed", "kind", t.Kind(), "err", err)
		return Done
	}
	return status
}
