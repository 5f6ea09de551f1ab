// Package engine is the cooperative animation scheduler.
//
// Every moving thing on screen is a Task: a small state machine advanced
// exactly once per tick by the Scheduler. Tasks never sleep or block; each
// Step does one tick's worth of drawing and bookkeeping and reports whether
// the task is finished. Visual tasks follow a draw, yield, erase discipline:
// what a task draws in one Step stays on screen until its next Step erases it.
package engine

// Status is what a task reports after a step.
type Status int

const (
	Continue Status = iota // Run again next tick
	Done                   // Remove from the scheduler
)

// Kind identifies one of the fixed set of task variants.
type Kind int

const (
	KindStar Kind = iota
	KindRocket
	KindShot
	KindGarbage
	KindExplosion
	KindSpawner
	KindYear
	KindGameOver
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindRocket:
		return "rocket"
	case KindShot:
		return "shot"
	case KindGarbage:
		return "garbage"
	case KindExplosion:
		return "explosion"
	case KindSpawner:
		return "spawner"
	case KindYear:
		return "year"
	case KindGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Task is a resumable unit of animation logic.
type Task interface {
	// Kind reports which variant this task is.
	Kind() Kind

	// Step advances the task by one tick.
	// A non-nil error is treated like Done: the scheduler logs and drops the task.
	Step(w *World) (Status, error)
}
