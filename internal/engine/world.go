package engine

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/frames"
)

// ErrNoFrames is returned by tasks constructed without the art they draw.
var ErrNoFrames = errors.New("engine: no frames")

// Surface is where tasks draw. Out-of-bounds cells are clipped silently.
type Surface interface {
	// DrawFrame paints (or, with erase, blanks) the non-space cells of f with
	// its top-left corner at the rounded position.
	DrawFrame(row, col float64, f *core.Frame, erase bool)

	// DrawGlyph paints a single cell with an attribute.
	DrawGlyph(row, col int, r rune, attr core.Attr)

	// Size returns the full surface extent including the border.
	Size() (rows, cols int)

	// Flush makes everything drawn so far visible.
	Flush()
}

// Controls is the player input source. It must not block.
type Controls interface {
	ReadControls() (rowDir, colDir int, fire bool)
}

// Beeper emits the single audible signal the game has. Failures are ignored.
type Beeper interface {
	Beep()
}

// World is the state shared by every task, passed explicitly to each Step.
// Only the scheduler advances the clock; only garbage tasks write obstacles.
type World struct {
	Config    *config.Config
	Art       *frames.Set
	Surface   Surface
	Controls  Controls
	Beeper    Beeper
	Clock     *Clock
	Obstacles *Registry
	Schedule  *config.SpawnSchedule
	Rand      *rand.Rand
	Log       *log.Logger

	spawn func(Task)
}

// NewWorld creates a world with neutral controls, no sound and a discarding
// logger; callers replace those fields as needed.
func NewWorld(cfg *config.Config, art *frames.Set, surface Surface, seed int64) *World {
	clock := NewClock(cfg.StartingYear, cfg.YearLength)
	clock.Freeze(cfg.FrozenCalendar)

	return &World{
		Config:    cfg,
		Art:       art,
		Surface:   surface,
		Controls:  NeutralControls{},
		Beeper:    silent{},
		Clock:     clock,
		Obstacles: NewRegistry(),
		Schedule:  config.NewSpawnSchedule(cfg.Garbage.Schedule),
		Rand:      rand.New(rand.NewSource(seed)),
		Log:       log.New(io.Discard),
	}
}

// Spawn hands a new task to the scheduler that owns this world.
func (w *World) Spawn(t Task) {
	if w.spawn != nil {
		w.spawn(t)
	}
}

// Year is shorthand for the current calendar year.
func (w *World) Year() int {
	return w.Clock.Year()
}

// NeutralControls never steers and never fires.
type NeutralControls struct{}

// ReadControls implements Controls.
func (NeutralControls) ReadControls() (int, int, bool) {
	return 0, 0, false
}

type silent struct{}

func (silent) Beep() {}
