// Package game assembles the playfield: board, world, scheduler and the
// initial set of tasks. Front ends drive it one tick at a time.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/frames"
)

// ErrTooSmall is returned when the board cannot fit the rocket.
var ErrTooSmall = errors.New("terminal too small")

// Options configures a game.
type Options struct {
	Config config.Config
	Art    *frames.Set
	Rows   int
	Cols   int
	Seed   int64
	Beeper engine.Beeper // nil means silent
	Logger *log.Logger   // nil means discard
}

// Game is one playthrough. Reset starts a new one on the same options.
type Game struct {
	opts   Options
	cfg    config.Config
	input  core.InputFrame
	board  *engine.Board
	world  *engine.World
	sched  *engine.Scheduler
	resets int
}

// New validates the options and sets up the first playthrough.
func New(opts Options) (*Game, error) {
	if opts.Art == nil {
		return nil, fmt.Errorf("game: %w", engine.ErrNoFrames)
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	minRows, minCols := MinSize(opts.Config, opts.Art)
	if opts.Rows < minRows || opts.Cols < minCols {
		return nil, fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, minCols, minRows, opts.Cols, opts.Rows)
	}

	g := &Game{opts: opts, input: core.NewInputFrame()}
	g.Reset()
	return g, nil
}

// MinSize returns the smallest board that fits the rocket inside the padding.
func MinSize(cfg config.Config, art *frames.Set) (rows, cols int) {
	rows, cols = rocketSize(art)
	pad := 2 * (cfg.Padding + 1)
	return rows + pad, cols + pad
}

func rocketSize(art *frames.Set) (rows, cols int) {
	for _, n := range art.Rocket {
		rows = max(rows, n.Frame.Rows)
		cols = max(cols, n.Frame.Cols)
	}
	return rows, cols
}

// Reset discards every task and builds a fresh playfield.
func (g *Game) Reset() {
	g.cfg = g.opts.Config
	g.input.Clear()

	g.board = engine.NewBoard(g.opts.Rows, g.opts.Cols, g.cfg.HUD.Width)
	g.world = engine.NewWorld(&g.cfg, g.opts.Art, g.board, g.opts.Seed+int64(g.resets))
	g.world.Controls = &g.input
	if g.opts.Beeper != nil {
		g.world.Beeper = g.opts.Beeper
	}
	if g.opts.Logger != nil {
		g.world.Log = g.opts.Logger
	}
	g.sched = engine.NewScheduler(g.world, g.cfg.Tick)
	g.resets++

	g.setup()
	g.world.Log.Info("new game", "rows", g.opts.Rows, "cols", g.opts.Cols, "year", g.world.Year(), "tasks", g.sched.Len())
}

func (g *Game) setup() {
	for _, s := range engine.NewStars(g.world, g.cfg.Stars.Count) {
		g.sched.Add(s)
	}

	cycle := engine.RocketCycle(frames.Frames(g.opts.Art.Rocket), g.cfg.Rocket.FrameTicks)
	rows, cols := rocketSize(g.opts.Art)
	g.sched.Add(engine.NewRocket(float64((g.opts.Rows-rows)/2), float64((g.opts.Cols-cols)/2), cycle))

	g.sched.Add(engine.NewSpawner(frames.Frames(g.opts.Art.Garbage)))

	hud := g.board.HUD()
	g.sched.Add(engine.NewYearTicker(hud.Y+1, hud.X+1, max(hud.W-2, 0), g.cfg.Phrases))
}

// Baseline is the task count of an idle game: stars, rocket, spawner and HUD.
func (g *Game) Baseline() int {
	return g.cfg.Stars.Count + 3
}

// Input returns the controls the rocket reads. Front ends set actions on it
// between ticks.
func (g *Game) Input() *core.InputFrame {
	return &g.input
}

// Tick advances the game by one tick.
func (g *Game) Tick() {
	g.sched.Tick()
}

// Run ticks headlessly until ctx is done or maxTicks have run.
func (g *Game) Run(ctx context.Context, maxTicks int) error {
	return g.sched.Run(ctx, maxTicks)
}

// SetPace sets the wall-clock wait between ticks for Run.
func (g *Game) SetPace(pace bool) {
	if pace {
		g.sched.SetPace(g.cfg.Tick)
	} else {
		g.sched.SetPace(0)
	}
}

// State returns a snapshot of the game for the front end.
func (g *Game) State() core.GameState {
	return core.GameState{
		Year:     g.world.Year(),
		Tick:     g.sched.Ticks(),
		Tasks:    g.sched.Len(),
		GameOver: g.sched.Count(engine.KindGameOver) > 0,
	}
}

// Screen returns the last published frame.
func (g *Game) Screen() *core.Screen {
	return g.board.Front()
}

// Config returns the configuration in effect.
func (g *Game) Config() config.Config {
	return g.cfg
}

// World exposes the shared task context, mainly for tests and tools.
func (g *Game) World() *engine.World {
	return g.world
}

// Scheduler exposes the task scheduler.
func (g *Game) Scheduler() *engine.Scheduler {
	return g.sched
}
