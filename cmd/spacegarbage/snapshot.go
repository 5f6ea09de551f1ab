package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/audio"
	"github.com/vovakirdan/space-garbage/internal/frames"
	"github.com/vovakirdan/space-garbage/internal/game"
)

var (
	flagTicks int
	flagRows  int
	flagCols  int
	flagFire  bool
	flagPaced bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Run headless and print the final screen",
	Long: `Run the game without a terminal UI for a number of ticks, then print the
last published screen to stdout. The rocket gets no steering; with --fire it
fires every tick once the cannon is unlocked.

Runs flat out unless --paced is given. Ctrl+C stops early and still prints.

Examples:
  spacegarbage snapshot --ticks 300 --seed 1
  spacegarbage snapshot --ticks 60 --rows 30 --cols 100 --difficulty fixed
  spacegarbage snapshot --ticks 1000 --fire --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to run (0 = until interrupted)")
	snapshotCmd.Flags().IntVar(&flagRows, "rows", 24, "Board height")
	snapshotCmd.Flags().IntVar(&flagCols, "cols", 80, "Board width")
	snapshotCmd.Flags().BoolVar(&flagFire, "fire", false, "Hold the fire button")
	snapshotCmd.Flags().BoolVar(&flagPaced, "paced", false, "Wait one tick of wall-clock time between ticks")
}

// holdFire is a rocket pilot that never steers and always fires.
type holdFire struct{}

func (holdFire) ReadControls() (int, int, bool) { return 0, 0, true }

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	art, err := frames.Open(flagFrames)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	g, err := game.New(game.Options{
		Config: cfg,
		Art:    art,
		Rows:   flagRows,
		Cols:   flagCols,
		Seed:   seed(),
		Beeper: audio.Silent{},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	if flagFire {
		g.World().Controls = holdFire{}
	}
	g.SetPace(flagPaced)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := g.Run(ctx, flagTicks); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	st := g.State()
	logger.Info("snapshot", "ticks", st.Tick, "year", st.Year, "tasks", st.Tasks, "game_over", st.GameOver)
	fmt.Println(g.Screen().String())
	return nil
}
