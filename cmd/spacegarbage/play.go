package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-garbage/internal/audio"
	"github.com/vovakirdan/space-garbage/internal/frames"
	"github.com/vovakirdan/space-garbage/internal/game"
	"github.com/vovakirdan/space-garbage/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game that fills the terminal.

Controls:
  Arrows/WASD  - Steer the rocket
  Space        - Fire (from 2020 on)
  P/Esc        - Pause
  R            - Restart (after a crash)
  ?            - More keys (while paused)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower debris
  normal - The configured game
  hard   - Faster debris, history starts in 1969
  fixed  - The calendar never advances

The board size is taken once at startup; resizing the terminal later does
not resize the game.

Examples:
  spacegarbage play
  spacegarbage play --difficulty easy
  spacegarbage play --log /tmp/spacegarbage.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	art, err := frames.Open(flagFrames)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs only go to a file.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	beeper := audio.New(cfg.Audio, os.Stderr, logger)
	defer beeper.Close()

	g, err := game.New(game.Options{
		Config: cfg,
		Art:    art,
		Rows:   height,
		Cols:   width,
		Seed:   seed(),
		Beeper: beeper,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	if err := tui.Run(g, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
