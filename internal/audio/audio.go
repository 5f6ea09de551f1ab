// Package audio implements the game's single sound effect: a short beep
// played when a shot is fired and when garbage explodes.
package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/config"
)

// Beeper plays the beep. Beep never blocks and never fails visibly.
type Beeper interface {
	Beep()
	Close() error
}

// New returns the beeper selected by cfg.Mode. Terminal bell output goes to
// w. If the tone backend cannot open an audio device, New falls back to the
// terminal bell and logs a warning.
func New(cfg config.AudioConfig, w io.Writer, logger *log.Logger) Beeper {
	switch cfg.Mode {
	case config.AudioOff:
		return Silent{}
	case config.AudioTone:
		t, err := NewTone(cfg)
		if err == nil {
			return t
		}
		if logger != nil {
			logger.Warn("audio device unavailable, using terminal bell", "err", err)
		}
	}
	return NewBell(w)
}

// Bell rings the terminal bell by writing BEL to the terminal.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Beep implements Beeper. Write errors are ignored.
func (b *Bell) Beep() {
	if b.w == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, "\a")
}

// Close implements Beeper.
func (b *Bell) Close() error { return nil }

// Silent discards every beep.
type Silent struct{}

// Beep implements Beeper.
func (Silent) Beep() {}

// Close implements Beeper.
func (Silent) Close() error { return nil }
