package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-garbage/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// fadeTime is the ramp at both ends of a tone that keeps it from clicking.
const fadeTime = 5 * time.Millisecond

// Tone plays a synthesized sine beep on the system audio device.
type Tone struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	freq     float64
	duration time.Duration
	volume   float64
	closed   bool
}

// NewTone opens the audio device and starts an idle mixer on it.
func NewTone(cfg config.AudioConfig) (*Tone, error) {
	t := newTone(cfg)
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(t.mixer)
	return t, nil
}

func newTone(cfg config.AudioConfig) *Tone {
	t := &Tone{
		mixer:    &beep.Mixer{},
		freq:     cfg.Frequency,
		duration: cfg.Duration,
		volume:   cfg.Volume,
	}
	if t.freq <= 0 {
		t.freq = 880
	}
	if t.duration <= 0 {
		t.duration = 120 * time.Millisecond
	}
	return t
}

// Beep implements Beeper.
func (t *Tone) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}

	s := t.sound()
	speaker.Lock()
	t.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the audio device.
func (t *Tone) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}

// sound builds one beep: a faded sine wave at the configured volume.
func (t *Tone) sound() beep.Streamer {
	osc := beep.Take(sampleRate.N(t.duration), newSine(t.freq, t.duration, sampleRate))
	return &effects.Volume{
		Streamer: osc,
		Base:     2,
		Volume:   math.Log2(math.Max(t.volume, 1e-3)),
		Silent:   t.volume <= 0,
	}
}

// sine generates a sine wave with linear fade-in and fade-out.
type sine struct {
	freq  float64
	rate  beep.SampleRate
	total int
	fade  int
	pos   int
	phase float64
}

func newSine(freq float64, duration time.Duration, rate beep.SampleRate) *sine {
	total := rate.N(duration)
	return &sine{
		freq:  freq,
		rate:  rate,
		total: total,
		fade:  min(rate.N(fadeTime), total/2),
	}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		v := math.Sin(2*math.Pi*s.phase) * s.envelope()
		samples[i][0] = v
		samples[i][1] = v

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

func (s *sine) envelope() float64 {
	if s.fade <= 0 {
		return 1
	}
	if s.pos < s.fade {
		return float64(s.pos) / float64(s.fade)
	}
	if left := s.total - s.pos; left < s.fade {
		return float64(left) / float64(s.fade)
	}
	return 1
}
