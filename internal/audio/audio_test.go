package audio

import (
	"bytes"
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/config"
)

func TestBellWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	b.Beep()
	b.Beep()

	if got := buf.String(); got != "\a\a" {
		t.Errorf("bell output = %q, want two BEL characters", got)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestBellWithoutWriter(t *testing.T) {
	b := NewBell(nil)
	b.Beep() // must not panic
}

func TestNewSelectsBackend(t *testing.T) {
	logger := log.New(io.Discard)
	var buf bytes.Buffer

	if _, ok := New(config.AudioConfig{Mode: config.AudioOff}, &buf, logger).(Silent); !ok {
		t.Error("mode off did not produce Silent")
	}
	if _, ok := New(config.AudioConfig{Mode: config.AudioBell}, &buf, logger).(*Bell); !ok {
		t.Error("mode bell did not produce Bell")
	}
	if _, ok := New(config.AudioConfig{}, &buf, logger).(*Bell); !ok {
		t.Error("empty mode did not default to Bell")
	}
}

func TestSineLengthAndRange(t *testing.T) {
	rate := sampleRate
	s := newSine(440, 50*time.Millisecond, rate)

	samples := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			if math.Abs(samples[i][0]) > 1 || samples[i][0] != samples[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total+i, samples[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(50 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if s.Err() != nil {
		t.Errorf("Err = %v", s.Err())
	}
}

func TestSineFadesAtBothEnds(t *testing.T) {
	s := newSine(440, 100*time.Millisecond, sampleRate)

	samples := make([][2]float64, s.total)
	n, _ := s.Stream(samples)
	if n != s.total {
		t.Fatalf("streamed %d samples, want %d", n, s.total)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want silence", samples[0][0])
	}
	if last := samples[n-1][0]; math.Abs(last) > 1.0/float64(s.fade)+1e-9 {
		t.Errorf("last sample = %v, want near silence", last)
	}
}

func TestToneSoundDefaults(t *testing.T) {
	tone := newTone(config.AudioConfig{Volume: 0.5})
	if tone.freq != 880 || tone.duration != 120*time.Millisecond {
		t.Errorf("defaults = %v Hz, %v", tone.freq, tone.duration)
	}

	s := tone.sound()
	samples := make([][2]float64, 256)
	if n, ok := s.Stream(samples); n != 256 || !ok {
		t.Errorf("Stream = (%d, %v), want (256, true)", n, ok)
	}
}
