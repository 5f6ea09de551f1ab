// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Config contains all tunable parameters of the game.
type Config struct {
	Tick               time.Duration  `yaml:"tick"`                 // Wall-clock length of one tick
	YearLength         time.Duration  `yaml:"year_length"`          // Simulated time per calendar year
	StartingYear       int            `yaml:"starting_year"`        // Year on the clock at startup
	CannonUnlockedYear int            `yaml:"cannon_unlocked_year"` // First year the rocket may fire
	FrozenCalendar     bool           `yaml:"frozen_calendar"`      // Never advance the year
	Padding            int            `yaml:"padding"`              // Distance kept from the border
	Stars              StarsConfig    `yaml:"stars"`
	Rocket             RocketConfig   `yaml:"rocket"`
	Shot               ShotConfig     `yaml:"shot"`
	Garbage            GarbageConfig  `yaml:"garbage"`
	HUD                HUDConfig      `yaml:"hud"`
	Audio              AudioConfig    `yaml:"audio"`
	Phrases            map[int]string `yaml:"phrases"`
}

// StarsConfig defines the twinkling background.
type StarsConfig struct {
	Count     int    `yaml:"count"`
	Symbols   string `yaml:"symbols"`
	DimTicks  int    `yaml:"dim_ticks"`  // Base dim hold before the random offset
	MaxOffset int    `yaml:"max_offset"` // Random extra dim ticks, inclusive
}

// RocketConfig defines the player craft.
type RocketConfig struct {
	JetRows    int           `yaml:"jet_rows"`    // Trailing frame rows excluded from the hit-box
	FrameTicks []int         `yaml:"frame_ticks"` // Ticks each animation frame is held; missing entries hold 1
	Physics    PhysicsConfig `yaml:"physics"`
}

// PhysicsConfig defines how the rocket accelerates and coasts.
type PhysicsConfig struct {
	RowSpeedLimit    float64 `yaml:"row_speed_limit"`
	ColumnSpeedLimit float64 `yaml:"column_speed_limit"`
	Fading           float64 `yaml:"fading"` // Per-tick speed multiplier, 0..1
}

// ShotConfig defines plasma gun projectiles.
type ShotConfig struct {
	RowSpeed    float64 `yaml:"row_speed"`
	ColumnSpeed float64 `yaml:"column_speed"`
}

// GarbageConfig defines falling obstacles and how often they appear.
type GarbageConfig struct {
	FallSpeed float64     `yaml:"fall_speed"`
	Schedule  []SpawnStep `yaml:"schedule"`
}

// HUDConfig defines the year strip in the bottom-right corner.
type HUDConfig struct {
	Width int `yaml:"width"`
}

// AudioConfig selects the beep backend.
type AudioConfig struct {
	Mode      string        `yaml:"mode"`      // "bell", "tone" or "off"
	Frequency float64       `yaml:"frequency"` // Tone pitch in Hz
	Duration  time.Duration `yaml:"duration"`  // Tone length
	Volume    float64       `yaml:"volume"`    // 0..1
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalid, c.Tick)
	}
	if c.YearLength <= 0 {
		return fmt.Errorf("%w: year_length must be positive, got %s", ErrInvalid, c.YearLength)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: padding must not be negative", ErrInvalid)
	}
	if c.Stars.Count < 0 {
		return fmt.Errorf("%w: stars.count must not be negative", ErrInvalid)
	}
	if c.Stars.Count > 0 && c.Stars.Symbols == "" {
		return fmt.Errorf("%w: stars.symbols is empty", ErrInvalid)
	}
	if c.Stars.DimTicks < 0 || c.Stars.MaxOffset < 0 {
		return fmt.Errorf("%w: star timings must not be negative", ErrInvalid)
	}
	if c.Rocket.JetRows < 0 {
		return fmt.Errorf("%w: rocket.jet_rows must not be negative", ErrInvalid)
	}
	for _, n := range c.Rocket.FrameTicks {
		if n <= 0 {
			return fmt.Errorf("%w: rocket.frame_ticks entries must be positive", ErrInvalid)
		}
	}
	p := c.Rocket.Physics
	if p.Fading < 0 || p.Fading > 1 {
		return fmt.Errorf("%w: rocket.physics.fading must be within [0, 1], got %v", ErrInvalid, p.Fading)
	}
	if p.RowSpeedLimit == 0 || p.ColumnSpeedLimit == 0 {
		return fmt.Errorf("%w: rocket speed limits must be non-zero", ErrInvalid)
	}
	if c.Shot.RowSpeed == 0 && c.Shot.ColumnSpeed == 0 {
		return fmt.Errorf("%w: shot velocity is zero", ErrInvalid)
	}
	if c.Garbage.FallSpeed <= 0 {
		return fmt.Errorf("%w: garbage.fall_speed must be positive", ErrInvalid)
	}
	if !sort.SliceIsSorted(c.Garbage.Schedule, func(i, j int) bool {
		return c.Garbage.Schedule[i].From < c.Garbage.Schedule[j].From
	}) {
		return fmt.Errorf("%w: garbage.schedule must be sorted by year", ErrInvalid)
	}
	for _, step := range c.Garbage.Schedule {
		if step.Delay <= 0 {
			return fmt.Errorf("%w: garbage.schedule delay for %d must be positive", ErrInvalid, step.From)
		}
	}
	if c.HUD.Width <= 0 {
		return fmt.Errorf("%w: hud.width must be positive", ErrInvalid)
	}
	switch c.Audio.Mode {
	case "", AudioBell, AudioTone, AudioOff:
	default:
		return fmt.Errorf("%w: unknown audio.mode %q", ErrInvalid, c.Audio.Mode)
	}
	return nil
}

// Audio modes.
const (
	AudioBell = "bell"
	AudioTone = "tone"
	AudioOff  = "off"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means keep the config.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Garbage.FallSpeed = 0.3
		cfg.FrozenCalendar = false
	case DifficultyNormal:
		cfg.FrozenCalendar = false
	case DifficultyHard:
		cfg.Garbage.FallSpeed = 0.8
		cfg.StartingYear = max(cfg.StartingYear, 1969)
		cfg.FrozenCalendar = false
	case DifficultyFixed:
		cfg.FrozenCalendar = true
	}
}
