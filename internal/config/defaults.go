package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/game.yaml and is used when the embedded YAML is unusable.
func DefaultConfig() Config {
	return Config{
		Tick:               100 * time.Millisecond,
		YearLength:         1500 * time.Millisecond, // one year per 15 ticks
		StartingYear:       1957,
		CannonUnlockedYear: 2020,
		Padding:            1,
		Stars: StarsConfig{
			Count:     50,
			Symbols:   "+*.:",
			DimTicks:  20,
			MaxOffset: 5,
		},
		Rocket: RocketConfig{
			JetRows:    2,
			FrameTicks: []int{1, 3},
			Physics: PhysicsConfig{
				RowSpeedLimit:    2,
				ColumnSpeedLimit: 2,
				Fading:           0.8,
			},
		},
		Shot: ShotConfig{
			RowSpeed:    -0.3,
			ColumnSpeed: 0,
		},
		Garbage: GarbageConfig{
			FallSpeed: 0.5,
			Schedule: []SpawnStep{
				{From: 1961, Delay: 20},
				{From: 1969, Delay: 14},
				{From: 1981, Delay: 10},
				{From: 1995, Delay: 8},
				{From: 2010, Delay: 6},
				{From: 2020, Delay: 2},
			},
		},
		HUD: HUDConfig{
			Width: 60,
		},
		Audio: AudioConfig{
			Mode:      AudioBell,
			Frequency: 880,
			Duration:  120 * time.Millisecond,
			Volume:    0.4,
		},
		Phrases: map[int]string{
			1957: "First Sputnik",
			1961: "Gagarin flew!",
			1969: "Armstrong got on the moon!",
			1971: "First orbital space station Salute-1",
			1981: "Flight of the Shuttle Columbia",
			1998: "ISS start building",
			2011: "Messenger launch to Mercury",
			2020: "Take the plasma gun! Shoot the garbage!",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
