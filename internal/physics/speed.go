// Package physics holds the rocket's motion rules: smooth acceleration toward
// the steering direction, exponential coasting, and playfield clamping.
package physics

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// stopThreshold snaps near-zero speeds to rest so the rocket actually stops.
const stopThreshold = 0.1

// Limits bounds the rocket speed per axis and sets how fast it coasts to rest.
type Limits struct {
	RowSpeed    float64 // Maximum |row speed| in cells per tick
	ColumnSpeed float64 // Maximum |column speed| in cells per tick
	Fading      float64 // Speed multiplier applied every tick, 0..1
}

// DefaultLimits returns the tuning used by the default configuration.
func DefaultLimits() Limits {
	return Limits{RowSpeed: 2, ColumnSpeed: 2, Fading: 0.8}
}

// UpdateSpeed applies one tick of steering to the current velocity.
// Directions must be -1, 0 or 1. Speed first fades toward zero, then each
// steered axis accelerates: sharply from rest, gently near the limit.
func UpdateSpeed(rowSpeed, colSpeed float64, rowDir, colDir int, lim Limits) (float64, float64, error) {
	if !validDirection(rowDir) || !validDirection(colDir) {
		return rowSpeed, colSpeed, fmt.Errorf("physics: direction must be -1, 0 or 1, got (%d, %d)", rowDir, colDir)
	}
	if lim.Fading < 0 || lim.Fading > 1 {
		return rowSpeed, colSpeed, fmt.Errorf("physics: fading must be within [0, 1], got %v", lim.Fading)
	}

	rowSpeed *= lim.Fading
	colSpeed *= lim.Fading

	if rowDir != 0 {
		rowSpeed = accelerate(rowSpeed, lim.RowSpeed, rowDir > 0)
	}
	if colDir != 0 {
		colSpeed = accelerate(colSpeed, lim.ColumnSpeed, colDir > 0)
	}
	return rowSpeed, colSpeed, nil
}

func accelerate(speed, limit float64, forward bool) float64 {
	limit = math.Abs(limit)
	delta := math.Cos(speed/limit) * 0.75

	if forward {
		speed += delta
	} else {
		speed -= delta
	}
	speed = core.ClampF(speed, -limit, limit)

	if math.Abs(speed) < stopThreshold {
		speed = 0
	}
	return speed
}

func validDirection(d int) bool {
	return d >= -1 && d <= 1
}

// LimitBoundary keeps a coordinate inside [lo, hi].
func LimitBoundary(v, lo, hi float64) float64 {
	return core.ClampF(v, lo, hi)
}
