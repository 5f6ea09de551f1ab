// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// animation engine pure and testable.
package core

import "math"

// Rect is an integer cell rectangle used for static layout (border, HUD box).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in cell space with sub-cell precision.
// Rows and columns are half-open: a box at Row 2 with Rows 3 covers [2, 5).
type Box struct {
	Row, Col   float64 // Top-left corner
	Rows, Cols float64 // Extent
}

// NewBox creates a box from its corner and extent.
func NewBox(row, col, rows, cols float64) Box {
	return Box{Row: row, Col: col, Rows: rows, Cols: cols}
}

// Bottom returns the row just past the last covered row.
func (b Box) Bottom() float64 {
	return b.Row + b.Rows
}

// Right returns the column just past the last covered column.
func (b Box) Right() float64 {
	return b.Col + b.Cols
}

// Empty reports whether the box covers no area.
func (b Box) Empty() bool {
	return b.Rows <= 0 || b.Cols <= 0
}

// Intersects returns true if this box overlaps with another.
// Uses standard AABB collision detection.
func (b Box) Intersects(other Box) bool {
	if b.Empty() || other.Empty() {
		return false
	}
	// No overlap if one box is completely to the left, right, above, or below
	if b.Col >= other.Right() || other.Col >= b.Right() {
		return false
	}
	if b.Row >= other.Bottom() || other.Row >= b.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (row, col) lies inside the box.
func (b Box) Contains(row, col float64) bool {
	return row >= b.Row && row < b.Bottom() && col >= b.Col && col < b.Right()
}

// Center returns the center point of the box.
func (b Box) Center() (row, col float64) {
	return b.Row + b.Rows/2, b.Col + b.Cols/2
}

// Round converts a sub-cell coordinate to the cell it renders in.
func Round(v float64) int {
	return int(math.Round(v))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// When min exceeds max the lower bound wins, matching a playfield that is
// smaller than the object being clamped.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}
