package engine

import "time"

// Clock is the simulated calendar. Simulated time accumulates per tick and a
// year passes whenever the accumulator reaches the year length.
type Clock struct {
	year       int
	elapsed    time.Duration
	yearLength time.Duration
	frozen     bool
}

// NewClock creates a calendar starting at the given year.
func NewClock(year int, yearLength time.Duration) *Clock {
	return &Clock{year: year, yearLength: yearLength}
}

// Year returns the current year.
func (c *Clock) Year() int {
	return c.year
}

// Freeze stops (or resumes) the calendar.
func (c *Clock) Freeze(frozen bool) {
	c.frozen = frozen
}

// Advance adds one tick of simulated time and reports whether the year changed.
func (c *Clock) Advance(dt time.Duration) bool {
	if c.frozen || c.yearLength <= 0 {
		return false
	}
	c.elapsed += dt
	if c.elapsed < c.yearLength {
		return false
	}
	c.elapsed = 0
	c.year++
	return true
}
