package physics

import (
	"math"
	"testing"
)

func TestUpdateSpeedFromRest(t *testing.T) {
	row, col, err := UpdateSpeed(0, 0, -1, 1, DefaultLimits())
	if err != nil {
		t.Fatalf("UpdateSpeed: %v", err)
	}
	// cos(0) * 0.75 kick in the steered direction
	if row != -0.75 || col != 0.75 {
		t.Errorf("UpdateSpeed from rest = (%v, %v), expected (-0.75, 0.75)", row, col)
	}
}

func TestUpdateSpeedIsBounded(t *testing.T) {
	lim := DefaultLimits()
	row, col := 0.0, 0.0
	var err error

	for i := 0; i < 100; i++ {
		row, col, err = UpdateSpeed(row, col, 1, -1, lim)
		if err != nil {
			t.Fatalf("UpdateSpeed: %v", err)
		}
		if math.Abs(row) > lim.RowSpeed || math.Abs(col) > lim.ColumnSpeed {
			t.Fatalf("tick %d: speed (%v, %v) exceeds limits", i, row, col)
		}
	}
	if row <= 0 || col >= 0 {
		t.Errorf("sustained steering should move down-left, got (%v, %v)", row, col)
	}
}

func TestUpdateSpeedCoastsToRest(t *testing.T) {
	lim := DefaultLimits()
	row, col := 2.0, -2.0
	prev := math.Abs(row)

	for i := 0; i < 50; i++ {
		var err error
		row, col, err = UpdateSpeed(row, col, 0, 0, lim)
		if err != nil {
			t.Fatalf("UpdateSpeed: %v", err)
		}
		if math.Abs(row) > prev {
			t.Fatalf("tick %d: speed grew without input", i)
		}
		prev = math.Abs(row)
	}
	if math.Abs(row) > 1e-3 || math.Abs(col) > 1e-3 {
		t.Errorf("speed should decay toward zero, got (%v, %v)", row, col)
	}
}

func TestUpdateSpeedSnapsToZero(t *testing.T) {
	// Opposing a small drift lands inside the stop threshold
	row, _, err := UpdateSpeed(0.8, 0, -1, 0, DefaultLimits())
	if err != nil {
		t.Fatalf("UpdateSpeed: %v", err)
	}
	// 0.64 - cos(0.32)*0.75 ≈ -0.071 -> snapped
	if row != 0 {
		t.Errorf("near-zero speed should snap to 0, got %v", row)
	}
}

func TestUpdateSpeedRejectsBadInput(t *testing.T) {
	if _, _, err := UpdateSpeed(0, 0, 2, 0, DefaultLimits()); err == nil {
		t.Error("direction 2 should be rejected")
	}
	if _, _, err := UpdateSpeed(0, 0, 0, 0, Limits{RowSpeed: 2, ColumnSpeed: 2, Fading: 1.5}); err == nil {
		t.Error("fading above 1 should be rejected")
	}
}

func TestLimitBoundary(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected float64
	}{
		{5, 1, 10, 5},
		{0.2, 1, 10, 1},
		{12.5, 1, 10, 10},
	}
	for _, tc := range tests {
		if got := LimitBoundary(tc.v, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("LimitBoundary(%v, %v, %v) = %v, expected %v", tc.v, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
