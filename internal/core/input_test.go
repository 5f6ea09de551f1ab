package core

import "testing"

func TestInputFrameDirections(t *testing.T) {
	tests := []struct {
		name           string
		actions        []Action
		rowDir, colDir int
	}{
		{"none", nil, 0, 0},
		{"up", []Action{ActionUp}, -1, 0},
		{"down right", []Action{ActionDown, ActionRight}, 1, 1},
		{"left", []Action{ActionLeft}, 0, -1},
		{"opposites cancel", []Action{ActionUp, ActionDown, ActionLeft}, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			rowDir, colDir := f.Directions()
			if rowDir != tc.rowDir || colDir != tc.colDir {
				t.Errorf("Directions() = (%d, %d), expected (%d, %d)", rowDir, colDir, tc.rowDir, tc.colDir)
			}
		})
	}
}

func TestInputFrameReadControlsConsumes(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionFire)
	f.Set(ActionPause)

	rowDir, colDir, fire := f.ReadControls()
	if rowDir != -1 || colDir != 0 || !fire {
		t.Errorf("ReadControls() = (%d, %d, %v), expected (-1, 0, true)", rowDir, colDir, fire)
	}

	rowDir, colDir, fire = f.ReadControls()
	if rowDir != 0 || colDir != 0 || fire {
		t.Errorf("second ReadControls() = (%d, %d, %v), expected neutral", rowDir, colDir, fire)
	}

	if !f.Has(ActionPause) {
		t.Error("ReadControls should leave non-steering actions alone")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	rowDir, colDir, fire := f.ReadControls()
	if rowDir != 0 || colDir != 0 || fire {
		t.Error("zero frame should read neutral controls")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
