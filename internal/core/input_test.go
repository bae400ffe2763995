package core

import "testing"

func TestInputFrameLastDirection(t *testing.T) {
	f := NewInputFrame()
	if f.LastDirection() != ActionNone {
		t.Fatalf("empty frame should have no direction")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)

	if got := f.LastDirection(); got != ActionLeft {
		t.Errorf("LastDirection() = %v, expected Left", got)
	}
	if !f.Has(ActionPause) {
		t.Error("Pause should be recorded")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) || f.LastDirection() != ActionNone {
		t.Error("Clear should drop all actions")
	}
	if clone.LastDirection() != ActionLeft {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionRight:   "Right",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("%d.String() = %q, expected %q", a, a.String(), want)
		}
	}
}
