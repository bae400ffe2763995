package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   core.Action
		ok     bool
	}{
		{"right", 4, 1, core.ActionRight, true},
		{"left", -3, 0, core.ActionLeft, true},
		{"down", 1, 5, core.ActionDown, true},
		{"up", 0, -3, core.ActionUp, true},
		{"too short", 2, 1, core.ActionNone, false},
		{"diagonal", 4, -4, core.ActionNone, false},
		{"no movement", 0, 0, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifySwipe(tt.dx, tt.dy, 3)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ClassifySwipe(%d, %d) = %v, %v; want %v, %v", tt.dx, tt.dy, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: action}
}

func TestSwipeTrackerHalvesColumns(t *testing.T) {
	s := NewSwipeTracker(3)
	s.Handle(mouse(10, 10, tea.MouseActionPress))

	// 5 columns is only 2 cells.
	if _, ok := s.Handle(mouse(15, 10, tea.MouseActionMotion)); ok {
		t.Fatal("5 columns counted as a swipe")
	}
	a, ok := s.Handle(mouse(16, 10, tea.MouseActionMotion))
	if !ok || a != core.ActionRight {
		t.Fatalf("got %v, %v; want Right", a, ok)
	}
}

func TestSwipeTrackerReanchors(t *testing.T) {
	s := NewSwipeTracker(3)
	s.Handle(mouse(0, 0, tea.MouseActionPress))

	a, ok := s.Handle(mouse(0, 3, tea.MouseActionMotion))
	if !ok || a != core.ActionDown {
		t.Fatalf("first swipe = %v, %v; want Down", a, ok)
	}
	// Measured from the new anchor, not from the press.
	a, ok = s.Handle(mouse(6, 3, tea.MouseActionMotion))
	if !ok || a != core.ActionRight {
		t.Fatalf("second swipe = %v, %v; want Right", a, ok)
	}
	if _, ok := s.Handle(mouse(6, 4, tea.MouseActionRelease)); ok {
		t.Error("short release counted as a swipe")
	}
	if _, ok := s.Handle(mouse(6, 20, tea.MouseActionMotion)); ok {
		t.Error("motion after release counted as a swipe")
	}
}

func TestSwipeTrackerIgnoresOtherButtons(t *testing.T) {
	s := NewSwipeTracker(3)
	s.Handle(tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	if _, ok := s.Handle(mouse(0, 10, tea.MouseActionRelease)); ok {
		t.Error("right-button drag counted as a swipe")
	}
}
