package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// columnsPerCell is how many terminal columns one board cell spans.
// Horizontal drags are scaled by it so both axes are measured in cells.
const columnsPerCell = 2

// ClassifySwipe maps a drag of (dx, dy) board cells to a direction along
// its dominant axis. Drags shorter than threshold, and exact diagonals,
// are not swipes.
func ClassifySwipe(dx, dy, threshold int) (core.Action, bool) {
	ax, ay := core.Abs(dx), core.Abs(dy)
	if max(ax, ay) < max(threshold, 1) || ax == ay {
		return core.ActionNone, false
	}
	if ax > ay {
		if dx > 0 {
			return core.ActionRight, true
		}
		return core.ActionLeft, true
	}
	if dy > 0 {
		return core.ActionDown, true
	}
	return core.ActionUp, true
}

// SwipeTracker turns left-button mouse drags into direction actions.
// A long drag can emit several swipes: after each one the anchor moves to
// the current pointer position.
type SwipeTracker struct {
	threshold int
	active    bool
	x, y      int
}

// NewSwipeTracker creates a tracker with the given threshold in board cells.
func NewSwipeTracker(threshold int) *SwipeTracker {
	return &SwipeTracker{threshold: threshold}
}

// Handle consumes a mouse message and reports a swipe if one completed.
func (s *SwipeTracker) Handle(msg tea.MouseMsg) (core.Action, bool) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return core.ActionNone, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		s.active = true
		s.x, s.y = msg.X, msg.Y
		return core.ActionNone, false
	case tea.MouseActionMotion, tea.MouseActionRelease:
		if !s.active {
			return core.ActionNone, false
		}
		if msg.Action == tea.MouseActionRelease {
			s.active = false
		}
		action, ok := ClassifySwipe((msg.X-s.x)/columnsPerCell, msg.Y-s.y, s.threshold)
		if ok {
			s.x, s.y = msg.X, msg.Y
		}
		return action, ok
	}
	return core.ActionNone, false
}
