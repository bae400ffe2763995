package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pressMenu(m MenuModel, keys ...tea.KeyMsg) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := MenuModel{
		items: []MenuItem{{GameID: "snake"}, {GameID: "snake_classic"}},
		keys:  DefaultMenuKeyMap(),
	}

	m = pressMenu(m, runes("k"))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d after up at top, want 0", m.cursor)
	}
	m = pressMenu(m, runes("j"), runes("j"), runes("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d after moving past the end, want 1", m.cursor)
	}

	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || sel.GameID != "snake_classic" {
		t.Errorf("Selected() = %+v, want snake_classic", sel)
	}
}

func TestMenuEmptyCursor(t *testing.T) {
	m := pressMenu(MenuModel{keys: DefaultMenuKeyMap()}, runes("j"), runes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d in an empty menu, want 0", m.cursor)
	}
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != nil {
		t.Error("empty menu should not select anything")
	}
}
