package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"j", runes("j"), core.ActionDown},
		{"a", runes("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"p", runes("p"), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runes("r"), core.ActionRestart},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help is not an action", runes("?"), core.ActionNone},
		{"unbound", runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestThemeForFallback(t *testing.T) {
	if got := ThemeFor("frost").Name; got != "frost" {
		t.Errorf("ThemeFor(frost) = %q", got)
	}
	if got := ThemeFor("unknown").Name; got != "meadow" {
		t.Errorf("ThemeFor(unknown) = %q, want meadow", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorFood)
	s.DrawTextColored(2, 0, "cd", core.ColorHUD)

	out := RenderScreen(s, ClassicTheme())
	plain := stripANSI(out)
	if want := "abcd  \n      "; plain != want {
		t.Errorf("rendered text = %q, want %q", plain, want)
	}
}

// stripANSI drops CSI escape sequences.
func stripANSI(s string) string {
	out := make([]rune, 0, len(s))
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
