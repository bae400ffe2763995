package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme maps semantic cell colors to terminal styles.
// Each chapter of the game has its own theme.
type Theme struct {
	Name   string
	styles map[core.Color]lipgloss.Style
}

// Style returns the style for a color role, falling back to the default.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.styles[core.ColorDefault]
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// base holds the roles every theme shares.
func base() map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorHUD:     fg("255"),
		core.ColorFrozen:  fg("51").Bold(true),
		core.ColorImmune:  fg("226").Bold(true),
		core.ColorBanner:  fg("226").Bold(true),
		core.ColorDanger:  fg("196").Bold(true),
		core.ColorMuted:   fg("240"),
	}
}

func newTheme(name string, roles map[core.Color]lipgloss.Style) Theme {
	styles := base()
	for c, s := range roles {
		styles[c] = s
	}
	return Theme{Name: name, styles: styles}
}

// MeadowTheme returns the green prologue theme.
func MeadowTheme() Theme {
	return newTheme("meadow", map[core.Color]lipgloss.Style{
		core.ColorBorder:    fg("71"),
		core.ColorSnakeHead: fg("118").Bold(true),
		core.ColorSnakeBody: fg("34"),
		core.ColorFood:      fg("203"),
		core.ColorObstacle:  fg("137"),
		core.ColorMuted:     fg("22"),
	})
}

// FrostTheme returns the icy blue theme.
func FrostTheme() Theme {
	return newTheme("frost", map[core.Color]lipgloss.Style{
		core.ColorBorder:    fg("117"),
		core.ColorSnakeHead: fg("195").Bold(true),
		core.ColorSnakeBody: fg("81"),
		core.ColorFood:      fg("213"),
		core.ColorObstacle:  fg("153"),
		core.ColorMuted:     fg("24"),
	})
}

// EmberTheme returns the red and orange theme.
func EmberTheme() Theme {
	return newTheme("ember", map[core.Color]lipgloss.Style{
		core.ColorBorder:    fg("166"),
		core.ColorSnakeHead: fg("220").Bold(true),
		core.ColorSnakeBody: fg("208"),
		core.ColorFood:      fg("231"),
		core.ColorObstacle:  fg("124"),
		core.ColorMuted:     fg("52"),
	})
}

// VoidTheme returns the purple final chapter theme.
func VoidTheme() Theme {
	return newTheme("void", map[core.Color]lipgloss.Style{
		core.ColorBorder:    fg("93"),
		core.ColorSnakeHead: fg("207").Bold(true),
		core.ColorSnakeBody: fg("135"),
		core.ColorFood:      fg("87"),
		core.ColorObstacle:  fg("60"),
		core.ColorMuted:     fg("235"),
	})
}

// ClassicTheme returns a plain theme using the 16 basic colors.
func ClassicTheme() Theme {
	return newTheme("classic", map[core.Color]lipgloss.Style{
		core.ColorBorder:    fg("7"),
		core.ColorHUD:       fg("15"),
		core.ColorSnakeHead: fg("10"),
		core.ColorSnakeBody: fg("2"),
		core.ColorFood:      fg("9"),
		core.ColorObstacle:  fg("8"),
		core.ColorBanner:    fg("11"),
		core.ColorMuted:     fg("8"),
	})
}

var themes = map[string]Theme{
	"meadow":  MeadowTheme(),
	"frost":   FrostTheme(),
	"ember":   EmberTheme(),
	"void":    VoidTheme(),
	"classic": ClassicTheme(),
}

// ThemeFor returns the theme with the given name, or the meadow theme.
func ThemeFor(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["meadow"]
}
