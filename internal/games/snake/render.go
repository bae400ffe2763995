package snake

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellWidth is the number of terminal columns per board cell. Terminal
// cells are roughly twice as tall as wide, so two columns keep the board square.
const cellWidth = 2

// Cell glyphs. Occupied cells repeat the rune across both columns.
const (
	glyphEmpty    = '·'
	glyphHead     = '█'
	glyphBody     = '▓'
	glyphFood     = '●'
	glyphObstacle = '#'
	glyphEdible   = '▒'
)

// MinScreenSize returns the smallest screen that fits a board of the given
// size with the HUD and banner lines.
func MinScreenSize(size int) (w, h int) {
	return size*cellWidth + 2, size + 4
}

// Layout describes where the board is drawn on a screen.
type Layout struct {
	OriginX int // column of the first cell
	OriginY int // row of the first cell
	Size    int
}

// LayoutFor centers a board of the given size on a w×h screen.
func LayoutFor(size, w, h int) (Layout, bool) {
	minW, minH := MinScreenSize(size)
	if w < minW || h < minH {
		return Layout{Size: size}, false
	}
	return Layout{
		OriginX: (w-minW)/2 + 1,
		OriginY: 2,
		Size:    size,
	}, true
}

// Render draws the session view onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	v := g.session.View()

	g.renderHUD(dst, v)

	layout, ok := LayoutFor(v.Size, dst.Width(), dst.Height())
	if !ok {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	renderBoard(dst, layout, v)

	if v.Banner != "" {
		color := core.ColorBanner
		if v.GameOver {
			color = core.ColorDanger
		} else if v.Frozen {
			color = core.ColorFrozen
		}
		dst.DrawTextCentered(layout.OriginY+v.Size+1, v.Banner, color)
	}

	switch v.State {
	case StateNotStarted:
		renderOverlay(dst, g.Title(), "Press Enter to start")
	case StateGameOver:
		renderOverlay(dst, fmt.Sprintf("Game Over: %s", v.Cause), "Press R to restart")
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen, v View) {
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d", g.Title(), v.Score, v.HighScore)
	if v.PhaseCount > 1 {
		hud += fmt.Sprintf("  %s (%d/%d)", v.PhaseName, v.Phase+1, v.PhaseCount)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)

	var status string
	switch {
	case v.Frozen:
		status = "FROZEN"
	case v.Immune:
		status = "IMMUNE"
	case v.Modifier != ModifierNone:
		status = v.Modifier.String()
	}
	if status != "" {
		x := dst.Width() - utf8.RuneCountInString(status) - 1
		dst.DrawTextColored(x, 0, status, core.ColorHUD)
	}
}

func renderBoard(dst *core.Screen, l Layout, v View) {
	dst.DrawBox(l.OriginX-1, l.OriginY-1, l.Size*cellWidth+2, l.Size+2, core.ColorBorder)

	for i := range l.Size * l.Size {
		drawCell(dst, l, i, glyphEmpty, core.ColorMuted)
	}

	for _, o := range v.Obstacles {
		if v.ObstaclesEdible {
			drawCell(dst, l, o, glyphEdible, core.ColorObstacle)
		} else {
			drawCell(dst, l, o, glyphObstacle, core.ColorObstacle)
		}
	}

	if v.Food != NoCell {
		drawCell(dst, l, v.Food, glyphFood, core.ColorFood)
	}

	body, head := core.ColorSnakeBody, core.ColorSnakeHead
	switch {
	case v.Frozen:
		body, head = core.ColorFrozen, core.ColorFrozen
	case v.Immune:
		head = core.ColorImmune
	}
	// Tail first so the head wins if anything overlaps.
	for i := len(v.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dst, l, v.Snake[i], glyphHead, head)
		} else {
			drawCell(dst, l, v.Snake[i], glyphBody, body)
		}
	}
}

func drawCell(dst *core.Screen, l Layout, i int, r rune, c core.Color) {
	x := l.OriginX + (i%l.Size)*cellWidth
	y := l.OriginY + i/l.Size
	dst.SetColored(x, y, r, c)
	if r == glyphEmpty {
		dst.SetColored(x+1, y, ' ', c)
		return
	}
	dst.SetColored(x+1, y, r, c)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	n := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	boxW := n + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.SetColored(x, y, ' ', core.ColorDefault)
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBanner)
	dst.DrawTextCentered(boxY+1, line1, core.ColorBanner)
	dst.DrawTextCentered(boxY+3, line2, core.ColorHUD)
}
