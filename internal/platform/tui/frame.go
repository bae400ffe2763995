// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, themes and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance the game by one platform frame.
// Gen ties the message to the frame loop that scheduled it: the model
// drops messages of older loops, so a restart never leaves two loops running.
type FrameMsg struct {
	Gen  uint64
	Time time.Time
}

// frameCmd returns a command that delivers one FrameMsg after interval.
func frameCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}
