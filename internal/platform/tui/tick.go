// Package tui provides the Bubble Tea front end for Sea Battle.
// It handles the terminal UI loop, key bindings and board rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ComputerMoveMsg is sent when the computer should take its shot.
type ComputerMoveMsg time.Time

// computerMoveCmd schedules the computer's next shot after a short pause so the
// player can follow what happened.
func computerMoveCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ComputerMoveMsg(t)
	})
}
