// Package tui provides the Bubble Tea integration: the terminal event loop,
// key-to-action mapping and rendering of the screen buffer. Bubble Tea owns
// the raw terminal mode and restores it on every exit path, so a crash never
// leaves the terminal unusable.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends a tick message after the given
// interval. The interval is re-read from the game after every tick, so the
// loop speeds up as the score grows.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
