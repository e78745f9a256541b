package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a telemetry poll.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(PollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
