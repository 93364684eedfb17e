// Package tui runs the game in the terminal with Bubble Tea: the cover,
// difficulty and name setup, the frame loop with its timers, and the
// leaderboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-plus/internal/snake"
)

// TickMsg triggers one game frame. Gen ties it to the session that armed it.
type TickMsg struct {
	Gen int
}

// TimerMsg delivers one periodic game event.
type TimerMsg struct {
	Gen   int
	Timer snake.Timer
}

// introMsg reveals the next banner line on the cover.
type introMsg struct{}

// introLineDelay is the pause between banner lines.
const introLineDelay = 100 * time.Millisecond

// tickCmd schedules the next frame at the given rate in frames per second.
func tickCmd(rate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(max(rate, 1))
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// timerCmd schedules one firing of a periodic timer. The receiver re-arms it.
func timerCmd(t snake.Timer, gen int) tea.Cmd {
	return tea.Tick(t.Interval, func(time.Time) tea.Msg {
		return TimerMsg{Gen: gen, Timer: t}
	})
}

func introCmd() tea.Cmd {
	return tea.Tick(introLineDelay, func(time.Time) tea.Msg {
		return introMsg{}
	})
}
