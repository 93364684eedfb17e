package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-plus/internal/core"
	"github.com/vovakirdan/snake-plus/internal/session"
	"github.com/vovakirdan/snake-plus/internal/snake"
)

// statusRows is the space below the board for warnings and help.
const statusRows = 1

// PlayModel runs one session: keys and timers feed the event queue, and each
// TickMsg drains it into one frame.
type PlayModel struct {
	session   *session.Session
	queue     snake.EventQueue
	screen    *core.Screen
	snap      snake.Snapshot
	keyMapper *KeyMapper
	help      help.Model
	gen       int
	warning   string
	err       error
	quitting  bool
	declined  bool // N at game over: show the leaderboard, then exit
}

// NewPlayModel wraps a started session. gen must differ from any earlier play
// model's so stale ticks are dropped.
func NewPlayModel(s *session.Session, km *KeyMapper, gen, width, height int) PlayModel {
	h := help.New()
	h.Width = width
	return PlayModel{
		session:   s,
		screen:    core.NewScreen(width, max(0, height-statusRows)),
		snap:      s.Snapshot(),
		keyMapper: km,
		help:      h,
		gen:       gen,
	}
}

// Init arms the frame loop and every periodic timer.
func (m PlayModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.session.Rate(), m.gen)}
	for _, t := range m.session.Timers() {
		cmds = append(cmds, timerCmd(t, m.gen))
	}
	return tea.Batch(cmds...)
}

// Update handles messages while playing.
func (m PlayModel) Update(msg tea.Msg) (PlayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(0, msg.Height-statusRows))
		m.help.Width = msg.Width
		return m, nil

	case TimerMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.queue.Push(snake.Event{Kind: msg.Timer.Kind})
		return m, timerCmd(msg.Timer, m.gen)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m *PlayModel) handleKey(msg tea.KeyMsg) {
	action := m.keyMapper.MapKey(msg)
	if h, ok := snake.HeadingFor(action); ok {
		m.queue.Push(snake.DirectionEvent(h))
		return
	}

	over := m.session.State() == snake.StateGameOver
	switch action {
	case core.ActionRestart:
		if over {
			m.queue.Push(snake.Event{Kind: snake.EventRestart})
		}
	case core.ActionDecline:
		if over {
			m.declined = true
		}
	case core.ActionBack, core.ActionQuit:
		m.queue.Push(snake.Event{Kind: snake.EventQuit})
	}
}

func (m PlayModel) handleTick() (PlayModel, tea.Cmd) {
	res := m.session.Frame(m.queue.Drain())
	m.snap = res.Snapshot

	switch {
	case res.Err != nil:
		m.err = res.Err
		return m, nil
	case res.Quit:
		m.quitting = true
		return m, nil
	}

	if res.Warning != nil {
		m.warning = res.Warning.Error()
	}
	return m, tickCmd(m.session.Rate(), m.gen)
}

// View renders the board and the status line.
func (m PlayModel) View() string {
	snake.Render(m.screen, m.snap)

	status := m.help.View(m.keyMapper.Keys())
	if m.warning != "" {
		status = errorStyle.Render(m.warning)
	}
	return RenderScreen(m.screen) + "\n" + status
}
