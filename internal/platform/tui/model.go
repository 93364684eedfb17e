package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-plus/internal/config"
	"github.com/vovakirdan/snake-plus/internal/core"
	"github.com/vovakirdan/snake-plus/internal/session"
	"github.com/vovakirdan/snake-plus/internal/storage"
)

// Options configures the terminal application.
type Options struct {
	Config   config.Config
	Store    storage.Store
	Logger   *log.Logger      // Nil discards logs
	Recorder session.Recorder // Optional
	Runtime  core.RuntimeConfig
	Level    int    // 0 asks on the setup screen
	Player   string // Empty asks on the setup screen
}

type screen int

const (
	screenCover screen = iota
	screenSetup
	screenPlaying
	screenLeaderboard
)

// Model is the Bubble Tea model for the whole application:
// Cover, then Setup, then Playing, then Leaderboard, then exit.
type Model struct {
	opts      Options
	keyMapper *KeyMapper
	screen    screen
	width     int
	height    int
	gen       int

	menu       MenuModel
	setup      SetupModel
	play       PlayModel
	scoreboard ScoreboardModel

	err      error
	quitting bool
}

// NewModel creates the application model.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	km := NewKeyMapper(DefaultKeyMap())
	return Model{
		opts:      opts,
		keyMapper: km,
		screen:    screenCover,
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
		menu:      NewMenuModel(km, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init starts the cover animation.
func (m Model) Init() tea.Cmd {
	return m.menu.Init()
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Update routes messages to the active screen and handles transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenCover:
		m.menu, cmd = m.menu.Update(msg)
		return m.afterCover(cmd)

	case screenSetup:
		m.setup, cmd = m.setup.Update(msg)
		return m.afterSetup(cmd)

	case screenPlaying:
		m.play, cmd = m.play.Update(msg)
		return m.afterPlay(cmd)

	case screenLeaderboard:
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m.afterScoreboard(cmd)
	}
	return m, nil
}

func (m Model) afterCover(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	choice := m.menu.choice
	m.menu.choice = coverNone

	switch choice {
	case coverStart:
		m.setup = NewSetupModel(m.opts.Config, m.keyMapper, m.opts.Level, m.opts.Player, m.width)
		m.screen = screenSetup
		if m.setup.Done() {
			return m.startGame()
		}
		return m, m.setup.Init()
	case coverLeaderboard:
		level := max(m.opts.Level, config.MinLevel)
		m.scoreboard = NewScoreboardModel(m.opts.Config, m.opts.Store, level, m.width)
		m.screen = screenLeaderboard
		return m, nil
	case coverQuit:
		return m.quit(nil)
	}
	return m, cmd
}

func (m Model) afterSetup(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case m.setup.quitting:
		return m.quit(nil)
	case m.setup.back:
		return m.backToCover()
	case m.setup.Done():
		return m.startGame()
	}
	return m, cmd
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	s, err := session.New(session.Options{
		Config:   m.opts.Config,
		Level:    m.setup.Level(),
		Player:   m.setup.Player(),
		Store:    m.opts.Store,
		Logger:   m.opts.Logger,
		Recorder: m.opts.Recorder,
		Seed:     m.opts.Runtime.Seed,
	})
	if err != nil {
		return m.quit(fmt.Errorf("tui: start game: %w", err))
	}

	m.gen++
	m.play = NewPlayModel(s, m.keyMapper, m.gen, m.width, m.height)
	m.screen = screenPlaying
	return m, m.play.Init()
}

func (m Model) afterPlay(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case m.play.err != nil:
		return m.quit(m.play.err)
	case m.play.quitting:
		return m.quit(nil)
	case m.play.declined:
		m.gen++ // Stop the frame loop and timers
		m.scoreboard = NewScoreboardModel(m.opts.Config, m.opts.Store, m.play.session.Profile().Level, m.width)
		m.scoreboard.anyKeyEnd = true
		m.screen = screenLeaderboard
		return m, nil
	}
	return m, cmd
}

func (m Model) afterScoreboard(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case m.scoreboard.quitting:
		return m.quit(nil)
	case m.scoreboard.goingBack:
		return m.backToCover()
	}
	return m, cmd
}

// backToCover shows the cover again. Intro ticks delivered to other screens
// were dropped, so an unfinished banner reveal is restarted.
func (m Model) backToCover() (tea.Model, tea.Cmd) {
	m.screen = screenCover
	if m.menu.revealed < len(pixelSnake) {
		return m, m.menu.Init()
	}
	return m, nil
}

func (m Model) quit(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenSetup:
		return m.setup.View()
	case screenPlaying:
		return m.play.View()
	case screenLeaderboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
