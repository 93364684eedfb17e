package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-plus/internal/config"
	"github.com/vovakirdan/snake-plus/internal/core"
	"github.com/vovakirdan/snake-plus/internal/session"
)

type setupStage int

const (
	stageDifficulty setupStage = iota
	stageName
	stageDone
)

// SetupModel picks the difficulty, then the player name.
type SetupModel struct {
	profiles  []config.DifficultyProfile
	cursor    int
	level     int
	input     textinput.Model
	nameErr   string
	stage     setupStage
	keyMapper *KeyMapper
	width     int
	back      bool
	quitting  bool
}

// NewSetupModel creates the setup screens. A non-zero level or a non-empty
// player skips the matching step.
func NewSetupModel(cfg config.Config, km *KeyMapper, level int, player string, width int) SetupModel {
	profiles := make([]config.DifficultyProfile, 0, config.MaxLevel)
	for _, l := range cfg.Levels() {
		if p, err := cfg.Profile(l); err == nil {
			profiles = append(profiles, p)
		}
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = session.MaxNameLen
	ti.Width = session.MaxNameLen + 2
	ti.Prompt = "> "
	ti.SetValue(player)

	m := SetupModel{
		profiles:  profiles,
		level:     level,
		input:     ti,
		keyMapper: km,
		width:     width,
	}
	switch {
	case level == 0:
		m.stage = stageDifficulty
	case player == "":
		m.stage = stageName
		m.input.Focus()
	default:
		m.stage = stageDone
	}
	return m
}

// Init starts the cursor blink when the name prompt is first.
func (m SetupModel) Init() tea.Cmd {
	if m.stage == stageName {
		return textinput.Blink
	}
	return nil
}

// Level returns the chosen difficulty level.
func (m SetupModel) Level() int { return m.level }

// Player returns the entered name, trimmed.
func (m SetupModel) Player() string { return strings.TrimSpace(m.input.Value()) }

// Done reports whether both choices are made.
func (m SetupModel) Done() bool { return m.stage == stageDone }

// Update handles messages for the setup screens.
func (m SetupModel) Update(msg tea.Msg) (SetupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.stage == stageDifficulty {
			return m.updateDifficulty(msg)
		}
		if m.stage == stageName {
			return m.updateName(msg)
		}
		return m, nil
	}

	if m.stage == stageName {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m SetupModel) updateDifficulty(msg tea.KeyMsg) (SetupModel, tea.Cmd) {
	if n, err := strconv.Atoi(msg.String()); err == nil {
		for i, p := range m.profiles {
			if p.Level == n {
				m.cursor = i
				return m.chooseLevel()
			}
		}
		return m, nil
	}

	switch m.keyMapper.MapKey(msg) {
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(m.profiles)-1 {
			m.cursor++
		}
	case core.ActionConfirm:
		if len(m.profiles) > 0 {
			return m.chooseLevel()
		}
	case core.ActionBack:
		m.back = true
	case core.ActionQuit:
		m.quitting = true
	}
	return m, nil
}

func (m SetupModel) chooseLevel() (SetupModel, tea.Cmd) {
	m.level = m.profiles[m.cursor].Level
	if m.Player() != "" {
		m.stage = stageDone
		return m, nil
	}
	m.stage = stageName
	return m, m.input.Focus()
}

// updateName routes keys to the text input. Only enter, esc and ctrl+c are
// intercepted so letters bound elsewhere can be typed.
func (m SetupModel) updateName(msg tea.KeyMsg) (SetupModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name, err := session.NormalizeName(m.input.Value())
		if err != nil {
			m.nameErr = "Name must be 1-10 characters, no commas"
			return m, nil
		}
		m.input.SetValue(name)
		m.input.Blur()
		m.stage = stageDone
		return m, nil
	case tea.KeyEsc:
		m.back = true
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, nil
	}

	m.nameErr = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the current setup step.
func (m SetupModel) View() string {
	var b strings.Builder
	b.WriteString("\n\n")

	switch m.stage {
	case stageDifficulty:
		b.WriteString(centerText(titleStyle.Render("Select Difficulty"), m.width))
		b.WriteString("\n\n")
		for i, p := range m.profiles {
			cursor := "  "
			style := menuStyle
			if i == m.cursor {
				cursor = "> "
				style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
			}
			line := fmt.Sprintf("%s%d. Level %d - %s", cursor, p.Level, p.Level, p.Name)
			b.WriteString(centerText(style.Render(line), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(hintStyle.Render("1-3 or Up/Down + Enter  |  Esc: Back"), m.width))

	case stageName:
		b.WriteString(centerText(titleStyle.Render("Enter Your Name:"), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.input.View(), m.width))
		b.WriteString("\n\n")
		if m.nameErr != "" {
			b.WriteString(centerText(errorStyle.Render(m.nameErr), m.width))
			b.WriteString("\n")
		}
		b.WriteString(centerText(hintStyle.Render("Enter: Start  |  Esc: Back"), m.width))
	}

	b.WriteString("\n")
	return b.String()
}
