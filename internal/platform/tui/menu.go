package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-plus/internal/core"
)

// pixelSnake is the cover banner, revealed one line at a time.
var pixelSnake = []string{
	"   ███████████",
	"  █           █",
	" █             █",
	" █   █   █      █",
	"█    █   █      █",
	"█                █",
	"█   █ █           █",
	"█    █     █      █",
	"█████ █████      █          ███████         █████",
	" █   █     █    █          █       █       █     █",
	"  █████████     █         █         █     █       █",
	"  █       █     █         █          █    █        █      ███",
	" █        █     █        █            █  █    ████  █    █  █",
	"█ █████████     █████████      █████   ██    █    █  ████   █",
	"  ██       █                  █     █       █      █",
	"   █        █                █   ██  █     █   ██   █   ███",
	"    █████████████████████████   █  █████   █  █   █   █",
	"     █                         █   █         █    █   ███",
	"      ███████████████████████     █████████      ████",
}

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// coverChoice is what the player picked on the cover.
type coverChoice int

const (
	coverNone coverChoice = iota
	coverStart
	coverLeaderboard
	coverQuit
)

// MenuModel is the cover screen.
type MenuModel struct {
	width     int
	height    int
	keyMapper *KeyMapper
	revealed  int // Banner lines shown so far
	choice    coverChoice
}

// NewMenuModel creates the cover screen.
func NewMenuModel(km *KeyMapper, width, height int) MenuModel {
	return MenuModel{
		width:     width,
		height:    height,
		keyMapper: km,
	}
}

// Init starts the banner reveal.
func (m MenuModel) Init() tea.Cmd {
	return introCmd()
}

// Update handles messages for the cover.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case introMsg:
		if m.revealed < len(pixelSnake) {
			m.revealed++
			if m.revealed < len(pixelSnake) {
				return m, introCmd()
			}
		}

	case tea.KeyMsg:
		switch m.keyMapper.MapKey(msg) {
		case core.ActionConfirm:
			m.choice = coverStart
		case core.ActionLeaderboard:
			m.choice = coverLeaderboard
		case core.ActionBack, core.ActionQuit:
			m.choice = coverQuit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the cover.
func (m MenuModel) View() string {
	var b strings.Builder

	showBanner := m.height >= len(pixelSnake)+10
	if showBanner {
		b.WriteString("\n")
		for i, line := range pixelSnake {
			if i < m.revealed {
				b.WriteString(centerText(bannerStyle.Render(line), m.width))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E  -  Plus Mode"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuStyle.Render("Press ENTER to Start"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuStyle.Render("Press L to View Leaderboard"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(hintStyle.Render("Press ESC to Exit"), m.width))
	b.WriteString("\n")

	return b.String()
}
