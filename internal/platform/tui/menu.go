package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/avoid-the-block/internal/core"
	"github.com/vovakirdan/avoid-the-block/internal/games/avoid"
)

// MenuChoice is an entry of the start menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuThemes
	MenuInstructions
	MenuLeaderboard
	MenuQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "Play"
	case MenuThemes:
		return "Themes"
	case MenuInstructions:
		return "Instructions"
	case MenuLeaderboard:
		return "Leaderboard"
	case MenuQuit:
		return "Quit"
	}
	return ""
}

var menuItems = []MenuChoice{MenuPlay, MenuThemes, MenuInstructions, MenuLeaderboard, MenuQuit}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	theme     avoid.Theme
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	muted     bool

	// set by the last Update only
	moved       bool
	muteToggled bool
	selected    MenuChoice
	quitting    bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(theme avoid.Theme, muted bool, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		theme:     theme,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
		muted:     muted,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.moved, m.muteToggled, m.selected = false, false, MenuNone

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(menuItems)) % len(menuItems)
		m.moved = true

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(menuItems)
		m.moved = true

	case MenuActionSelect:
		m.selected = menuItems[m.cursor]

	case MenuActionMute:
		m.muted = !m.muted
		m.muteToggled = true
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Accent.Hex()))
	active := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(m.theme.Panel.Hex()))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(accent.Render("A V O I D   T H E   B L O C K"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Survive as long as you can. Move, dodge, endure.", m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		label := fmt.Sprintf("  %-14s", item)
		if i == m.cursor {
			b.WriteString(centerStyled(active.Render("> "+label[2:]), m.width))
		} else {
			b.WriteString(centerStyled(label, m.width))
		}
		b.WriteString("\n")
	}

	sound := "on"
	if m.muted {
		sound = "off"
	}
	b.WriteString("\n")
	b.WriteString(centerStyled(dim.Render(fmt.Sprintf("Theme: %s  |  Sound: %s", m.theme.Name, sound)), m.width))
	b.WriteString("\n")
	b.WriteString(centerStyled(dim.Render("Up/Down: Navigate  |  Enter: Select  |  M: Mute  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

var instructions = []string{
	"Move left and right to dodge falling obstacles.",
	"Each obstacle avoided increases your score.",
	"Difficulty increases over time (faster & more obstacles).",
	"Grab power-ups: [S]hield, slo[W], [M]ultiplier, [D]ash.",
	"A/D or arrows move. Space, Shift+arrow, Q/E dash.",
	"P pauses. Esc returns to the menu.",
	"Try to top the leaderboard!",
}

// InstructionsView renders the help page in the menu's theme.
func (m MenuModel) InstructionsView() string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Accent.Hex()))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(accent.Render("Instructions"), m.width))
	b.WriteString("\n\n")
	for _, line := range instructions {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerStyled(dim.Render("Press Esc / Enter / Space to go back."), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the item chosen by the last key, or MenuNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Moved reports whether the last key moved the cursor.
func (m MenuModel) Moved() bool {
	return m.moved
}

// MuteToggled reports whether the last key flipped the mute flag.
func (m MenuModel) MuteToggled() bool {
	return m.muteToggled
}

// Muted returns the mute flag shown in the footer.
func (m MenuModel) Muted() bool {
	return m.muted
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, width)
}

// centerStyled centers text that may carry ANSI styling.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
