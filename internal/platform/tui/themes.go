package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/avoid-the-block/internal/core"
	"github.com/vovakirdan/avoid-the-block/internal/games/avoid"
)

// ThemesModel lists the palettes and their unlock thresholds.
type ThemesModel struct {
	themes    []avoid.Theme
	current   avoid.Theme
	best      int
	cursor    int
	width     int
	keyMapper *KeyMapper

	// set by the last Update only
	moved  bool
	picked bool

	goingBack bool
	quitting  bool
	notice    string
}

// NewThemesModel creates the picker with the cursor on current.
func NewThemesModel(current avoid.Theme, best int, cfg core.RuntimeConfig) ThemesModel {
	m := ThemesModel{
		themes:    avoid.Themes(),
		current:   current,
		best:      best,
		width:     cfg.ScreenW,
		keyMapper: NewKeyMapper(),
	}
	for i, t := range m.themes {
		if t.Name == current.Name {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m ThemesModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection.
func (m ThemesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.moved, m.picked = false, false

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
		case MenuActionBack:
			m.goingBack = true
		case MenuActionUp:
			m.cursor = (m.cursor - 1 + len(m.themes)) % len(m.themes)
			m.moved = true
			m.notice = ""
		case MenuActionDown:
			m.cursor = (m.cursor + 1) % len(m.themes)
			m.moved = true
			m.notice = ""
		case MenuActionSelect:
			m.picked = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// Picked returns the theme under the cursor when the last key selected it.
func (m ThemesModel) Picked() (avoid.Theme, bool) {
	if !m.picked {
		return avoid.Theme{}, false
	}
	return m.themes[m.cursor], true
}

// Acknowledge records the outcome of a pick: the active theme and a notice.
func (m ThemesModel) Acknowledge(active avoid.Theme) ThemesModel {
	t := m.themes[m.cursor]
	if t.Unlocked(m.best) {
		m.current = active
		m.notice = fmt.Sprintf("%s selected", active.Name)
	} else {
		m.notice = fmt.Sprintf("%s is locked: reach %d points", t.Name, t.Unlock)
	}
	return m
}

// View renders the theme list.
func (m ThemesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.current.Accent.Hex()))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	locked := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(accent.Render("Select Theme"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(dim.Render(fmt.Sprintf("Best: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, t := range m.themes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := " "
		if t.Name == m.current.Name {
			mark = "*"
		}
		req := "Unlocked"
		if t.Unlock > 0 {
			req = fmt.Sprintf("Requires %d pts", t.Unlock)
		}
		line := fmt.Sprintf("%s%s %-14s %s", cursor, mark, t.Name, req)

		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent.Hex())).Render("■■")
		if !t.Unlocked(m.best) {
			line = locked.Render(line + " (locked)")
			swatch = locked.Render("□□")
		}
		b.WriteString(centerStyled(swatch+" "+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(centerStyled(m.notice, m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerStyled(dim.Render("Enter: Select  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Moved reports whether the last key moved the cursor.
func (m ThemesModel) Moved() bool {
	return m.moved
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ThemesModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ThemesModel) IsQuitting() bool {
	return m.quitting
}
