package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/avoid-the-block/internal/audio"
	"github.com/vovakirdan/avoid-the-block/internal/config"
	"github.com/vovakirdan/avoid-the-block/internal/core"
	"github.com/vovakirdan/avoid-the-block/internal/games/avoid"
)

// flashFrames is how long the hit flash runs before name entry.
const flashFrames = 18

var flashColor = core.RGB(255, 120, 120)

type phase int

const (
	phasePlaying phase = iota
	phaseFlash
	phaseNameEntry
	phaseSummary
)

// GameModel runs one round and the name entry and summary after it.
type GameModel struct {
	game    *avoid.Game
	screen  *core.Screen
	painter *Painter
	opts    *Options
	config  core.RuntimeConfig
	keys    *KeyMapper
	loop    int
	replay  bool // a fixed seed replays on every restart

	latch   KeyLatch
	pending core.InputFrame // one-shot actions until the next tick
	tick    uint64

	phase    phase
	flash    int
	name     textinput.Model
	score    int
	saveErr  error
	quitting bool
	back     bool
}

// NewGameModel creates a game and resets it with cfg.
// A zero seed picks a fresh one for every round.
func NewGameModel(opts *Options, cfg core.RuntimeConfig, theme avoid.Theme, leaders []avoid.Entry, painter *Painter, loop int) GameModel {
	replay := cfg.Seed != 0
	if !replay {
		cfg.Seed = time.Now().UnixNano()
	}

	game := avoid.New()
	game.SetTheme(theme)
	game.SetLeaderboard(leaders)
	if opts.Store != nil {
		game.SetRecorder(opts.Store)
	}
	game.Reset(cfg)
	if err := game.ConfigError(); err != nil {
		opts.Logger.Warn("config load failed, using defaults", "err", err)
	}

	ti := textinput.New()
	ti.Placeholder = avoid.DefaultName
	ti.CharLimit = avoid.MaxNameLen
	ti.Width = avoid.MaxNameLen + 1

	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter: painter,
		opts:    opts,
		config:  cfg,
		keys:    NewKeyMapper(),
		loop:    loop,
		replay:  replay,
		latch:   NewKeyLatch(LatchTicks(cfg.TickRate)),
		pending: core.NewInputFrame(),
		name:    ti,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	if m.phase == phaseNameEntry {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, nil
	}

	switch m.phase {
	case phaseNameEntry:
		return m.handleNameKey(msg, action)
	case phaseSummary:
		switch action {
		case core.ActionRestart:
			return m.restart()
		case core.ActionConfirm, core.ActionBack, core.ActionDash:
			m.back = true
		}
		return m, nil
	}

	if msg.String() == "ctrl+s" && m.opts.Screenshots {
		m.saveScreenshot()
		return m, nil
	}

	switch action {
	case core.ActionBack:
		m.back = true
	case core.ActionLeft, core.ActionRight:
		m.latch.Press(action, m.tick)
	case core.ActionNone, core.ActionUp, core.ActionDown, core.ActionConfirm, core.ActionRestart:
	default:
		m.pending.Set(action)
	}
	return m, nil
}

func (m GameModel) handleNameKey(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionConfirm:
		if err := m.game.Sim().RecordResult(m.name.Value(), m.score); err != nil {
			m.saveErr = err
			m.opts.Logger.Error("cannot save result", "err", err)
		}
		m.opts.Audio.Play(audio.SoundClick)
		m.enterSummary()
		return m, nil
	case core.ActionBack:
		m.enterSummary()
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *GameModel) enterSummary() {
	m.name.Blur()
	m.phase = phaseSummary
}

// restart starts a new round, reseeding unless the seed was fixed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	if !m.replay {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.phase = phasePlaying
	m.flash = 0
	m.score = 0
	m.saveErr = nil
	m.name.Reset()
	m.latch.Release()
	m.pending.Clear()
	m.opts.Audio.PlayMusic(audio.TrackGame)
	return m, tickCmd(m.config.TickRate, m.loop)
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePlaying:
		frame := core.NewInputFrame()
		for a := range m.pending.Actions {
			frame.Set(a)
		}
		m.latch.Apply(&frame, m.tick)
		m.pending.Clear()
		m.tick++

		result := m.game.Step(frame)
		m.opts.Audio.HandleEvents(result.Events)

		if result.State.GameOver {
			m.roundOver(result.State.Score)
		}

	case phaseFlash:
		// particles keep moving under the flash
		m.game.Step(core.NewInputFrame())
		m.flash--
		if m.flash <= 0 {
			m.phase = phaseNameEntry
			return m, m.name.Focus()
		}

	default:
		// no ticking while the round is over
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.loop)
}

// roundOver starts the flash and records the round in the history.
func (m *GameModel) roundOver(score int) {
	m.phase = phaseFlash
	m.flash = flashFrames
	m.score = score
	m.latch.Release()
	m.opts.Audio.StopMusic()

	if m.opts.Store == nil {
		return
	}
	played := time.Duration(m.game.Sim().Clock() * float64(time.Second))
	if err := m.opts.Store.SaveRound(score, played); err != nil {
		m.opts.Logger.Warn("cannot save round", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if dir == "" {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", avoid.ID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseNameEntry:
		return m.nameView()
	case phaseSummary:
		return m.summaryView()
	}

	m.game.Render(m.screen)
	if m.phase == phaseFlash {
		Tint(m.screen, flashColor, 0.55)
	}
	return m.painter.Render(m.screen)
}

func (m GameModel) nameView() string {
	red := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef5350"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerStyled(red.Render("Game Over!"), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Your Score: %d", m.score), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Enter name (max %d chars):", avoid.MaxNameLen), m.config.ScreenW))
	b.WriteString("\n")
	for _, line := range strings.Split(box.Render(m.name.View()), "\n") {
		b.WriteString(centerStyled(line, m.config.ScreenW))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerStyled(dim.Render("Press Enter to save, Esc to skip."), m.config.ScreenW))
	b.WriteString("\n")
	return b.String()
}

func (m GameModel) summaryView() string {
	red := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef5350"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerStyled(red.Render("Game Over"), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Score: %d", m.score), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText("Leaderboard (Top Scores):", m.config.ScreenW))
	b.WriteString("\n\n")
	for i, e := range m.Leaderboard() {
		b.WriteString(centerText(fmt.Sprintf("%d. %-*s %5d", i+1, avoid.MaxNameLen, e.Name, e.Score), m.config.ScreenW))
		b.WriteString("\n")
	}
	if m.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(centerStyled(red.Render("Could not save score: "+m.saveErr.Error()), m.config.ScreenW))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerStyled(dim.Render("Enter / Space / Esc: menu  |  R: play again"), m.config.ScreenW))
	b.WriteString("\n")
	return b.String()
}

// Leaderboard returns the ranked results as seen by this round.
func (m GameModel) Leaderboard() []avoid.Entry {
	return m.game.Sim().Leaderboard()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.back
}
