package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/avoid-the-block/internal/audio"
	"github.com/vovakirdan/avoid-the-block/internal/core"
	"github.com/vovakirdan/avoid-the-block/internal/games/avoid"
	"github.com/vovakirdan/avoid-the-block/internal/storage"
)

// Screen identifies one page of the app.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenThemes
	ScreenInstructions
	ScreenLeaderboard
	ScreenGame
)

// Options wires the app to its collaborators. Every field is optional.
type Options struct {
	Store       *storage.Store         // ranked results and round history
	Settings    *storage.SettingsStore // theme and mute persistence
	Audio       *audio.Service         // silent unless initialised
	Logger      *log.Logger
	Renderer    *lipgloss.Renderer // per-session renderer for SSH
	Start       Screen             // first page; leaving it quits unless it is the menu
	Screenshots bool               // ctrl+s saves the game screen to disk
}

func (o *Options) defaults() {
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Audio == nil {
		o.Audio = audio.New("", o.Logger)
	}
	if o.Settings == nil {
		o.Settings, _ = storage.NewSettingsStore(nil)
	}
}

// App is the top-level model: menu -> game -> menu, plus the side pages.
// Local play and SSH sessions both run it.
type App struct {
	opts    *Options
	config  core.RuntimeConfig
	painter *Painter
	keys    *KeyMapper

	screen  Screen
	menu    MenuModel
	themes  ThemesModel
	board   ScoreboardModel
	game    *GameModel
	loopSeq int

	leaders  []avoid.Entry // used when there is no store
	quitting bool
}

// NewApp creates the app model.
func NewApp(opts Options, cfg core.RuntimeConfig) App {
	opts.defaults()
	m := App{
		opts:    &opts,
		config:  cfg,
		painter: NewPainter(opts.Renderer),
		keys:    NewKeyMapper(),
	}
	m = m.open(opts.Start)
	return m
}

// Init starts the first page.
func (m App) Init() tea.Cmd {
	if m.screen == ScreenGame && m.game != nil {
		return m.game.Init()
	}
	return nil
}

// theme resolves the persisted theme against the current best score.
func (m App) theme() avoid.Theme {
	t, err := avoid.SelectTheme(m.opts.Settings.Settings().Theme, m.best())
	if err != nil {
		return avoid.DefaultTheme()
	}
	return t
}

// leaderboard returns the ranked entries, from the store when there is one.
func (m App) leaderboard() []avoid.Entry {
	if m.opts.Store == nil {
		return m.leaders
	}
	rows, err := m.opts.Store.Leaderboard(avoid.MaxLeaders)
	if err != nil {
		m.opts.Logger.Warn("cannot load leaderboard", "err", err)
		return m.leaders
	}
	entries := make([]avoid.Entry, len(rows))
	for i, r := range rows {
		entries[i] = avoid.Entry{Name: r.Name, Score: r.Score}
	}
	return entries
}

func (m App) best() int {
	return avoid.NewLeaderboard(m.leaderboard()).Best()
}

// open switches to screen s, building its model.
func (m App) open(s Screen) App {
	m.screen = s
	switch s {
	case ScreenMenu, ScreenInstructions:
		m.menu = NewMenuModel(m.theme(), m.opts.Settings.Settings().Muted, m.config)
		m.opts.Audio.PlayMusic(audio.TrackMenu)
	case ScreenThemes:
		m.themes = NewThemesModel(m.theme(), m.best(), m.config)
		m.opts.Audio.PlayMusic(audio.TrackMenu)
	case ScreenLeaderboard:
		m.board = NewScoreboardModel(m.opts.Store, m.leaderboard(), m.config.ScreenW, m.config.ScreenH)
		m.opts.Audio.PlayMusic(audio.TrackMenu)
	case ScreenGame:
		m.loopSeq++
		g := NewGameModel(m.opts, m.config, m.theme(), m.leaderboard(), m.painter, m.loopSeq)
		m.game = &g
		m.opts.Audio.PlayMusic(audio.TrackGame)
	}
	return m
}

// back leaves a side page: to the menu, or out when it was the start page.
func (m App) back() (tea.Model, tea.Cmd) {
	if m.opts.Start != ScreenMenu && m.screen == m.opts.Start {
		m.quitting = true
		return m, tea.Quit
	}
	m.opts.Audio.Play(audio.SoundClick)
	return m.open(ScreenMenu), nil
}

// Update handles messages for the current page.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case ScreenGame:
		return m.updateGame(msg)
	case ScreenThemes:
		return m.updateThemes(msg)
	case ScreenLeaderboard:
		return m.updateBoard(msg)
	case ScreenInstructions:
		return m.updateInstructions(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	m.menu = newMenu.(MenuModel)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.menu.Moved() {
		m.opts.Audio.Play(audio.SoundHover)
	}
	if m.menu.MuteToggled() {
		m.setMuted(m.menu.Muted())
	}

	choice := m.menu.Selected()
	if choice == MenuNone {
		return m, cmd
	}
	m.opts.Audio.Play(audio.SoundClick)
	switch choice {
	case MenuPlay:
		m = m.open(ScreenGame)
		return m, m.game.Init()
	case MenuThemes:
		return m.open(ScreenThemes), nil
	case MenuInstructions:
		return m.open(ScreenInstructions), nil
	case MenuLeaderboard:
		return m.open(ScreenLeaderboard), nil
	default:
		m.quitting = true
		return m, tea.Quit
	}
}

func (m App) setMuted(muted bool) {
	m.opts.Audio.SetMuted(muted)
	m.opts.Settings.SetMuted(muted)
	if err := m.opts.Settings.Save(); err != nil {
		m.opts.Logger.Warn("cannot save settings", "err", err)
	}
}

func (m App) updateInstructions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch m.keys.MapKeyToMenuAction(km) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			return m.back()
		}
	}
	return m, nil
}

func (m App) updateThemes(msg tea.Msg) (tea.Model, tea.Cmd) {
	newThemes, cmd := m.themes.Update(msg)
	m.themes = newThemes.(ThemesModel)

	switch {
	case m.themes.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.themes.IsGoingBack():
		return m.back()
	}

	if m.themes.Moved() {
		m.opts.Audio.Play(audio.SoundHover)
	}
	if picked, ok := m.themes.Picked(); ok {
		if picked.Unlocked(m.best()) {
			m.opts.Settings.SetTheme(picked.Name)
			if err := m.opts.Settings.Save(); err != nil {
				m.opts.Logger.Warn("cannot save settings", "err", err)
			}
			m.opts.Audio.Play(audio.SoundClick)
		} else {
			m.opts.Audio.Play(audio.SoundHit)
		}
		m.themes = m.themes.Acknowledge(m.theme())
	}
	return m, cmd
}

func (m App) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.board.Update(msg)
	m.board = newBoard.(ScoreboardModel)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		return m.back()
	}
	return m, cmd
}

func (m App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.game == nil {
		return m.open(ScreenMenu), nil
	}
	newGame, cmd := m.game.Update(msg)
	g := newGame.(GameModel)
	m.game = &g

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.leaders = m.game.Leaderboard()
		m.game = nil
		if m.opts.Start == ScreenGame {
			m.opts.Start = ScreenMenu
		}
		return m.open(ScreenMenu), nil
	}
	return m, cmd
}

// View renders the current page.
func (m App) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case ScreenGame:
		if m.game != nil {
			return m.game.View()
		}
	case ScreenThemes:
		return m.themes.View()
	case ScreenLeaderboard:
		return m.board.View()
	case ScreenInstructions:
		return m.menu.InstructionsView()
	}
	return m.menu.View()
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewApp(opts, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	_, err := p.Run()
	return err
}
