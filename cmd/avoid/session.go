package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/avoid-the-block/internal/audio"
	"github.com/vovakirdan/avoid-the-block/internal/config"
	"github.com/vovakirdan/avoid-the-block/internal/core"
	"github.com/vovakirdan/avoid-the-block/internal/games/avoid"
	"github.com/vovakirdan/avoid-the-block/internal/platform/tui"
	"github.com/vovakirdan/avoid-the-block/internal/storage"
)

// settingsApp is the gdata application name for persisted settings.
const settingsApp = "avoid_the_block"

// newLogger writes to --log, or ~/.avoid/avoid.log. The TUI owns the
// terminal, so a log file that cannot be opened means no logging.
func newLogger() (*log.Logger, io.Closer) {
	path := flagLogPath
	if path == "" {
		path = config.UserPath("avoid.log")
	}
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "avoid",
		Level:           log.DebugLevel,
	})
	return logger, f
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// runApp wires storage, settings and audio and runs the TUI from start.
func runApp(start tui.Screen) error {
	logger, logFile := newLogger()
	defer logFile.Close()

	// Set config path and difficulty before the game is created
	avoid.SetConfigPath(flagConfig)
	avoid.SetDifficultyPreset(flagDifficulty)
	if _, err := avoid.LoadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	manager, err := storage.OpenSettingsManager(settingsApp)
	if err != nil {
		logger.Warn("settings will not persist", "err", err)
		manager = nil
	}
	settings, err := storage.NewSettingsStore(manager)
	if err != nil {
		logger.Warn("settings reset to defaults", "err", err)
	}
	if flagTheme != "" {
		if t, err := avoid.SelectTheme(flagTheme, bestScore(store)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			settings.SetTheme(t.Name)
		}
	}
	if flagMute {
		settings.SetMuted(true)
	}

	sound := audio.New(config.UserPath("assets"), logger)
	if err := sound.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	sound.SetMuted(settings.Settings().Muted)
	defer sound.Close()

	err = tui.Run(tui.Options{
		Store:       store,
		Settings:    settings,
		Audio:       sound,
		Logger:      logger,
		Start:       start,
		Screenshots: true,
	}, runtimeConfig())
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// bestScore is the top ranked score, or 0 without a store.
func bestScore(store *storage.Store) int {
	if store == nil {
		return 0
	}
	best, err := store.HighScore()
	if err != nil {
		return 0
	}
	return best
}

// mustRunApp runs the TUI and exits non-zero on failure.
func mustRunApp(start tui.Screen) {
	if err := runApp(start); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
