package storage

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are the cosmetic and audio preferences that survive restarts.
type Settings struct {
	Theme string `yaml:"theme"`
	Muted bool   `yaml:"muted"`
}

// DefaultSettings returns the first-run settings.
func DefaultSettings() Settings {
	return Settings{Theme: "DarkBlueGlow"}
}

// OpenSettingsManager opens the per-user gdata store for appName.
// Callers treat an error as "no persistence" and pass nil to NewSettingsStore.
func OpenSettingsManager(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open settings store: %w", err)
	}
	return m, nil
}

// SettingsStore loads and saves Settings. A nil manager keeps settings in
// memory only, which is how SSH sessions run.
type SettingsStore struct {
	mu       sync.Mutex
	manager  *gdata.Manager
	settings Settings
}

// NewSettingsStore creates a store and loads saved settings. A load error
// is returned alongside a usable store holding defaults.
func NewSettingsStore(manager *gdata.Manager) (*SettingsStore, error) {
	s := &SettingsStore{manager: manager, settings: DefaultSettings()}
	return s, s.Load()
}

// Load replaces the in-memory settings with the saved ones.
// Missing data yields defaults; corrupt data yields defaults and an error.
func (s *SettingsStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = DefaultSettings()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("storage: cannot load settings: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("storage: cannot parse settings: %w", err)
	}
	if loaded.Theme == "" {
		loaded.Theme = DefaultSettings().Theme
	}
	s.settings = loaded
	return nil
}

// Save writes the in-memory settings. Without a manager it is a no-op.
func (s *SettingsStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("storage: cannot encode settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}

// Settings returns a copy of the current settings.
func (s *SettingsStore) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetTheme changes the theme in memory; call Save to persist.
func (s *SettingsStore) SetTheme(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Theme = name
}

// SetMuted changes the mute flag in memory; call Save to persist.
func (s *SettingsStore) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Muted = muted
}
