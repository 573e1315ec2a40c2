// Package settings remembers the player's preferred puzzle parameters between
// runs. Board state is never stored.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"lightsout/internal/config"
)

const (
	// AppName is the gdata application namespace.
	AppName = "lightsout"

	settingsObject   = "settings"
	settingsProperty = "last"
)

// Store persists a config.Config through a gdata manager. A nil manager keeps
// settings in memory only.
type Store struct {
	manager *gdata.Manager
	current config.Config
}

// Open creates a gdata manager for AppName and loads any saved settings.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("open settings storage: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps the manager and loads saved settings, falling back to
// defaults on failure.
func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m, current: config.DefaultConfig()}
	if err := s.Load(); err != nil {
		log.Printf("[settings] failed to load saved settings: %v (using defaults)", err)
	}
	return s
}

// Load replaces the current settings with the stored ones, if any.
func (s *Store) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		s.current = config.DefaultConfig()
		return nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		s.current = config.DefaultConfig()
		return fmt.Errorf("load settings: %w", err)
	}
	loaded := config.DefaultConfig()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		s.current = config.DefaultConfig()
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		s.current = config.DefaultConfig()
		return err
	}
	s.current = loaded
	return nil
}

// Save validates and stores cfg.
func (s *Store) Save(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.current = cfg
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Current returns the active settings.
func (s *Store) Current() config.Config { return s.current }
