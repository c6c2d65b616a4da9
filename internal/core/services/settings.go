package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/molkit/internal/core/domain"
	"github.com/custodia-labs/molkit/internal/core/ports/driven"
	"github.com/custodia-labs/molkit/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPathsRoot      = "paths.root"
	keyLogLevel       = "log.level"
	keyHistoryEnabled = "history.enabled"
	keyHistoryLimit   = "history.limit"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if s.configStore == nil {
		return defaults, nil
	}

	return domain.Settings{
		Paths: domain.PathSettings{
			Root: s.configStore.GetString(keyPathsRoot),
		},
		Log: domain.LogSettings{
			Level: strings.ToLower(s.getString(keyLogLevel, defaults.Log.Level)),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Limit:   s.getInt(keyHistoryLimit, defaults.History.Limit),
		},
	}, nil
}

// SetRoot stores a project root override. An empty root removes it.
func (s *SettingsService) SetRoot(root string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if root == "" {
		return s.configStore.Unset(keyPathsRoot)
	}
	if err := s.configStore.Set(keyPathsRoot, root); err != nil {
		return fmt.Errorf("save paths root: %w", err)
	}
	return nil
}

// SetLogLevel stores the minimum log level.
func (s *SettingsService) SetLogLevel(level string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	name, err := domain.NormalizeLogLevel(level)
	if err != nil {
		return err
	}

	if err := s.configStore.Set(keyLogLevel, name); err != nil {
		return fmt.Errorf("save log level: %w", err)
	}
	return nil
}

// SetHistoryEnabled toggles conversion recording.
func (s *SettingsService) SetHistoryEnabled(enabled bool) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.configStore.Set(keyHistoryEnabled, enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	return nil
}

// Validate checks the stored settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// UnknownKeys lists stored keys that no setting reads, usually typos.
func (s *SettingsService) UnknownKeys() []string {
	if s.configStore == nil {
		return nil
	}
	var unknown []string
	for _, key := range s.configStore.Keys() {
		switch key {
		case keyPathsRoot, keyLogLevel, keyHistoryEnabled, keyHistoryLimit:
		default:
			unknown = append(unknown, key)
		}
	}
	return unknown
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
