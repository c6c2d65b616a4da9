package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Log levels accepted in configuration. LogLevelWarning is an alias of
// LogLevelWarn.
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// LogLevels returns every level name accepted in configuration.
func LogLevels() []string {
	return []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelWarning, LogLevelError}
}

// NormalizeLogLevel returns the canonical lower-case name for level.
func NormalizeLogLevel(level string) (string, error) {
	switch name := strings.ToLower(strings.TrimSpace(level)); name {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return name, nil
	case LogLevelWarning:
		return LogLevelWarn, nil
	default:
		return "", fmt.Errorf("%w: unknown log level %q", ErrInvalidInput, level)
	}
}

// Settings is the typed application configuration.
type Settings struct {
	Paths   PathSettings
	Log     LogSettings
	History HistorySettings
}

// PathSettings controls where the project root lives.
type PathSettings struct {
	// Root overrides the detected project root. Empty means detect.
	Root string
}

// LogSettings controls the log sink.
type LogSettings struct {
	// Level is the minimum severity: debug, info, warn (or warning) or error.
	Level string
}

// HistorySettings controls conversion recording.
type HistorySettings struct {
	// Enabled records conversions made through the CLI and MCP server.
	Enabled bool

	// Limit is the default number of entries listed.
	Limit int
}

// DefaultSettings returns settings with default values.
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{
			Level: LogLevelInfo,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   20,
		},
	}
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	_, err := s.Sanitize()
	return err
}

// Sanitize returns a copy of s with the log level normalized and every
// invalid field replaced by its default. The returned error joins the
// problems found; the settings are usable either way.
func (s Settings) Sanitize() (Settings, error) {
	defaults := DefaultSettings()
	var errs []error

	level, err := NormalizeLogLevel(s.Log.Level)
	if err != nil {
		errs = append(errs, err)
		level = defaults.Log.Level
	}
	s.Log.Level = level

	if s.History.Limit < 0 {
		errs = append(errs, fmt.Errorf("%w: history limit must not be negative", ErrInvalidInput))
		s.History.Limit = defaults.History.Limit
	}
	return s, errors.Join(errs...)
}
