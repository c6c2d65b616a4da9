package driving

import "github.com/custodia-labs/molkit/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() (domain.Settings, error)

	// SetRoot stores a project root override. Empty clears it.
	SetRoot(root string) error

	// SetLogLevel stores the minimum log level.
	SetLogLevel(level string) error

	// SetHistoryEnabled toggles conversion recording.
	SetHistoryEnabled(enabled bool) error

	// Validate checks the stored settings.
	Validate() error

	// ConfigPath returns the backing configuration file.
	ConfigPath() string

	// UnknownKeys lists stored keys that no setting reads.
	UnknownKeys() []string
}
