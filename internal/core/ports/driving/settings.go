package driving

import "github.com/custodia-labs/triscore/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves the effective pipeline settings.
	Get() (*domain.PipelineSettings, error)

	// Set stores a single configuration key.
	Set(key, value string) error

	// Validate checks the effective settings.
	Validate() error

	// ConfigPath returns where settings are persisted.
	ConfigPath() string

	// Overridden returns the keys set from the environment, sorted.
	Overridden() []string
}
