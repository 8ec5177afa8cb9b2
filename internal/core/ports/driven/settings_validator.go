package driven

import "github.com/custodia-labs/triscore/internal/core/domain"

// SettingsValidator validates pipeline settings.
// Implementations check structure only; they never contact the sources.
type SettingsValidator interface {
	// ValidatePipeline returns an error wrapping domain.ErrInvalidSettings
	// that lists every failing field, or nil.
	ValidatePipeline(settings *domain.PipelineSettings) error
}
