// Package validation checks pipeline settings with struct tags.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
)

// Ensure SettingsValidator implements the interface.
var _ driven.SettingsValidator = (*SettingsValidator)(nil)

// SettingsValidator validates settings using the validate tags of the
// domain settings types.
type SettingsValidator struct {
	validate *validator.Validate
}

// NewSettingsValidator creates a validator with the custom source_uri rule.
func NewSettingsValidator() *SettingsValidator {
	v := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("source_uri", isSourceURI)
	return &SettingsValidator{validate: v}
}

// ValidatePipeline validates the settings and lists every failing field
// by its configuration key.
func (s *SettingsValidator) ValidatePipeline(settings *domain.PipelineSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: no settings", domain.ErrInvalidSettings)
	}

	err := s.validate.Struct(settings)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidSettings, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", ConfigKey(fe.StructNamespace()), describe(fe)))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidSettings, strings.Join(msgs, "; "))
}

// ConfigKey maps a struct namespace such as "PipelineSettings.First.URL"
// to its configuration key, "sources.first.url".
func ConfigKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	out := make([]string, 0, len(parts)+1)
	for i, p := range parts {
		if i == 0 {
			switch p {
			case "First", "Second", "Third":
				out = append(out, "sources")
			}
		}
		out = append(out, snake(p))
	}
	return strings.Join(out, ".")
}

func snake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "len":
		return fmt.Sprintf("must be exactly %s character", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s character", fe.Param())
	case "gt":
		return "must be greater than " + fe.Param()
	case "source_uri":
		return "must be an http(s) URL, a file:// URL or a file path"
	default:
		return "failed " + fe.Tag()
	}
}

// isSourceURI accepts http(s) URLs with a host, file URLs and plain paths.
func isSourceURI(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	case "file":
		return u.Path != ""
	case "":
		return true
	default:
		// Windows drive letters parse as one-letter schemes.
		return len(u.Scheme) == 1
	}
}
