// Package env overlays environment variables on another config store.
package env

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/custodia-labs/triscore/internal/adapters/driven/config/values"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
)

// Prefix is prepended to every variable name, e.g. TRISCORE_KEYWORD.
const Prefix = "TRISCORE"

// Overrides lists the settings that can be set from the environment.
// Unset variables leave the field nil.
type Overrides struct {
	Keyword   *string        `envconfig:"KEYWORD"`
	Timeout   *time.Duration `envconfig:"HTTP_TIMEOUT"`
	Rate      *float64       `envconfig:"HTTP_RATE"`
	UserAgent *string        `envconfig:"HTTP_USER_AGENT"`
	FirstURL  *string        `envconfig:"FIRST_URL"`
	SecondURL *string        `envconfig:"SECOND_URL"`
	ThirdURL  *string        `envconfig:"THIRD_URL"`
}

// keys maps the overrides to config keys.
func (o Overrides) keys() map[string]any {
	m := make(map[string]any)
	if o.Keyword != nil {
		m["keyword"] = *o.Keyword
	}
	if o.Timeout != nil {
		m["http.timeout"] = o.Timeout.String()
	}
	if o.Rate != nil {
		m["http.rate"] = *o.Rate
	}
	if o.UserAgent != nil {
		m["http.user_agent"] = *o.UserAgent
	}
	if o.FirstURL != nil {
		m["sources.first.url"] = *o.FirstURL
	}
	if o.SecondURL != nil {
		m["sources.second.url"] = *o.SecondURL
	}
	if o.ThirdURL != nil {
		m["sources.third.url"] = *o.ThirdURL
	}
	return m
}

// Ensure Overlay implements the interfaces.
var (
	_ driven.ConfigStore      = (*Overlay)(nil)
	_ driven.OverrideReporter = (*Overlay)(nil)
)

// Overlay is a driven.ConfigStore that answers reads from environment
// variables first and falls back to a base store. Writes go to the base
// store only, so an override never ends up persisted.
type Overlay struct {
	base driven.ConfigStore

	mu  sync.RWMutex
	env map[string]any
}

// NewOverlay reads the environment and wraps base.
func NewOverlay(base driven.ConfigStore) (*Overlay, error) {
	o := &Overlay{base: base}
	if err := o.process(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Overlay) process() error {
	var overrides Overrides
	if err := envconfig.Process(Prefix, &overrides); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	o.mu.Lock()
	o.env = overrides.keys()
	o.mu.Unlock()
	return nil
}

// Overridden returns the config keys currently set from the environment, sorted.
func (o *Overlay) Overridden() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	keys := make([]string, 0, len(o.env))
	for k := range o.env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get retrieves a configuration value, preferring the environment.
func (o *Overlay) Get(key string) (any, bool) {
	o.mu.RLock()
	val, ok := o.env[key]
	o.mu.RUnlock()
	if ok {
		return val, true
	}
	return o.base.Get(key)
}

// GetString retrieves a string configuration value.
func (o *Overlay) GetString(key string) string {
	val, _ := o.Get(key)
	return values.String(val)
}

// GetInt retrieves an integer configuration value.
func (o *Overlay) GetInt(key string) int {
	val, _ := o.Get(key)
	return values.Int(val)
}

// GetFloat retrieves a numeric configuration value.
func (o *Overlay) GetFloat(key string) float64 {
	val, _ := o.Get(key)
	return values.Float(val)
}

// GetBool retrieves a boolean configuration value.
func (o *Overlay) GetBool(key string) bool {
	val, _ := o.Get(key)
	return values.Bool(val)
}

// GetStringSlice retrieves a string slice configuration value.
func (o *Overlay) GetStringSlice(key string) []string {
	val, _ := o.Get(key)
	return values.StringSlice(val)
}

// GetStringMap retrieves every key below prefix from the base store.
// None of the overrides are maps.
func (o *Overlay) GetStringMap(prefix string) map[string]string {
	return o.base.GetStringMap(prefix)
}

// Set stores a value in the base store.
func (o *Overlay) Set(key string, value any) error {
	return o.base.Set(key, value)
}

// Path returns the base store's path.
func (o *Overlay) Path() string {
	return o.base.Path()
}
