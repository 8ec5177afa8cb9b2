package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetFloat retrieves a numeric configuration value.
	// Returns 0 if key doesn't exist or isn't a number.
	GetFloat(key string) float64

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice configuration value.
	// Returns nil if key doesn't exist or isn't a slice.
	GetStringSlice(key string) []string

	// GetStringMap retrieves every key below prefix as a string map.
	// "sources.second.match" yields {"Class": "Total"} for the key
	// "sources.second.match.Class". Returns nil if nothing matches.
	GetStringMap(prefix string) map[string]string

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Path returns the configuration file path.
	Path() string
}

// OverrideReporter is implemented by config stores that take some values
// from outside the config file, such as the environment.
type OverrideReporter interface {
	// Overridden returns the keys whose values do not come from the file, sorted.
	Overridden() []string
}
