package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation ("discord.token"); nested TOML tables are flattened.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" when absent or mistyped.
	GetString(key string) string

	// GetInt returns the value as an int, or 0 when absent or mistyped.
	GetInt(key string) int

	// GetBool returns the value as a bool, or false when absent or mistyped.
	GetBool(key string) bool

	// GetStringSlice returns the value as a string slice, or nil.
	GetStringSlice(key string) []string

	// Keys returns all keys currently set, sorted.
	Keys() []string

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Load re-reads configuration from storage.
	Load() error

	// Path returns where the configuration lives ("" for in-memory stores).
	Path() string
}
