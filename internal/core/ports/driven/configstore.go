package driven

// ConfigStore provides read access to docdex configuration.
// Keys are dotted paths into the TOML tree, e.g. "corpus.root" or
// "log.verbose". Configuration is loaded once at startup; docdex
// never writes it back.
type ConfigStore interface {
	// Get looks a key up and reports whether it was present.
	Get(key string) (any, bool)

	// GetString retrieves a string value such as "corpus.root".
	// Returns empty string if the key is missing or not a string.
	GetString(key string) string

	// GetInt retrieves an integer value such as "corpus.workers".
	// Returns 0 if the key is missing or not an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean value such as "log.verbose".
	// Returns false if the key is missing or not a boolean.
	GetBool(key string) bool

	// GetStringSlice retrieves a list value such as "corpus.excludes".
	// Returns nil if the key is missing or not a list.
	GetStringSlice(key string) []string

	// Load re-reads the backing file. A missing file is not an
	// error; defaults apply.
	Load() error

	// Path reports which file the store reads from.
	Path() string
}
