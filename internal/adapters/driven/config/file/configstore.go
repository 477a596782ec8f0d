package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/docdex/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore reads docdex configuration from a TOML file and serves it
// as a flat map of dotted keys. It never writes: the file belongs to the
// user, docdex only consumes it.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore opens the TOML config at path, defaulting to
// ~/.docdex/config.toml when path is empty. The file is optional and is
// never created; without it every lookup misses and defaults apply
// downstream.
func NewConfigStore(path string) (*ConfigStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".docdex", "config.toml")
	}

	s := &ConfigStore{filePath: path}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the raw value stored under a dotted key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok
}

// GetString returns the string at key, or "" when the key is absent or
// holds a different type.
func (s *ConfigStore) GetString(key string) string {
	v, _ := s.Get(key)
	str, _ := v.(string)
	return str
}

// GetInt returns the integer at key, or 0 when the key is absent or
// holds a different type.
func (s *ConfigStore) GetInt(key string) int {
	v, _ := s.Get(key)
	switch n := v.(type) {
	case int64: // go-toml decodes integers as int64
		return int(n)
	case int:
		return n
	}
	return 0
}

// GetBool returns the boolean at key, or false when the key is absent
// or holds a different type.
func (s *ConfigStore) GetBool(key string) bool {
	v, _ := s.Get(key)
	b, _ := v.(bool)
	return b
}

// GetStringSlice returns the list of strings at key. Non-string
// elements of a mixed array are dropped; a missing key or a
// non-array value yields nil.
func (s *ConfigStore) GetStringSlice(key string) []string {
	v, _ := s.Get(key)
	switch list := v.(type) {
	case []string:
		return list
	case []any: // go-toml decodes arrays as []any
		out := make([]string, 0, len(list))
		for _, item := range list {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Load reads the TOML file and replaces the in-memory view. Nested
// tables are flattened to dotted keys, so root under [corpus] is read
// back as "corpus.root". A missing file leaves the store empty.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		s.data = map[string]any{}
		return nil
	}
	if err != nil {
		return err
	}

	var tree map[string]any
	if err := toml.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	flat := make(map[string]any)
	flatten(tree, "", flat)
	s.data = flat
	return nil
}

// flatten walks a decoded TOML tree and records every leaf in dst
// under its dotted key path.
func flatten(tree map[string]any, prefix string, dst map[string]any) {
	for key, value := range tree {
		if prefix != "" {
			key = prefix + "." + key
		}
		if table, ok := value.(map[string]any); ok {
			flatten(table, key, dst)
			continue
		}
		dst[key] = value
	}
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
