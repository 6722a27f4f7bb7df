package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// YAMLFile is a KV persisted as a flat YAML mapping.
type YAMLFile struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// OpenYAMLFile loads settings.yaml from dir.
// A missing file yields an empty store. A malformed file also yields an empty
// store, together with the parse error so the caller can report it.
func OpenYAMLFile(dir string) (*YAMLFile, error) {
	file := &YAMLFile{
		path:   filepath.Join(dir, settingsFileName),
		values: make(map[string]string),
	}
	return file, file.Reload()
}

// Path returns the location of the backing file.
func (file *YAMLFile) Path() string {
	return file.path
}

// Reload replaces the in-memory values with the file contents.
// When the file cannot be read or parsed the previous values are kept, so the
// next Set rewrites the file from the last good state.
func (file *YAMLFile) Reload() error {
	values, err := readYAML(file.path)
	if err != nil {
		return err
	}

	file.mu.Lock()
	defer file.mu.Unlock()
	file.values = values
	return nil
}

// Get returns the value stored under key.
func (file *YAMLFile) Get(key string) (string, bool) {
	file.mu.Lock()
	defer file.mu.Unlock()
	value, ok := file.values[key]
	return value, ok
}

// Set stores value under key and rewrites the file.
func (file *YAMLFile) Set(key, value string) error {
	file.mu.Lock()
	defer file.mu.Unlock()
	file.values[key] = value
	return writeYAML(file.path, file.values)
}

func readYAML(path string) (map[string]string, error) {
	values := make(map[string]string)

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	if err := yaml.Unmarshal(rawData, &values); err != nil {
		return nil, fmt.Errorf("parse settings yaml: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

func writeYAML(path string, values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
