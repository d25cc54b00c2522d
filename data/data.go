package data

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Dir returns the local data directory, creating it if needed.
// Defaults to $HOME/.hub/data; override with DATA_DIR (tests do).
func Dir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		os.MkdirAll(dir, 0700)
		return dir
	}
	path := filepath.Join(os.ExpandEnv("$HOME/.hub"), "data")
	os.MkdirAll(path, 0700)
	return path
}

// Save writes a value to disk under the given key
func Save(key, val string) error {
	return os.WriteFile(filepath.Join(Dir(), key), []byte(val), 0644)
}

// LoadFile reads a file from the data directory
func LoadFile(key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(Dir(), key))
}

// SaveJSON marshals a value and writes it under the given key
func SaveJSON(key string, val interface{}) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(Dir(), key), b, 0644)
}
