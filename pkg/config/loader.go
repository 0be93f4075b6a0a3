// Package config loads, merges, validates and generates credential
// configuration files in JSON and YAML.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fenceai/s3kit/pkg/credentials"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrLoad              = errors.New("failed to parse config file")
)

// LoaderFunc parses raw file content into a mapping.
type LoaderFunc func(data []byte) (map[string]any, error)

type loaderEntry struct {
	extensions []string
	load       LoaderFunc
}

// loaders is the extension dispatch table, first match wins. It is built
// statically; Register may append entries before the first Load call.
var loaders = []loaderEntry{
	{extensions: []string{".json"}, load: loadJSON},
	{extensions: []string{".yaml", ".yml"}, load: loadYAML},
}

// Register appends a loader for the given extensions (including the dot).
// Registered loaders never shadow the built-in ones.
func Register(extensions []string, load LoaderFunc) {
	loaders = append(loaders, loaderEntry{extensions: extensions, load: load})
}

// Load reads a structured config file into a mapping, dispatching on the
// file extension (case-insensitive).
func Load(path string) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var load LoaderFunc
	for _, entry := range loaders {
		if slices.Contains(entry.extensions, ext) {
			load = entry.load
			break
		}
	}
	if load == nil {
		return nil, fmt.Errorf("config file %s: extension %q: %w", path, ext, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s: %w", path, credentials.ErrNotFound)
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	m, err := load(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, errors.Join(ErrLoad, err))
	}
	return m, nil
}

// LoadCredentials loads a config file and keeps only scalar string values,
// suitable as a credential resolution layer.
func LoadCredentials(path string) (credentials.Mapping, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return StringValues(m), nil
}

// StringValues extracts the string-valued entries of a generic mapping.
func StringValues(m map[string]any) credentials.Mapping {
	out := make(credentials.Mapping, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok && s != "" {
			out[k] = s
		}
	}
	return out
}

func loadJSON(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("JSON config must be an object")
	}
	return m, nil
}

func loadYAML(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		// Empty document is a valid, empty config.
		return map[string]any{}, nil
	}
	return m, nil
}
