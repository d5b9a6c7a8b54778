package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".uxscan.yml"

// ErrConfigNotFound is returned when the configuration file does not exist.
// Callers should treat this as fatal only when the user named the file
// explicitly; an absent default file just means defaults apply.
var ErrConfigNotFound = errors.New("configuration file not found")

// Load reads the YAML file at path and overlays it onto the given config.
// Keys absent from the file keep their current (default) values, and keys
// the file defines that uxscan does not know are ignored. A file that is
// present but malformed is a fatal configuration error.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return ErrConfigNotFound
		}
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("malformed configuration file %s: %w", path, err)
	}

	return nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .uxscan.yml in the current directory
//  3. Look for .uxscan.yml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
