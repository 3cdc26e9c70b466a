package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".igtools"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file structure.
// All fields are optional; CLI flags the user set explicitly take
// precedence over file values.
type File struct {
	// Domain is the profile domain filter, e.g. "https://www.instagram.com/".
	Domain string `yaml:"domain,omitempty"`

	// NumTabs is the number of browser tabs to open per batch.
	NumTabs int `yaml:"num_tabs,omitempty"`

	// Duration is the pause between batches in seconds.
	Duration int `yaml:"duration,omitempty"`
}

// Apply copies the file values onto cfg. Zero values are skipped so that
// an absent key leaves the existing setting untouched.
func (f *File) Apply(cfg *Config) {
	if f.Domain != "" {
		cfg.DomainPrefix = f.Domain
	}
	if f.NumTabs > 0 {
		cfg.NumTabs = f.NumTabs
	}
	if f.Duration > 0 {
		cfg.Pause = time.Duration(f.Duration) * time.Second
	}
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified by
// the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .igtools in the current directory
// 3. Look for .igtools in the XDG config directory (~/.config/igtools)
// 4. Look for .igtools in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	for _, dir := range configSearchDirs() {
		candidate := filepath.Join(dir, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// configSearchDirs returns the directories searched for the config file,
// in priority order: current directory, XDG config directory, home
// directory. The current directory comes first so a per-project file wins
// over a user-wide one.
func configSearchDirs() []string {
	dirs := make([]string, 0, 3)

	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}

	dirs = append(dirs, XDGConfigDir())

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}

	return dirs
}
