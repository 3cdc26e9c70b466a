package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// Five tabs at a time with a thirty second pause keeps a desktop browser
// usable while the list drains.
const (
	// DefaultNumTabs is the number of browser tabs opened per batch.
	DefaultNumTabs = 5

	// DefaultPause is the wait between batches of opened tabs.
	DefaultPause = 30 * time.Second

	// DefaultDomainPrefix restricts reported links to Instagram profiles.
	// Exports contain navigation and help links on other domains that must
	// never show up as non-followers.
	DefaultDomainPrefix = "https://www.instagram.com/"

	// AppName is the application name used for XDG directory paths.
	AppName = "igtools"
)

// Config holds all options for an ig-tools run.
// It is populated from CLI flags (with optional YAML file defaults) and
// passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is small. If the configuration grows
// significantly, consider refactoring into sub-structs.
type Config struct {
	// FollowersPath is the path of the followers HTML export.
	FollowersPath string

	// FollowingsPath is the path of the followings HTML export.
	FollowingsPath string

	// NumTabs is the number of browser tabs to open per batch. Must be >= 1.
	NumTabs int

	// Pause is the wait between batches. Must be non-negative.
	Pause time.Duration

	// DomainPrefix is the substring a link must contain to be reported.
	DomainPrefix string

	// DryRun reports non-followers without launching a browser or pausing.
	DryRun bool

	// JSONReport enables JSON report output instead of the plain text
	// summary. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the plain
	// text summary. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .igtools in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogJSON switches log output from text to JSON records.
	// Useful when the logs are collected by a structured aggregator.
	LogJSON bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because the defaults are non-zero (tab count, pause, domain).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		NumTabs:      DefaultNumTabs,
		Pause:        DefaultPause,
		DomainPrefix: DefaultDomainPrefix,
	}
}

// XDGDataDir returns the XDG data directory for ig-tools.
// On Linux: ~/.local/share/igtools
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for ig-tools.
// On Linux: ~/.config/igtools
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for ig-tools.
// On Linux: ~/.cache/igtools
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes
// others irrelevant. Called once after CLI parsing, before any work.
//
// Note: Validate does not require the export paths to be set. Missing
// paths are handled separately with a friendly message and a clean exit,
// matching the tool's documented behavior.
func (c *Config) Validate() error {
	// Zero tabs per batch would make the opener spin without progress
	if c.NumTabs < 1 {
		return ErrInvalidNumTabs
	}

	// Negative pause is invalid; use 0 for no wait between batches
	if c.Pause < 0 {
		return ErrInvalidPause
	}

	// Without a domain filter every diff artifact would be reported
	if c.DomainPrefix == "" {
		return ErrEmptyDomainPrefix
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
