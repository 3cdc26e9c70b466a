package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidNumTabs is returned when the tab count is smaller than one.
	// Opening zero tabs per batch would never drain the link list.
	ErrInvalidNumTabs = errors.New("invalid number of tabs: must be at least 1")

	// ErrInvalidPause is returned when the pause between batches is negative.
	// Use 0 for no wait between batches.
	ErrInvalidPause = errors.New("invalid duration: must be non-negative")

	// ErrEmptyDomainPrefix is returned when the domain filter is empty.
	// Without it, diff metadata and navigation links would be reported.
	ErrEmptyDomainPrefix = errors.New("empty domain prefix: a profile domain filter is required")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
