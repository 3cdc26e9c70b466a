// Package config provides configuration structures and utilities for ig-tools.
// It defines the options for detection, batch opening, and report output,
// along with the YAML config file loader and XDG directory helpers.
package config
