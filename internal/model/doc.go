// Package model defines the core data structures for ig-tools.
// It contains the export documents being compared, the link set used for
// membership testing, and the detection report produced by a run.
package model
