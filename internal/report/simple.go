package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/CuriousSingularity/ig-tools/internal/model"
)

// emptyResultMessage is printed when no non-followers were found.
// The wording is part of the tool's observable behavior and is kept stable.
const emptyResultMessage = "No new Instagram links were found in Followers compared to Followings."

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display: a count line followed by
// the detected profiles.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because it works in all terminals and pipes cleanly to files
// and other tools.
type SimpleWriter struct {
	baseWriter

	// listProfiles controls whether the profile list is printed after
	// the count line. The batch opener prints each link as it opens it,
	// so interactive runs disable the list to avoid duplicate output.
	listProfiles bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithProfileList configures the writer to print the detected profiles
// after the count line.
func WithProfileList(list bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.listProfiles = list
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter:   newBaseWriter(output),
		listProfiles: false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.DetectReport) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Number of non-followers found: %d\n", report.Count())

	if report.IsEmpty() {
		sb.WriteString(emptyResultMessage)
		sb.WriteString("\n")
		return w.output.Write([]byte(sb.String()))
	}

	if w.listProfiles {
		sb.WriteString("\n")
		for _, p := range report.Profiles {
			if p.Username != "" {
				fmt.Fprintf(&sb, "  • %s (%s)\n", p.Username, p.URL)
				continue
			}
			fmt.Fprintf(&sb, "  • %s\n", p.URL)
		}
	}

	return w.output.Write([]byte(sb.String()))
}
