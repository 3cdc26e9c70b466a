// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for documentation and sharing
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably. Report data structures live in the model package so new
// output formats can be added without touching them.
package report
