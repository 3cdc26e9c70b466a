// Package log provides logging setup for ig-tools, built on top of the
// standard slog package.
//
// The TruncatingHandler clips oversized attribute values before they reach
// the underlying handler. Detection runs log excerpts of export documents
// and diff output; without clipping, a single debug line could dump an
// entire HTML page into the terminal.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("diff computed", "excerpt", diffText)
//	slog.SetDefault(logger)
package log
