package model

import (
	"fmt"
	"os"
)

// Document is the raw text content of one exported HTML page.
//
// Design decision: We keep the content as a plain string rather than a
// parsed structure because the detection pipeline operates on the text
// itself (line-based diffing plus pattern matching). Parsing into a DOM
// would change the semantics of the comparison.
type Document struct {
	// Path is the file path the document was loaded from.
	Path string

	// Content is the full UTF-8 text of the export file.
	Content string
}

// ReadDocument loads an export file into a Document.
// The file is read fully into memory; exports are small HTML pages,
// so streaming is not worth the complexity.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided export path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return &Document{Path: path, Content: string(data)}, nil
}
