// Package extract pulls profile links out of exported HTML text.
//
// Extraction is deliberately pattern-based rather than DOM-based: the
// exports are machine-generated pages whose comparison semantics are
// defined over the raw text, and the same extractor must also run over
// unified-diff output, which is not valid HTML. Malformed markup degrades
// silently to fewer matches.
package extract
