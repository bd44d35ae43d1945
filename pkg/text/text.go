// Package text provides line-aware scanning primitives over immutable
// source buffers: a stateful forward search and excerpt highlighting.
// Search results are sub-slices of the scanned text; only an excerpt's
// indentation and annotation strings are built anew.
package text

import "strings"

// FirstLineOf returns the first line of text, without its newline.
func FirstLineOf(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// LastLineOf returns the last line of text, the part after the final newline.
func LastLineOf(text string) string {
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		return text[i+1:]
	}
	return text
}
