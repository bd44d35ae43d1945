package text

import (
	"strings"

	"github.com/chiselworks/feedgen/pkg/pattern"
)

// ForwardSearch is a stateful, single-pass scanner over a source text.
// It partitions the source into processed text, the current match, and
// the remaining text, and keeps the line count of the processed part
// updated incrementally so callers never re-scan prefixes.
type ForwardSearch struct {
	source string

	// current match bounds; processed is source[:matchStart],
	// remaining is source[matchEnd:]
	matchStart int
	matchEnd   int

	processedLines int // '\n' count within processed
	lastLineStart  int // offset of the last line of processed
	firstRemEnd    int // end offset of the first line of remaining
}

// NewForwardSearch starts a scan at the beginning of source.
func NewForwardSearch(source string) *ForwardSearch {
	return &ForwardSearch{source: source}
}

// Next advances past the previous match and searches remaining text for
// the next occurrence of p. It returns false when no further match exists
// or the match is empty; an empty match terminates the scan cleanly.
func (s *ForwardSearch) Next(p pattern.Pattern) bool {
	s.absorb(s.matchStart, s.matchEnd)
	s.matchStart = s.matchEnd

	skipped, match, _, ok := p.Find(s.source[s.matchEnd:])
	if !ok {
		return false
	}

	start := s.matchEnd + len(skipped)
	s.absorb(s.matchEnd, start)
	s.matchStart, s.matchEnd = start, start+len(match)

	s.lastLineStart = strings.LastIndexByte(s.source[:s.matchStart], '\n') + 1
	if i := strings.IndexByte(s.source[s.matchEnd:], '\n'); i >= 0 {
		s.firstRemEnd = s.matchEnd + i
	} else {
		s.firstRemEnd = len(s.source)
	}

	return len(match) > 0
}

// NextExcept advances like Next, skipping hits whose surrounding lines
// satisfy ignored.
func (s *ForwardSearch) NextExcept(p, ignored pattern.Pattern) bool {
	for s.Next(p) {
		if !ignored.Matches(s.MatchedLines()) {
			return true
		}
	}
	return false
}

// MatchedText returns the current match.
func (s *ForwardSearch) MatchedText() string {
	return s.source[s.matchStart:s.matchEnd]
}

// MatchedLines returns the excerpt from the first line touched by the
// current match through the last line it touches.
func (s *ForwardSearch) MatchedLines() string {
	return s.source[s.lastLineStart:s.firstRemEnd]
}

// Line returns the 1-based line number of the first line of the current match.
func (s *ForwardSearch) Line() int {
	return s.processedLines + 1
}

// Column returns the 1-based column of the current match within its first line.
func (s *ForwardSearch) Column() int {
	return s.matchStart - s.lastLineStart + 1
}

// Highlighted locates mark within the current match and builds an excerpt
// of the matched lines with the mark annotated. When mark does not occur,
// the whole match is annotated.
func (s *ForwardSearch) Highlighted(mark pattern.Pattern) Excerpt {
	markOffset := s.matchStart - s.lastLineStart
	markLen := s.matchEnd - s.matchStart

	inner := NewForwardSearch(s.MatchedText())
	if inner.Next(mark) {
		markOffset += inner.matchStart
		markLen = inner.matchEnd - inner.matchStart
	}

	return NewExcerpt(s.MatchedLines(), markOffset, markLen)
}

// absorb extends processed over source[from:to], updating the line count.
func (s *ForwardSearch) absorb(from, to int) {
	s.processedLines += strings.Count(s.source[from:to], "\n")
}
