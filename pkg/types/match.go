package types

import "github.com/chiselworks/feedgen/pkg/text"

// Match is a single rule occurrence in a source: the rule that fired,
// the 1-based line of the first matched line, and the highlighted
// excerpt handed to the renderer.
type Match struct {
	ID      RuleID
	Line    int
	Excerpt text.Excerpt
}
