// Package pattern wraps compiled regular expressions with the small
// capability surface the scanning engine needs: whole-text tests,
// capture extraction, and leftmost searches that partition their input.
//
// The dialect is RE2 as implemented by the standard regexp package:
// leftmost-first semantics, no backreferences, no lookaround.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidPattern reports a pattern that failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrTooManyCaptures reports a capture request beyond MaxCaptures.
	ErrTooManyCaptures = errors.New("too many captures")
)

// MaxCaptures is the largest number of capture slots MatchCaptures accepts.
const MaxCaptures = 64

// Pattern is an immutable compiled pattern. The zero value matches nothing.
type Pattern struct {
	re *regexp.Regexp
}

// Compile compiles expr. It fails with ErrInvalidPattern on bad syntax.
func Compile(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w %q: %v", ErrInvalidPattern, expr, err)
	}
	return Pattern{re: re}, nil
}

// Capture compiles expr wrapped in a single top-level capturing group,
// so the whole supplied pattern is available as the first capture.
func Capture(expr string) (Pattern, error) {
	return Compile("(" + expr + ")")
}

// MustCompile is Compile for package-level literals; it panics on error.
func MustCompile(expr string) Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source text of the pattern.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// Matches reports whether text contains a match (unanchored).
func (p Pattern) Matches(text string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(text)
}

// MatchCaptures reports whether text contains a match, binding successive
// top-level capturing groups to sub-slices of text. Nil slots discard
// their capture; groups that did not participate leave the slot untouched.
// Requesting more slots than the pattern has groups reports no match.
func (p Pattern) MatchCaptures(text string, captures ...*string) (bool, error) {
	if len(captures) > MaxCaptures {
		return false, fmt.Errorf("%w: %d requested, limit %d", ErrTooManyCaptures, len(captures), MaxCaptures)
	}
	if p.re == nil || len(captures) > p.re.NumSubexp() {
		return false, nil
	}
	idx := p.re.FindStringSubmatchIndex(text)
	if idx == nil {
		return false, nil
	}
	for i, out := range captures {
		if out == nil {
			continue
		}
		lo, hi := idx[2*(i+1)], idx[2*(i+1)+1]
		if lo >= 0 {
			*out = text[lo:hi]
		}
	}
	return true, nil
}

// Find locates the leftmost occurrence of the pattern's first capturing
// group in text. On success it returns the prefix before the capture, the
// captured text, and the suffix after it; the three concatenate to text.
// Patterns without a capturing group fall back to the whole match.
func (p Pattern) Find(text string) (skipped, match, remaining string, ok bool) {
	if p.re == nil {
		return "", "", "", false
	}
	idx := p.re.FindStringSubmatchIndex(text)
	if idx == nil {
		return "", "", "", false
	}
	lo, hi := idx[0], idx[1]
	if len(idx) >= 4 && idx[2] >= 0 {
		lo, hi = idx[2], idx[3]
	}
	return text[:lo], text[lo:hi], text[hi:], true
}
