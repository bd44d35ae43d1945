package types

import (
	"sort"

	"github.com/chiselworks/feedgen/pkg/pattern"
)

// Rule is an immutable pattern bundle with metadata. The five patterns
// are compiled with a single top-level capturing group wrapping the
// supplied expression.
type Rule struct {
	Category   string
	Summary    string
	Rationale  string
	Workaround string

	MatchedFiles pattern.Pattern
	IgnoredFiles pattern.Pattern
	MatchedText  pattern.Pattern
	IgnoredText  pattern.Pattern
	MarkedText   pattern.Pattern

	// Keywords, when present, gate the rule behind a literal prefilter:
	// a source that contains none of them is never scanned for this rule.
	Keywords []string
}

// RuleSet is an ordered catalog of rules keyed by identifier. Iteration
// order is the natural RuleID order, stable across runs. Origin is the
// filename of the rules document, quoted in emitted diagnostics.
type RuleSet struct {
	Origin string

	ids   []RuleID
	rules map[RuleID]*Rule
}

// NewRuleSet creates an empty catalog with the given origin.
func NewRuleSet(origin string) *RuleSet {
	return &RuleSet{Origin: origin, rules: make(map[RuleID]*Rule)}
}

// Add inserts or replaces a rule.
func (rs *RuleSet) Add(id RuleID, r *Rule) {
	if _, ok := rs.rules[id]; !ok {
		rs.ids = append(rs.ids, id)
		sort.Slice(rs.ids, func(i, j int) bool { return rs.ids[i].Less(rs.ids[j]) })
	}
	rs.rules[id] = r
}

// Get returns the rule for id, or nil.
func (rs *RuleSet) Get(id RuleID) *Rule {
	return rs.rules[id]
}

// IDs returns the identifiers in natural order. The slice is shared;
// callers must not modify it.
func (rs *RuleSet) IDs() []RuleID {
	return rs.ids
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.ids)
}
