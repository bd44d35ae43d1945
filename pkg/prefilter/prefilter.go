// Package prefilter gates rules behind an Aho-Corasick keyword scan so
// sources that cannot contain a rule's match skip the regex entirely.
package prefilter

import (
	"github.com/chiselworks/feedgen/pkg/types"
	"github.com/cloudflare/ahocorasick"
)

// Prefilter decides per source which rules are worth scanning.
type Prefilter struct {
	matcher      *ahocorasick.Matcher
	keywords     []string                   // keyword at each matcher index
	keywordRules map[string][]types.RuleID  // keyword -> rules needing it
	alwaysOn     []types.RuleID             // rules without keywords
}

// New builds a prefilter over the rule set's keywords. Rules without
// keywords are always scanned.
func New(rs *types.RuleSet) *Prefilter {
	pf := &Prefilter{keywordRules: make(map[string][]types.RuleID)}

	keywordSet := make(map[string]bool)
	for _, id := range rs.IDs() {
		r := rs.Get(id)
		if len(r.Keywords) == 0 {
			pf.alwaysOn = append(pf.alwaysOn, id)
			continue
		}
		for _, keyword := range r.Keywords {
			if !keywordSet[keyword] {
				keywordSet[keyword] = true
				pf.keywords = append(pf.keywords, keyword)
			}
			pf.keywordRules[keyword] = append(pf.keywordRules[keyword], id)
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Relevant returns the rules that might match content: those whose
// keywords occur, plus every rule without keywords.
func (pf *Prefilter) Relevant(content string) map[types.RuleID]bool {
	result := make(map[types.RuleID]bool, len(pf.alwaysOn))
	for _, id := range pf.alwaysOn {
		result[id] = true
	}

	if pf.matcher == nil {
		return result
	}

	for _, hit := range pf.matcher.Match([]byte(content)) {
		for _, id := range pf.keywordRules[pf.keywords[hit]] {
			result[id] = true
		}
	}

	return result
}
