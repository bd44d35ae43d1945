// Package rule loads the rules document into an ordered catalog of
// compiled rules.
package rule

import (
	"errors"
	"fmt"
	"os"

	"github.com/chiselworks/feedgen/pkg/pattern"
	"github.com/chiselworks/feedgen/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRule reports a rule entry with missing mandatory fields or
// a document that failed to decode.
var ErrInvalidRule = errors.New("invalid rule")

// Defaults applied when optional fields are absent.
const (
	defaultRationale    = "N/A"
	defaultWorkaround   = "N/A"
	defaultMatchedFiles = ".*"
	defaultIgnoredFiles = "^$"
	defaultIgnoredText  = "^$"
	defaultMarkedText   = ".*"
)

// Parse decodes a rules document. origin is the document's filename,
// carried into the rule set for use in emitted diagnostics.
func Parse(data []byte, origin string) (*types.RuleSet, error) {
	var doc map[types.RuleID]yamlRule
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	rs := types.NewRuleSet(origin)
	for id, entry := range doc {
		r, err := convert(entry)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", id, err)
		}
		rs.Add(id, r)
	}

	return rs, nil
}

// Load reads and parses the rules document at path.
func Load(path string) (*types.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules %s: %w", path, err)
	}
	return Parse(data, path)
}

// convert compiles one document entry. category, summary, and
// matched_text are mandatory; every pattern is wrapped in a single
// top-level capturing group.
func convert(entry yamlRule) (*types.Rule, error) {
	if entry.Category == nil || *entry.Category == "" {
		return nil, fmt.Errorf("%w: missing category", ErrInvalidRule)
	}
	if entry.Summary == nil || *entry.Summary == "" {
		return nil, fmt.Errorf("%w: missing summary", ErrInvalidRule)
	}
	if entry.MatchedText == nil || *entry.MatchedText == "" {
		return nil, fmt.Errorf("%w: missing matched_text", ErrInvalidRule)
	}

	r := &types.Rule{
		Category:   *entry.Category,
		Summary:    *entry.Summary,
		Rationale:  stringOr(entry.Rationale, defaultRationale),
		Workaround: stringOr(entry.Workaround, defaultWorkaround),
		Keywords:   entry.Keywords,
	}

	var err error
	if r.MatchedFiles, err = pattern.Capture(stringOr(entry.MatchedFiles, defaultMatchedFiles)); err != nil {
		return nil, fmt.Errorf("matched_files: %w", err)
	}
	if r.IgnoredFiles, err = pattern.Capture(stringOr(entry.IgnoredFiles, defaultIgnoredFiles)); err != nil {
		return nil, fmt.Errorf("ignored_files: %w", err)
	}
	if r.MatchedText, err = pattern.Capture(*entry.MatchedText); err != nil {
		return nil, fmt.Errorf("matched_text: %w", err)
	}
	if r.IgnoredText, err = pattern.Capture(stringOr(entry.IgnoredText, defaultIgnoredText)); err != nil {
		return nil, fmt.Errorf("ignored_text: %w", err)
	}
	if r.MarkedText, err = pattern.Capture(stringOr(entry.MarkedText, defaultMarkedText)); err != nil {
		return nil, fmt.Errorf("marked_text: %w", err)
	}

	return r, nil
}

func stringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
