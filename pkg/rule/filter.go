package rule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chiselworks/feedgen/pkg/types"
)

// FilterConfig specifies include and exclude patterns for rule filtering.
type FilterConfig struct {
	Include []string // regex patterns - only matching rule IDs included
	Exclude []string // regex patterns - matching rule IDs excluded
}

// ParsePatterns splits a comma-separated string into individual patterns.
// Patterns are trimmed of whitespace.
func ParsePatterns(patterns string) []string {
	if patterns == "" {
		return nil
	}

	parts := strings.Split(patterns, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Filter applies include and exclude patterns to a rule set. Include is
// applied first; empty include means "include all". Returns an error if
// any pattern is invalid regex.
func Filter(rs *types.RuleSet, config FilterConfig) (*types.RuleSet, error) {
	include, err := compileAll(config.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compileAll(config.Exclude)
	if err != nil {
		return nil, err
	}

	filtered := types.NewRuleSet(rs.Origin)
	for _, id := range rs.IDs() {
		if len(include) > 0 && !matchesAny(string(id), include) {
			continue
		}
		if matchesAny(string(id), exclude) {
			continue
		}
		filtered.Add(id, rs.Get(id))
	}

	return filtered, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	regexes := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", p, err)
		}
		regexes = append(regexes, re)
	}
	return regexes, nil
}

func matchesAny(id string, regexes []*regexp.Regexp) bool {
	for _, re := range regexes {
		if re.MatchString(id) {
			return true
		}
	}
	return false
}
