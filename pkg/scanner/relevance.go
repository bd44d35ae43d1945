package scanner

import (
	"github.com/chiselworks/feedgen/pkg/diff"
	"github.com/chiselworks/feedgen/pkg/types"
)

// relevance decides whether a rule applies to a source at all and, when
// it does, which lines it may fire on. The scope of the rule's category
// narrows both: no_* scopes silence the rule, changed_* scopes require
// the source to carry changes, and changed_lines further restricts hits
// to changed lines. Severity none silences the rule regardless.
func relevance(r *types.Rule, h types.Handling, path string, changes diff.Changes) (bool, func(int) bool) {
	fileOK := r.MatchedFiles.Matches(path) && !r.IgnoredFiles.Matches(path)
	lineOK := func(int) bool { return true }

	if fileOK {
		switch h.Scope {
		case types.ScopeNoFiles, types.ScopeNoLines:
			fileOK = false
		case types.ScopeChangedLines:
			lineOK = changes.Changed
			fileOK = !changes.Empty()
		case types.ScopeChangedFiles:
			fileOK = !changes.Empty()
		case types.ScopeAllFiles, types.ScopeAllLines:
		}
	}

	if h.Severity == types.SeverityNone {
		fileOK = false
	}

	return fileOK, lineOK
}
