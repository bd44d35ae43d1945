// Package diff models source-control diffs as per-file sets of changed
// line numbers. The parser consumes unified-diff text as produced by
// standard SCM tools; malformed sections are skipped, not fatal.
package diff

import (
	"math"
	"strconv"
	"strings"

	"github.com/chiselworks/feedgen/pkg/intervalmap"
	"github.com/chiselworks/feedgen/pkg/pattern"
	"github.com/chiselworks/feedgen/pkg/text"
)

var (
	sectionPattern  = pattern.MustCompile(`(?:^|\n)((?:[a-z].*\n)+--- a/.+\n\+\+\+ b/(.+)\n([-+ @].*\n)*)`)
	filenamePattern = pattern.MustCompile(`\n--- a/.+\n\+\+\+ b/(.+)\n`)
	blockPattern    = pattern.MustCompile(`(@@ -[,0-9]+ \+[,0-9]+ @@.*\n([-+ ].*\n)*)`)
	startPattern    = pattern.MustCompile(`@@ -[,0-9]+ \+([0-9]+)[, ].*@@`)
	linePattern     = pattern.MustCompile(`\n([+ ])`)
)

// Changes records which lines of one file are changed. The zero value
// marks every line unchanged.
type Changes struct {
	modified *intervalmap.IntervalMap[int, bool]
}

// Empty reports whether no line is marked changed.
func (c Changes) Empty() bool {
	if c.modified == nil {
		return true
	}
	if c.modified.IsConstant() {
		return !c.modified.Get(1)
	}
	return false
}

// Changed reports whether line is marked changed. Lines are 1-based;
// 0 denotes "no line".
func (c Changes) Changed(line int) bool {
	if c.modified == nil {
		return false
	}
	return c.modified.Get(line)
}

// mark records [line, line+1) as changed.
func (c *Changes) mark(line int) {
	if c.modified == nil {
		c.modified = intervalmap.New(math.MinInt, false)
	}
	c.modified.Assign(line, line+1, true)
}

// parseBlock merges the changed lines of one hunk into c. The hunk header
// carries the starting line in the new file; lines prefixed with '+' are
// marked, lines prefixed with '+' or ' ' advance the counter.
func (c *Changes) parseBlock(block string) {
	var start string
	if ok, _ := startPattern.MatchCaptures(block, &start); !ok {
		return
	}
	line, err := strconv.Atoi(start)
	if err != nil || line == 0 {
		return
	}

	search := text.NewForwardSearch(block)
	for search.Next(linePattern) {
		if search.MatchedText() == "+" {
			c.mark(line)
		}
		line++
	}
}

// Diff maps file paths to their changed-line sets.
type Diff struct {
	paths         []string
	modifications map[string]*Changes
}

// New returns an empty diff.
func New() *Diff {
	return &Diff{modifications: make(map[string]*Changes)}
}

// Parse builds a diff from unified-diff output.
func Parse(output string) *Diff {
	d := New()
	d.Add(output)
	return d
}

// Add merges the sections found in output into the diff. Hunks for paths
// already present augment the existing changed-line sets.
func (d *Diff) Add(output string) {
	search := text.NewForwardSearch(output)
	for search.Next(sectionPattern) {
		d.parseSection(search.MatchedText())
	}
}

// ChangesFrom returns the changes of the first stored path that is a
// trailing component-aligned suffix of path, or an empty set.
func (d *Diff) ChangesFrom(path string) Changes {
	for _, stored := range d.paths {
		if pathEndsWith(path, stored) {
			return *d.modifications[stored]
		}
	}
	return Changes{}
}

func (d *Diff) parseSection(section string) {
	var filename string
	if ok, _ := filenamePattern.MatchCaptures(section, &filename); !ok || filename == "" {
		return
	}

	changes, ok := d.modifications[filename]
	if !ok {
		changes = &Changes{}
		d.modifications[filename] = changes
		d.paths = append(d.paths, filename)
	}

	search := text.NewForwardSearch(section)
	for search.Next(blockPattern) {
		changes.parseBlock(search.MatchedText())
	}
}

// pathEndsWith reports whether suffix is a trailing component-aligned
// suffix of path.
func pathEndsWith(path, suffix string) bool {
	p := strings.Split(path, "/")
	s := strings.Split(suffix, "/")
	if len(s) > len(p) {
		return false
	}
	p = p[len(p)-len(s):]
	for i := range s {
		if p[i] != s[i] {
			return false
		}
	}
	return true
}
