package types

import (
	"regexp"
	"strconv"
)

// numberedIDRe splits identifiers like "FOO12" into a prefix and a
// number of up to five digits. An identifier that does not split (no
// trailing number, or a longer one) uses its whole string as the prefix,
// so FOO123456 sorts after FOO2 and FOO10.
var numberedIDRe = regexp.MustCompile(`^([^\d]+)(\d{1,5})$`)

// RuleID identifies a rule. IDs order naturally: a trailing number
// compares numerically within its prefix, so FOO2 sorts before FOO10.
type RuleID string

// Less reports whether id orders before other.
func (id RuleID) Less(other RuleID) bool {
	prefix, nr, numbered := id.split()
	otherPrefix, otherNr, otherNumbered := other.split()

	if prefix != otherPrefix {
		return prefix < otherPrefix
	}
	if numbered != otherNumbered {
		return otherNumbered
	}
	if nr != otherNr {
		return nr < otherNr
	}
	return id < other
}

func (id RuleID) split() (prefix string, nr int, numbered bool) {
	m := numberedIDRe.FindStringSubmatch(string(id))
	if m == nil {
		return string(id), 0, false
	}
	nr, err := strconv.Atoi(m[2])
	if err != nil {
		return string(id), 0, false
	}
	return m[1], nr, true
}
