package types

import "fmt"

// Severity is the compiler-visible strength of an emitted diagnostic.
type Severity int

const (
	SeverityMessage Severity = iota // default
	SeverityNone
	SeverityWarning
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityNone:    "none",
	SeverityMessage: "message",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	return severityNames[s]
}

// ParseSeverity maps a workflow document value to a Severity. The empty
// string is the default, message.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "":
		return SeverityMessage, nil
	case "none":
		return SeverityNone, nil
	case "message":
		return SeverityMessage, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

// Scope controls which files and lines a rule category may fire on.
type Scope int

const (
	ScopeAllFiles Scope = iota // default
	ScopeAllLines
	ScopeChangedFiles
	ScopeChangedLines
	ScopeNoFiles
	ScopeNoLines
)

var scopeNames = map[Scope]string{
	ScopeAllFiles:     "all_files",
	ScopeAllLines:     "all_lines",
	ScopeChangedFiles: "changed_files",
	ScopeChangedLines: "changed_lines",
	ScopeNoFiles:      "no_files",
	ScopeNoLines:      "no_lines",
}

func (s Scope) String() string {
	return scopeNames[s]
}

// ParseScope maps a workflow document value to a Scope. The empty string
// is the default, all_files.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "":
		return ScopeAllFiles, nil
	case "all_files":
		return ScopeAllFiles, nil
	case "all_lines":
		return ScopeAllLines, nil
	case "changed_files":
		return ScopeChangedFiles, nil
	case "changed_lines":
		return ScopeChangedLines, nil
	case "no_files":
		return ScopeNoFiles, nil
	case "no_lines":
		return ScopeNoLines, nil
	}
	return 0, fmt.Errorf("unknown scope %q", s)
}

// Handling pairs the scope a category fires on with the severity of its
// diagnostics.
type Handling struct {
	Scope    Scope
	Severity Severity
}
