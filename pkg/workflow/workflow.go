// Package workflow maps rule categories to their handling: the scope a
// category fires on and the severity of its diagnostics. A "default"
// entry serves as fallback for unlisted categories.
package workflow

import (
	"errors"
	"fmt"
	"os"

	"github.com/chiselworks/feedgen/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalidWorkflow reports a workflow document that failed to load.
var ErrInvalidWorkflow = errors.New("invalid workflow")

// Workflow maps categories to handlings.
type Workflow struct {
	handlings map[string]types.Handling
}

// presets are installed for categories the document does not override.
var presets = map[string]types.Handling{
	"requirement": {Scope: types.ScopeAllFiles, Severity: types.SeverityError},
	"guideline":   {Scope: types.ScopeAllFiles, Severity: types.SeverityWarning},
	"improvement": {Scope: types.ScopeChangedFiles, Severity: types.SeverityWarning},
	"suggestion":  {Scope: types.ScopeChangedLines, Severity: types.SeverityWarning},
}

// Default returns a workflow holding only the built-in category presets.
func Default() *Workflow {
	return &Workflow{handlings: presets}
}

// Handling returns the handling for category, falling back to the
// document's "default" entry and then to the built-in default.
func (w *Workflow) Handling(category string) types.Handling {
	if h, ok := w.handlings[category]; ok {
		return h
	}
	if h, ok := w.handlings["default"]; ok {
		return h
	}
	return types.Handling{}
}

// yamlHandling is the document form of one category entry.
type yamlHandling struct {
	Check    string `yaml:"check"`
	Response string `yaml:"response"`
}

// Parse decodes a workflow document. Documented categories overlay the
// built-in presets; unknown scope or severity values are fatal.
func Parse(data []byte) (*Workflow, error) {
	var doc map[string]yamlHandling
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkflow, err)
	}

	handlings := make(map[string]types.Handling, len(presets)+len(doc))
	for category, h := range presets {
		handlings[category] = h
	}

	for category, entry := range doc {
		scope, err := types.ParseScope(entry.Check)
		if err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", ErrInvalidWorkflow, category, err)
		}
		severity, err := types.ParseSeverity(entry.Response)
		if err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", ErrInvalidWorkflow, category, err)
		}
		handlings[category] = types.Handling{Scope: scope, Severity: severity}
	}

	return &Workflow{handlings: handlings}, nil
}

// Load reads and parses a workflow document from path.
func Load(path string) (*Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workflow %s: %w", path, err)
	}
	return Parse(data)
}
