package rule

// yamlRule is the intermediate struct for one entry of the rules
// document. The document maps rule identifiers to these fields; regex
// fields hold raw RE2 patterns. Pointer fields distinguish absent from
// empty so mandatory fields can be enforced.
type yamlRule struct {
	Category   *string `yaml:"category"`
	Summary    *string `yaml:"summary"`
	Rationale  *string `yaml:"rationale,omitempty"`
	Workaround *string `yaml:"workaround,omitempty"`

	MatchedFiles *string `yaml:"matched_files,omitempty"`
	IgnoredFiles *string `yaml:"ignored_files,omitempty"`
	MatchedText  *string `yaml:"matched_text"`
	IgnoredText  *string `yaml:"ignored_text,omitempty"`
	MarkedText   *string `yaml:"marked_text,omitempty"`

	Keywords []string `yaml:"keywords,omitempty"`
}
