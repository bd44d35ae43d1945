package rule

import (
	"testing"

	"github.com/chiselworks/feedgen/pkg/types"
)

func testRuleSet(t *testing.T, ids ...types.RuleID) *types.RuleSet {
	t.Helper()
	rs := types.NewRuleSet("rules.yml")
	for _, id := range ids {
		r, err := convert(yamlRule{
			Category:    strPtr("guideline"),
			Summary:     strPtr("summary"),
			MatchedText: strPtr("x"),
		})
		if err != nil {
			t.Fatalf("building rule: %v", err)
		}
		rs.Add(id, r)
	}
	return rs
}

func strPtr(s string) *string { return &s }

func TestParsePatterns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "foo", []string{"foo"}},
		{"multiple", "foo,bar", []string{"foo", "bar"}},
		{"whitespace trimmed", " foo , bar ", []string{"foo", "bar"}},
		{"empty parts dropped", "foo,,bar,", []string{"foo", "bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePatterns(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestFilter_IncludeOnly(t *testing.T) {
	rs := testRuleSet(t, "AWS1", "AWS2", "GCP1")

	filtered, err := Filter(rs, FilterConfig{Include: []string{"^AWS"}})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}

	if filtered.Len() != 2 {
		t.Errorf("expected 2 rules, got %d", filtered.Len())
	}
	if filtered.Get("GCP1") != nil {
		t.Error("GCP1 should have been excluded")
	}
}

func TestFilter_Exclude(t *testing.T) {
	rs := testRuleSet(t, "AWS1", "AWS2", "GCP1")

	filtered, err := Filter(rs, FilterConfig{Exclude: []string{"^AWS"}})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}

	if filtered.Len() != 1 {
		t.Errorf("expected 1 rule, got %d", filtered.Len())
	}
	if filtered.Get("GCP1") == nil {
		t.Error("GCP1 should have survived")
	}
}

func TestFilter_IncludeThenExclude(t *testing.T) {
	rs := testRuleSet(t, "AWS1", "AWS2", "GCP1")

	filtered, err := Filter(rs, FilterConfig{
		Include: []string{"^AWS"},
		Exclude: []string{"2$"},
	})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}

	if filtered.Len() != 1 || filtered.Get("AWS1") == nil {
		t.Errorf("expected only AWS1 to survive")
	}
}

func TestFilter_InvalidPattern(t *testing.T) {
	rs := testRuleSet(t, "AWS1")

	if _, err := Filter(rs, FilterConfig{Include: []string{"("}}); err == nil {
		t.Error("expected error for invalid include pattern")
	}
	if _, err := Filter(rs, FilterConfig{Exclude: []string{"("}}); err == nil {
		t.Error("expected error for invalid exclude pattern")
	}
}

func TestFilter_KeepsOrigin(t *testing.T) {
	rs := testRuleSet(t, "AWS1")

	filtered, err := Filter(rs, FilterConfig{})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if filtered.Origin != "rules.yml" {
		t.Errorf("expected origin to survive filtering, got %q", filtered.Origin)
	}
}
