package pattern

import (
	"errors"
	"testing"
)

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile("(unclosed")
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestCapture_WrapsWholePattern(t *testing.T) {
	p, err := Capture("a+")
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}

	skipped, match, remaining, ok := p.Find("xxaaayy")
	if !ok {
		t.Fatal("expected a match")
	}
	if match != "aaa" {
		t.Errorf("expected match aaa, got %q", match)
	}
	if skipped != "xx" || remaining != "yy" {
		t.Errorf("unexpected partition: %q / %q", skipped, remaining)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
	}{
		{"contained", "foo", "hello foo world", true},
		{"absent", "foo", "hello bar world", false},
		{"unanchored", "^hello", "hello world", true},
		{"empty pattern matches anything", "", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			if got := p.Matches(tt.text); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchCaptures(t *testing.T) {
	p := MustCompile(`(\w+)=(\w+)`)

	var key, value string
	ok, err := p.MatchCaptures("  foo=bar  ", &key, &value)
	if err != nil {
		t.Fatalf("MatchCaptures failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	if key != "foo" || value != "bar" {
		t.Errorf("expected foo/bar, got %q/%q", key, value)
	}
}

func TestMatchCaptures_NilSlotDiscards(t *testing.T) {
	p := MustCompile(`(\w+)=(\w+)`)

	var value string
	ok, err := p.MatchCaptures("foo=bar", nil, &value)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	if value != "bar" {
		t.Errorf("expected bar, got %q", value)
	}
}

func TestMatchCaptures_MoreSlotsThanGroups(t *testing.T) {
	p := MustCompile(`(a)`)

	var first, second string
	ok, err := p.MatchCaptures("a", &first, &second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no match when requesting more captures than groups")
	}
}

func TestMatchCaptures_TooMany(t *testing.T) {
	p := MustCompile("a")

	captures := make([]*string, MaxCaptures+1)
	_, err := p.MatchCaptures("a", captures...)
	if !errors.Is(err, ErrTooManyCaptures) {
		t.Errorf("expected ErrTooManyCaptures, got %v", err)
	}
}

func TestFind_PartitionsInput(t *testing.T) {
	tests := []struct {
		name          string
		pattern       string
		text          string
		wantSkipped   string
		wantMatch     string
		wantRemaining string
		wantOK        bool
	}{
		{"middle", "(foo)", "a foo b", "a ", "foo", " b", true},
		{"leftmost", "(o)", "foo", "f", "o", "o", true},
		{"start", "(a)", "abc", "", "a", "bc", true},
		{"end", "(c)", "abc", "ab", "c", "", true},
		{"absent", "(x)", "abc", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			skipped, match, remaining, ok := p.Find(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Find ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if skipped != tt.wantSkipped || match != tt.wantMatch || remaining != tt.wantRemaining {
				t.Errorf("Find = %q/%q/%q, want %q/%q/%q",
					skipped, match, remaining, tt.wantSkipped, tt.wantMatch, tt.wantRemaining)
			}
			if skipped+match+remaining != tt.text {
				t.Error("partition does not reassemble the input")
			}
		})
	}
}

func TestFind_FirstCaptureNotWholeMatch(t *testing.T) {
	p := MustCompile(`\n([+ ])`)

	skipped, match, remaining, ok := p.Find("x\n+added")
	if !ok {
		t.Fatal("expected a match")
	}
	if match != "+" {
		t.Errorf("expected capture +, got %q", match)
	}
	if skipped != "x\n" || remaining != "added" {
		t.Errorf("unexpected partition: %q / %q", skipped, remaining)
	}
}

func TestZeroPattern(t *testing.T) {
	var p Pattern
	if p.Matches("anything") {
		t.Error("zero pattern must not match")
	}
	if _, _, _, ok := p.Find("anything"); ok {
		t.Error("zero pattern must not find")
	}
}
