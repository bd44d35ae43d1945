// Package feedgen generates compiler-feedable feedback artifacts.
//
// Given a catalog of pattern-based rules and a set of source files, it
// locates occurrences of each rule and emits a stream of preprocessor
// directives (#line markers and FEEDBACK_MATCH_* macro calls) that make
// a C-family compiler surface the diagnostics at the file, line, and
// column of the original source.
//
// # Basic Usage
//
// Load the inputs and write the artifact to any io.Writer:
//
//	cfg := feedgen.Config{
//	    RulesPath:   "rules.yml",
//	    SourcesPath: "sources.txt",
//	}
//	stats, err := feedgen.Generate(context.Background(), cfg, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Fprintf(os.Stderr, "scanned %d sources\n", stats.Sources())
package feedgen

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chiselworks/feedgen/pkg/diff"
	"github.com/chiselworks/feedgen/pkg/render"
	"github.com/chiselworks/feedgen/pkg/rule"
	"github.com/chiselworks/feedgen/pkg/scanner"
	"github.com/chiselworks/feedgen/pkg/types"
	"github.com/chiselworks/feedgen/pkg/workflow"
	"golang.org/x/sync/errgroup"
)

// Config names the inputs of one generation run.
type Config struct {
	// RulesPath is the rules document (mandatory).
	RulesPath string

	// SourcesPath is a newline-separated list of source paths
	// (mandatory). Blank entries are invalid paths.
	SourcesPath string

	// WorkflowPath is the workflow document; empty selects the built-in
	// category presets.
	WorkflowPath string

	// DiffPath is a unified-diff file; empty applies no changed-line
	// filter, so changed_* scopes see every file as unchanged.
	DiffPath string

	// GitRepo, when set, derives an additional diff from the repository
	// at that path: the commit at GitRev (HEAD when empty) against its
	// first parent. Merged with DiffPath.
	GitRepo string
	GitRev  string

	// RulesInclude and RulesExclude are comma-separated ID regexes
	// applied to the catalog after loading.
	RulesInclude string
	RulesExclude string

	// Workers bounds source-level parallelism; zero means one per CPU.
	Workers int
}

// Generate loads rules, workflow, diff, and the source list
// concurrently, writes the artifact header, and scans every source,
// streaming the output to out.
func Generate(ctx context.Context, cfg Config, out io.Writer) (*scanner.Stats, error) {
	var (
		rules   *types.RuleSet
		wf      *workflow.Workflow
		d       *diff.Diff
		sources []string
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		rules, err = loadRules(cfg)
		return err
	})
	g.Go(func() error {
		var err error
		wf, err = loadWorkflow(cfg)
		return err
	})
	g.Go(func() error {
		var err error
		d, err = loadDiff(cfg)
		return err
	})
	g.Go(func() error {
		var err error
		sources, err = loadSources(cfg.SourcesPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := render.Header(out, rules, wf); err != nil {
		return nil, err
	}

	return scanner.Scan(ctx, scanner.Config{
		Rules:    rules,
		Workflow: wf,
		Diff:     d,
		Sources:  sources,
		Workers:  cfg.Workers,
	}, out)
}

func loadRules(cfg Config) (*types.RuleSet, error) {
	rules, err := rule.Load(cfg.RulesPath)
	if err != nil {
		return nil, err
	}
	if cfg.RulesInclude == "" && cfg.RulesExclude == "" {
		return rules, nil
	}
	return rule.Filter(rules, rule.FilterConfig{
		Include: rule.ParsePatterns(cfg.RulesInclude),
		Exclude: rule.ParsePatterns(cfg.RulesExclude),
	})
}

func loadWorkflow(cfg Config) (*workflow.Workflow, error) {
	if cfg.WorkflowPath == "" {
		return workflow.Default(), nil
	}
	return workflow.Load(cfg.WorkflowPath)
}

func loadDiff(cfg Config) (*diff.Diff, error) {
	d := diff.New()

	if cfg.DiffPath != "" {
		data, err := os.ReadFile(cfg.DiffPath)
		if err != nil {
			return nil, fmt.Errorf("reading diff %s: %w", cfg.DiffPath, err)
		}
		d.Add(string(data))
	}

	if cfg.GitRepo != "" {
		patch, err := diff.FromRepository(cfg.GitRepo, cfg.GitRev)
		if err != nil {
			return nil, err
		}
		d.Add(patch)
	}

	return d, nil
}

// loadSources reads the newline-separated source list. Interior blank
// lines are kept as (invalid) empty paths; only the trailing newline's
// empty remainder is dropped.
func loadSources(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}
