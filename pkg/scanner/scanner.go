// Package scanner orchestrates matching: it fans out over sources and,
// within each source, over rules, and forwards every match to the
// renderer. Output for a source is buffered and committed atomically so
// per-source blocks stay contiguous regardless of scheduling.
package scanner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/chiselworks/feedgen/pkg/diff"
	"github.com/chiselworks/feedgen/pkg/prefilter"
	"github.com/chiselworks/feedgen/pkg/render"
	"github.com/chiselworks/feedgen/pkg/text"
	"github.com/chiselworks/feedgen/pkg/types"
	"github.com/chiselworks/feedgen/pkg/workflow"
	"golang.org/x/sync/errgroup"
)

// Config carries the shared, immutable inputs of one run.
type Config struct {
	Rules    *types.RuleSet
	Workflow *workflow.Workflow
	Diff     *diff.Diff
	Sources  []string

	// ReadFile loads a source's content. Defaults to reading from the
	// filesystem; empty paths are invalid.
	ReadFile func(path string) ([]byte, error)

	// Workers bounds the number of sources scanned concurrently.
	// Zero or negative means one worker per CPU. With a single worker
	// the output is byte-identical across runs.
	Workers int
}

// Scan runs the whole catalog over every source, writing each source's
// block to out. It returns aggregate counters; the first source failure
// aborts submission of further sources.
func Scan(ctx context.Context, cfg Config, out io.Writer) (*Stats, error) {
	readFile := cfg.ReadFile
	if readFile == nil {
		readFile = readSourceFile
	}

	d := cfg.Diff
	if d == nil {
		d = diff.New()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pf := prefilter.New(cfg.Rules)
	stats := &Stats{}

	var mu sync.Mutex // serializes the per-source commit to out

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, source := range cfg.Sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			content, err := readFile(source)
			if err != nil {
				return fmt.Errorf("reading source %q: %w", source, err)
			}
			stats.add(len(content))

			block := scanSource(cfg, pf, d, source, string(content))

			mu.Lock()
			defer mu.Unlock()
			_, err = out.Write(block)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}

// scanSource produces the complete output block of one source: the
// marker followed by every relevant rule's matches. Rules run in
// parallel into per-rule buffers which are stitched in catalog order.
func scanSource(cfg Config, pf *prefilter.Prefilter, d *diff.Diff, source, content string) []byte {
	changes := d.ChangesFrom(source)
	relevant := pf.Relevant(content)

	ids := cfg.Rules.IDs()
	buffers := make([]bytes.Buffer, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		r := cfg.Rules.Get(id)

		fileOK, lineOK := relevance(r, cfg.Workflow.Handling(r.Category), source, changes)
		if !fileOK || !relevant[id] {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			scanRule(&buffers[i], content, id, r, lineOK)
		}()
	}
	wg.Wait()

	var block bytes.Buffer
	render.SourceMarker(&block, source)
	for i := range buffers {
		block.Write(buffers[i].Bytes())
	}
	return block.Bytes()
}

// scanRule drives a forward search over content, emitting a match block
// for every relevant hit in ascending offset order.
func scanRule(w io.Writer, content string, id types.RuleID, r *types.Rule, lineOK func(int) bool) {
	search := text.NewForwardSearch(content)
	for search.NextExcept(r.MatchedText, r.IgnoredText) {
		line := search.Line()
		if !lineOK(line) {
			continue
		}
		render.MatchBlock(w, &types.Match{
			ID:      id,
			Line:    line,
			Excerpt: search.Highlighted(r.MarkedText),
		})
	}
}

// readSourceFile is the default content loader. Blank source-list
// entries are invalid paths.
func readSourceFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("empty source path")
	}
	return os.ReadFile(path)
}
