package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chiselworks/feedgen"
	"github.com/spf13/cobra"
)

var (
	generateOutputPath   string
	generateDiffPath     string
	generateWorkflowPath string
	generateGitRepo      string
	generateGitRev       string
	generateRulesInclude string
	generateRulesExclude string
	generateWorkers      int
)

var generateCmd = &cobra.Command{
	Use:   "generate <rules> <sources>",
	Short: "Generate the feedback artifact",
	Long: `Scan the sources listed in <sources> against the rules document <rules>
and write the compiler-feedable feedback artifact.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutputPath, "output", "o", "", "Destination path (default: standard output)")
	generateCmd.Flags().StringVarP(&generateDiffPath, "diff", "d", "", "Unified-diff file for changed-line filtering")
	generateCmd.Flags().StringVarP(&generateWorkflowPath, "workflow", "w", "", "Workflow document (default: built-in presets)")
	generateCmd.Flags().StringVar(&generateGitRepo, "git", "", "Derive a diff from the repository at this path")
	generateCmd.Flags().StringVar(&generateGitRev, "git-rev", "", "Revision to diff against its parent (default: HEAD)")
	generateCmd.Flags().StringVar(&generateRulesInclude, "rules-include", "", "Include rules matching regex pattern (comma-separated)")
	generateCmd.Flags().StringVar(&generateRulesExclude, "rules-exclude", "", "Exclude rules matching regex pattern (comma-separated)")
	generateCmd.Flags().IntVar(&generateWorkers, "workers", 0, "Sources scanned concurrently (0 = one per CPU)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := feedgen.Config{
		RulesPath:    args[0],
		SourcesPath:  args[1],
		WorkflowPath: generateWorkflowPath,
		DiffPath:     generateDiffPath,
		GitRepo:      generateGitRepo,
		GitRev:       generateGitRev,
		RulesInclude: generateRulesInclude,
		RulesExclude: generateRulesExclude,
		Workers:      generateWorkers,
	}

	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	startTime := time.Now()
	stats, err := feedgen.Generate(ctx, cfg, out)
	if cerr := closeOut(err == nil); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if verbose && !quiet {
		stats.Summary(cmd.ErrOrStderr(), time.Since(startTime))
	}
	return nil
}

// openOutput resolves the -o flag. The returned close function discards
// the artifact when the run failed, so fatal errors never leave a
// half-written file behind.
func openOutput(cmd *cobra.Command) (io.Writer, func(keep bool) error, error) {
	if generateOutputPath == "" {
		return cmd.OutOrStdout(), func(bool) error { return nil }, nil
	}

	file, err := os.Create(generateOutputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output %s: %w", generateOutputPath, err)
	}

	buffered := bufio.NewWriter(file)
	return buffered, func(keep bool) error {
		if !keep {
			file.Close()
			os.Remove(generateOutputPath)
			return nil
		}
		if err := buffered.Flush(); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}, nil
}
