package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetGenerateFlags() {
	generateOutputPath = ""
	generateDiffPath = ""
	generateWorkflowPath = ""
	generateGitRepo = ""
	generateGitRev = ""
	generateRulesInclude = ""
	generateRulesExclude = ""
	generateWorkers = 0
}

func TestRunGenerate_ToStdout(t *testing.T) {
	resetGenerateFlags()
	dir := t.TempDir()

	source := writeFile(t, dir, "a.txt", "hello foo world\n")
	rules := writeFile(t, dir, "rules.yml", "R1: {category: guideline, summary: no foo, matched_text: foo}\n")
	sources := writeFile(t, dir, "sources.txt", source+"\n")

	var out bytes.Buffer
	generateCmd.SetOut(&out)
	generateCmd.SetErr(&out)

	require.NoError(t, runGenerate(generateCmd, []string{rules, sources}))

	assert.Contains(t, out.String(), "FEEDBACK_MATCH_R1(\"hello foo world\", \"      ^~~\")")
}

func TestRunGenerate_ToFile(t *testing.T) {
	resetGenerateFlags()
	dir := t.TempDir()

	source := writeFile(t, dir, "a.txt", "hello foo world\n")
	rules := writeFile(t, dir, "rules.yml", "R1: {category: guideline, summary: no foo, matched_text: foo}\n")
	sources := writeFile(t, dir, "sources.txt", source+"\n")
	generateOutputPath = filepath.Join(dir, "feedback.h")

	require.NoError(t, runGenerate(generateCmd, []string{rules, sources}))

	data, err := os.ReadFile(generateOutputPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "// DO NOT EDIT"))
}

func TestRunGenerate_FatalErrorLeavesNoArtifact(t *testing.T) {
	resetGenerateFlags()
	dir := t.TempDir()

	rules := writeFile(t, dir, "rules.yml", "R1: {category: guideline, summary: s, matched_text: x}\n")
	sources := writeFile(t, dir, "sources.txt", filepath.Join(dir, "missing.c")+"\n")
	generateOutputPath = filepath.Join(dir, "feedback.h")

	require.Error(t, runGenerate(generateCmd, []string{rules, sources}))

	_, err := os.Stat(generateOutputPath)
	assert.True(t, os.IsNotExist(err), "failed runs must not leave an artifact behind")
}

func TestRunGenerate_InvalidRules(t *testing.T) {
	resetGenerateFlags()
	dir := t.TempDir()

	rules := writeFile(t, dir, "rules.yml", "R1: {category: guideline, summary: s}\n")
	sources := writeFile(t, dir, "sources.txt", "")

	assert.Error(t, runGenerate(generateCmd, []string{rules, sources}))
}
