package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc_analyzer/internal/analyzer"
	"doc_analyzer/internal/workspace"
)

const catText = "The cat sat on the mat. The cat slept."

// isolate points the workspace at a fresh directory and pins the env
// overrides so the host environment cannot leak into a run.
func isolate(t *testing.T) string {
	t.Helper()
	home := filepath.Join(t.TempDir(), "ws")
	t.Setenv(workspace.HomeEnv, home)
	t.Setenv("DOC_ANALYZER_SENTIMENT_PROVIDER", "naivebayes")
	t.Setenv("DOC_ANALYZER_HISTORY", "false")
	t.Setenv("DOC_ANALYZER_HISTORY_PATH", "")
	t.Setenv("DOC_ANALYZER_LOG_LEVEL", "error")
	return home
}

func writeDoc(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyzePrintsReport(t *testing.T) {
	home := isolate(t)
	doc := writeDoc(t, "cat.txt", catText)

	out, _, err := run(t, doc)
	require.NoError(t, err)

	assert.Contains(t, out, "Total Lines: 1\n")
	assert.Contains(t, out, "Total Words: 9\n")
	assert.Contains(t, out, "Unique Words: 6\n")
	assert.Contains(t, out, "Top 10 Frequent Words: cat: 2, sat: 1, mat: 1, slept: 1\n")
	assert.Contains(t, out, "Average Sentence Length: 4.50\n")
	assert.True(t, strings.HasSuffix(out, "\nAnalysis complete!\n"), "missing footer:\n%s", out)

	_, err = os.Stat(home)
	assert.True(t, os.IsNotExist(err), "single-file run must not create the workspace")
}

func TestAnalyzeSavesJSONReport(t *testing.T) {
	isolate(t)
	doc := writeDoc(t, "cat.txt", catText)
	dest := filepath.Join(t.TempDir(), "report.json")

	out, _, err := run(t, doc, dest)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Report saved to %s\n", dest), out)

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	var res analyzer.Result
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, 9, res.TotalWords)
	assert.Equal(t, doc, res.SourcePath)
}

func TestAnalyzeMissingFile(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, _, err := run(t, missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, analyzer.ErrIO))
	assert.Equal(t, fmt.Sprintf("%q cannot be opened.", missing), describe(err))
}

func TestAnalyzeRequiresInput(t *testing.T) {
	isolate(t)

	_, _, err := run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage:")

	_, _, err = run(t, "a", "b", "c")
	require.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("analysis:\n  top_words: 2\n"), 0o644))
	doc := writeDoc(t, "cat.txt", catText)

	out, _, err := run(t, "--config", cfgPath, doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Top 2 Frequent Words: cat: 2, sat: 1\n")
}

func TestConfigFlagInvalid(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sentiment:\n  provider: oracle\n"), 0o644))
	t.Setenv("DOC_ANALYZER_SENTIMENT_PROVIDER", "")

	_, _, err := run(t, "--config", cfgPath, writeDoc(t, "cat.txt", catText))
	require.Error(t, err)
}

func TestBatchAndHistory(t *testing.T) {
	isolate(t)
	t.Setenv("DOC_ANALYZER_HISTORY", "true")
	t.Setenv("DOC_ANALYZER_HISTORY_PATH", filepath.Join(t.TempDir(), "history.db"))

	good := writeDoc(t, "good.txt", "I loved this film. Wonderful acting and a beautiful, moving story.")
	bad := writeDoc(t, "bad.txt", "The worst film ever. Terrible acting, an awful boring plot and a waste of time.")
	missing := filepath.Join(t.TempDir(), "missing.txt")
	outDir := filepath.Join(t.TempDir(), "reports")

	out, errOut, err := run(t, "batch", "--out-dir", outDir, "--workers", "2", good, missing, bad)
	require.Error(t, err)
	assert.Equal(t, "1 of 3 documents failed", err.Error())
	assert.Contains(t, errOut, "cannot be opened.")
	assert.Equal(t, 2, strings.Count(out, "Report saved to "))

	reports, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	out, _, err = run(t, "history", "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, out, good)
	assert.Contains(t, out, bad)
	assert.Contains(t, out, "POSITIVE")
	assert.Contains(t, out, "NEGATIVE")
	assert.NotContains(t, out, missing)
}

func TestBatchSkipsRepeatedInputs(t *testing.T) {
	isolate(t)
	doc := writeDoc(t, "cat.txt", catText)
	outDir := filepath.Join(t.TempDir(), "reports")
	again := filepath.Dir(doc) + string(filepath.Separator) + "." + string(filepath.Separator) + "cat.txt"

	out, _, err := run(t, "batch", "--out-dir", outDir, doc, doc, again)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Report saved to "))

	reports, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestUniquePaths(t *testing.T) {
	got := uniquePaths([]string{"a.txt", "b.txt", "./a.txt", "a.txt"})
	assert.Equal(t, []string{"a.txt", "b.txt"}, got)
}

func TestHistoryDoesNotCreateWorkspace(t *testing.T) {
	home := isolate(t)

	out, _, err := run(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "No analyses recorded.\n", out)

	_, err = os.Stat(home)
	assert.True(t, os.IsNotExist(err), "listing history must not create the workspace")
}

func TestHistoryLimitShowsTotal(t *testing.T) {
	isolate(t)
	t.Setenv("DOC_ANALYZER_HISTORY", "true")
	t.Setenv("DOC_ANALYZER_HISTORY_PATH", filepath.Join(t.TempDir(), "history.db"))

	doc := writeDoc(t, "cat.txt", catText)
	for n := 0; n < 3; n++ {
		_, _, err := run(t, doc)
		require.NoError(t, err)
	}

	out, _, err := run(t, "history", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 2 of 3 analyses.\n")
}

func TestHistoryEmpty(t *testing.T) {
	isolate(t)
	t.Setenv("DOC_ANALYZER_HISTORY_PATH", filepath.Join(t.TempDir(), "history.db"))

	out, _, err := run(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "No analyses recorded.\n", out)
}
