package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibar/internal/domain"
	"lexibar/internal/history"
)

func TestSearchTable(t *testing.T) {
	data := searchTable([]domain.SearchResult{
		{Word: "serene", Method: domain.MethodExact, Score: 1},
		{Word: "serenity", Method: domain.MethodPrefix, Score: 0.755},
	})

	require.Len(t, data, 3)
	assert.Equal(t, []string{"#", "Word", "Match", "Score"}, data[0])
	assert.Equal(t, []string{"1", "serene", "exact", "1.00"}, data[1])
	assert.Equal(t, []string{"2", "serenity", "prefix", "0.76"}, data[2])
}

func TestHistoryTable(t *testing.T) {
	last := time.Date(2026, 3, 14, 9, 26, 0, 0, time.Local)
	data := historyTable([]history.Lookup{{Word: "ephemeral", Count: 3, Last: last}})

	require.Len(t, data, 2)
	assert.Equal(t, []string{"ephemeral", "3", "2026-03-14 09:26"}, data[1])
}

func TestFormatEntry(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	out := formatEntry(domain.Entry{
		Word: "run",
		Senses: []domain.Sense{
			{PartOfSpeech: "verb", Definition: "move swiftly on foot", Example: "she ran home"},
			{PartOfSpeech: "verb", Definition: "operate a machine"},
			{PartOfSpeech: "noun", Definition: "an act of running"},
		},
		Synonyms: []string{"sprint", "dash"},
	})

	assert.Contains(t, out, "verb 1. move swiftly on foot")
	assert.Contains(t, out, `"she ran home"`)
	assert.Contains(t, out, "verb 2. operate a machine")
	assert.Contains(t, out, "noun 1. an act of running")
	assert.Contains(t, out, "synonyms: sprint, dash")
}

func TestOpenAppFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	opts := &options{
		configPath:  filepath.Join(dir, "config.toml"),
		historyPath: filepath.Join(dir, "history.db"),
	}

	a, err := openApp(opts)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, opts.historyPath, a.cfg.HistoryPath)
	assert.Greater(t, a.dict.Len(), 0)

	entry, err := a.definer.Define(context.Background(), "serene")
	require.NoError(t, err)
	assert.Equal(t, "serene", entry.Word)
}

func TestOpenAppMissingDictionary(t *testing.T) {
	dir := t.TempDir()
	_, err := openApp(&options{
		configPath:  filepath.Join(dir, "config.toml"),
		dictPath:    filepath.Join(dir, "missing.toml"),
		historyPath: filepath.Join(dir, "history.db"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open dictionary")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.DisableColor()
	defer func() {
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableColor()
	}()

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestLookupThenHistory(t *testing.T) {
	dir := t.TempDir()
	common := []string{
		"--config", filepath.Join(dir, "config.toml"),
		"--history", filepath.Join(dir, "history.db"),
		"--log-file", filepath.Join(dir, "lexibar.log"),
	}

	out, err := runCLI(t, append([]string{"lookup", "serene"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "serene")

	out, err = runCLI(t, append([]string{"history"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "serene")

	out, err = runCLI(t, append([]string{"history", "--clear"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "History cleared")

	out, err = runCLI(t, append([]string{"history"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "No lookups yet")
}

func TestLookupUnknownWordFails(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "lookup", "qqqq",
		"--config", filepath.Join(dir, "config.toml"),
		"--history", filepath.Join(dir, "history.db"),
		"--log-file", filepath.Join(dir, "lexibar.log"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qqqq")
}

func TestSearchNoMatches(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "search", "zzzzzzzz",
		"--config", filepath.Join(dir, "config.toml"),
		"--history", filepath.Join(dir, "history.db"),
		"--log-file", filepath.Join(dir, "lexibar.log"),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "No matches")
}
