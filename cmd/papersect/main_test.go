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

const samplePaper = "Glacier Retreat\n" +
	"Abstract\n" +
	"We measure glacier mass loss.\n" +
	"Methods\n" +
	"Satellite altimetry over ten years.\n" +
	"Results\n" +
	"Mass loss accelerated by 20%.\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writePaper(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glacier.txt")
	require.NoError(t, os.WriteFile(path, []byte(samplePaper), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "papersect dev\n", out)
}

func TestAnalyzeCommand_Report(t *testing.T) {
	out, err := execute(t, "analyze", writePaper(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Research Paper Summary\n\nTitle: glacier\n\n"), out)
	assert.Contains(t, out, "Satellite altimetry over ten years.")
}

func TestAnalyzeCommand_JSONToDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "analyze", "--json", "--out", dir, writePaper(t))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "glacier_summary.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"route": "linear"`)
	assert.NoFileExists(t, filepath.Join(dir, "glacier_summary.txt"))
}

func TestAnalyzeCommand_ReportToDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "analyze", "--json=false", "--out", dir, writePaper(t))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "glacier_summary.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Research Paper Summary\n"))
}

func TestAnalyzeCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "analyze", "--json=false", "--out=", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestQuestionsCommand(t *testing.T) {
	out, err := execute(t, "questions", writePaper(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1. "), out)
}
