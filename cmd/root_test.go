package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shigou0206/editor-analyzer/internal/token"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `cache:
  disabled: false
  ttl: 10m
  cleanup_interval: 30m
log:
  enabled: false
tracing:
  enabled: false
  exporter: none
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeTestSource(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.py")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		jsonOutput = false
	})
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestTokenizeCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)
	srcPath := writeTestSource(t, "def foo(): pass")

	out := execute(t, "--config", cfgPath, "tokenize", srcPath)

	require.Contains(t, out, "keyword")
	require.Contains(t, out, `"def"`)
	require.Contains(t, out, "identifier")
	require.Contains(t, out, `"foo"`)
}

func TestTokenizeCommand_JSON(t *testing.T) {
	cfgPath := writeTestConfig(t)
	srcPath := writeTestSource(t, "x = 1")

	out := execute(t, "--config", cfgPath, "tokenize", srcPath, "--json")

	var tokens []token.Token
	require.NoError(t, json.Unmarshal([]byte(out), &tokens))
	require.Len(t, tokens, 5)
	require.Equal(t, token.Identifier, tokens[0].Kind)
	require.Equal(t, token.Number, tokens[4].Kind)
}

func TestHighlightCommand_ReportsOutcome(t *testing.T) {
	cfgPath := writeTestConfig(t)
	srcPath := writeTestSource(t, "x = 1")

	out := execute(t, "--config", cfgPath, "highlight", srcPath)

	// The CLI has no structural parser, so highlights come from the scanner.
	require.Contains(t, out, "# outcome: lexical")
}

func TestLinesCommand_SingleLine(t *testing.T) {
	cfgPath := writeTestConfig(t)
	srcPath := writeTestSource(t, "a = 1\nb = 2\n")

	out := execute(t, "--config", cfgPath, "lines", srcPath, "1")

	require.Contains(t, out, `"b"`)
	require.NotContains(t, out, `"a"`)
}

func TestTokenizeCommand_MissingFile(t *testing.T) {
	cfgPath := writeTestConfig(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--config", cfgPath, "tokenize", filepath.Join(t.TempDir(), "missing.py")})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	require.Error(t, rootCmd.Execute())
}
