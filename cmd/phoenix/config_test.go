package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

// execute runs the root command with args and returns its output. Flag
// values stay set on rootCmd between calls and slice flags append.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetKoanf()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	configPath := filepath.Join(t.TempDir(), ".phoenix.yaml")
	configContent := `
verbose: true
docs:
  out: site/components
  workers: 3
lint:
  strict: true
  paths:
    - "views/**/*.templ"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "site/components", k.String("docs.out"))
	assert.Equal(t, 3, k.Int("docs.workers"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, []string{"views/**/*.templ"}, k.Strings("lint.paths"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()
	require.NoError(t, loadConfigFromPath("/nonexistent/.phoenix.yaml"))

	config := buildDocsConfig()
	assert.Equal(t, "docs/components", config.OutputDir)
	assert.Equal(t, []string{"*"}, config.Components)
	assert.False(t, config.Overwrite)
	assert.Zero(t, config.Workers)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	configPath := filepath.Join(t.TempDir(), ".phoenix.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("docs:\n  out: from-file\nlint:\n  strict: false\n"), 0644))

	t.Setenv("PHOENIX_DOCS_OUT", "from-env")
	t.Setenv("PHOENIX_LINT_STRICT", "true")
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("docs.out"))
	assert.True(t, k.Bool("lint.strict"))
}

func TestEnvVarHyphenatedKeys(t *testing.T) {
	resetKoanf()

	t.Setenv("PHOENIX_LINT_MAX_SAME_ISSUES", "7")
	t.Setenv("PHOENIX_LINT_OUTPUT_FORMAT", "json")
	t.Setenv("PHOENIX_VERBOSE", "true")
	require.NoError(t, loadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml")))

	assert.Equal(t, "json", k.String("lint.output-format"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, 7, buildLintConfig().MaxSameIssues)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"PHOENIX_VERBOSE":                    "verbose",
		"PHOENIX_DOCS_OUT":                   "docs.out",
		"PHOENIX_LINT_MAX_ISSUES_PER_LINTER": "lint.max-issues-per-linter",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig()
	assert.Equal(t, defaultScanPaths, config.ScanPaths)
	assert.Empty(t, config.Stylesheets)
	assert.Empty(t, config.Allow)
	assert.Zero(t, config.MaxIssuesPerLinter)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	configPath := filepath.Join(t.TempDir(), ".phoenix.yaml")
	configContent := `
lint:
  paths:
    - "src/**/*.go"
  stylesheets:
    - web/ui.css
  allow:
    - "ui:brand-*"
  max-issues-per-linter: 10
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig()
	assert.Equal(t, []string{"src/**/*.go"}, config.ScanPaths)
	assert.Equal(t, []string{"web/ui.css"}, config.Stylesheets)
	assert.Equal(t, []string{"ui:brand-*"}, config.Allow)
	assert.Equal(t, 10, config.MaxIssuesPerLinter)
	assert.False(t, config.PrintIssuedLines)
}

func TestFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(".phoenix.yaml", []byte("docs:\n  out: from-file\n"), 0644))

	out, err := execute(t, "docs", "--components", "Icon", "--out", "from-flag")
	require.NoError(t, err)
	assert.Contains(t, out, "Documented 1 components in from-flag")
	assert.FileExists(t, filepath.Join(dir, "from-flag", "guides", "Icon.md"))
	assert.NoFileExists(t, filepath.Join(dir, "from-file", "manifest.json"))
}

func TestDocsCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(".phoenix.yaml", []byte("docs:\n  out: site\n  components:\n    - Text\n"), 0644))

	resetKoanf()
	require.NoError(t, loadConfigFromPath(".phoenix.yaml"))
	config := buildDocsConfig()
	assert.Equal(t, "site", config.OutputDir)
	assert.Equal(t, []string{"Text"}, config.Components)
}

func TestLintCommand(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.templ")
	require.NoError(t, os.WriteFile(page, []byte(`<div class="ui:p-2 ui:bogus-class">`+"\n"), 0644))

	out, err := execute(t, "lint", "--paths", filepath.Join(dir, "*.templ"), "--output-format", "json")
	var exit exitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 1, exit.code)

	var report struct {
		Summary struct {
			Errors int `json:"errors"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Summary.Errors)
}

func TestMergeCommand(t *testing.T) {
	out, err := execute(t, "merge", "ui:p-2 ui:m-4", "ui:p-4")
	require.NoError(t, err)
	assert.Equal(t, "ui:m-4 ui:p-4\n", out)

	out, err = execute(t, "merge", "--explain", "ui:flex ui:flex ui:p-2 ui:p-4")
	require.NoError(t, err)
	assert.Equal(t, "ui:flex ui:p-4", strings.SplitN(out, "\n", 2)[0])
	assert.Contains(t, out, "ui:flex (duplicate)")
	assert.Contains(t, out, "ui:p-2 (overridden by ui:p-4)")
}

func TestMergeCommand_Stylesheet(t *testing.T) {
	css := filepath.Join(t.TempDir(), "ui.css")
	require.NoError(t, os.WriteFile(css, []byte(".phx-a { padding: 1px; } .phx-b { padding: 2px; }"), 0644))

	out, err := execute(t, "merge", "--stylesheet", css, "phx-a phx-b")
	require.NoError(t, err)
	assert.Equal(t, "phx-b", strings.SplitN(out, "\n", 2)[0])

	_, err = execute(t, "merge", "--stylesheet", filepath.Join(t.TempDir(), "missing.css"), "phx-a")
	require.Error(t, err)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "init")
	require.NoError(t, err)

	data, err := os.ReadFile(".phoenix.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "docs:")
	assert.Contains(t, string(data), "lint:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".phoenix.yaml", []byte("existing"), 0644))

	_, err := execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".phoenix.yaml", []byte("existing"), 0644))

	_, err := execute(t, "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(".phoenix.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# phoenix configuration")
}

func TestInitConfigLoads(t *testing.T) {
	resetKoanf()
	path := filepath.Join(t.TempDir(), ".phoenix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(defaultConfig), 0644))
	require.NoError(t, loadConfigFromPath(path))

	assert.Equal(t, buildLintConfig().ScanPaths, defaultScanPaths)
	assert.Equal(t, "docs/components", buildDocsConfig().OutputDir)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "phoenix dev\n", out)
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "phoenix")
}

func TestGetWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
	assert.Equal(t, []string{"a"}, getStringsWithFallback("flag-key", "config.key", []string{"a"}))
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
