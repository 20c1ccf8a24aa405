package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/phoenix-ui/phoenix"
	"github.com/phoenix-ui/phoenix/internal/report"
)

const defaultConfigPath = ".phoenix.yaml"

var k = koanf.New(".")

var defaultScanPaths = []string{"**/*.templ", "**/*.go"}

// loadConfig loads configuration with precedence flags > env > file >
// defaults. It must run after cobra has parsed flags.
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags set on the command line; defaults are applied by the
	// getters so they never shadow the file or the environment.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

// loadConfigFromPath loads the config file, if present, and PHOENIX_*
// environment variables.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("PHOENIX_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}
	return nil
}

// envKey maps an environment variable to a config key. The first
// underscore separates the section, the rest become hyphens:
// PHOENIX_LINT_MAX_SAME_ISSUES -> lint.max-same-issues.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "PHOENIX_"))
	key = strings.Replace(key, "_", ".", 1)
	return strings.ReplaceAll(key, "_", "-")
}

func buildDocsConfig() phoenix.DocsConfig {
	return phoenix.DocsConfig{
		OutputDir:  getStringWithFallback("out", "docs.out", "docs/components"),
		Components: getStringsWithFallback("components", "docs.components", []string{"*"}),
		Stylesheet: getStringWithFallback("stylesheet", "docs.stylesheet", ""),
		Overwrite:  getBoolWithFallback("overwrite", "docs.overwrite", false),
		Verbose:    getBoolWithFallback("verbose", "verbose", false),
		Workers:    getIntWithFallback("workers", "docs.workers", 0),
	}
}

func buildLintConfig() phoenix.LintConfig {
	return phoenix.LintConfig{
		ScanPaths:          getStringsWithFallback("paths", "lint.paths", defaultScanPaths),
		Stylesheets:        getStringsWithFallback("stylesheets", "lint.stylesheets", nil),
		Allow:              getStringsWithFallback("allow", "lint.allow", nil),
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          report.ShouldUseColors(getBoolWithFallback("color", "color", false)),
	}
}

// getStringWithFallback checks the flag key, then the config key, then
// returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
