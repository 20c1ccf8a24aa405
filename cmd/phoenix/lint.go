package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phoenix-ui/phoenix"
	"github.com/phoenix-ui/phoenix/internal/report"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint ui: class usage in Go and templ files",
	Long: `Check class literals in Go and templ files against the design-system
vocabulary. Reports unknown ui: classes, conflicting classes within one
literal, and breakpoints other than sm, md and lg.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runLint,
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for class literals")
	f.StringSlice("stylesheets", nil, "Compiled CSS files whose classes are known")
	f.StringSlice("allow", nil, "Extra known classes (wildcards allowed)")
	f.Bool("strict", false, "Exit 1 on warnings too (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (phxlint) suffix on issues")
}

// runLint exits 1 when errors are found, or any issue in strict mode.
func runLint(cmd *cobra.Command, _ []string) error {
	config := buildLintConfig()

	result, err := phoenix.LintContext(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := phoenix.DetermineOutputFormat(getStringWithFallback("output-format", "lint.output-format", ""), quiet)
	if !quiet {
		if err := phoenix.WriteOutput(cmd.OutOrStdout(), result, format, config); err != nil {
			return err
		}
	}

	errors, _ := report.Counts(result.Issues)
	strict := getBoolWithFallback("strict", "lint.strict", false)
	if errors > 0 || (strict && len(result.Issues) > 0) {
		return exitError{code: 1}
	}
	return nil
}
