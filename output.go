package phoenix

import (
	"fmt"
	"io"
	"os"

	"github.com/phoenix-ui/phoenix/internal/report"
)

// OutputFormat is a lint output format.
type OutputFormat string

const (
	// OutputIssues prints issues in golangci-lint format.
	OutputIssues OutputFormat = "issues"
	// OutputSummary prints statistics and frequent unknown classes only.
	OutputSummary OutputFormat = "summary"
	// OutputFull prints issues followed by the summary.
	OutputFull OutputFormat = "full"
	// OutputJSON writes a machine-readable report.
	OutputJSON OutputFormat = "json"
	// OutputMarkdown writes a shareable report.
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat maps the --output-format flag to a format. quiet
// and unknown values fall back to issues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}
	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}
	return OutputIssues
}

// WriteOutput writes result in format.
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	if result.Stats.FilesScanned > 50 && format != OutputJSON && format != OutputMarkdown {
		fmt.Fprintln(os.Stderr, "🔍 Scanning complete")
	}

	opts := report.Options{
		UseColors:       config.UseColors,
		PrintLines:      config.PrintIssuedLines,
		PrintLinterName: config.PrintLinterName,
	}

	switch format {
	case OutputSummary:
		writeSummary(w, result, config.UseColors)

	case OutputFull:
		reporter := report.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)
		writeSummary(w, result, reporter.UseColors())

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("write json: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}

	default:
		reporter := report.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)
	}
	return nil
}

func writeSummary(w io.Writer, result *LintResult, useColors bool) {
	v := report.NewVerboseReporter(w, useColors)
	v.PrintStatistics(result.Stats)
	v.PrintCoverage(result.Stats)
	v.PrintTopUnknown(result.TopUnknown)
	v.PrintWarnings(result.Warnings)
}
