package phoenix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phoenix-ui/phoenix/internal/report"
)

// WriteMarkdown writes result as a Markdown report.
func WriteMarkdown(w io.Writer, result *LintResult) error {
	bw := bufio.NewWriter(w)
	errors, warnings := report.Counts(result.Issues)
	s := result.Stats

	fmt.Fprintln(bw, "# Class Linter Report")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "*%s*\n\n", time.Now().Format("2006-01-02 15:04"))

	fmt.Fprintln(bw, "## Summary")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "| Metric | Value |")
	fmt.Fprintln(bw, "|---|---|")
	fmt.Fprintf(bw, "| **Status** | %s |\n", statusBadge(errors, warnings))
	fmt.Fprintf(bw, "| **Total Issues** | %d (%d errors, %d warnings) |\n", len(result.Issues), errors, warnings)
	fmt.Fprintf(bw, "| **Files Scanned** | %d |\n", s.FilesScanned)
	fmt.Fprintf(bw, "| **Known Classes** | %d / %d (%.1f%%) |\n", s.KnownClasses, s.ClassesFound, s.KnownPercent)
	fmt.Fprintf(bw, "| **Vocabulary** | %d |\n", s.VocabularySize)
	fmt.Fprintln(bw)

	if errors > 0 {
		fmt.Fprintln(bw, "## Errors")
		fmt.Fprintln(bw)
		for _, issue := range result.Issues {
			if issue.Severity != SeverityError {
				continue
			}
			line := fmt.Sprintf("- `%s:%d:%d` %s", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column, issue.Text)
			if issue.Replacement != nil {
				line += fmt.Sprintf(" (did you mean `%s`?)", issue.Replacement.NewText)
			}
			fmt.Fprintln(bw, line)
		}
		fmt.Fprintln(bw)
	}

	if len(result.TopUnknown) > 0 {
		fmt.Fprintln(bw, "## Most Frequent Unknown Classes")
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "| Class | Occurrences | Suggestion |")
		fmt.Fprintln(bw, "|---|---|---|")
		for _, f := range result.TopUnknown {
			suggestion := "-"
			if f.Suggestion != "" {
				suggestion = "`" + escapeMarkdown(f.Suggestion) + "`"
			}
			fmt.Fprintf(bw, "| `%s` | %d | %s |\n", escapeMarkdown(f.Class), f.Occurrences, suggestion)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "## Statistics")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "- Unknown classes: %d\n", s.Unknown)
	fmt.Fprintf(bw, "- Conflicts: %d\n", s.Conflicts)
	fmt.Fprintf(bw, "- Bad breakpoints: %d\n", s.Breakpoints)
	if result.TruncatedCount > 0 {
		fmt.Fprintf(bw, "- Truncated issues: %d\n", result.TruncatedCount)
	}
	fmt.Fprintln(bw)

	if len(result.Warnings) > 0 {
		fmt.Fprintln(bw, "## Warnings")
		fmt.Fprintln(bw)
		for _, warning := range result.Warnings {
			fmt.Fprintf(bw, "- %s\n", warning)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "---")
	fmt.Fprintln(bw, "*Generated by phoenix lint*")
	return bw.Flush()
}

func statusBadge(errors, warnings int) string {
	switch {
	case errors > 0:
		return "🔴 Needs Attention"
	case warnings > 0:
		return "🟡 Warnings"
	default:
		return "🟢 Clean"
	}
}

// escapeMarkdown escapes table separators.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
