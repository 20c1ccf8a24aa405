package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{"spaces only", `  <div class="ui:p-2">`, 15, "              ^"},
		{"tabs and spaces", "\t\t<button class=\"ui:flex\">", 17, "\t\t              ^"},
		{"start of line", `class="ui:p-2"`, 1, "^"},
		{"column 0 fallback", "some line", 0, "^"},
		{"column beyond line length", "short", 100, "     ^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func sampleIssues() []Issue {
	return []Issue{
		{FromLinter: "phxlint", Text: "second", Severity: SeverityWarning, Pos: IssuePos{Filename: "b.templ", Line: 1, Column: 1}},
		{
			FromLinter:  "phxlint",
			Text:        "first",
			Severity:    SeverityError,
			SourceLines: []string{`<div class="ui:pp-2">`},
			Pos:         IssuePos{Filename: "a.templ", Line: 3, Column: 13},
			Replacement: &Replacement{NewText: "ui:p-2"},
		},
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, Options{PrintLines: true, PrintLinterName: true}).PrintIssues(sampleIssues())

	want := "a.templ:3:13: first (phxlint)\n" +
		"\t<div class=\"ui:pp-2\">\n" +
		"\t            ^\n" +
		"\tsuggested: ui:p-2\n" +
		"b.templ:1:1: second (phxlint)\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, Options{}).PrintSummary(sampleIssues(), 2)
	out := buf.String()
	assert.Contains(t, out, "2 issues (1 error, 1 warning; 2 issues truncated):")
	assert.Contains(t, out, "* phxlint: 2")

	buf.Reset()
	NewReporter(&buf, Options{}).PrintSummary(nil, 0)
	assert.Equal(t, "\n0 issues:\n", buf.String())
}

func TestVerboseReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewVerboseReporter(&buf, false)
	r.PrintStatistics(Stats{FilesScanned: 3, ClassesFound: 10, KnownClasses: 8, KnownPercent: 80})
	r.PrintTopUnknown([]Frequency{{Class: "ui:pp-2", Occurrences: 2, Suggestion: "ui:p-2"}})
	r.PrintWarnings([]string{"could not read x.css"})

	out := buf.String()
	assert.Contains(t, out, "Files Scanned:       3")
	assert.Contains(t, out, "Known:               8 (80.0%)")
	assert.Contains(t, out, `1. "ui:pp-2" - 2 occurrences → did you mean ui:p-2?`)
	assert.Contains(t, out, "• could not read x.css")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[█████░░░░░] 50.0%", ProgressBar(50, 10))
	assert.Equal(t, "[░░░░] 0.0%", ProgressBar(-5, 4))
	assert.Equal(t, "[████] 100.0%", ProgressBar(140, 4))
}

func TestCounts(t *testing.T) {
	errors, warnings := Counts(sampleIssues())
	assert.Equal(t, 1, errors)
	assert.Equal(t, 1, warnings)
}
