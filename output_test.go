package phoenix

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-ui/phoenix/internal/report"
)

func sampleResult() *LintResult {
	return &LintResult{
		Issues: []Issue{
			{
				FromLinter:  LinterName,
				Text:        `unknown class "ui:pp-2"`,
				Severity:    SeverityError,
				SourceLines: []string{`<div class="ui:pp-2">`},
				Pos:         IssuePos{Filename: "page.templ", Line: 4, Column: 13},
				Replacement: &Replacement{NewText: "ui:p-2"},
			},
			{
				FromLinter: LinterName,
				Text:       `class "ui:p-2" is overridden by "ui:p-4"`,
				Severity:   SeverityWarning,
				Pos:        IssuePos{Filename: "page.templ", Line: 9, Column: 13},
			},
		},
		Stats: report.Stats{
			FilesScanned:   3,
			ClassesFound:   10,
			KnownClasses:   9,
			KnownPercent:   90,
			Unknown:        1,
			Conflicts:      1,
			VocabularySize: 400,
		},
		TopUnknown: []report.Frequency{{Class: "ui:pp-2", Occurrences: 1, Suggestion: "ui:p-2"}},
		Warnings:   []string{"stylesheet a.css defines no classes"},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag  string
		quiet bool
		want  OutputFormat
	}{
		{"", false, OutputIssues},
		{"summary", false, OutputSummary},
		{"full", false, OutputFull},
		{"json", false, OutputJSON},
		{"markdown", false, OutputMarkdown},
		{"md", false, OutputMarkdown},
		{"bogus", false, OutputIssues},
		{"json", true, OutputIssues},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.quiet))
		})
	}
}

func TestWriteOutputIssues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputIssues, LintConfig{PrintIssuedLines: true, PrintLinterName: true}))

	out := buf.String()
	assert.Contains(t, out, `page.templ:4:13: unknown class "ui:pp-2" (phxlint)`)
	assert.Contains(t, out, "suggested: ui:p-2")
	assert.Contains(t, out, "2 issues (1 error, 1 warning):")
	assert.NotContains(t, out, "Class Linter Statistics")
}

func TestWriteOutputSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputSummary, LintConfig{}))

	out := buf.String()
	assert.Contains(t, out, "Class Linter Statistics")
	assert.Contains(t, out, "Known:               9 (90.0%)")
	assert.Contains(t, out, `→ did you mean ui:p-2?`)
	assert.Contains(t, out, "• stylesheet a.css defines no classes")
	assert.NotContains(t, out, "page.templ:4:13")
}

func TestWriteOutputFull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputFull, LintConfig{}))

	out := buf.String()
	assert.Contains(t, out, "page.templ:4:13")
	assert.Contains(t, out, "Vocabulary Coverage")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputJSON, LintConfig{}))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "1.0", out.Version)
	assert.NotEmpty(t, out.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 2, Errors: 1, Warnings: 1, FilesScanned: 3}, out.Summary)
	assert.Equal(t, 400, out.Stats.VocabularySize)

	require.Len(t, out.Issues, 2)
	assert.Equal(t, "ui:p-2", out.Issues[0].Suggestion)
	assert.Equal(t, `<div class="ui:pp-2">`, out.Issues[0].Source)
	assert.Empty(t, out.Issues[1].Source)

	require.Len(t, out.TopUnknown, 1)
	assert.Equal(t, "ui:pp-2", out.TopUnknown[0].Class)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleResult()))

	md := buf.String()
	assert.Contains(t, md, "# Class Linter Report")
	assert.Contains(t, md, "| **Status** | 🔴 Needs Attention |")
	assert.Contains(t, md, "| **Total Issues** | 2 (1 errors, 1 warnings) |")
	assert.Contains(t, md, "| **Known Classes** | 9 / 10 (90.0%) |")
	assert.Contains(t, md, "- `page.templ:4:13` unknown class \"ui:pp-2\" (did you mean `ui:p-2`?)")
	assert.Contains(t, md, "| `ui:pp-2` | 1 | `ui:p-2` |")
	assert.Contains(t, md, "## Warnings")
	assert.Contains(t, md, "*Generated by phoenix lint*")
}

func TestMarkdownStatusBadges(t *testing.T) {
	assert.Equal(t, "🔴 Needs Attention", statusBadge(1, 0))
	assert.Equal(t, "🟡 Warnings", statusBadge(0, 3))
	assert.Equal(t, "🟢 Clean", statusBadge(0, 0))
}

func TestMarkdownEscaping(t *testing.T) {
	result := &LintResult{TopUnknown: []report.Frequency{{Class: "ui:grid-cols-[1fr|2fr]", Occurrences: 2}}}

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, result))
	assert.Contains(t, buf.String(), "| `ui:grid-cols-[1fr\\|2fr]` | 2 | - |")
	assert.NotContains(t, buf.String(), "## Errors")
}
