package phoenix

import (
	"encoding/json"
	"io"
	"time"

	"github.com/phoenix-ui/phoenix/internal/report"
)

// JSONOutput is the schema of the json output format.
type JSONOutput struct {
	Version    string        `json:"version"`
	Timestamp  string        `json:"timestamp"`
	Summary    JSONSummary   `json:"summary"`
	Stats      JSONStats     `json:"stats"`
	Issues     []JSONIssue   `json:"issues"`
	TopUnknown []JSONUnknown `json:"top_unknown"`
	Warnings   []string      `json:"warnings,omitempty"`
}

// JSONSummary contains issue counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains vocabulary statistics.
type JSONStats struct {
	ClassesFound   int     `json:"classes_found"`
	KnownClasses   int     `json:"known_classes"`
	KnownPercent   float64 `json:"known_percent"`
	Unknown        int     `json:"unknown"`
	Conflicts      int     `json:"conflicts"`
	Breakpoints    int     `json:"breakpoints"`
	VocabularySize int     `json:"vocabulary_size"`
}

// JSONIssue is a single issue.
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Source     string `json:"source,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSONUnknown is a frequently used unknown class.
type JSONUnknown struct {
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// WriteJSON writes result as indented JSON.
func WriteJSON(w io.Writer, result *LintResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *LintResult) JSONOutput {
	errors, warnings := report.Counts(result.Issues)

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		if issue.Replacement != nil {
			ji.Suggestion = issue.Replacement.NewText
		}
		issues[i] = ji
	}

	unknown := make([]JSONUnknown, len(result.TopUnknown))
	for i, f := range result.TopUnknown {
		unknown[i] = JSONUnknown{Class: f.Class, Occurrences: f.Occurrences, Suggestion: f.Suggestion}
	}

	s := result.Stats
	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: s.FilesScanned,
		},
		Stats: JSONStats{
			ClassesFound:   s.ClassesFound,
			KnownClasses:   s.KnownClasses,
			KnownPercent:   s.KnownPercent,
			Unknown:        s.Unknown,
			Conflicts:      s.Conflicts,
			Breakpoints:    s.Breakpoints,
			VocabularySize: s.VocabularySize,
		},
		Issues:     issues,
		TopUnknown: unknown,
		Warnings:   result.Warnings,
	}
}
