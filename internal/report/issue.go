// Package report prints lint issues and statistics to a terminal.
package report

// Issue is a single lint finding in golangci-lint shape.
type Issue struct {
	FromLinter  string       `json:"FromLinter"`
	Text        string       `json:"Text"`
	Severity    string       `json:"Severity"`
	SourceLines []string     `json:"SourceLines"`
	Pos         IssuePos     `json:"Pos"`
	LineRange   *LineRange   `json:"LineRange"`
	Replacement *Replacement `json:"Replacement"`
}

// IssuePos is the 1-based location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"`
}

// LineRange spans several lines.
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// Replacement is a suggested fix for the offending literal.
type Replacement struct {
	NewText      string
	InlineLength int
}

// Severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Stats summarizes one lint run.
type Stats struct {
	FilesScanned   int
	ClassesFound   int     // ui: prefixed classes seen in literals
	KnownClasses   int     // of those, found in the vocabulary
	Unknown        int     // unknown-class issues
	Conflicts      int     // conflict issues
	Breakpoints    int     // bad breakpoint issues
	VocabularySize int     // classes the vocabulary holds
	KnownPercent   float64 // KnownClasses / ClassesFound
}

// Frequency counts how often one unknown class occurs.
type Frequency struct {
	Class       string
	Occurrences int
	Suggestion  string
}

// Counts returns the number of errors and warnings in issues.
func Counts(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
