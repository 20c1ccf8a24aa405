package phoenix

import "github.com/phoenix-ui/phoenix/internal/report"

// Issue is a single lint finding in golangci-lint shape.
type (
	Issue       = report.Issue
	IssuePos    = report.IssuePos
	LineRange   = report.LineRange
	Replacement = report.Replacement
)

// Severities.
const (
	SeverityError   = report.SeverityError
	SeverityWarning = report.SeverityWarning
	SeverityInfo    = report.SeverityInfo
)

// LinterName is the FromLinter value of every issue Lint reports.
const LinterName = "phxlint"

// Issue messages.
const (
	IssueUnknownClass  = "unknown class %q"
	IssueConflict      = "class %q is overridden by %q"
	IssueDuplicate     = "duplicate class %q"
	IssueBadBreakpoint = "breakpoint %q in %q is not one of sm, md, lg"
)
