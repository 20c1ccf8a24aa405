package phoenix

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sahilm/fuzzy"

	"github.com/phoenix-ui/phoenix/internal/report"
	"github.com/phoenix-ui/phoenix/internal/stylesheet"
	"github.com/phoenix-ui/phoenix/merge"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/ui"
)

// LintConfig holds linting configuration.
type LintConfig struct {
	ScanPaths   []string // doublestar patterns, e.g. "internal/**/*.templ"
	Stylesheets []string // compiled CSS whose classes count as known
	Allow       []string // extra known classes; may contain doublestar wildcards
	Verbose     bool

	MaxIssuesPerLinter int // 0 = unlimited
	MaxSameIssues      int // 0 = unlimited
	PrintIssuedLines   bool
	PrintLinterName    bool
	UseColors          bool
}

// LintResult contains the issues and statistics of one run.
type LintResult struct {
	Issues         []Issue
	Stats          report.Stats
	TopUnknown     []report.Frequency // most frequent unknown classes
	TruncatedCount int                // issues removed by the limits
	Warnings       []string
}

const topUnknownLimit = 10

// breakpointLike matches modifiers that select a viewport width.
var breakpointLike = regexp.MustCompile(`^(\d*x[sl]|sm|md|lg|min-.+|max-.+)$`)

// Lint scans config.ScanPaths and reports unknown design-system classes,
// conflicting classes within one literal, and breakpoints outside
// sm, md, lg.
func Lint(config LintConfig) (*LintResult, error) {
	return LintContext(context.Background(), config)
}

// LintContext is Lint with a context for rendering the vocabulary.
func LintContext(ctx context.Context, config LintConfig) (*LintResult, error) {
	l, err := newLinter(ctx, config)
	if err != nil {
		return nil, err
	}

	refs, scanStats, err := ScanFiles(config.ScanPaths, config.Verbose)
	if err != nil {
		return nil, fmt.Errorf("scan files: %w", err)
	}
	if scanStats.FilesScanned == 0 {
		l.warnings = append(l.warnings, fmt.Sprintf("no files matched %s", strings.Join(config.ScanPaths, ", ")))
	}

	result := l.analyze(refs)
	result.Stats.FilesScanned = scanStats.FilesScanned

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}
	return result, nil
}

type linter struct {
	merger   *merge.Merger
	known    map[string]bool
	bases    []string // known classes without modifiers, for suggestions
	allow    []string // wildcard allow patterns
	warnings []string
}

// newLinter builds the vocabulary: lookup tables, catalog classes,
// configured stylesheets and the allow list.
func newLinter(ctx context.Context, config LintConfig) (*linter, error) {
	vocab, err := ui.Vocabulary(ctx)
	if err != nil {
		return nil, fmt.Errorf("build vocabulary: %w", err)
	}

	l := &linter{
		merger: merge.NewMerger(),
		known:  make(map[string]bool, len(vocab)),
	}
	for _, c := range vocab {
		l.known[c] = true
	}

	for _, path := range config.Stylesheets {
		if err := l.loadStylesheet(path); err != nil {
			return nil, err
		}
	}

	for _, a := range config.Allow {
		if strings.ContainsAny(a, "*?[{") {
			if !doublestar.ValidatePattern(a) {
				return nil, fmt.Errorf("invalid allow pattern %q", a)
			}
			l.allow = append(l.allow, a)
			continue
		}
		l.known[a] = true
	}

	seen := make(map[string]bool)
	for c := range l.known {
		b := base(c)
		if strings.HasPrefix(b, style.ClassPrefix) && !seen[b] {
			seen[b] = true
			l.bases = append(l.bases, b)
		}
	}
	sort.Strings(l.bases)
	return l, nil
}

// loadStylesheet adds the classes of a compiled stylesheet to the
// vocabulary and to the merger.
func (l *linter) loadStylesheet(path string) error {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load stylesheet: %w", err)
	}
	rules := stylesheet.Parse(string(content), path)
	if len(rules) == 0 {
		l.warnings = append(l.warnings, fmt.Sprintf("stylesheet %s defines no classes", path))
	}
	for _, r := range rules {
		l.known[r.Class] = true
	}
	return l.merger.LoadStylesheet(bytes.NewReader(content))
}

// base drops every modifier except the class prefix and the important
// marker: "md:ui:hover:!p-2" becomes "ui:p-2".
func base(cls string) string {
	mods, utility, _ := merge.Split(cls)
	for _, m := range mods {
		if m+":" == style.ClassPrefix {
			return style.ClassPrefix + utility
		}
	}
	return utility
}

func isDesignClass(cls string) bool {
	mods, _, _ := merge.Split(cls)
	for _, m := range mods {
		if m+":" == style.ClassPrefix {
			return true
		}
	}
	return false
}

// Known reports whether cls is in the vocabulary, either as written or
// with its variants removed.
func (l *linter) Known(cls string) bool {
	if l.known[cls] || l.known[base(cls)] {
		return true
	}
	for _, p := range l.allow {
		if ok, _ := doublestar.Match(p, cls); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, base(cls)); ok {
			return true
		}
	}
	return false
}

// suggest returns the closest known class for an unknown one, keeping its
// modifiers.
func (l *linter) suggest(cls string) string {
	b := base(cls)
	matches := fuzzy.Find(b, l.bases)
	if len(matches) == 0 {
		return ""
	}
	best := matches[0].Str
	if best == b {
		return ""
	}
	_, utility, _ := merge.Split(cls)
	i := strings.LastIndex(cls, utility)
	return cls[:i] + strings.TrimPrefix(best, style.ClassPrefix) + cls[i+len(utility):]
}

// badBreakpoint returns the first breakpoint-like modifier of cls that is
// not a design-system breakpoint.
func badBreakpoint(cls string) (string, bool) {
	mods, _, _ := merge.Split(cls)
	for _, m := range mods {
		if breakpointLike.MatchString(m) && !style.Breakpoint(m).Valid() {
			return m, true
		}
	}
	return "", false
}

func (l *linter) analyze(refs []ClassReference) *LintResult {
	result := &LintResult{Warnings: l.warnings}
	freq := make(map[string]int)
	suggestions := make(map[string]string)

	for _, ref := range refs {
		tokens := strings.Fields(ref.Value)
		for _, tok := range tokens {
			if !isDesignClass(tok) {
				continue
			}
			result.Stats.ClassesFound++

			if bp, bad := badBreakpoint(tok); bad {
				result.Stats.Breakpoints++
				result.Issues = append(result.Issues, l.issue(ref, tok, SeverityError,
					fmt.Sprintf(IssueBadBreakpoint, bp, tok), nil))
				continue
			}

			if l.Known(tok) {
				result.Stats.KnownClasses++
				continue
			}

			result.Stats.Unknown++
			freq[tok]++
			s, ok := suggestions[tok]
			if !ok {
				s = l.suggest(tok)
				suggestions[tok] = s
			}
			var repl *Replacement
			if s != "" {
				repl = &Replacement{NewText: s, InlineLength: len(tok)}
			}
			result.Issues = append(result.Issues, l.issue(ref, tok, SeverityError,
				fmt.Sprintf(IssueUnknownClass, tok), repl))
		}

		conflicts := l.merger.Conflicts(ref.Value)
		if len(conflicts) == 0 {
			continue
		}
		merged := l.merger.Merge(ref.Value)
		for _, c := range conflicts {
			text := fmt.Sprintf(IssueConflict, c.Dropped, c.Winner)
			if c.Dropped == c.Winner {
				text = fmt.Sprintf(IssueDuplicate, c.Dropped)
			}
			result.Stats.Conflicts++
			result.Issues = append(result.Issues, l.issue(ref, c.Dropped, SeverityWarning, text,
				&Replacement{NewText: merged, InlineLength: len(ref.Value)}))
		}
	}

	result.Stats.VocabularySize = len(l.known)
	if result.Stats.ClassesFound > 0 {
		result.Stats.KnownPercent = float64(result.Stats.KnownClasses) / float64(result.Stats.ClassesFound) * 100
	}
	result.TopUnknown = topUnknown(freq, suggestions, topUnknownLimit)
	return result
}

// issue points at the first occurrence of token within the literal.
func (l *linter) issue(ref ClassReference, token, severity, text string, repl *Replacement) Issue {
	col := ref.Location.Column
	if i := indexToken(ref.Value, token); i >= 0 {
		col += i
	}
	return Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{ref.Location.Text},
		Pos: IssuePos{
			Filename: ref.Location.File,
			Line:     ref.Location.Line,
			Column:   col,
		},
		Replacement: repl,
	}
}

// indexToken finds token as a whole whitespace-separated field of s.
func indexToken(s, token string) int {
	from := 0
	for {
		i := strings.Index(s[from:], token)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(token)
		if (i == 0 || isSpace(s[i-1])) && (end == len(s) || isSpace(s[end])) {
			return i
		}
		from = i + 1
	}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' }

func topUnknown(freq map[string]int, suggestions map[string]string, limit int) []report.Frequency {
	out := make([]report.Frequency, 0, len(freq))
	for cls, n := range freq {
		out = append(out, report.Frequency{Class: cls, Occurrences: n, Suggestion: suggestions[cls]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		return out[i].Class < out[j].Class
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// limitIssues applies max-issues-per-linter and max-same-issues.
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		var kept []Issue
		for _, issue := range issues {
			if perLinter[issue.FromLinter] < config.MaxIssuesPerLinter {
				kept = append(kept, issue)
				perLinter[issue.FromLinter]++
			}
		}
		issues = kept
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears.
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue
	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}
	return filtered
}
