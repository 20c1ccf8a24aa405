package report

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter prints statistics, frequent unknown classes and warnings.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter returns a VerboseReporter writing to w.
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{w: w, useColors: useColors}
}

// PrintStatistics prints the run statistics.
func (r *VerboseReporter) PrintStatistics(s Stats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Class Linter Statistics", r.useColors))
	fmt.Fprintln(r.w, "-----------------------")

	fmt.Fprintf(r.w, "Files Scanned:       %d\n", s.FilesScanned)
	fmt.Fprintf(r.w, "Vocabulary:          %d\n", s.VocabularySize)
	fmt.Fprintf(r.w, "Design Classes:      %d\n", s.ClassesFound)
	fmt.Fprintf(r.w, "Known:               %d (%.1f%%)\n", s.KnownClasses, s.KnownPercent)
	fmt.Fprintf(r.w, "Unknown Classes:     %d\n", s.Unknown)
	fmt.Fprintf(r.w, "Conflicts:           %d\n", s.Conflicts)
	fmt.Fprintf(r.w, "Bad Breakpoints:     %d\n", s.Breakpoints)
}

// PrintCoverage prints the share of known classes as a bar.
func (r *VerboseReporter) PrintCoverage(s Stats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Vocabulary Coverage", r.useColors))
	fmt.Fprintln(r.w, "-------------------")
	fmt.Fprintln(r.w, ProgressBar(s.KnownPercent, 40))
}

// PrintTopUnknown lists the most frequent unknown classes.
func (r *VerboseReporter) PrintTopUnknown(top []Frequency) {
	if len(top) == 0 {
		return
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Most Frequent Unknown Classes", r.useColors))
	fmt.Fprintln(r.w, "-----------------------------")
	for i, f := range top {
		line := fmt.Sprintf("%d. %q - %d occurrence%s", i+1, f.Class, f.Occurrences, plural(f.Occurrences))
		if f.Suggestion != "" {
			line += " → did you mean " + f.Suggestion + "?"
		}
		fmt.Fprintln(r.w, line)
	}
}

// PrintWarnings prints non-fatal problems met while linting.
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")
	for _, w := range warnings {
		fmt.Fprintf(r.w, "• %s\n", w)
	}
}

// ProgressBar renders percent as a bar of width cells.
func ProgressBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	return fmt.Sprintf("[%s%s] %.1f%%",
		strings.Repeat("█", filled), strings.Repeat("░", width-filled), percent)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
