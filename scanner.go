package phoenix

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassReference is one class literal found in source.
type ClassReference struct {
	Value    string       // the literal as written: "ui:p-2 md:ui:p-4"
	Location FileLocation // position of the literal's first character
	Source   string       // which pattern found it
}

// FileLocation tracks where a class literal was found.
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based
	Text   string // the full line
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // files matched by the glob patterns
	FilesScanned    int
	FilesSkipped    int // generated or gitignored
}

type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// single-literal patterns; the first group is the class list
	patterns = []scanPattern{
		{name: "class attribute", regex: regexp.MustCompile(`class="([^"]*)"`)},
		{name: "class expression", regex: regexp.MustCompile(`class=\{\s*"([^"]*)"`)},
		{name: "Class field", regex: regexp.MustCompile(`\bClass:\s*"([^"]*)"`)},
	}

	// call patterns; the first group is the argument list
	callPatterns = []struct {
		name      string
		regex     *regexp.Regexp
		firstOnly bool
	}{
		{name: "templ.Classes", regex: regexp.MustCompile(`templ\.Classes\(([^)]*)\)`)},
		{name: "templ.KV", regex: regexp.MustCompile(`templ\.KV\(([^)]*)\)`), firstOnly: true},
		{name: "merge.CN", regex: regexp.MustCompile(`merge\.CN\(([^)]*)\)`)},
	}

	commentPattern = regexp.MustCompile(`^\s*//`)

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated reports whether path is a templ-generated Go file.
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads ./.gitignore once. A missing file is fine.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile excludes templ-generated files, and gitignored files for
// relative paths. Absolute paths are outside the project's ignore rules.
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanFiles finds class literals in every file matching scanPatterns.
// Unreadable files are skipped.
func ScanFiles(scanPatterns []string, verbose bool) ([]ClassReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	if verbose && stats.FilesSkipped > 0 {
		fmt.Printf("✓ Scanned %d files (skipped %d generated/ignored files)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			continue
		}
		allRefs = append(allRefs, refs...)
	}
	return allRefs, stats, nil
}

// expandGlobPatterns expands globs to files, deduplicated, in match order.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("expand %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}
	return allFiles, stats, nil
}

func scanFile(filePath string) ([]ClassReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}

// extractClassesFromLine returns the class literals on one line, ordered by
// column. Call arguments are handled by extractFromCall; a literal matched
// by both a call and a plain pattern is reported once.
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []ClassReference
	taken := make(map[int]bool)
	add := func(value string, offset int, source string) {
		if taken[offset] || strings.TrimSpace(value) == "" {
			return
		}
		taken[offset] = true
		refs = append(refs, ClassReference{
			Value:    value,
			Location: FileLocation{File: file, Line: lineNum, Column: offset + 1, Text: line},
			Source:   source,
		})
	}

	for _, cp := range callPatterns {
		for _, m := range cp.regex.FindAllStringSubmatchIndex(line, -1) {
			args := splitTemplArgs(line[m[2]:m[3]], m[2])
			if cp.firstOnly && len(args) > 1 {
				args = args[:1]
			}
			for _, a := range args {
				if value, offset, ok := stringLiteral(a); ok {
					add(value, offset, cp.name)
				}
			}
		}
	}

	for _, p := range patterns {
		for _, m := range p.regex.FindAllStringSubmatchIndex(line, -1) {
			add(line[m[2]:m[3]], m[2], p.name)
		}
	}

	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Location.Column < refs[j].Location.Column })
	return refs
}

// templArg is one call argument and its byte offset in the line.
type templArg struct {
	text   string
	offset int
}

// splitTemplArgs splits s on top-level commas. base is the offset of s in
// the line.
func splitTemplArgs(s string, base int) []templArg {
	var parts []templArg
	depth := 0
	inString := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"' && (i == 0 || s[i-1] != '\\'):
			inString = !inString
		case inString:
		case c == '(' || c == '{' || c == '[':
			depth++
		case c == ')' || c == '}' || c == ']':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, templArg{text: s[start:i], offset: base + start})
			start = i + 1
		}
	}
	if start < len(s) {
		parts = append(parts, templArg{text: s[start:], offset: base + start})
	}
	return parts
}

// stringLiteral returns the contents of a double-quoted argument and the
// offset of its first character.
func stringLiteral(a templArg) (string, int, bool) {
	trimmed := strings.TrimLeft(a.text, " \t")
	lead := len(a.text) - len(trimmed)
	trimmed = strings.TrimRight(trimmed, " \t")
	if len(trimmed) < 2 || trimmed[0] != '"' || trimmed[len(trimmed)-1] != '"' {
		return "", 0, false
	}
	return trimmed[1 : len(trimmed)-1], a.offset + lead + 1, true
}

// GetRelativePath returns path relative to the working directory when
// possible.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
