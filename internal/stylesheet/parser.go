// Package stylesheet extracts class rules from compiled CSS so that custom
// design-system classes can take part in conflict merging and linting.
package stylesheet

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Rule is one class selector together with the declarations it sets.
type Rule struct {
	Class        string            // unescaped, e.g. "md:ui:p-2"
	Layer        string            // enclosing @layer, if any
	Properties   map[string]string // declarations of the plain (non pseudo) selector
	PseudoStates []string          // ":hover", ":focus" seen for this class
	SourceFile   string
}

// parserState maintains context while walking the token stream.
type parserState struct {
	currentLayer string
	rules        map[string]*Rule
	filename     string
}

// Parse parses CSS content and returns its class rules sorted by name.
func Parse(content, filename string) []*Rule {
	state := &parserState{
		rules:    make(map[string]*Rule),
		filename: filename,
	}

	lexer := css.NewLexer(parse.NewInputString(content))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		if tt == css.AtKeywordToken && string(text) == "@layer" {
			state.handleLayerDeclaration(lexer)
			continue
		}

		if tt == css.DelimToken && len(text) > 0 && text[0] == '.' {
			state.handleClassRule(lexer)
		}
	}

	out := make([]*Rule, 0, len(state.rules))
	for _, r := range state.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Class < out[j].Class })
	return out
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader, name string) ([]*Rule, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet %s: %w", name, err)
	}
	return Parse(string(content), name), nil
}

// ParseFile reads and parses a single CSS file.
func ParseFile(path string) ([]*Rule, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(string(content), path), nil
}

func (s *parserState) handleLayerDeclaration(lexer *css.Lexer) {
	var layerName string
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.IdentToken:
			layerName = string(text)
		case css.LeftBraceToken:
			// @layer name { ... }
			if layerName != "" {
				s.currentLayer = layerName
			}
			return
		case css.SemicolonToken:
			// @layer a, b;
			return
		}
	}
}

type selectorInfo struct {
	className    string
	pseudoStates []string
}

// handleClassRule is called after a '.' delimiter. It collects every class
// of the selector list up to the opening brace, then reads the block.
func (s *parserState) handleClassRule(lexer *css.Lexer) {
	tt, name := lexer.Next()
	if tt != css.IdentToken {
		return
	}

	selectors := []selectorInfo{{className: Unescape(string(name))}}
	current := 0

	for {
		tt, text := lexer.Next()
		switch {
		case tt == css.ErrorToken:
			return

		// compound selectors: .foo.bar
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			if tt2, name2 := lexer.Next(); tt2 == css.IdentToken {
				selectors = append(selectors, selectorInfo{className: Unescape(string(name2))})
				current = len(selectors) - 1
			}

		case tt == css.ColonToken:
			tt2, pseudo := lexer.Next()
			if tt2 == css.IdentToken {
				selectors[current].pseudoStates = append(selectors[current].pseudoStates, ":"+string(pseudo))
			} else if tt2 == css.FunctionToken {
				// :not(.x), :is(.y), :where(.z)
				selectors = append(selectors, s.functionalSelectors(lexer)...)
			}

		case tt == css.CommaToken:
			// next selector of the list
			for {
				tt2, data := lexer.Next()
				if tt2 == css.ErrorToken || tt2 == css.LeftBraceToken {
					return
				}
				if tt2 == css.DelimToken && len(data) > 0 && data[0] == '.' {
					if tt3, name3 := lexer.Next(); tt3 == css.IdentToken {
						selectors = append(selectors, selectorInfo{className: Unescape(string(name3))})
						current = len(selectors) - 1
						break
					}
				}
			}

		case tt == css.LeftBraceToken:
			s.apply(selectors, extractDeclarations(lexer))
			return
		}
	}
}

func (s *parserState) functionalSelectors(lexer *css.Lexer) []selectorInfo {
	var out []selectorInfo
	depth := 1
	for depth > 0 {
		tt, text := lexer.Next()
		switch {
		case tt == css.ErrorToken:
			return out
		case tt == css.LeftParenthesisToken || tt == css.FunctionToken:
			depth++
		case tt == css.RightParenthesisToken:
			depth--
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			if tt2, name := lexer.Next(); tt2 == css.IdentToken {
				// referenced classes exist but get no declarations of their own
				out = append(out, selectorInfo{className: Unescape(string(name)), pseudoStates: []string{":ref"}})
			}
		}
	}
	return out
}

func (s *parserState) apply(selectors []selectorInfo, properties map[string]string) {
	for _, sel := range selectors {
		rule, ok := s.rules[sel.className]
		if !ok {
			rule = &Rule{
				Class:      sel.className,
				Layer:      s.currentLayer,
				Properties: make(map[string]string),
				SourceFile: s.filename,
			}
			s.rules[sel.className] = rule
		}

		if len(sel.pseudoStates) > 0 {
			for _, ps := range sel.pseudoStates {
				if ps != ":ref" && !contains(rule.PseudoStates, ps) {
					rule.PseudoStates = append(rule.PseudoStates, ps)
				}
			}
			continue
		}
		for k, v := range properties {
			rule.Properties[k] = v
		}
	}
}

// extractDeclarations reads property: value pairs until the closing brace.
func extractDeclarations(lexer *css.Lexer) map[string]string {
	props := make(map[string]string)

	var currentProp string
	var currentVal []string
	depth := 0

	flush := func() {
		if currentProp != "" && len(currentVal) > 0 {
			props[currentProp] = strings.TrimSpace(strings.Join(currentVal, ""))
		}
		currentProp = ""
		currentVal = nil
	}

	for {
		tt, text := lexer.Next()
		switch {
		case tt == css.ErrorToken:
			flush()
			return props
		case tt == css.LeftBraceToken:
			// nested rule; its declarations are conditional, skip them
			depth++
			currentProp, currentVal = "", nil
		case tt == css.RightBraceToken:
			if depth == 0 {
				flush()
				return props
			}
			depth--
		case depth > 0:
		case tt == css.CommentToken:
		case tt == css.WhitespaceToken && len(currentVal) == 0:
		case tt == css.IdentToken && currentProp == "":
			currentProp = string(text)
		case tt == css.CustomPropertyNameToken && currentProp == "":
			currentProp = string(text)
		case tt == css.ColonToken && currentProp != "" && len(currentVal) == 0:
		case tt == css.SemicolonToken:
			flush()
		case currentProp != "":
			currentVal = append(currentVal, string(text))
		}
	}
}

// Unescape resolves CSS escapes in an identifier: "ui\:p-2" becomes "ui:p-2"
// and hex escapes like "\31 0" become "10".
func Unescape(ident string) string {
	if !strings.Contains(ident, `\`) {
		return ident
	}
	var b strings.Builder
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c != '\\' || i+1 >= len(ident) {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		for j < len(ident) && j-i <= 6 && isHex(ident[j]) {
			j++
		}
		if j == i+1 {
			b.WriteByte(ident[j])
			i = j
			continue
		}
		var r rune
		fmt.Sscanf(ident[i+1:j], "%x", &r)
		b.WriteRune(r)
		if j < len(ident) && ident[j] == ' ' {
			j++
		}
		i = j - 1
	}
	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func contains(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}

// Classes returns the class names of rules.
func Classes(rules []*Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Class
	}
	return out
}
