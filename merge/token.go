package merge

import (
	"sort"
	"strings"

	"github.com/phoenix-ui/phoenix/style"
)

var classPrefix = strings.TrimSuffix(style.ClassPrefix, ":")

// token is a class split into its parts: "md:ui:hover:p-2!" has modifiers
// md, ui, hover, the important marker and the utility "p-2".
type token struct {
	raw       string
	modifiers []string
	important bool
	utility   string
}

// parseToken splits on ':' outside brackets and parentheses so arbitrary
// values such as "bg-[url(a:b)]" stay intact.
func parseToken(raw string) token {
	t := token{raw: raw}
	depth := 0
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				t.modifiers = append(t.modifiers, raw[start:i])
				start = i + 1
			}
		}
	}
	u := raw[start:]
	if strings.HasPrefix(u, "!") {
		t.important = true
		u = u[1:]
	} else if strings.HasSuffix(u, "!") {
		t.important = true
		u = u[:len(u)-1]
	}
	t.utility = u
	return t
}

// bare is the class without its important marker, as it appears in CSS.
func (t token) bare() string {
	if len(t.modifiers) == 0 {
		return t.utility
	}
	return strings.Join(t.modifiers, ":") + ":" + t.utility
}

// scope is the conflict-key prefix: variant modifiers in sorted order, so
// "md:hover:" and "hover:md:" land in the same scope, plus the important
// marker. The class prefix is not a variant and is left out.
func (t token) scope() string {
	mods := make([]string, 0, len(t.modifiers))
	for _, m := range t.modifiers {
		if m != classPrefix {
			mods = append(mods, m)
		}
	}
	sort.Strings(mods)
	s := strings.Join(mods, ":") + "|"
	if t.important {
		s += "!"
	}
	return s
}

// Split breaks cls into its modifiers and utility. Important reports a
// leading or trailing "!" on the utility.
func Split(cls string) (modifiers []string, utility string, important bool) {
	t := parseToken(cls)
	return t.modifiers, t.utility, t.important
}
