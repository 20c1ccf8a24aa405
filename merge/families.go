package merge

import (
	"strconv"
	"strings"
)

// validator reports whether a utility value belongs to a family.
type validator func(value string, th *themeSets) bool

type familyRule struct {
	family string
	valid  validator
}

func isArbitrary(v string) bool {
	return (strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]")) ||
		(strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")"))
}

func anyValue(v string, _ *themeSets) bool { return v != "" }

func isNumber(v string, _ *themeSets) bool {
	if isArbitrary(v) {
		return true
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func isLength(v string, th *themeSets) bool {
	return v == "px" || isNumber(v, th)
}

func oneOf(values ...string) validator {
	set := setOf(values, nil)
	return func(v string, _ *themeSets) bool { return set[v] }
}

// withoutPostfix drops a "/<modifier>" suffix: "lg/7" -> "lg".
func withoutPostfix(v string) string {
	if isArbitrary(v) {
		return v
	}
	if i := strings.LastIndexByte(v, '/'); i > 0 {
		return v[:i]
	}
	return v
}

func isTextSize(v string, th *themeSets) bool {
	v = withoutPostfix(v)
	return th.textSizes[v] || strings.HasPrefix(v, "[length:") || (isArbitrary(v) && strings.ContainsAny(v, "0123456789"))
}

func isFontFamily(v string, th *themeSets) bool { return th.fontFamilies[v] || isArbitrary(v) }
func isRadius(v string, th *themeSets) bool     { return th.radii[v] || isArbitrary(v) }
func isShadow(v string, th *themeSets) bool     { return th.shadows[v] || isArbitrary(v) }

var isFontWeight = func() validator {
	names := oneOf("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")
	return func(v string, th *themeSets) bool {
		return names(v, th) || isNumber(v, th)
	}
}()

// keywordFamilies maps complete utilities to their family.
var keywordFamilies = func() map[string]string {
	groups := map[string][]string{
		"display":         {"block", "inline-block", "inline", "flex", "inline-flex", "grid", "inline-grid", "hidden", "contents", "table", "flow-root", "list-item"},
		"position":        {"static", "fixed", "absolute", "relative", "sticky"},
		"visibility":      {"visible", "invisible", "collapse"},
		"flex-direction":  {"flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse"},
		"flex-wrap":       {"flex-wrap", "flex-wrap-reverse", "flex-nowrap"},
		"flex":            {"flex-1", "flex-auto", "flex-initial", "flex-none"},
		"text-transform":  {"uppercase", "lowercase", "capitalize", "normal-case"},
		"text-decoration": {"underline", "overline", "line-through", "no-underline"},
		"text-overflow":   {"truncate", "text-ellipsis", "text-clip"},
		"font-style":      {"italic", "not-italic"},
		"sr":              {"sr-only", "not-sr-only"},
		"pointer-events":  {"pointer-events-none", "pointer-events-auto"},
		"select":          {"select-none", "select-text", "select-all", "select-auto"},
		"box-sizing":      {"box-border", "box-content"},
		"border-w":        {"border"},
		"rounded":         {"rounded"},
		"shadow":          {"shadow"},
		"ring-w":          {"ring"},
		"outline-w":       {"outline"},
		"shrink":          {"shrink"},
		"grow":            {"grow"},
		"transition":      {"transition"},
	}
	m := make(map[string]string)
	for family, utilities := range groups {
		for _, u := range utilities {
			m[u] = family
		}
	}
	return m
}()

// prefixFamilies maps a utility prefix to candidate families, tried in order.
var prefixFamilies = func() map[string][]familyRule {
	m := map[string][]familyRule{
		"text": {
			{"text-align", oneOf("left", "center", "right", "justify", "start", "end")},
			{"font-size", isTextSize},
			{"text-color", anyValue},
		},
		"font": {
			{"font-weight", isFontWeight},
			{"font-family", isFontFamily},
		},
		"bg": {
			{"bg-size", oneOf("auto", "cover", "contain")},
			{"bg-attachment", oneOf("fixed", "local", "scroll")},
			{"bg-repeat", oneOf("repeat", "no-repeat", "repeat-x", "repeat-y", "repeat-round", "repeat-space")},
			{"bg-image", oneOf("none")},
			{"bg-color", anyValue},
		},
		"border": {
			{"border-style", oneOf("solid", "dashed", "dotted", "double", "hidden", "none")},
			{"border-w", isLength},
			{"border-color", anyValue},
		},
		"shadow": {
			{"shadow", isShadow},
			{"shadow-color", anyValue},
		},
		"outline": {
			{"outline-style", oneOf("none", "solid", "dashed", "dotted", "double", "hidden")},
			{"outline-w", isLength},
			{"outline-color", anyValue},
		},
		"ring": {
			{"ring-w", isLength},
			{"ring-color", anyValue},
		},
		"ring-offset": {
			{"ring-offset-w", isLength},
			{"ring-offset-color", anyValue},
		},
		"rounded":  {{"rounded", isRadius}},
		"opacity":  {{"opacity", isNumber}},
		"grow":     {{"grow", isNumber}},
		"shrink":   {{"shrink", isNumber}},
		"overflow": {{"overflow", oneOf("auto", "hidden", "clip", "visible", "scroll")}},
		"items":    {{"align-items", oneOf("start", "end", "center", "baseline", "stretch")}},
		"justify":  {{"justify-content", oneOf("normal", "start", "end", "center", "between", "around", "evenly", "stretch")}},
		"self":     {{"align-self", oneOf("auto", "start", "end", "center", "stretch", "baseline")}},
	}

	same := func(family string, v validator) {
		m[family] = append(m[family], familyRule{family, v})
	}
	for _, p := range []string{"p", "px", "py", "ps", "pe", "pt", "pr", "pb", "pl", "m", "mx", "my", "ms", "me", "mt", "mr", "mb", "ml"} {
		same(p, anyValue)
	}
	for _, p := range []string{
		"gap", "gap-x", "gap-y",
		"w", "h", "size", "min-w", "min-h", "max-w", "max-h",
		"inset", "inset-x", "inset-y", "top", "right", "bottom", "left",
		"z", "order", "cursor", "basis", "appearance", "accent",
		"overflow-x", "overflow-y",
		"scale", "scale-x", "scale-y", "rotate", "translate-x", "translate-y",
		"col-start", "col-end", "col-span", "row-start", "row-end", "row-span",
		"grid-cols", "grid-rows", "place-items", "place-content", "place-self",
		"tracking", "leading", "whitespace", "line-clamp", "aspect",
		"duration", "ease", "delay", "transition", "outline-offset",
		"from", "via", "to",
	} {
		same(p, anyValue)
	}
	for _, p := range []string{"bg-linear", "bg-radial", "bg-conic", "bg-gradient"} {
		m[p] = []familyRule{{"bg-image", anyValue}}
	}
	for _, side := range []string{"x", "y", "s", "e", "t", "r", "b", "l"} {
		m["border-"+side] = []familyRule{
			{"border-w-" + side, isLength},
			{"border-color-" + side, anyValue},
		}
	}
	for _, corner := range []string{"s", "e", "t", "r", "b", "l", "tl", "tr", "br", "bl"} {
		same("rounded-"+corner, isRadius)
	}
	return m
}()

// conflictingFamilies lists, for each family, the narrower families a
// later class of that family overrides. A narrower class never overrides
// the wider one: "m-4 mx-2" keeps both, "mx-2 m-4" keeps only "m-4".
var conflictingFamilies = map[string][]string{
	"p":              {"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"},
	"px":             {"pr", "pl"},
	"py":             {"pt", "pb"},
	"m":              {"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"},
	"mx":             {"mr", "ml"},
	"my":             {"mt", "mb"},
	"gap":            {"gap-x", "gap-y"},
	"inset":          {"inset-x", "inset-y", "top", "right", "bottom", "left"},
	"inset-x":        {"right", "left"},
	"inset-y":        {"top", "bottom"},
	"size":           {"w", "h"},
	"overflow":       {"overflow-x", "overflow-y"},
	"font-size":      {"leading"},
	"scale":          {"scale-x", "scale-y"},
	"rounded":        {"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
	"rounded-t":      {"rounded-tl", "rounded-tr"},
	"rounded-r":      {"rounded-tr", "rounded-br"},
	"rounded-b":      {"rounded-br", "rounded-bl"},
	"rounded-l":      {"rounded-tl", "rounded-bl"},
	"border-w":       {"border-w-x", "border-w-y", "border-w-s", "border-w-e", "border-w-t", "border-w-r", "border-w-b", "border-w-l"},
	"border-w-x":     {"border-w-r", "border-w-l"},
	"border-w-y":     {"border-w-t", "border-w-b"},
	"border-color":   {"border-color-x", "border-color-y", "border-color-s", "border-color-e", "border-color-t", "border-color-r", "border-color-b", "border-color-l"},
	"border-color-x": {"border-color-r", "border-color-l"},
	"border-color-y": {"border-color-t", "border-color-b"},
}

// familyOf classifies a bare utility (no modifiers, no important marker).
func familyOf(utility string, th *themeSets) (string, bool) {
	utility = strings.TrimPrefix(utility, "-")
	if utility == "" {
		return "", false
	}

	// arbitrary property: [mask-type:luminance]
	if strings.HasPrefix(utility, "[") && strings.HasSuffix(utility, "]") {
		if i := strings.IndexByte(utility, ':'); i > 1 {
			return "arbitrary:" + utility[1:i], true
		}
		return "", false
	}

	if family, ok := keywordFamilies[utility]; ok {
		return family, true
	}

	parts := strings.Split(utility, "-")
	for i := len(parts) - 1; i >= 1; i-- {
		prefix := strings.Join(parts[:i], "-")
		rules, ok := prefixFamilies[prefix]
		if !ok {
			continue
		}
		value := strings.Join(parts[i:], "-")
		for _, r := range rules {
			if r.valid(value, th) {
				return r.family, true
			}
		}
	}
	return "", false
}
