package merge

// Theme lists the design-system values that make otherwise ambiguous
// utilities resolvable. "text-h1" is a font size only because "h1" is a
// known text size; "text-ui-fg" falls through to text color.
type Theme struct {
	TextSizes    []string
	FontFamilies []string
	Radii        []string
	Shadows      []string
}

// DefaultTheme is the Phoenix design-system theme.
func DefaultTheme() Theme {
	return Theme{
		TextSizes: []string{
			"h1", "h2", "h3", "h4", "h5", "h6",
			"body-lg", "body-md", "body-sm",
			"caption",
			"label-md", "label-sm", "label-xs", "label-cta",
		},
		FontFamilies: []string{"heading", "body"},
		Radii:        []string{"ui-sm", "ui-md", "ui-lg"},
		Shadows:      []string{"ring"},
	}
}

type themeSets struct {
	textSizes    map[string]bool
	fontFamilies map[string]bool
	radii        map[string]bool
	shadows      map[string]bool
}

func setOf(base []string, extra []string) map[string]bool {
	m := make(map[string]bool, len(base)+len(extra))
	for _, v := range base {
		m[v] = true
	}
	for _, v := range extra {
		m[v] = true
	}
	return m
}

// sets merges t with the stock Tailwind scales.
func (t Theme) sets() themeSets {
	return themeSets{
		textSizes:    setOf([]string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl"}, t.TextSizes),
		fontFamilies: setOf([]string{"sans", "serif", "mono"}, t.FontFamilies),
		radii:        setOf([]string{"none", "xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl", "full"}, t.Radii),
		shadows:      setOf([]string{"2xs", "xs", "sm", "md", "lg", "xl", "2xl", "none", "inner"}, t.Shadows),
	}
}
