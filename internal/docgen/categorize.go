package docgen

import (
	"sort"
	"strings"

	"github.com/phoenix-ui/phoenix/merge"
)

// Category groups related utility families in the guides.
type Category string

// Categories in display order.
const (
	CategoryLayout     Category = "Layout"
	CategorySpacing    Category = "Spacing"
	CategoryTypography Category = "Typography"
	CategoryVisual     Category = "Visual"
	CategoryEffects    Category = "Effects"
	CategoryOther      Category = "Other"
)

var categoryOrder = []Category{
	CategoryLayout, CategorySpacing, CategoryTypography, CategoryVisual, CategoryEffects, CategoryOther,
}

// familyCategories maps merge families to categories. Families missing
// here fall back on prefix rules in categoryOf.
var familyCategories = map[string]Category{
	"display":         CategoryLayout,
	"position":        CategoryLayout,
	"visibility":      CategoryLayout,
	"flex":            CategoryLayout,
	"flex-direction":  CategoryLayout,
	"flex-wrap":       CategoryLayout,
	"grow":            CategoryLayout,
	"shrink":          CategoryLayout,
	"align-items":     CategoryLayout,
	"align-self":      CategoryLayout,
	"justify-content": CategoryLayout,
	"overflow":        CategoryLayout,
	"w":               CategoryLayout,
	"h":               CategoryLayout,
	"size":            CategoryLayout,
	"min-w":           CategoryLayout,
	"min-h":           CategoryLayout,
	"max-w":           CategoryLayout,
	"max-h":           CategoryLayout,
	"order":           CategoryLayout,
	"box-sizing":      CategoryLayout,
	"gap":             CategorySpacing,
	"gap-x":           CategorySpacing,
	"gap-y":           CategorySpacing,
	"font-size":       CategoryTypography,
	"font-weight":     CategoryTypography,
	"font-family":     CategoryTypography,
	"font-style":      CategoryTypography,
	"text-align":      CategoryTypography,
	"text-transform":  CategoryTypography,
	"text-decoration": CategoryTypography,
	"text-overflow":   CategoryTypography,
	"tracking":        CategoryTypography,
	"leading":         CategoryTypography,
	"whitespace":      CategoryTypography,
	"text-color":      CategoryVisual,
	"bg-color":        CategoryVisual,
	"bg-image":        CategoryVisual,
	"border-w":        CategoryVisual,
	"border-style":    CategoryVisual,
	"border-color":    CategoryVisual,
	"rounded":         CategoryVisual,
	"accent":          CategoryVisual,
	"from":            CategoryVisual,
	"via":             CategoryVisual,
	"to":              CategoryVisual,
	"shadow":          CategoryEffects,
	"shadow-color":    CategoryEffects,
	"ring-w":          CategoryEffects,
	"ring-color":      CategoryEffects,
	"opacity":         CategoryEffects,
	"outline-style":   CategoryEffects,
	"outline-w":       CategoryEffects,
	"outline-color":   CategoryEffects,
	"scale":           CategoryEffects,
	"transition":      CategoryEffects,
	"cursor":          CategoryEffects,
	"pointer-events":  CategoryEffects,
	"select":          CategoryEffects,
}

// categoryOf returns the category of a merge family.
func categoryOf(family string) Category {
	if c, ok := familyCategories[family]; ok {
		return c
	}
	switch {
	case family == "p" || family == "m" ||
		(len(family) == 2 && (family[0] == 'p' || family[0] == 'm')):
		return CategorySpacing
	case strings.HasPrefix(family, "border-"), strings.HasPrefix(family, "rounded-"):
		return CategoryVisual
	case strings.HasPrefix(family, "col-"), strings.HasPrefix(family, "row-"),
		strings.HasPrefix(family, "grid-"), strings.HasPrefix(family, "place-"),
		strings.HasPrefix(family, "inset"):
		return CategoryLayout
	}
	return CategoryOther
}

// CategoryClasses is one category and its classes, sorted.
type CategoryClasses struct {
	Category Category `json:"category"`
	Classes  []string `json:"classes"`
}

// Categorize sorts classes into categories using the merge family table.
// Classes without a family land in Other. Empty categories are omitted.
func Categorize(m *merge.Merger, classes []string) []CategoryClasses {
	groups := make(map[Category][]string)
	for _, cls := range classes {
		cat := CategoryOther
		if family, ok := m.Family(cls); ok {
			cat = categoryOf(family)
		}
		groups[cat] = append(groups[cat], cls)
	}

	var out []CategoryClasses
	for _, cat := range categoryOrder {
		if list := groups[cat]; len(list) > 0 {
			sort.Strings(list)
			out = append(out, CategoryClasses{Category: cat, Classes: list})
		}
	}
	return out
}
