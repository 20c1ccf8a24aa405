package merge

import (
	"fmt"
	"io"
	"sort"

	"github.com/phoenix-ui/phoenix/internal/stylesheet"
)

var sides = []string{"top", "right", "bottom", "left"}

// longhands expands shorthand properties so that "padding" and
// "padding-inline" are compared on the sides they actually set.
var longhands = func() map[string][]string {
	m := map[string][]string{
		"gap":             {"row-gap", "column-gap"},
		"overflow":        {"overflow-x", "overflow-y"},
		"outline":         {"outline-width", "outline-style", "outline-color"},
		"flex":            {"flex-grow", "flex-shrink", "flex-basis"},
		"place-items":     {"align-items", "justify-items"},
		"place-content":   {"align-content", "justify-content"},
		"text-decoration": {"text-decoration-line", "text-decoration-style", "text-decoration-color"},
		"inset-inline":    {"left", "right"},
		"inset-block":     {"top", "bottom"},
		"inset":           {"top", "right", "bottom", "left"},
		"border-radius":   {"border-top-left-radius", "border-top-right-radius", "border-bottom-right-radius", "border-bottom-left-radius"},
		"background":      {"background-color", "background-image", "background-size", "background-repeat", "background-position", "background-attachment"},
		"padding-inline":  {"padding-left", "padding-right"},
		"padding-block":   {"padding-top", "padding-bottom"},
		"margin-inline":   {"margin-left", "margin-right"},
		"margin-block":    {"margin-top", "margin-bottom"},
	}
	for _, box := range []string{"padding", "margin", "scroll-margin", "scroll-padding"} {
		for _, s := range sides {
			m[box] = append(m[box], box+"-"+s)
		}
	}
	for _, part := range []string{"width", "style", "color"} {
		for _, s := range sides {
			m["border-"+part] = append(m["border-"+part], "border-"+s+"-"+part)
			m["border"] = append(m["border"], "border-"+s+"-"+part)
			m["border-"+s] = append(m["border-"+s], "border-"+s+"-"+part)
		}
		for _, s := range []string{"left", "right"} {
			m["border-inline"] = append(m["border-inline"], "border-"+s+"-"+part)
		}
		for _, s := range []string{"top", "bottom"} {
			m["border-block"] = append(m["border-block"], "border-"+s+"-"+part)
		}
	}
	return m
}()

func expand(props map[string]string) []string {
	seen := make(map[string]bool)
	for p := range props {
		if full, ok := longhands[p]; ok {
			for _, l := range full {
				seen[l] = true
			}
			continue
		}
		seen[p] = true
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// LoadStylesheet registers the class rules of a compiled stylesheet.
// A registered class is dropped when a later class shares its family or
// when later registered classes set every property it sets. Rules that only
// apply under a pseudo state are ignored. Loading clears the result cache.
func (m *Merger) LoadStylesheet(r io.Reader) error {
	rules, err := stylesheet.ParseReader(r, "stylesheet")
	if err != nil {
		return fmt.Errorf("load stylesheet: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rule := range rules {
		if len(rule.Properties) == 0 {
			continue
		}
		m.sheet[rule.Class] = expand(rule.Properties)
	}
	if m.cache != nil {
		m.cache.Clear()
	}
	return nil
}
