// Package variant defines component variant sets and resolves them into
// class strings, optionally per breakpoint.
package variant

import (
	"fmt"
	"sort"
	"strings"
)

// Props is a partial selection of variant values by variant name. An empty
// value means "not selected".
type Props map[string]string

// With returns a copy of p with name set to value.
func (p Props) With(name, value string) Props {
	out := make(Props, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[name] = value
	return out
}

// Bool renders a boolean variant value.
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Option is one selectable value of a variant and the classes it adds.
type Option struct {
	Value string `json:"value"`
	Class string `json:"class"`
}

// Variant is a named group of options.
type Variant struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// Compound adds Class when every variant named in When has one of the
// listed values.
type Compound struct {
	When  map[string][]string `json:"when"`
	Class string              `json:"class"`
}

// Set is a component's variant definition: base classes, ordered variant
// groups, default values and compound variants.
type Set struct {
	Name      string     `json:"name"`
	Base      string     `json:"base,omitempty"`
	Variants  []Variant  `json:"variants"`
	Defaults  Props      `json:"defaults,omitempty"`
	Compounds []Compound `json:"compounds,omitempty"`
}

// Classes resolves p over the defaults: base, then each variant's option in
// definition order, then every matching compound. The result is not merged.
func (s *Set) Classes(p Props) string {
	resolved := make(Props, len(s.Defaults)+len(p))
	for k, v := range s.Defaults {
		resolved[k] = v
	}
	for k, v := range p {
		if v != "" {
			resolved[k] = v
		}
	}

	out := []string{s.Base}
	out = append(out, s.options(resolved)...)
	out = append(out, s.compounds(resolved)...)
	return join(out)
}

// Override resolves only what p names: no base classes and no defaults.
// Compounds apply when all of their variants are named in p. This is the
// form breakpoint overrides use, so they never re-emit defaults.
func (s *Set) Override(p Props) string {
	selected := make(Props, len(p))
	for k, v := range p {
		if v != "" {
			selected[k] = v
		}
	}
	out := s.options(selected)
	out = append(out, s.compounds(selected)...)
	return join(out)
}

func (s *Set) options(p Props) []string {
	var out []string
	for _, v := range s.Variants {
		value, ok := p[v.Name]
		if !ok {
			continue
		}
		for _, o := range v.Options {
			if o.Value == value {
				out = append(out, o.Class)
				break
			}
		}
	}
	return out
}

func (s *Set) compounds(p Props) []string {
	var out []string
	for _, c := range s.Compounds {
		if c.matches(p) {
			out = append(out, c.Class)
		}
	}
	return out
}

func (c Compound) matches(p Props) bool {
	for name, accepted := range c.When {
		value, ok := p[name]
		if !ok {
			return false
		}
		found := false
		for _, a := range accepted {
			if a == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Values lists the option values of the named variant.
func (s *Set) Values(name string) []string {
	for _, v := range s.Variants {
		if v.Name == name {
			out := make([]string, len(v.Options))
			for i, o := range v.Options {
				out[i] = o.Value
			}
			return out
		}
	}
	return nil
}

// Validate reports the first selection in p that names an unknown variant
// or value.
func (s *Set) Validate(p Props) error {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, name := range names {
		value := p[name]
		if value == "" {
			continue
		}
		values := s.Values(name)
		if values == nil {
			return fmt.Errorf("%s: unknown variant %q", s.Name, name)
		}
		ok := false
		for _, v := range values {
			if v == value {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%s: variant %q has no value %q (want one of %s)",
				s.Name, name, value, strings.Join(values, ", "))
		}
	}
	return nil
}

// ClassList returns every distinct class the set can emit, sorted.
func (s *Set) ClassList() []string {
	seen := make(map[string]bool)
	add := func(classes string) {
		for _, c := range strings.Fields(classes) {
			seen[c] = true
		}
	}
	add(s.Base)
	for _, v := range s.Variants {
		for _, o := range v.Options {
			add(o.Class)
		}
	}
	for _, c := range s.Compounds {
		add(c.Class)
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func join(parts []string) string {
	var out []string
	for _, p := range parts {
		out = append(out, strings.Fields(p)...)
	}
	return strings.Join(out, " ")
}
