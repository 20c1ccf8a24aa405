// Package docgen renders component documentation: an HTML story gallery
// per component, an editable Markdown guide and a JSON manifest.
package docgen

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/phoenix-ui/phoenix/merge"
	"github.com/phoenix-ui/phoenix/ui"
	"github.com/phoenix-ui/phoenix/variant"
)

// ManifestVersion is bumped when the manifest layout changes.
const ManifestVersion = "1"

// Variant describes one variant group of a component.
type Variant struct {
	Name    string   `json:"name"`
	Values  []string `json:"values"`
	Default string   `json:"default,omitempty"`
}

// Component is the documentation model of one catalog entry.
type Component struct {
	Name          string            `json:"name"`
	Summary       string            `json:"summary"`
	WhenToUse     []string          `json:"whenToUse,omitempty"`
	Accessibility []string          `json:"accessibility,omitempty"`
	Base          string            `json:"base,omitempty"`
	Variants      []Variant         `json:"variants"`
	Compounds     int               `json:"compounds"`
	Classes       []string          `json:"classes"`
	Categories    []CategoryClasses `json:"categories,omitempty"`
	Story         string            `json:"story"`
	Guide         string            `json:"guide"`
}

// Manifest lists every documented component.
type Manifest struct {
	Version    string      `json:"version"`
	Components []Component `json:"components"`
}

// StoryPath and GuidePath are relative to the docs output directory.
func StoryPath(name string) string { return "stories/" + name + ".stories.html" }
func GuidePath(name string) string { return "guides/" + name + ".md" }

// NewComponent builds the documentation model of e.
func NewComponent(e ui.Entry) Component {
	c := Component{
		Name:          e.Name,
		Summary:       e.Summary,
		WhenToUse:     e.WhenToUse,
		Accessibility: e.Accessibility,
		Story:         StoryPath(e.Name),
		Guide:         GuidePath(e.Name),
	}
	if e.Variants == nil {
		return c
	}
	c.Base = e.Variants.Base
	c.Compounds = len(e.Variants.Compounds)
	c.Classes = e.Variants.ClassList()
	c.Categories = Categorize(merge.Default(), c.Classes)
	c.Variants = variants(e.Variants)
	return c
}

func variants(s *variant.Set) []Variant {
	out := make([]Variant, 0, len(s.Variants))
	for _, v := range s.Variants {
		out = append(out, Variant{
			Name:    v.Name,
			Values:  s.Values(v.Name),
			Default: s.Defaults[v.Name],
		})
	}
	return out
}

// WriteManifest writes m as indented JSON.
func WriteManifest(w io.Writer, m Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}
