package docgen

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

var guideTemplate = template.Must(template.New("guide").Funcs(template.FuncMap{
	"code": func(s string) string { return "`" + s + "`" },
	"join": func(values []string) string {
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = "`" + v + "`"
		}
		return strings.Join(quoted, ", ")
	},
	"orDash": func(s string) string {
		if s == "" {
			return "-"
		}
		return "`" + s + "`"
	},
}).Parse(`# {{.Name}}

{{.Summary}}

## When to use
{{range .WhenToUse}}
- {{.}}
{{- else}}
_Describe when to reach for {{.Name}}._
{{- end}}

## Variants
{{if .Variants}}
| Variant | Values | Default |
|---|---|---|
{{- range .Variants}}
| {{code .Name}} | {{join .Values}} | {{orDash .Default}} |
{{- end}}
{{- else}}
{{.Name}} has no variants.
{{- end}}
{{- if .Compounds}}

{{.Compounds}} compound rule(s) add classes for specific combinations.
{{- end}}

{{- if .Categories}}

## Classes
{{range .Categories}}
- **{{.Category}}**: {{join .Classes}}
{{- end}}
{{- end}}

## Accessibility
{{range .Accessibility}}
- {{.}}
{{- else}}
_Document keyboard and screen reader behavior._
{{- end}}

## Examples

See [the story]({{.StoryLink}}) for every variant rendered.

## Notes

_Add usage notes here. This file is not regenerated unless overwrite is set._
`))

type guideData struct {
	Component
	StoryLink string
}

// WriteGuide writes the Markdown guide of c.
func WriteGuide(w io.Writer, c Component) error {
	data := guideData{Component: c, StoryLink: "../" + c.Story}
	if err := guideTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render guide %s: %w", c.Name, err)
	}
	return nil
}
