package ui

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/merge"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

// Typography is a Text variant.
type Typography string

const (
	H1      Typography = "h1"
	H2      Typography = "h2"
	H3      Typography = "h3"
	H4      Typography = "h4"
	H5      Typography = "h5"
	H6      Typography = "h6"
	BodyLG  Typography = "body-lg"
	BodyMD  Typography = "body-md"
	BodySM  Typography = "body-sm"
	Caption Typography = "caption"
	LabelMD Typography = "label-md"
	LabelSM Typography = "label-sm"
	LabelXS Typography = "label-xs"
)

var textVariants = &variant.Set{
	Name: "Text",
	Variants: []variant.Variant{
		{Name: "variant", Options: options(
			"h1", "ui:font-heading ui:text-h1 ui:font-bold ui:tracking-tight ui:leading-heading",
			"h2", "ui:font-heading ui:text-h2 ui:font-bold ui:tracking-tight ui:leading-heading",
			"h3", "ui:font-heading ui:text-h3 ui:font-bold ui:tracking-tight ui:leading-heading",
			"h4", "ui:font-heading ui:text-h4 ui:font-bold ui:tracking-tight ui:leading-heading",
			"h5", "ui:font-heading ui:text-h5 ui:font-medium ui:leading-heading",
			"h6", "ui:font-heading ui:text-h6 ui:font-medium ui:leading-heading",
			"body-lg", "ui:font-body ui:text-body-lg ui:font-normal ui:leading-body",
			"body-md", "ui:font-body ui:text-body-md ui:font-normal ui:leading-body",
			"body-sm", "ui:font-body ui:text-body-sm ui:font-normal ui:leading-body",
			"caption", "ui:font-body ui:text-caption ui:font-normal ui:leading-caption ui:tracking-caption",
			"label-md", "ui:font-body ui:text-label-md ui:font-medium ui:leading-body",
			"label-sm", "ui:font-body ui:text-label-sm ui:font-medium ui:leading-body",
			"label-xs", "ui:font-body ui:text-label-xs ui:font-medium ui:leading-body",
		)},
		{Name: "tone", Options: options(
			"default", "ui:text-ui-fg",
			"muted", "ui:text-ui-fg-muted",
			"primary", "ui:text-ui-primary",
			"secondary", "ui:text-ui-secondary",
			"success", "ui:text-ui-secondary",
			"accent", "ui:text-ui-accent",
			"warning", "ui:text-ui-accent",
			"inverse", "ui:text-ui-bg",
		)},
		{Name: "truncate", Options: options("true", "ui:truncate")},
		{Name: "uppercase", Options: options("true", "ui:uppercase")},
	},
	Defaults: variant.Props{"variant": "body-md", "tone": "default"},
}

// TextSpec is the part of Text that can be overridden per breakpoint.
type TextSpec struct {
	Variant   Typography
	Tone      Tone
	Truncate  bool
	Uppercase bool
}

func (s TextSpec) props() variant.Props {
	p := variant.Props{"variant": string(s.Variant), "tone": string(s.Tone)}
	if s.Truncate {
		p["truncate"] = "true"
	}
	if s.Uppercase {
		p["uppercase"] = "true"
	}
	return p
}

// TextProps configures Text. As overrides the tag chosen from the variant.
type TextProps struct {
	TextSpec
	As         string
	Responsive style.Responsive[TextSpec]
	Class      string
	Attrs      templ.Attributes
}

func (p TextProps) class() string {
	return merge.CN(variant.Class(textVariants, p.props(), p.Responsive,
		func(v TextSpec, _ variant.Props) variant.Props { return v.props() }), p.Class)
}

func (p TextProps) tag() string {
	if p.As != "" {
		return p.As
	}
	return tagFor(p.Variant)
}

func tagFor(v Typography) string {
	switch {
	case v == "":
		return "p"
	case v[0] == 'h':
		return string(v)
	case strings.HasPrefix(string(v), "label-"):
		return "label"
	case v == Caption:
		return "span"
	}
	return "p"
}

// Text renders typography.
func Text(p TextProps, children ...templ.Component) templ.Component {
	return markup.El(p.tag(), withClass(p.class(), p.Attrs), children...)
}

// Textf is Text with a single escaped string child.
func Textf(p TextProps, s string) templ.Component {
	return Text(p, markup.Text(s))
}
