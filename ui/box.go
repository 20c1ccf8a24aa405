package ui

import (
	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/merge"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

type (
	Display    string
	Background string
	Border     string
	Radius     string
)

const (
	DisplayInline     Display = "inline"
	DisplayBlock      Display = "block"
	DisplayInlineFlex Display = "inlineFlex"

	BackgroundNone    Background = "none"
	BackgroundDefault Background = "default"
	BackgroundSurface Background = "surface"

	BorderNone Border = "none"
	BorderSM   Border = "sm"
	BorderMD   Border = "md"
	BorderLG   Border = "lg"

	RadiusNone Radius = "none"
	RadiusSM   Radius = "sm"
	RadiusMD   Radius = "md"
	RadiusLG   Radius = "lg"
	RadiusXL   Radius = "xl"
	Radius2XL  Radius = "2xl"
	Radius3XL  Radius = "3xl"
	RadiusFull Radius = "full"
)

var boxVariants = &variant.Set{
	Name: "Box",
	Variants: []variant.Variant{
		{Name: "display", Options: options(
			"inline", "ui:inline",
			"block", "ui:block",
			"inlineFlex", "ui:inline-flex",
		)},
		{Name: "variant", Options: options(
			"default", "ui:text-ui-fg ui:border-ui-fg",
			"muted", "ui:text-ui-fg-muted ui:border-ui-fg-muted",
			"primary", "ui:text-ui-primary ui:border-ui-primary",
			"secondary", "ui:text-ui-secondary ui:border-ui-secondary",
			"success", "ui:text-ui-secondary ui:border-ui-secondary",
			"accent", "ui:text-ui-accent ui:border-ui-accent",
			"warning", "ui:text-ui-accent ui:border-ui-accent",
			"inverse", "ui:text-ui-bg ui:border-ui-bg",
			"inherit", "ui:text-inherit ui:border-inherit",
		)},
		{Name: "backgroundColor", Options: options(
			"none", "ui:bg-none",
			"default", "ui:bg-ui-bg",
			"surface", "ui:bg-ui-surface",
		)},
		{Name: "border", Options: options(
			"none", "ui:border-none",
			"sm", "ui:border",
			"md", "ui:border-2",
			"lg", "ui:border-4",
		)},
		{Name: "borderRadius", Options: options(
			"none", "ui:rounded-none",
			"sm", "ui:rounded-sm",
			"md", "ui:rounded-md",
			"lg", "ui:rounded-lg",
			"xl", "ui:rounded-xl",
			"2xl", "ui:rounded-2xl",
			"3xl", "ui:rounded-3xl",
			"full", "ui:rounded-full",
		)},
	},
	Defaults: variant.Props{
		"display":         "block",
		"variant":         "default",
		"backgroundColor": "none",
		"border":          "none",
		"borderRadius":    "none",
	},
}

// BoxSpec is the part of a Box that can be overridden per breakpoint.
type BoxSpec struct {
	Display    Display
	Variant    Tone
	Background Background
	Border     Border
	Radius     Radius
	Spacing    style.SpacingSpec
}

func (s BoxSpec) props() variant.Props {
	return variant.Props{
		"display":         string(s.Display),
		"variant":         string(s.Variant),
		"backgroundColor": string(s.Background),
		"border":          string(s.Border),
		"borderRadius":    string(s.Radius),
	}
}

// BoxProps configures a Box. As is div, span or p.
type BoxProps struct {
	BoxSpec
	As         string
	Responsive style.Responsive[BoxSpec]
	Class      string
	Attrs      templ.Attributes
}

func (p BoxProps) class() string {
	variants := variant.Class(boxVariants, p.props(), p.Responsive,
		func(v BoxSpec, _ variant.Props) variant.Props { return v.props() })

	spacing := make(style.Responsive[style.SpacingSpec], len(p.Responsive))
	for bp, spec := range p.Responsive {
		if !spec.Spacing.IsZero() {
			spacing[bp] = spec.Spacing
		}
	}
	return merge.CN(variants, style.Resolve(p.Spacing, spacing), p.Class)
}

func (p BoxProps) tag() string {
	switch p.As {
	case "span", "p":
		return p.As
	}
	return "div"
}

// Box is the structural container primitive.
func Box(p BoxProps, children ...templ.Component) templ.Component {
	return markup.El(p.tag(), withClass(p.class(), p.Attrs), children...)
}
