package ui

import (
	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/merge"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

type (
	Direction string
	CrossAxis string
	MainAxis  string
)

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"

	CrossStretch  CrossAxis = "stretch"
	CrossStart    CrossAxis = "start"
	CrossCenter   CrossAxis = "center"
	CrossEnd      CrossAxis = "end"
	CrossBaseline CrossAxis = "baseline"

	MainStart        MainAxis = "start"
	MainCenter       MainAxis = "center"
	MainEnd          MainAxis = "end"
	MainSpaceBetween MainAxis = "spaceBetween"
	MainSpaceAround  MainAxis = "spaceAround"
)

var stackVariants = &variant.Set{
	Name: "Stack",
	Base: "ui:flex",
	Variants: []variant.Variant{
		{Name: "direction", Options: options(
			"horizontal", "ui:flex-row",
			"vertical", "ui:flex-col",
		)},
		{Name: "crossAxisAlignment", Options: options(
			"stretch", "ui:items-stretch",
			"start", "ui:items-start",
			"center", "ui:items-center",
			"end", "ui:items-end",
			"baseline", "ui:items-baseline",
		)},
		{Name: "mainAxisAlignment", Options: options(
			"start", "ui:justify-start",
			"center", "ui:justify-center",
			"end", "ui:justify-end",
			"spaceBetween", "ui:justify-between",
			"spaceAround", "ui:justify-around",
		)},
	},
	Defaults: variant.Props{"direction": "horizontal"},
}

// StackSpec is the part of a Stack that can be overridden per breakpoint.
type StackSpec struct {
	Direction Direction
	Cross     CrossAxis
	Main      MainAxis
	Gap       style.GapSpace
	Spacing   style.SpacingSpec
}

func (s StackSpec) props() variant.Props {
	return variant.Props{
		"direction":          string(s.Direction),
		"crossAxisAlignment": string(s.Cross),
		"mainAxisAlignment":  string(s.Main),
	}
}

// StackProps configures a Stack.
type StackProps struct {
	StackSpec
	Responsive style.Responsive[StackSpec]
	Class      string
}

func (p StackProps) class() string {
	classes := style.SpacingClasses(p.Spacing, "")
	classes = append(classes, style.GapClasses(p.Gap, "")...)
	classes = append(classes, variant.Class(stackVariants, p.props(), p.Responsive,
		func(v StackSpec, _ variant.Props) variant.Props { return v.props() }))

	p.Responsive.Each(func(bp style.Breakpoint, spec StackSpec) {
		classes = append(classes, style.SpacingClasses(spec.Spacing, bp)...)
		classes = append(classes, style.GapClasses(spec.Gap, bp)...)
	})
	return merge.CN(classes, p.Class)
}

// Stack lays children out in a flex row or column.
func Stack(p StackProps, children ...templ.Component) templ.Component {
	return markup.El("div", []markup.Attr{markup.Opt("class", p.class())}, children...)
}
