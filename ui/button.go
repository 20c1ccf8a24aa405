package ui

import (
	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/merge"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

type (
	ButtonVariant string
	ButtonType    string
)

const (
	ButtonPrimary      ButtonVariant = "primary"
	ButtonSecondary    ButtonVariant = "secondary"
	ButtonCallToAction ButtonVariant = "callToAction"

	ButtonDefault ButtonType = "default"
	ButtonGhost   ButtonType = "ghost"
	ButtonLink    ButtonType = "link"
)

var buttonVariants = &variant.Set{
	Name: "Button",
	Base: "ui:flex ui:justify-center ui:items-center ui:rounded-md ui:font-semibold ui:font-body ui:tracking-button ui:cursor-pointer",
	Variants: []variant.Variant{
		{Name: "size", Options: options(
			"sm", "ui:text-label-xs ui:py-1 ui:px-2 ui:gap-2",
			"md", "ui:text-label-sm ui:py-1.5 ui:px-3 ui:gap-3",
			"lg", "ui:text-label-md ui:py-2 ui:px-4 ui:gap-4",
		)},
		{Name: "variant", Options: options(
			"primary", "",
			"secondary", "",
			"callToAction", "",
		)},
		{Name: "type", Options: options(
			"default", "",
			"ghost", "ui:border-2 ui:bg-transparent",
			"link", "ui:border-none ui:bg-none ui:underline ui:text-ui-accent",
		)},
		{Name: "disabled", Options: options(
			"false", "",
			"true", "ui:cursor-not-allowed ui:text-ui-fg-muted",
		)},
	},
	Compounds: []variant.Compound{
		{
			When:  when("type", "default", "variant", "primary", "disabled", "false"),
			Class: "ui:bg-ui-primary ui:hover:shadow-ring ui:hover:shadow-ui-primary/75 ui:hover:bg-hover ui:border-ui-primary ui:text-white",
		},
		{
			When:  when("type", "default", "variant", "secondary", "disabled", "false"),
			Class: "ui:bg-ui-button-secondary ui:hover:bg-ui-button-secondary/90 ui:text-ui-fg-surface",
		},
		{
			When:  when("variant", "callToAction", "size", "sm", "size", "md", "size", "lg"),
			Class: "ui:text-label-cta ui:py-2.5 ui:px-5",
		},
		{
			When:  when("type", "default", "variant", "callToAction", "disabled", "false"),
			Class: "ui:bg-linear-to-r/increasing ui:from-ui-accent ui:via-ui-primary ui:to-ui-secondary ui:text-ui-bg",
		},
		{
			When:  when("type", "default", "disabled", "true"),
			Class: "ui:bg-ui-disabled",
		},
		{
			When:  when("type", "ghost", "variant", "primary", "disabled", "false"),
			Class: "ui:border-ui-primary ui:text-ui-primary ui:hover:text-white ui:hover:bg-ui-primary",
		},
		{
			When:  when("type", "ghost", "variant", "secondary", "disabled", "false"),
			Class: "ui:border-ui-accent ui:text-ui-accent ui:hover:bg-ui-accent ui:hover:text-white",
		},
		{
			When:  when("type", "ghost", "variant", "callToAction", "disabled", "false"),
			Class: "phx-cta-ghost",
		},
		{
			When:  when("type", "ghost", "variant", "primary", "variant", "secondary", "variant", "callToAction", "disabled", "true"),
			Class: "ui:border-ui-fg-muted ui:text-ui-fg-muted ui:bg-transparent",
		},
	},
	Defaults: variant.Props{"size": "md", "variant": "secondary", "type": "default", "disabled": "false"},
}

// ButtonProps configures a Button. Attrs carries extra attributes such as
// hx-post through to the button element.
type ButtonProps struct {
	Label      string
	Size       Size
	Variant    ButtonVariant
	Type       ButtonType
	Disabled   bool
	IconLeft   IconName
	IconRight  IconName
	Responsive style.Responsive[Size]
	Submit     bool
	Class      string
	Attrs      templ.Attributes
}

func (p ButtonProps) props() variant.Props {
	return variant.Props{
		"size":     string(p.Size),
		"variant":  string(p.Variant),
		"type":     string(p.Type),
		"disabled": variant.Bool(p.Disabled),
	}
}

func (p ButtonProps) class() string {
	return merge.CN(variant.Class(buttonVariants, p.props(), p.Responsive, sizeAdapter[Size]("size")), p.Class)
}

func (p ButtonProps) icon(name IconName) templ.Component {
	if name == "" {
		return nil
	}
	size := p.Size
	if size == "" {
		size = SizeMD
	}
	return Icon(IconProps{Name: name, Size: size, Color: ToneInherit, Responsive: p.Responsive})
}

// Button renders a button element with optional leading and trailing icons.
func Button(p ButtonProps) templ.Component {
	kind := "button"
	if p.Submit {
		kind = "submit"
	}
	attrs := withClass(p.class(), p.Attrs, markup.A("type", kind), markup.Flag("disabled", p.Disabled))
	return markup.El("button", attrs,
		p.icon(p.IconLeft),
		markup.Text(p.Label),
		p.icon(p.IconRight),
	)
}
