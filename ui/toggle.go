package ui

import (
	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

var toggleButtonVariants = &variant.Set{
	Name: "ToggleButton",
	Base: "ui:group ui:rounded-full ui:flex ui:border",
	Variants: []variant.Variant{
		{Name: "size", Options: options(
			"sm", "ui:p-1 ui:w-10",
			"md", "ui:p-1.5 ui:w-12",
			"lg", "ui:p-2 ui:w-15",
		)},
		{Name: "state", Options: options(
			"default", "ui:border-ui-border ui:bg-ui-bg ui:toggled:bg-ui-primary ui:cursor-pointer",
			"disabled", "ui:border-ui-disabled ui:bg-ui-bg ui:toggled:bg-ui-disabled/25",
		)},
	},
	Defaults: variant.Props{"size": "md", "state": "default"},
}

var toggleParts = map[Size]struct{ track, knob string }{
	SizeSM: {"ui:h-4", "ui:size-4"},
	SizeMD: {"ui:h-5", "ui:size-5"},
	SizeLG: {"ui:h-6", "ui:size-6"},
}

// ToggleButtonProps configures a ToggleButton.
type ToggleButtonProps struct {
	Toggled    bool
	Disabled   bool
	Size       Size
	Responsive style.Responsive[Size]
	Label      string // aria-label
	Attrs      templ.Attributes
}

func (p ToggleButtonProps) class() string {
	state := string(StateDefault)
	if p.Disabled {
		state = string(StateDisabled)
	}
	return variant.Class(toggleButtonVariants,
		variant.Props{"size": string(p.Size), "state": state},
		p.Responsive, sizeAdapter[Size]("size"))
}

// ToggleButton renders an on/off switch. Toggling is left to the page.
func ToggleButton(p ToggleButtonProps) templ.Component {
	parts, ok := toggleParts[p.Size]
	if !ok {
		parts = toggleParts[SizeMD]
	}
	attrs := withClass(p.class(), p.Attrs,
		markup.A("type", "button"),
		markup.A("data-toggled", variant.Bool(p.Toggled)),
		markup.A("aria-pressed", variant.Bool(p.Toggled)),
		markup.Opt("aria-label", p.Label),
		markup.Flag("disabled", p.Disabled),
	)
	return markup.El("button", attrs,
		markup.El("div", []markup.Attr{markup.A("class", parts.track+" ui:w-full ui:relative")},
			markup.El("div", []markup.Attr{markup.A("class", "phx-toggle-button "+parts.knob)}),
		),
	)
}
