package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/merge"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

var inputVariants = &variant.Set{
	Name: "Input",
	Base: "ui:rounded-lg ui:flex ui:justify-between ui:placeholder:text-ui-fg-muted ui:overflow-hidden",
	Variants: []variant.Variant{
		{Name: "state", Options: options(
			"default", "ui:bg-ui-bg ui:border ui:border-ui-border ui:focus-within:outline-ui-primary ui:text-ui-fg",
			"error", "ui:bg-ui-error/25 ui:border-ui-error ui:focus-within:outline-ui-error ui:active:outline-ui-error ui:text-ui-error",
			"success", "ui:bg-ui-success/25 ui:border-ui-success ui:focus-within:outline-ui-success ui:active:outline-ui-success ui:text-ui-success",
		)},
		{Name: "size", Options: options(
			"sm", "ui:w-50",
			"md", "ui:w-75",
			"lg", "ui:w-100",
			"full", "ui:w-full",
		)},
		{Name: "disabled", Options: options("true", "", "false", "")},
	},
	Compounds: []variant.Compound{{
		When:  when("state", "default", "state", "error", "state", "success", "disabled", "true"),
		Class: "ui:bg-ui-disabled ui:text-ui-fg-muted ui:border-ui-border",
	}},
	Defaults: variant.Props{"state": "default", "size": "md", "disabled": "false"},
}

// InputProps configures an Input. Prefix and Suffix render inside the
// control's frame, before and after the input element.
type InputProps struct {
	ID          string
	Name        string
	Type        string
	Value       string
	Placeholder string
	Size        Size
	Disabled    bool
	Prefix      templ.Component
	Suffix      templ.Component
	Responsive  style.Responsive[Size]
	Class       string
	Attrs       templ.Attributes
}

// inputState is error, then success, then default; disabled is a separate
// compound.
func inputState(field FormFieldState) State {
	switch {
	case field.Error != "":
		return StateError
	case field.Success != "":
		return StateSuccess
	}
	return StateDefault
}

func (p InputProps) class(field FormFieldState) string {
	base := variant.Props{
		"state":    string(inputState(field)),
		"size":     string(p.Size),
		"disabled": variant.Bool(p.Disabled || field.Disabled),
	}
	return merge.CN(variant.Class(inputVariants, base, p.Responsive, sizeAdapter[Size]("size")), p.Class)
}

// Input renders a framed text input. Inside a FormField it takes the
// field's state, id, value and required flag.
func Input(p InputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		field, _ := FormFieldFrom(ctx)
		id := field.controlID(p.ID, nil)
		value := p.Value
		if value == "" {
			value = field.Value
		}
		kind := p.Type
		if kind == "" {
			kind = "text"
		}
		disabled := p.Disabled || field.Disabled

		input := markup.El("input", append([]markup.Attr{
			markup.A("class", "phx-input"),
			markup.A("type", kind),
			markup.Opt("id", id),
			markup.Opt("name", p.Name),
			markup.A("value", value),
			markup.Opt("placeholder", p.Placeholder),
			markup.Flag("required", field.Required),
			markup.Flag("disabled", disabled),
			markup.Opt("aria-invalid", ariaInvalid(field)),
		}, markup.FromTempl(p.Attrs)...))

		frame := markup.El("div", []markup.Attr{markup.Opt("class", p.class(field))}, p.Prefix, input, p.Suffix)
		return frame.Render(ctx, w)
	})
}

func ariaInvalid(field FormFieldState) string {
	if field.Error != "" {
		return "true"
	}
	return ""
}
