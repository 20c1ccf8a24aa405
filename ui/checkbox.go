package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

// Position places a check box before or after its label.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

var checkBoxVariants = &variant.Set{
	Name: "CheckBox",
	Base: "ui:rounded-sm ui:cursor-pointer ui:border ui:accent-ui-primary ui:indeterminate:bg-ui-primary ui:font-body ui:font-normal",
	Variants: []variant.Variant{
		{Name: "size", Options: options(
			"sm", "ui:size-3",
			"md", "ui:size-4",
			"lg", "ui:size-5",
		)},
		{Name: "state", Options: options(
			"default", "ui:input-default ui:bg-ui-bg",
			"error", "ui:input-error ui:bg-ui-error/50",
			"success", "ui:input-success ui:bg-ui-success/50",
			"disabled", "ui:input-disabled ui:bg-ui-disabled",
		)},
		{Name: "checkboxPosition", Options: options(
			"right", "ui:order-last",
			"left", "",
		)},
	},
	Defaults: variant.Props{"size": "md", "state": "default", "checkboxPosition": "left"},
}

// labelTypography maps a control size to its label variant.
func labelTypography(s Size) Typography {
	switch s {
	case SizeSM:
		return LabelXS
	case SizeLG:
		return LabelMD
	}
	return LabelSM
}

// CheckBoxProps configures a CheckBox. Indeterminate renders
// aria-checked="mixed" and takes precedence over Checked for assistive tech.
type CheckBoxProps struct {
	ID            string
	Name          string
	Value         string
	Checked       bool
	Indeterminate bool
	Disabled      bool
	Label         string
	Description   string
	Size          Size
	Position      Position
	Responsive    style.Responsive[Size]
	Attrs         templ.Attributes
}

func (p CheckBoxProps) class(state State) string {
	return variant.Class(checkBoxVariants,
		variant.Props{"size": string(p.Size), "state": string(state), "checkboxPosition": string(p.Position)},
		p.Responsive, sizeAdapter[Size]("size"))
}

// choiceLabel is the label and description column shared by CheckBox and
// RadioInput.
func choiceLabel(id string, size Size, label, description string) templ.Component {
	var parts []templ.Component
	if label != "" {
		t := labelTypography(size)
		parts = append(parts, Textf(TextProps{
			TextSpec: TextSpec{Variant: t, Tone: ToneDefault},
			As:       "label",
			Attrs:    templ.Attributes{"for": id},
		}, label))
	}
	if description != "" {
		parts = append(parts, Textf(TextProps{TextSpec: TextSpec{Variant: BodySM, Tone: ToneMuted}, As: "p"}, description))
	}
	return Stack(StackProps{StackSpec: StackSpec{
		Direction: Vertical,
		Gap:       style.Gap(style.SpaceSM),
		Spacing:   style.SpacingSpec{P: style.All(style.SpaceSM)},
	}}, parts...)
}

func choiceRow(children ...templ.Component) templ.Component {
	return Stack(StackProps{StackSpec: StackSpec{
		Direction: Horizontal,
		Cross:     CrossCenter,
		Gap:       style.Gap(style.SpaceSM),
		Spacing:   style.SpacingSpec{P: style.All(style.SpaceSM)},
	}}, children...)
}

// CheckBox renders a labelled check box. Its state follows the enclosing
// FormField: disabled, then error, then success.
func CheckBox(p CheckBoxProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		field, _ := FormFieldFrom(ctx)
		field.Disabled = field.Disabled || p.Disabled
		id := field.controlID(p.ID, NewControlID)

		checked := ""
		if p.Indeterminate {
			checked = "mixed"
		}
		input := markup.El("input", append([]markup.Attr{
			markup.A("type", "checkbox"),
			markup.A("class", p.class(field.State())),
			markup.A("id", id),
			markup.Opt("name", p.Name),
			markup.Opt("value", p.Value),
			markup.Flag("checked", p.Checked),
			markup.Flag("disabled", field.Disabled),
			markup.Flag("required", field.Required),
			markup.Opt("aria-checked", checked),
		}, markup.FromTempl(p.Attrs)...))

		return choiceRow(input, choiceLabel(id, p.Size, p.Label, p.Description)).Render(ctx, w)
	})
}
