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

var radioInputVariants = &variant.Set{
	Name: "RadioInput",
	Base: "ui:border-2 ui:appearance-none ui:shrink-0 ui:w-5 ui:h-5 ui:rounded-full ui:focus:outline-none",
	Variants: []variant.Variant{
		{Name: "size", Options: options(
			"sm", "ui:scale-75",
			"md", "ui:scale-100",
			"lg", "ui:scale-125",
		)},
		{Name: "state", Options: options(
			"default", "ui:bg-none ui:border-ui-primary ui:focus:ring-offset-0 ui:focus:ring-2 ui:focus:ring-ui-primary/80 ui:cursor-pointer",
			"disabled", "ui:border-ui-disabled ui:cursor-default",
		)},
	},
	Defaults: variant.Props{"size": "md", "state": "default"},
}

// RadioInputProps configures a RadioInput.
type RadioInputProps struct {
	ID          string
	Name        string
	Value       string
	Checked     bool
	Disabled    bool
	Label       string
	Description string
	Size        Size
	Responsive  style.Responsive[Size]
	Attrs       templ.Attributes
}

func (p RadioInputProps) class(disabled bool) string {
	state := StateDefault
	if disabled {
		state = StateDisabled
	}
	return merge.CN("ui:peer ui:col-start-1 ui:row-start-1", variant.Class(radioInputVariants,
		variant.Props{"size": string(p.Size), "state": string(state)},
		p.Responsive, sizeAdapter[Size]("size")))
}

// RadioInput renders a custom-drawn radio button with its label. It is
// disabled when either the prop or the enclosing FormField says so.
func RadioInput(p RadioInputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		field, _ := FormFieldFrom(ctx)
		disabled := p.Disabled || field.Disabled
		id := field.controlID(p.ID, NewControlID)

		circle := "phx-radio-inner-circle ui:peer-checked:bg-ui-primary ui:peer-checked:peer-disabled:bg-ui-disabled"
		if p.Size == SizeLG {
			circle += " ui:scale-125"
		}
		control := markup.El("div", []markup.Attr{markup.A("class", "ui:grid ui:place-items-center ui:mt-1")},
			markup.El("input", append([]markup.Attr{
				markup.A("type", "radio"),
				markup.A("class", p.class(disabled)),
				markup.A("id", id),
				markup.Opt("name", p.Name),
				markup.A("value", p.Value),
				markup.Flag("checked", p.Checked),
				markup.Flag("disabled", disabled),
			}, markup.FromTempl(p.Attrs)...)),
			markup.El("div", []markup.Attr{markup.A("class", circle)}),
		)
		return choiceRow(control, choiceLabel(id, p.Size, p.Label, p.Description)).Render(ctx, w)
	})
}
