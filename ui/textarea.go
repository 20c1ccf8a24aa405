package ui

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/merge"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

type (
	TextAreaWidth  string
	TextAreaBorder string
)

const (
	WidthAuto TextAreaWidth = "auto"
	WidthFull TextAreaWidth = "full"

	BorderFilled    TextAreaBorder = "filled"
	BorderUnderline TextAreaBorder = "underline"
)

var textAreaVariants = &variant.Set{
	Name: "TextArea",
	Base: "ui:flex-col ui:font-body ui:font-normal",
	Variants: []variant.Variant{
		{Name: "size", Options: options(
			"sm", "ui:p-1 ui:text-body-sm",
			"md", "ui:p-2 ui:text-body-md",
			"lg", "ui:p-3 ui:text-body-lg",
		)},
		{Name: "state", Options: options(
			"default", "ui:input-default",
			"error", "ui:input-error",
			"success", "ui:input-success",
			"disabled", "ui:input-disabled",
		)},
		{Name: "width", Options: options(
			"auto", "ui:min-w-50 ui:w-auto",
			"full", "ui:w-full",
		)},
		{Name: "border", Options: options(
			"filled", "ui:border-2 ui:rounded-lg",
			"underline", "ui:border-b-2",
		)},
	},
	Compounds: []variant.Compound{
		{When: when("state", "default", "state", "error", "state", "success", "state", "disabled", "border", "underline"), Class: "ui:bg-none"},
		{When: when("state", "default", "border", "filled"), Class: "ui:bg-ui-bg"},
		{When: when("state", "error", "border", "filled"), Class: "ui:bg-ui-error/25"},
		{When: when("state", "success", "border", "filled"), Class: "ui:bg-ui-success/25"},
		{When: when("state", "disabled", "border", "filled"), Class: "ui:bg-ui-disabled"},
	},
	Defaults: variant.Props{"size": "md", "width": "auto", "state": "default", "border": "filled"},
}

// FooterButton is a TextArea footer action.
type FooterButton struct {
	Label string
	Attrs templ.Attributes
}

// TextAreaFooter holds the actions rendered under the text area.
type TextAreaFooter struct {
	Primary   *FooterButton
	Secondary []FooterButton
}

// TextAreaProps configures a TextArea.
type TextAreaProps struct {
	ID          string
	Name        string
	Value       string
	Placeholder string
	Rows        int
	Size        Size
	Width       TextAreaWidth
	Border      TextAreaBorder
	Footer      *TextAreaFooter
	Responsive  style.Responsive[Size]
	Class       string
	Attrs       templ.Attributes
}

func (p TextAreaProps) class(field FormFieldState) string {
	base := variant.Props{
		"state":  string(field.State()),
		"size":   string(p.Size),
		"width":  string(p.Width),
		"border": string(p.Border),
	}
	return merge.CN(variant.Class(textAreaVariants, base, p.Responsive, sizeAdapter[Size]("size")), p.Class)
}

func (f *TextAreaFooter) component() templ.Component {
	if f == nil || (f.Primary == nil && len(f.Secondary) == 0) {
		return nil
	}
	var secondary templ.Component
	if len(f.Secondary) > 0 {
		buttons := make([]templ.Component, len(f.Secondary))
		for i, b := range f.Secondary {
			buttons[i] = Button(ButtonProps{Label: b.Label, Variant: ButtonSecondary, Attrs: b.Attrs})
		}
		secondary = markup.El("div", []markup.Attr{markup.A("class", "ui:flex ui:gap-1 ui:flex-wrap")}, buttons...)
	}
	var primary templ.Component
	if f.Primary != nil {
		primary = Button(ButtonProps{Label: f.Primary.Label, Variant: ButtonPrimary, Attrs: f.Primary.Attrs})
	}
	return markup.El("div", []markup.Attr{markup.A("class", "ui:w-full ui:flex ui:justify-between ui:items-center")},
		secondary, primary)
}

// TextArea renders a multi-line input with an optional action footer.
// Inside a FormField its state follows disabled, error, success.
func TextArea(p TextAreaProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		field, _ := FormFieldFrom(ctx)
		id := field.controlID(p.ID, nil)
		value := p.Value
		if value == "" {
			value = field.Value
		}
		rows := ""
		if p.Rows > 0 {
			rows = strconv.Itoa(p.Rows)
		}

		area := markup.El("textarea", append([]markup.Attr{
			markup.A("class", "phx-input ui:w-full ui:min-h-10"),
			markup.Opt("id", id),
			markup.Opt("name", p.Name),
			markup.Opt("rows", rows),
			markup.Opt("placeholder", p.Placeholder),
			markup.Flag("required", field.Required),
			markup.Flag("disabled", field.Disabled),
			markup.Opt("aria-invalid", ariaInvalid(field)),
		}, markup.FromTempl(p.Attrs)...), markup.Text(value))

		frame := markup.El("div", []markup.Attr{markup.Opt("class", p.class(field))}, area, p.Footer.component())
		return frame.Render(ctx, w)
	})
}
