package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

var formFieldVariants = &variant.Set{
	Name: "FormField",
	Variants: []variant.Variant{
		{Name: "size", Options: options(
			"sm", "ui:gap-2",
			"md", "ui:gap-3",
			"lg", "ui:gap-4",
		)},
		{Name: "direction", Options: options(
			"horizontal", "ui:flex",
			"vertical", "ui:flex-col",
		)},
	},
	Defaults: variant.Props{"direction": "horizontal", "size": "md"},
}

// FormFieldState is what a FormField shares with the controls rendered
// inside it. Value is the initial value of a control that sets none.
type FormFieldState struct {
	ID       string
	Value    string
	Error    string
	Success  string
	Disabled bool
	Required bool

	taken *bool
}

// controlID returns own when set. Otherwise the first control of a
// FormField takes the field id, which its label points at; later controls
// get fresh ids from fallback, or none when fallback is nil.
func (s FormFieldState) controlID(own string, fallback func() string) string {
	if own != "" {
		return own
	}
	if s.ID != "" && (s.taken == nil || !*s.taken) {
		if s.taken != nil {
			*s.taken = true
		}
		return s.ID
	}
	if fallback == nil {
		return ""
	}
	return fallback()
}

type formFieldKey struct{}

// WithFormField returns a context carrying s.
func WithFormField(ctx context.Context, s FormFieldState) context.Context {
	return context.WithValue(ctx, formFieldKey{}, s)
}

// FormFieldFrom returns the enclosing FormField state, if any.
func FormFieldFrom(ctx context.Context) (FormFieldState, bool) {
	s, ok := ctx.Value(formFieldKey{}).(FormFieldState)
	return s, ok
}

// State resolves the visual state: disabled, then error, then success.
func (s FormFieldState) State() State {
	switch {
	case s.Disabled:
		return StateDisabled
	case s.Error != "":
		return StateError
	case s.Success != "":
		return StateSuccess
	}
	return StateDefault
}

// FormFieldSpec is the part of a FormField that can be overridden per breakpoint.
type FormFieldSpec struct {
	Size      Size
	Direction Direction
}

func (s FormFieldSpec) props() variant.Props {
	return variant.Props{"size": string(s.Size), "direction": string(s.Direction)}
}

// FormFieldProps configures a FormField. ID names the labelled control and
// is generated when empty.
type FormFieldProps struct {
	FormFieldSpec
	ID          string
	Label       string
	Value       string
	Description string
	Error       string
	Success     string
	Required    bool
	Disabled    bool
	Role        string
	Responsive  style.Responsive[FormFieldSpec]
}

func (p FormFieldProps) class() string {
	return variant.Class(formFieldVariants, p.props(), p.Responsive,
		func(v FormFieldSpec, _ variant.Props) variant.Props { return v.props() })
}

// NewControlID returns a fresh id for a form control.
func NewControlID() string {
	return "phx-" + uuid.NewString()
}

// FormField wraps controls in a fieldset with a label, an optional
// description and the error or success message. Controls read the field's
// state from the render context.
func FormField(p FormFieldProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := p.ID
		if id == "" {
			id = NewControlID()
		}
		state := FormFieldState{
			ID:       id,
			Value:    p.Value,
			Error:    p.Error,
			Success:  p.Success,
			Disabled: p.Disabled,
			Required: p.Required,
			taken:    new(bool),
		}

		label := p.Label
		if p.Required {
			label += " *"
		}
		message := p.Error
		if message == "" {
			message = p.Success
		}

		field := markup.El("fieldset",
			[]markup.Attr{markup.Opt("class", p.class()), markup.Opt("role", p.Role), markup.Flag("disabled", p.Disabled)},
			markup.El("label", []markup.Attr{markup.A("for", id)}, markup.Text(label)),
			markup.If(p.Description != "", markup.El("p", nil, markup.Text(p.Description))),
			markup.Group(children...),
			markup.If(message != "", markup.El("p", []markup.Attr{markup.Opt("role", alertRole(p.Error))}, markup.Text(message))),
		)
		return field.Render(WithFormField(ctx, state), w)
	})
}

func alertRole(err string) string {
	if err != "" {
		return "alert"
	}
	return ""
}
