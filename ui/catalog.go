package ui

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

// Entry describes one primitive for documentation and linting.
type Entry struct {
	Name          string
	Summary       string
	WhenToUse     []string
	Accessibility []string
	Variants      *variant.Set
	// Sample renders the primitive with a selection of its variants.
	Sample func(p variant.Props) templ.Component
}

func sizeOf(p variant.Props) Size { return Size(p["size"]) }

func spacingVariants() *variant.Set {
	m := variant.Variant{Name: "m"}
	pad := variant.Variant{Name: "p"}
	for _, s := range style.Spaces() {
		mc, _ := style.Lookup(style.AxisMargin, style.SideAll, s)
		pc, _ := style.Lookup(style.AxisPadding, style.SideAll, s)
		m.Options = append(m.Options, variant.Option{Value: string(s), Class: mc})
		pad.Options = append(pad.Options, variant.Option{Value: string(s), Class: pc})
	}
	return &variant.Set{Name: "Spacing", Variants: []variant.Variant{m, pad}}
}

var textInputVariants = &variant.Set{
	Name: "TextInput",
	Variants: []variant.Variant{
		{Name: "type", Options: options("text", "", "email", "", "password", "", "search", "", "url", "", "tel", "")},
		{Name: "prefixPreset", Options: options("searchIcon", "", "atSign", "", "dollar", "")},
		{Name: "suffixPreset", Options: options("domainDotCom", "", "shortcutSlash", "", "goButton", "")},
	},
	Defaults: variant.Props{"type": "text"},
}

func errComponent(err error) templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error { return err })
}

var catalog = []Entry{
	{
		Name:          "Spacing",
		Summary:       "A div that carries only margin and padding classes.",
		WhenToUse:     []string{"Add space around content without introducing a styled container."},
		Accessibility: []string{"Renders a plain div with no semantics of its own."},
		Variants:      spacingVariants(),
		Sample: func(p variant.Props) templ.Component {
			return Spacing(SpacingProps{M: style.All(style.Space(p["m"])), P: style.All(style.Space(p["p"]))},
				markup.Text("Spaced content"))
		},
	},
	{
		Name:          "Box",
		Summary:       "Structural container for display, surface, border, radius and spacing.",
		WhenToUse:     []string{"Group content on a surface.", "Apply border and radius tokens to a region."},
		Accessibility: []string{"Pick the element with As so the box keeps the right semantics."},
		Variants:      boxVariants,
		Sample: func(p variant.Props) templ.Component {
			return Box(BoxProps{BoxSpec: BoxSpec{
				Display:    Display(p["display"]),
				Variant:    Tone(p["variant"]),
				Background: Background(p["backgroundColor"]),
				Border:     Border(p["border"]),
				Radius:     Radius(p["borderRadius"]),
				Spacing:    style.SpacingSpec{P: style.All(style.SpaceMD)},
			}}, markup.Text("Box content"))
		},
	},
	{
		Name:          "Stack",
		Summary:       "Flex layout in a row or a column with token gaps.",
		WhenToUse:     []string{"Lay out siblings with consistent spacing.", "Align items along either axis."},
		Accessibility: []string{"Visual order follows source order; do not reorder content with layout alone."},
		Variants:      stackVariants,
		Sample: func(p variant.Props) templ.Component {
			item := func(s string) templ.Component {
				return Box(BoxProps{BoxSpec: BoxSpec{Border: BorderSM, Radius: RadiusMD, Spacing: style.SpacingSpec{P: style.All(style.SpaceSM)}}}, markup.Text(s))
			}
			return Stack(StackProps{StackSpec: StackSpec{
				Direction: Direction(p["direction"]),
				Cross:     CrossAxis(p["crossAxisAlignment"]),
				Main:      MainAxis(p["mainAxisAlignment"]),
				Gap:       style.Gap(style.SpaceSM),
			}}, item("One"), item("Two"), item("Three"))
		},
	},
	{
		Name:          "Text",
		Summary:       "Typography with semantic tags chosen from the variant.",
		WhenToUse:     []string{"Render any copy: headings, body text, labels and captions."},
		Accessibility: []string{"Heading variants render h1 to h6; keep the heading outline in order."},
		Variants:      textVariants,
		Sample: func(p variant.Props) templ.Component {
			return Textf(TextProps{TextSpec: TextSpec{
				Variant:   Typography(p["variant"]),
				Tone:      Tone(p["tone"]),
				Truncate:  p["truncate"] == "true",
				Uppercase: p["uppercase"] == "true",
			}}, "Rebirth through clarity")
		},
	},
	{
		Name:          "Icon",
		Summary:       "Inline SVG glyph from the icon registry.",
		WhenToUse:     []string{"Reinforce a label or action with a recognizable glyph."},
		Accessibility: []string{"Icons are hidden from assistive tech unless given a Label."},
		Variants:      iconVariants,
		Sample: func(p variant.Props) templ.Component {
			return Icon(IconProps{Name: IconHome, Size: sizeOf(p), Color: Tone(p["color"])})
		},
	},
	{
		Name:          "Button",
		Summary:       "Action trigger with size, intent and style variants.",
		WhenToUse:     []string{"Submit a form or start an action.", "Use callToAction once per view."},
		Accessibility: []string{"Labels must describe the action.", "Disabled buttons are skipped by keyboard focus."},
		Variants:      buttonVariants,
		Sample: func(p variant.Props) templ.Component {
			return Button(ButtonProps{
				Label:    "Continue",
				Size:     sizeOf(p),
				Variant:  ButtonVariant(p["variant"]),
				Type:     ButtonType(p["type"]),
				Disabled: p["disabled"] == "true",
			})
		},
	},
	{
		Name:          "ToggleButton",
		Summary:       "On and off switch rendered as a pressed-state button.",
		WhenToUse:     []string{"Toggle a setting that applies immediately."},
		Accessibility: []string{"aria-pressed mirrors the toggled state; provide a Label."},
		Variants:      toggleButtonVariants,
		Sample: func(p variant.Props) templ.Component {
			return ToggleButton(ToggleButtonProps{Size: sizeOf(p), Disabled: p["state"] == "disabled", Label: "Notifications"})
		},
	},
	{
		Name:          "FormField",
		Summary:       "Fieldset with label, description and validation message.",
		WhenToUse:     []string{"Wrap every form control that needs a visible label."},
		Accessibility: []string{"The label points at the control id.", "Error messages are announced with role alert."},
		Variants:      formFieldVariants,
		Sample: func(p variant.Props) templ.Component {
			return FormField(FormFieldProps{
				FormFieldSpec: FormFieldSpec{Size: sizeOf(p), Direction: Direction(p["direction"])},
				Label:         "Email",
				Description:   "We never share it.",
				Required:      true,
			}, Input(InputProps{Type: "email", Placeholder: "you@example.com"}))
		},
	},
	{
		Name:          "Input",
		Summary:       "Framed single-line input with prefix and suffix slots.",
		WhenToUse:     []string{"Collect short free-form values."},
		Accessibility: []string{"Place inputs in a FormField so they get a label and state."},
		Variants:      inputVariants,
		Sample: func(p variant.Props) templ.Component {
			in := Input(InputProps{Size: sizeOf(p), Disabled: p["disabled"] == "true", Placeholder: "Type here"})
			switch State(p["state"]) {
			case StateError:
				return FormField(FormFieldProps{Label: "Field", Error: "Something is wrong"}, in)
			case StateSuccess:
				return FormField(FormFieldProps{Label: "Field", Success: "Looks good"}, in)
			}
			return in
		},
	},
	{
		Name:          "TextInput",
		Summary:       "Text-like Input with prefix and suffix presets.",
		WhenToUse:     []string{"Search boxes, email and URL fields, prices."},
		Accessibility: []string{"Presets are decorative; the label still has to say what to enter."},
		Variants:      textInputVariants,
		Sample: func(p variant.Props) templ.Component {
			c, err := TextInput(TextInputProps{
				InputProps:   InputProps{Type: p["type"], Placeholder: "Type here"},
				PrefixPreset: PrefixPreset(p["prefixPreset"]),
				SuffixPreset: SuffixPreset(p["suffixPreset"]),
			})
			if err != nil {
				return errComponent(err)
			}
			return c
		},
	},
	{
		Name:          "TextArea",
		Summary:       "Multi-line input with an optional action footer.",
		WhenToUse:     []string{"Collect long-form text such as comments or descriptions."},
		Accessibility: []string{"Footer actions are regular buttons and follow the text area in tab order."},
		Variants:      textAreaVariants,
		Sample: func(p variant.Props) templ.Component {
			area := TextArea(TextAreaProps{
				Size:        sizeOf(p),
				Width:       TextAreaWidth(p["width"]),
				Border:      TextAreaBorder(p["border"]),
				Placeholder: "Write something",
				Footer:      &TextAreaFooter{Primary: &FooterButton{Label: "Send"}, Secondary: []FooterButton{{Label: "Attach"}}},
			})
			switch State(p["state"]) {
			case StateError:
				return FormField(FormFieldProps{Label: "Message", Error: "Required"}, area)
			case StateSuccess:
				return FormField(FormFieldProps{Label: "Message", Success: "Saved"}, area)
			case StateDisabled:
				return FormField(FormFieldProps{Label: "Message", Disabled: true}, area)
			}
			return area
		},
	},
	{
		Name:          "CheckBox",
		Summary:       "Check box with label and description.",
		WhenToUse:     []string{"Select any number of options from a list."},
		Accessibility: []string{"The label is bound to the input.", "Indeterminate renders aria-checked mixed."},
		Variants:      checkBoxVariants,
		Sample: func(p variant.Props) templ.Component {
			box := CheckBox(CheckBoxProps{
				Label:       "Subscribe",
				Description: "Weekly digest",
				Size:        sizeOf(p),
				Position:    Position(p["checkboxPosition"]),
				Disabled:    p["state"] == "disabled",
			})
			switch State(p["state"]) {
			case StateError:
				return FormField(FormFieldProps{Label: "Newsletter", Error: "Please confirm"}, box)
			case StateSuccess:
				return FormField(FormFieldProps{Label: "Newsletter", Success: "Subscribed"}, box)
			}
			return box
		},
	},
	{
		Name:          "RadioInput",
		Summary:       "Radio button with label and description.",
		WhenToUse:     []string{"Pick exactly one option from a small set."},
		Accessibility: []string{"Radios sharing a Name form one group for keyboard navigation."},
		Variants:      radioInputVariants,
		Sample: func(p variant.Props) templ.Component {
			return RadioInput(RadioInputProps{
				Name:        "plan",
				Value:       "pro",
				Label:       "Pro plan",
				Description: "For growing teams",
				Size:        sizeOf(p),
				Disabled:    p["state"] == "disabled",
			})
		},
	},
}

// Catalog lists every primitive in a stable order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the catalog entry called name.
func Find(name string) (Entry, bool) {
	for _, e := range catalog {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Vocabulary renders every option of every catalog entry and returns the
// distinct classes found in the markup, together with the spacing table
// classes. It is the set of classes the primitives can produce.
func Vocabulary(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	for _, c := range style.Classes() {
		seen[c] = true
	}
	for _, e := range catalog {
		for _, c := range e.Variants.ClassList() {
			seen[c] = true
		}
		samples := []variant.Props{nil}
		for _, v := range e.Variants.Variants {
			for _, o := range v.Options {
				samples = append(samples, variant.Props{v.Name: o.Value})
			}
		}
		for _, p := range samples {
			out, err := markup.String(ctx, e.Sample(p))
			if err != nil {
				return nil, fmt.Errorf("render %s sample: %w", e.Name, err)
			}
			collectClasses(out, seen)
		}
	}

	vocab := make([]string, 0, len(seen))
	for c := range seen {
		vocab = append(vocab, c)
	}
	sort.Strings(vocab)
	return vocab, nil
}

func collectClasses(doc string, into map[string]bool) {
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return
		case html.StartTagToken, html.SelfClosingTagToken:
			for {
				key, val, more := z.TagAttr()
				if string(key) == "class" {
					for _, c := range strings.Fields(string(val)) {
						into[c] = true
					}
				}
				if !more {
					break
				}
			}
		}
	}
}
