package ui

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
)

type (
	PrefixPreset string
	SuffixPreset string
)

const (
	PrefixSearchIcon PrefixPreset = "searchIcon"
	PrefixAtSign     PrefixPreset = "atSign"
	PrefixDollar     PrefixPreset = "dollar"

	SuffixDomainDotCom  SuffixPreset = "domainDotCom"
	SuffixShortcutSlash SuffixPreset = "shortcutSlash"
	SuffixGoButton      SuffixPreset = "goButton"
)

var textInputTypes = map[string]bool{
	"text": true, "email": true, "password": true, "search": true, "url": true, "tel": true,
}

const suffixFrame = "ui:flex ui:justify-center ui:items-center ui:p-3 ui:bg-white ui:text-ui-fg-muted ui:min-w-[20%] ui:text-center"

// TextInputProps configures a TextInput. Explicit Prefix and Suffix
// components take precedence over the presets.
type TextInputProps struct {
	InputProps
	PrefixPreset      PrefixPreset
	SuffixPreset      SuffixPreset
	SuffixButtonLabel string
	SuffixButtonAttrs templ.Attributes
}

func prefixFor(preset PrefixPreset) templ.Component {
	var inner templ.Component
	switch preset {
	case PrefixSearchIcon:
		inner = Icon(IconProps{Name: IconSearch, Color: ToneMuted, Size: SizeLG})
	case PrefixAtSign:
		inner = markup.El("span", []markup.Attr{markup.A("class", "ui:text-ui-fg-muted")}, markup.Text("@"))
	case PrefixDollar:
		inner = markup.El("span", []markup.Attr{markup.A("class", "ui:text-ui-fg-muted")}, markup.Text("$"))
	default:
		return nil
	}
	return markup.El("div", []markup.Attr{markup.A("class", "ui:flex ui:justify-center ui:items-center ui:p-3")}, inner)
}

func suffixFor(preset SuffixPreset, label string, attrs templ.Attributes) templ.Component {
	switch preset {
	case SuffixDomainDotCom:
		return markup.El("div", []markup.Attr{markup.A("class", suffixFrame)}, markup.Text(".com"))
	case SuffixShortcutSlash:
		return markup.El("div", []markup.Attr{markup.A("class", suffixFrame)}, markup.Text("/"))
	case SuffixGoButton:
		if label == "" {
			label = "Go"
		}
		return Button(ButtonProps{Label: label, Size: SizeMD, Variant: ButtonPrimary, Class: "ui:rounded-none", Attrs: attrs})
	}
	return nil
}

// TextInput is an Input limited to text-like types with prefix and suffix
// presets.
func TextInput(p TextInputProps) (templ.Component, error) {
	in := p.InputProps
	if in.Type == "" {
		in.Type = "text"
	}
	if !textInputTypes[in.Type] {
		return nil, fmt.Errorf("text input: unsupported type %q", in.Type)
	}
	if in.Prefix == nil {
		in.Prefix = prefixFor(p.PrefixPreset)
	}
	if in.Suffix == nil {
		in.Suffix = suffixFor(p.SuffixPreset, p.SuffixButtonLabel, p.SuffixButtonAttrs)
	}
	return Input(in), nil
}
