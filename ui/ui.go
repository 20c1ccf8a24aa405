// Package ui provides the Phoenix presentation primitives as templ
// components. Every primitive computes its class attribute from a variant
// set plus optional per-breakpoint overrides; none of them carries client
// side behavior.
package ui

import (
	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/variant"
)

// Size is the shared size scale of the form controls.
type Size string

const (
	SizeSM   Size = "sm"
	SizeMD   Size = "md"
	SizeLG   Size = "lg"
	SizeFull Size = "full" // Input only
)

// Tone is a foreground color intent.
type Tone string

const (
	ToneDefault   Tone = "default"
	ToneMuted     Tone = "muted"
	ToneSurface   Tone = "surface" // Icon only
	TonePrimary   Tone = "primary"
	ToneSecondary Tone = "secondary"
	ToneSuccess   Tone = "success"
	ToneAccent    Tone = "accent"
	ToneWarning   Tone = "warning"
	ToneInverse   Tone = "inverse"
	ToneInherit   Tone = "inherit"
)

// State is the visual validation state of a form control.
type State string

const (
	StateDefault  State = "default"
	StateError    State = "error"
	StateSuccess  State = "success"
	StateDisabled State = "disabled"
)

// options builds variant options from value, class pairs.
func options(pairs ...string) []variant.Option {
	out := make([]variant.Option, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, variant.Option{Value: pairs[i], Class: pairs[i+1]})
	}
	return out
}

func when(pairs ...string) map[string][]string {
	m := make(map[string][]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = append(m[pairs[i]], pairs[i+1])
	}
	return m
}

// sizeAdapter turns a responsive size value into a selection of name.
func sizeAdapter[T ~string](name string) variant.Adapter[T] {
	return func(v T, _ variant.Props) variant.Props {
		return variant.Props{name: string(v)}
	}
}

// withClass prepends a class attribute to caller attributes.
func withClass(class string, attrs templ.Attributes, extra ...markup.Attr) []markup.Attr {
	out := []markup.Attr{markup.Opt("class", class)}
	out = append(out, extra...)
	return append(out, markup.FromTempl(attrs)...)
}
