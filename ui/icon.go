package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/style"
	"github.com/phoenix-ui/phoenix/variant"
)

// ErrUnknownIcon is returned when rendering an icon name with no glyph.
var ErrUnknownIcon = errors.New("unknown icon")

// IconName names a registered glyph.
type IconName string

const (
	IconHome   IconName = "home"
	IconUser   IconName = "user"
	IconSearch IconName = "search"
	IconBell   IconName = "bell"
	IconPlus   IconName = "plus"
	IconMinus  IconName = "minus"
)

// glyphs holds path data on a 32x32 grid.
var glyphs = map[IconName][]string{
	IconHome: {
		"M16 2.6 3.3 15.3l1.4 1.4L6 15.4V29h8v-8h4v8h8V15.4l1.3 1.3 1.4-1.4L16 2.6zM24 27h-4v-8h-8v8H8V13.4l8-8 8 8V27z",
	},
	IconUser: {
		"M16 5a7 7 0 0 0-3.9 12.8A10 10 0 0 0 6 27h2a8 8 0 0 1 16 0h2a10 10 0 0 0-6.1-9.2A7 7 0 0 0 16 5zm0 2a5 5 0 1 1 0 10 5 5 0 0 1 0-10z",
	},
	IconSearch: {
		"M19 3a10 10 0 0 0-7.7 16.4L3.3 27.3l1.4 1.4 8-8A10 10 0 1 0 19 3zm0 2a8 8 0 1 1 0 16 8 8 0 0 1 0-16z",
	},
	IconBell: {
		"M16 3a2 2 0 0 0-2 2v.2A9 9 0 0 0 7 14v7.5L5.3 23.3 5 23.6V26h8.2a3 3 0 0 0 5.6 0H27v-2.4l-.3-.3L25 21.5V14a9 9 0 0 0-7-8.8V5a2 2 0 0 0-2-2zm0 4a7 7 0 0 1 7 7v8.4l1.6 1.6H7.4L9 22.4V14a7 7 0 0 1 7-7z",
	},
	IconPlus: {
		"M15 5v10H5v2h10v10h2V17h10v-2H17V5h-2z",
	},
	IconMinus: {
		"M5 15v2h22v-2H5z",
	},
}

// IconNames lists the registered glyphs in sorted order.
func IconNames() []IconName {
	out := make([]IconName, 0, len(glyphs))
	for n := range glyphs {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var iconVariants = &variant.Set{
	Name: "Icon",
	Variants: []variant.Variant{
		{Name: "size", Options: options(
			"sm", "ui:icon-size-sm",
			"md", "ui:icon-size-md",
			"lg", "ui:icon-size-lg",
		)},
		{Name: "color", Options: options(
			"default", "ui:text-ui-fg",
			"muted", "ui:text-ui-fg-muted",
			"surface", "ui:text-ui-surface",
			"primary", "ui:text-ui-primary",
			"secondary", "ui:text-ui-secondary",
			"success", "ui:text-ui-secondary",
			"accent", "ui:text-ui-accent",
			"warning", "ui:text-ui-accent",
			"inverse", "ui:text-ui-bg",
			"inherit", "ui:text-inherit",
		)},
	},
	Defaults: variant.Props{"size": "sm", "color": "default"},
}

// IconProps configures an Icon.
type IconProps struct {
	Name       IconName
	Size       Size
	Color      Tone
	Responsive style.Responsive[Size]
	Label      string // accessible name; decorative when empty
}

func (p IconProps) class() string {
	return variant.Class(iconVariants,
		variant.Props{"size": string(p.Size), "color": string(p.Color)},
		p.Responsive, sizeAdapter[Size]("size"))
}

// Icon renders a registered glyph as inline SVG inside a div.
func Icon(p IconProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		paths, ok := glyphs[p.Name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownIcon, p.Name)
		}

		children := make([]templ.Component, len(paths))
		for i, d := range paths {
			children[i] = markup.El("path", []markup.Attr{markup.A("d", d)})
		}
		attrs := []markup.Attr{
			markup.A("class", p.class()),
			markup.A("viewBox", "0 0 32 32"),
			markup.A("fill", "currentColor"),
			markup.A("data-icon", string(p.Name)),
		}
		if p.Label != "" {
			attrs = append(attrs, markup.A("role", "img"), markup.A("aria-label", p.Label))
		} else {
			attrs = append(attrs, markup.A("aria-hidden", "true"))
		}
		return markup.El("div", nil, markup.El("svg", attrs, children...)).Render(ctx, w)
	})
}
