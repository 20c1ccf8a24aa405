package docgen

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/ui"
	"github.com/phoenix-ui/phoenix/variant"
)

// StoryOptions configures the story page.
type StoryOptions struct {
	// Stylesheet is linked from the page head when set.
	Stylesheet string
}

func example(caption string, c templ.Component, attrs ...markup.Attr) templ.Component {
	return markup.El("figure", append([]markup.Attr{markup.A("class", "phx-story-example")}, attrs...),
		markup.El("figcaption", nil, markup.Text(caption)),
		markup.El("div", []markup.Attr{markup.A("class", "phx-story-canvas")}, c),
	)
}

// Story renders an HTML page showing e with its defaults and once per
// option of every variant group.
func Story(e ui.Entry, opts StoryOptions) templ.Component {
	sections := []templ.Component{
		markup.El("section", []markup.Attr{markup.A("id", "default")},
			markup.El("h2", nil, markup.Text("Default")),
			example("defaults", e.Sample(nil)),
		),
	}
	if e.Variants != nil {
		for _, v := range e.Variants.Variants {
			examples := make([]templ.Component, 0, len(v.Options)+1)
			examples = append(examples, markup.El("h2", nil, markup.Text(v.Name)))
			for _, o := range v.Options {
				examples = append(examples, example(v.Name+"="+o.Value,
					e.Sample(variant.Props{v.Name: o.Value}),
					markup.A("data-variant", v.Name),
					markup.A("data-value", o.Value),
				))
			}
			sections = append(sections, markup.El("section", []markup.Attr{markup.A("id", "variant-"+v.Name)}, examples...))
		}
	}

	head := markup.El("head", nil,
		markup.El("meta", []markup.Attr{markup.A("charset", "utf-8")}),
		markup.El("title", nil, markup.Text(e.Name+" stories")),
		markup.If(opts.Stylesheet != "", markup.El("link", []markup.Attr{
			markup.A("rel", "stylesheet"),
			markup.A("href", opts.Stylesheet),
		})),
	)
	body := markup.El("body", nil,
		markup.El("main", nil,
			markup.El("h1", nil, markup.Text(e.Name)),
			markup.El("p", nil, markup.Text(e.Summary)),
			markup.Group(sections...),
		),
	)

	page := markup.El("html", []markup.Attr{markup.A("lang", "en")}, head, body)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
			return err
		}
		return page.Render(ctx, w)
	})
}
