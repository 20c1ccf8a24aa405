package markup

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	out, err := String(context.Background(), c)
	require.NoError(t, err)
	return out
}

func TestEl(t *testing.T) {
	got := render(t, El("div", []Attr{A("class", "ui:flex"), Opt("id", ""), Flag("hidden", true), Flag("inert", false)},
		El("span", nil, Text("a < b")),
		nil,
	))
	assert.Equal(t, `<div class="ui:flex" hidden><span>a &lt; b</span></div>`, got)
}

func TestElEscapesAttributes(t *testing.T) {
	got := render(t, El("p", []Attr{A("title", `say "hi" & <go>`)}))
	doc, err := html.Parse(strings.NewReader(got))
	require.NoError(t, err)

	var p *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			p = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	require.NotNil(t, p)
	require.Len(t, p.Attr, 1)
	assert.Equal(t, `say "hi" & <go>`, p.Attr[0].Val)
}

func TestVoidElement(t *testing.T) {
	got := render(t, El("input", []Attr{A("type", "checkbox"), Flag("checked", true)}, Text("ignored")))
	assert.Equal(t, `<input type="checkbox" checked>`, got)
}

func TestUnknownElement(t *testing.T) {
	_, err := String(context.Background(), El("blink2", nil))
	require.ErrorIs(t, err, ErrUnknownElement)
}

func TestInvalidAttribute(t *testing.T) {
	_, err := String(context.Background(), El("div", []Attr{A(`on"click`, "x")}))
	require.ErrorIs(t, err, ErrInvalidAttribute)

	var buf bytes.Buffer
	err = El("div", []Attr{A("id", "a"), A("class", "b"), A("bad key", "c")}).Render(context.Background(), &buf)
	require.ErrorIs(t, err, ErrInvalidAttribute)
	assert.Empty(t, buf.String(), "nothing is written for a rejected element")
}

func TestFromTempl(t *testing.T) {
	attrs := FromTempl(templ.Attributes{"hx-post": "/save", "disabled": true, "tabindex": 0, "hidden": false})
	got := render(t, El("button", attrs))
	assert.Equal(t, `<button disabled hx-post="/save" tabindex="0"></button>`, got)
}

func TestGroupAndIf(t *testing.T) {
	got := render(t, Group(Text("a"), If(false, Text("b")), If(true, Text("c"))))
	assert.Equal(t, "ac", got)
}
