// Package markup writes HTML elements for the ui primitives.
package markup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html/atom"
)

var (
	// ErrUnknownElement is returned when rendering a tag HTML does not define.
	ErrUnknownElement = errors.New("unknown element")
	// ErrInvalidAttribute is returned for attribute names that cannot be written safely.
	ErrInvalidAttribute = errors.New("invalid attribute name")
)

var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Source: true, atom.Track: true,
	atom.Wbr: true,
}

// svgElements are accepted for inline SVG whether or not atom knows them.
var svgElements = map[string]bool{
	"path": true, "g": true, "circle": true, "rect": true,
	"line": true, "polyline": true, "polygon": true, "ellipse": true,
}

// Attr is a single attribute. Boolean attributes render their key alone.
type Attr struct {
	Key   string
	Value string
	Bool  bool
	omit  bool
}

// A is a plain key="value" attribute.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Opt is like A but is omitted when value is empty.
func Opt(key, value string) Attr {
	return Attr{Key: key, Value: value, omit: value == ""}
}

// Flag is a boolean attribute, omitted when off.
func Flag(key string, on bool) Attr {
	return Attr{Key: key, Bool: true, omit: !on}
}

// FromTempl converts caller supplied attributes into Attrs sorted by key.
// Boolean values become flags; other values are formatted with fmt.
func FromTempl(attrs templ.Attributes) []Attr {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Attr, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			out = append(out, Flag(k, v))
		case string:
			out = append(out, A(k, v))
		default:
			out = append(out, A(k, fmt.Sprint(v)))
		}
	}
	return out
}

func validKey(k string) bool {
	if k == "" {
		return false
	}
	return !strings.ContainsAny(k, " \t\n\f\r\"'<>/=`")
}

type element struct {
	tag      string
	attrs    []Attr
	children []templ.Component
}

// El builds an element. Nil children are skipped.
func El(tag string, attrs []Attr, children ...templ.Component) templ.Component {
	return &element{tag: tag, attrs: attrs, children: children}
}

func (e *element) Render(ctx context.Context, w io.Writer) error {
	a := atom.Lookup([]byte(e.tag))
	if a == 0 && !svgElements[e.tag] {
		return fmt.Errorf("%w: <%s>", ErrUnknownElement, e.tag)
	}

	for _, attr := range e.attrs {
		if !attr.omit && !validKey(attr.Key) {
			return fmt.Errorf("%w: %q on <%s>", ErrInvalidAttribute, attr.Key, e.tag)
		}
	}

	ew := &errWriter{w: w}
	ew.write("<", e.tag)
	for _, attr := range e.attrs {
		if attr.omit {
			continue
		}
		if attr.Bool {
			ew.write(" ", attr.Key)
			continue
		}
		ew.write(" ", attr.Key, `="`, templ.EscapeString(attr.Value), `"`)
	}
	ew.write(">")
	if ew.err != nil {
		return ew.err
	}
	if voidElements[a] {
		return nil
	}

	for _, c := range e.children {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	ew.write("</", e.tag, ">")
	return ew.err
}

// Text renders s escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders children one after another without a wrapper.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// If returns c when cond holds and nil otherwise.
func If(cond bool, c templ.Component) templ.Component {
	if !cond {
		return nil
	}
	return c
}

// String renders c into a string.
func String(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(parts ...string) {
	for _, p := range parts {
		if e.err != nil {
			return
		}
		_, e.err = io.WriteString(e.w, p)
	}
}
