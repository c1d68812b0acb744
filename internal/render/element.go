package render

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one HTML attribute. Attributes with an empty name are skipped so
// optional ones can sit inline in a literal.
type Attr struct {
	Name  string
	Value string
}

func attr(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

func attrIf(ok bool, name, value string) Attr {
	if !ok {
		return Attr{}
	}
	return Attr{Name: name, Value: value}
}

func class(classes ...string) Attr {
	return Attr{Name: "class", Value: classList(classes...)}
}

// Element is a node of the render tree. Attribute values and text children
// go through EscapeHTML; child components render as they are.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []templ.Component
}

var voidElements = map[string]bool{
	"br":    true,
	"input": true,
	"link":  true,
	"meta":  true,
}

func el(tag string, attrs ...Attr) Element {
	return Element{Tag: tag, Attrs: attrs}
}

// Append returns a copy of e with children added. Nil children are
// ignored when rendering.
func (e Element) Append(children ...templ.Component) Element {
	e.Children = append(e.Children[:len(e.Children):len(e.Children)], children...)
	return e
}

func (e Element) Render(ctx context.Context, w io.Writer) error {
	var open strings.Builder
	open.WriteString("<")
	open.WriteString(e.Tag)
	for _, a := range e.Attrs {
		if a.Name == "" {
			continue
		}
		open.WriteString(" ")
		open.WriteString(a.Name)
		open.WriteString(`="`)
		open.WriteString(EscapeHTML(a.Value))
		open.WriteString(`"`)
	}
	open.WriteString(">")
	if _, err := io.WriteString(w, open.String()); err != nil {
		return err
	}
	if voidElements[e.Tag] {
		return nil
	}

	if err := fragment(e.Children).Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

// fragment renders its components one after another.
type fragment []templ.Component

func (f fragment) Render(ctx context.Context, w io.Writer) error {
	for _, c := range f {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

func text(s string) templ.Component {
	return templ.Raw(EscapeHTML(s))
}

func classList(classes ...string) string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
