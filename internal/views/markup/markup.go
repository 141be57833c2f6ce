// Package markup writes escaped HTML for the hand-built templ components.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is a single HTML attribute. Boolean attributes render without a value.
type Attr struct {
	Name    string
	Value   string
	Boolean bool
}

// A returns a name="value" attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Flag returns a boolean attribute such as disabled.
func Flag(name string) Attr {
	return Attr{Name: name, Boolean: true}
}

// FlagIf returns Flag(name) when on, and an attribute that renders nothing otherwise.
func FlagIf(name string, on bool) Attr {
	if !on {
		return Attr{}
	}
	return Flag(name)
}

// Class joins the non-empty class names into a class attribute.
func Class(classes ...string) Attr {
	return A("class", Classes(classes...))
}

// Classes joins the non-empty class names with single spaces.
func Classes(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// When returns class when cond holds and otherwise.
func When(cond bool, class, otherwise string) string {
	if cond {
		return class
	}
	return otherwise
}

// Writer accumulates the first write error so components can emit markup
// without checking every call.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes s as escaped character data.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Open writes a start tag.
func (m *Writer) Open(tag string, attrs ...Attr) {
	m.Raw("<" + tag)
	for _, attr := range attrs {
		switch {
		case attr.Name == "":
		case attr.Boolean:
			m.Raw(" " + attr.Name)
		default:
			m.Raw(" " + attr.Name + "=\"" + templ.EscapeString(attr.Value) + "\"")
		}
	}
	m.Raw(">")
}

// Close writes an end tag.
func (m *Writer) Close(tag string) {
	m.Raw("</" + tag + ">")
}

// Void writes an element without content, such as input.
func (m *Writer) Void(tag string, attrs ...Attr) {
	m.Open(tag, attrs...)
}

// Element writes a start tag, escaped text and the end tag.
func (m *Writer) Element(tag, text string, attrs ...Attr) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

// Component renders c in place.
func (m *Writer) Component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// Err returns the first error encountered.
func (m *Writer) Err() error {
	return m.err
}

// Component adapts a markup function to templ.Component.
func Component(render func(ctx context.Context, m *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := New(w)
		render(ctx, m)
		return m.Err()
	})
}
