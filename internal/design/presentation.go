package design

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered list of CSS declarations destined for a style attribute.
type Style []Declaration

// Get returns the value of property and whether it is declared.
func (s Style) Get(property string) (string, bool) {
	for _, d := range s {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// String renders the declarations as an inline style value.
func (s Style) String() string {
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	return b.String()
}

const (
	systemUIFamily  = "System UI"
	genericFallback = "sans-serif"

	dividerWidth = "80px"
)

var familyIdent = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*( [A-Za-z][A-Za-z0-9_-]*)*$`)

// FontPresentation maps the font settings to the title's inline style.
func FontPresentation(f FontConfig) Style {
	family := cssFamily(f.Family)
	if f.Family == systemUIFamily {
		family = genericFallback
	}
	return Style{
		{"font-family", family},
		{"font-size", px(f.Size)},
		{"font-weight", strconv.Itoa(f.Weight)},
		{"color", f.Color},
		{"opacity", formatFloat(f.Opacity)},
		{"letter-spacing", formatFloat(f.LetterSpacing) + "em"},
		{"line-height", formatFloat(f.LineHeight)},
	}
}

// DividerPresentation maps the divider settings to an inline style. It
// reports false when no divider should be rendered: for DividerNone and for
// any value outside the declared variants.
func DividerPresentation(d DividerConfig) (Style, bool) {
	var treatment Style
	switch d.Type {
	case DividerLine:
		treatment = Style{
			{"height", px(d.Thickness)},
			{"background-color", d.Color},
		}
	case DividerDot:
		treatment = Style{
			{"height", px(d.Thickness)},
			{"background-color", "transparent"},
			{"border-top", px(d.Thickness) + " dotted " + d.Color},
		}
	case DividerGradient:
		treatment = Style{
			{"height", px(d.Thickness)},
			{"background-color", "transparent"},
			{"background-image", "linear-gradient(to right, transparent, " + d.Color + ", transparent)"},
		}
	default:
		return nil, false
	}

	style := Style{
		{"width", dividerWidth},
		{"margin-top", px(d.Spacing)},
		{"margin-bottom", px(d.Spacing)},
	}
	return append(style, treatment...), true
}

// cssFamily returns name as a CSS font family. Names made of plain words are
// emitted as identifiers; anything else becomes a quoted string with quotes,
// backslashes and control characters escaped.
func cssFamily(name string) string {
	if familyIdent.MatchString(name) {
		return name
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range name {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case unicode.IsControl(r):
			b.WriteString(`\` + strconv.FormatInt(int64(r), 16) + " ")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
