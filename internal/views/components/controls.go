package components

import (
	"context"

	"github.com/a-h/templ"

	"designflow/internal/design"
	"designflow/internal/views/markup"
	"designflow/internal/views/theme"
)

// LayoutChoice is a layout mode offered by the control panel.
type LayoutChoice struct {
	Mode  design.LayoutMode
	Label string
}

// LayoutChoices lists the offered layout modes. Classic stays reachable only
// through the JSON API.
var LayoutChoices = []LayoutChoice{
	{Mode: design.LayoutModernCard, Label: "Balanced Card Grid"},
	{Mode: design.LayoutAsymmetric, Label: "Asymmetric Focus"},
}

// Font size and corner radius slider bounds.
const (
	FontSizeMin     = 12
	FontSizeMax     = 120
	CornerRadiusMax = 48
)

const liveTextTrigger = "input changed delay:300ms"

const liveRangeTrigger = "input changed delay:150ms, change"

// ContrastBadge renders the live contrast label for the title colour. With oob
// set the fragment replaces the badge out of band.
func ContrastBadge(color string, oob bool) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		contrast := design.ClassifyContrast(color)
		m.Element("span", string(contrast),
			markup.A("id", ContrastID),
			markup.A("data-contrast", markup.When(contrast.High(), "high", "low")),
			oobAttr(oob),
			markup.Class("text-[10px] px-2 py-0.5 rounded-full font-bold",
				markup.When(contrast.High(), "bg-green-100 text-green-700", "bg-orange-100 text-orange-700")),
		)
	})
}

// PresetBar renders the H1/H2/H3 buttons. The preset whose size matches the
// current font size is highlighted.
func PresetBar(th theme.WorkspaceTheme, cat design.Catalogue, size int, oob bool) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		active, hasActive := cat.ActivePreset(size)
		m.Open("div", markup.A("id", PresetBarID), oobAttr(oob), markup.Class("flex gap-2"))
		for _, p := range cat.Presets {
			on := hasActive && p.Key == active.Key
			m.Element("button", p.Key, attrs(panelControl(map[string]string{FieldPreset: p.Key}),
				markup.A("title", p.Label),
				markup.A("data-preset", p.Key),
				markup.A("aria-pressed", markup.When(on, "true", "false")),
				markup.Class("flex-1 py-2 text-xs font-bold border rounded-lg transition-all", markup.When(on, th.ActiveClass, th.OptionClass)),
			)...)
		}
		m.Close("div")
	})
}

func oobAttr(oob bool) markup.Attr {
	if !oob {
		return markup.Attr{}
	}
	return markup.A("hx-swap-oob", "true")
}

// ControlPanel renders every design control for cfg.
func ControlPanel(th theme.WorkspaceTheme, cfg design.Configuration, cat design.Catalogue) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", markup.A("id", "control-panel"), markup.Class("space-y-8"))
		typographySection(ctx, m, th, cfg.FontConfig, cat)
		dividerSection(m, th, cfg.DividerConfig)
		layoutSection(m, th, cfg)
		contentSection(m, th, cfg)
		m.Close("div")
	})
}

func sectionHeading(m *markup.Writer, th theme.WorkspaceTheme, text string) {
	m.Element("h2", text, markup.Class(th.HeadingClass, "mb-4"))
}

func label(m *markup.Writer, th theme.WorkspaceTheme, forID, text string) {
	m.Element("label", text, markup.A("for", forID), markup.Class(th.LabelClass))
}

func typographySection(ctx context.Context, m *markup.Writer, th theme.WorkspaceTheme, font design.FontConfig, cat design.Catalogue) {
	m.Open("section", markup.A("data-section", "typography"))
	m.Open("div", markup.Class("flex items-center justify-between mb-4"))
	m.Element("h2", "Typography System", markup.Class(th.HeadingClass))
	m.Component(ctx, ContrastBadge(font.Color, false))
	m.Close("div")

	m.Open("div", markup.Class("space-y-4"))
	m.Component(ctx, PresetBar(th, cat, font.Size, false))

	m.Open("div", markup.Class("space-y-1.5"))
	label(m, th, "font-family", "Font Family")
	m.Open("select", attrs(liveControl("change"),
		markup.A("id", "font-family"),
		markup.A("name", FieldFontFamily),
		markup.Class(th.InputClass),
	)...)
	listed := false
	for _, group := range cat.Families {
		m.Open("optgroup", markup.A("label", string(group.Category)))
		for _, name := range group.Names {
			selected := name == font.Family
			listed = listed || selected
			m.Element("option", name, markup.A("value", name), markup.FlagIf("selected", selected))
		}
		m.Close("optgroup")
	}
	if !listed {
		m.Element("option", font.Family, markup.A("value", font.Family), markup.Flag("selected"))
	}
	m.Close("select")
	m.Close("div")

	m.Open("div", markup.Class("space-y-1.5"))
	m.Open("div", markup.Class("flex justify-between items-center"))
	label(m, th, FontSizeInputID, "Font Size")
	fontSizeInput(m, font, false)
	m.Close("div")
	fontSizeRange(m, font, false)
	m.Close("div")

	m.Open("div", markup.Class("grid grid-cols-2 gap-4"))
	m.Open("div", markup.Class("space-y-1.5"))
	label(m, th, FontColorInputID, "Color (HEX)")
	m.Open("div", markup.Class("flex gap-2"))
	fontColorPicker(m, font, false)
	fontColorInput(m, font, false)
	m.Close("div")
	m.Close("div")
	m.Open("div", markup.Class("space-y-1.5"))
	label(m, th, "font-opacity", "Opacity")
	m.Open("div", markup.Class("flex items-center gap-2 h-10"))
	m.Void("input", attrs(liveControl(liveRangeTrigger),
		markup.A("type", "range"),
		markup.A("id", "font-opacity"),
		markup.A("name", FieldFontOpacity),
		markup.A("min", "0"),
		markup.A("max", "1"),
		markup.A("step", "0.1"),
		markup.A("value", ftoa(font.Opacity)),
		markup.Class("w-full h-1.5 bg-slate-200 rounded-lg appearance-none cursor-pointer accent-blue-600"),
	)...)
	m.Close("div")
	m.Close("div")
	m.Close("div")

	m.Open("div", markup.Class("grid grid-cols-3 gap-3"))
	numberField(m, th, "font-weight", "Weight", FieldFontWeight, itoa(font.Weight), "100")
	numberField(m, th, "letter-spacing", "Tracking (em)", FieldLetterSpacing, ftoa(font.LetterSpacing), "0.01")
	numberField(m, th, "line-height", "Line Height", FieldLineHeight, ftoa(font.LineHeight), "0.1")
	m.Close("div")

	m.Close("div")
	m.Close("section")
}

func fontSizeInput(m *markup.Writer, font design.FontConfig, oob bool) {
	m.Void("input", attrs(liveControl("change"),
		markup.A("type", "number"),
		markup.A("id", FontSizeInputID),
		markup.A("name", FieldFontSize),
		markup.A("min", "0"),
		markup.A("value", itoa(font.Size)),
		oobAttr(oob),
		markup.Class("w-12 text-center text-xs border-b border-slate-200 bg-transparent outline-none focus:border-blue-500"),
	)...)
}

func fontSizeRange(m *markup.Writer, font design.FontConfig, oob bool) {
	m.Void("input", attrs(liveControl(liveRangeTrigger),
		markup.A("type", "range"),
		markup.A("id", FontSizeRangeID),
		markup.A("name", FieldFontSize),
		markup.A("aria-label", "Font size"),
		markup.A("min", itoa(FontSizeMin)),
		markup.A("max", itoa(FontSizeMax)),
		markup.A("value", itoa(font.Size)),
		oobAttr(oob),
		markup.Class("w-full h-1.5 bg-slate-200 rounded-lg appearance-none cursor-pointer accent-blue-600"),
	)...)
}

func fontColorPicker(m *markup.Writer, font design.FontConfig, oob bool) {
	m.Void("input", attrs(liveControl("change"),
		markup.A("type", "color"),
		markup.A("id", FontColorPickerID),
		markup.A("name", FieldFontColor),
		markup.A("aria-label", "Font color picker"),
		markup.A("value", font.Color),
		oobAttr(oob),
		markup.Class("w-10 h-10 p-0.5 rounded-lg border border-slate-200 bg-white cursor-pointer"),
	)...)
}

func fontColorInput(m *markup.Writer, font design.FontConfig, oob bool) {
	m.Void("input", attrs(liveControl("change"),
		markup.A("type", "text"),
		markup.A("id", FontColorInputID),
		markup.A("name", FieldFontColor),
		markup.A("value", font.Color),
		markup.A("pattern", "#[0-9a-fA-F]{6}"),
		oobAttr(oob),
		markup.Class("w-full text-xs px-2 py-2 border border-slate-200 rounded-lg bg-slate-50 font-mono"),
	)...)
}

// PairedFontInputs re-renders the font size and colour inputs out of band so
// each pair shows the stored value. The input with id trigger is skipped to
// keep focus and an in-progress drag on the element being edited.
func PairedFontInputs(font design.FontConfig, trigger string) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		for _, input := range []struct {
			id     string
			render func(*markup.Writer, design.FontConfig, bool)
		}{
			{FontSizeInputID, fontSizeInput},
			{FontSizeRangeID, fontSizeRange},
			{FontColorPickerID, fontColorPicker},
			{FontColorInputID, fontColorInput},
		} {
			if input.id == trigger {
				continue
			}
			input.render(m, font, true)
		}
	})
}

func numberField(m *markup.Writer, th theme.WorkspaceTheme, id, text, name, value, step string) {
	m.Open("div", markup.Class("space-y-1.5"))
	label(m, th, id, text)
	m.Void("input", attrs(liveControl("change"),
		markup.A("type", "number"),
		markup.A("id", id),
		markup.A("name", name),
		markup.A("step", step),
		markup.A("value", value),
		markup.Class("w-full text-xs px-2 py-1.5 border border-slate-200 rounded-lg bg-slate-50"),
	)...)
	m.Close("div")
}

func dividerSection(m *markup.Writer, th theme.WorkspaceTheme, divider design.DividerConfig) {
	m.Open("section", markup.A("data-section", "divider"))
	sectionHeading(m, th, "Text Divider")
	m.Open("div", markup.Class("space-y-4"))

	m.Open("div", markup.Class("flex gap-2"))
	for _, kind := range design.DividerTypes {
		on := divider.Type == kind
		m.Element("button", string(kind), attrs(panelControl(map[string]string{FieldDividerType: string(kind)}),
			markup.A("data-divider", string(kind)),
			markup.A("aria-pressed", markup.When(on, "true", "false")),
			markup.Class("flex-1 py-2 text-[10px] font-bold border rounded-lg capitalize transition-all", markup.When(on, th.ActiveClass, th.OptionClass)),
		)...)
	}
	m.Close("div")

	// Hidden controls keep their values; switching back restores them.
	if divider.Type != design.DividerNone {
		m.Open("div", markup.A("data-role", "divider-settings"), markup.Class("space-y-4"))
		m.Open("div", markup.Class("space-y-1.5"))
		m.Element("span", "Thickness & Spacing", markup.Class(th.LabelClass))
		m.Open("div", markup.Class("grid grid-cols-2 gap-4"))
		dividerNumber(m, "H:", "Divider thickness", FieldDividerThickness, divider.Thickness)
		dividerNumber(m, "G:", "Divider spacing", FieldDividerSpacing, divider.Spacing)
		m.Close("div")
		m.Close("div")
		m.Open("div", markup.Class("space-y-1.5"))
		label(m, th, "divider-color", "Divider Color")
		m.Void("input", attrs(liveControl("change"),
			markup.A("type", "color"),
			markup.A("id", "divider-color"),
			markup.A("name", FieldDividerColor),
			markup.A("value", divider.Color),
			markup.Class("w-full h-8 p-1 rounded-lg border border-slate-200 cursor-pointer"),
		)...)
		m.Close("div")
		m.Close("div")
	}

	m.Close("div")
	m.Close("section")
}

func dividerNumber(m *markup.Writer, prefix, aria, name string, value int) {
	m.Open("div", markup.Class("flex items-center gap-2"))
	m.Element("span", prefix, markup.Class("text-[10px] text-slate-400"))
	m.Void("input", attrs(liveControl("change"),
		markup.A("type", "number"),
		markup.A("name", name),
		markup.A("aria-label", aria),
		markup.A("min", "0"),
		markup.A("value", itoa(value)),
		markup.Class("w-full text-xs px-2 py-1.5 border border-slate-200 rounded-lg bg-slate-50"),
	)...)
	m.Close("div")
}

func layoutSection(m *markup.Writer, th theme.WorkspaceTheme, cfg design.Configuration) {
	m.Open("section", markup.A("data-section", "layout"))
	sectionHeading(m, th, "Layout Architecture")
	m.Open("div", markup.Class("space-y-4"))

	m.Open("div", markup.Class("space-y-1.5"))
	m.Element("span", "Grid Strategy", markup.Class(th.LabelClass))
	m.Open("div", markup.Class("grid grid-cols-1 gap-2"))
	for _, choice := range LayoutChoices {
		on := cfg.LayoutMode == choice.Mode
		m.Open("button", attrs(panelControl(map[string]string{FieldLayoutMode: string(choice.Mode)}),
			markup.A("data-layout-choice", string(choice.Mode)),
			markup.A("aria-pressed", markup.When(on, "true", "false")),
			markup.Class("w-full py-2 px-3 text-left text-sm font-medium border rounded-xl flex items-center justify-between transition-all",
				markup.When(on, th.ActiveClass+" shadow-sm", th.OptionClass)),
		)...)
		m.Element("span", choice.Label)
		m.Close("button")
	}
	m.Close("div")
	m.Close("div")

	m.Open("div", markup.Class("flex items-center justify-between py-2 border-t border-slate-100"))
	m.Element("span", "Subtle Gradients", markup.Class("text-sm font-medium"))
	m.Open("button", attrs(panelControl(map[string]string{FieldUseGradient: ToggleValue}),
		markup.A("role", "switch"),
		markup.A("aria-label", "Subtle Gradients"),
		markup.A("aria-checked", markup.When(cfg.UseGradient, "true", "false")),
		markup.Class("w-10 h-5 rounded-full transition-colors relative", markup.When(cfg.UseGradient, "bg-blue-600", "bg-slate-300")),
	)...)
	m.Open("div", markup.Class("absolute top-1 w-3 h-3 bg-white rounded-full transition-all", markup.When(cfg.UseGradient, "left-6", "left-1")))
	m.Close("div")
	m.Close("button")
	m.Close("div")

	m.Open("div", markup.Class("space-y-2"))
	m.Element("span", "Shadow Depth", markup.Class(th.LabelClass))
	m.Open("div", markup.Class("flex gap-2"))
	for _, s := range design.ShadowIntensities {
		on := cfg.ShadowIntensity == s
		m.Element("button", string(s), attrs(panelControl(map[string]string{FieldShadowIntensity: string(s)}),
			markup.A("data-shadow", string(s)),
			markup.A("aria-pressed", markup.When(on, "true", "false")),
			markup.Class("flex-1 py-1.5 text-xs font-bold border rounded-lg capitalize transition-all", markup.When(on, th.ActiveClass, th.OptionClass)),
		)...)
	}
	m.Close("div")
	m.Close("div")

	m.Open("div", markup.Class("space-y-1.5"))
	label(m, th, "corner-radius", "Corner Radius")
	m.Void("input", attrs(liveControl(liveRangeTrigger),
		markup.A("type", "range"),
		markup.A("id", "corner-radius"),
		markup.A("name", FieldCornerRadius),
		markup.A("min", "0"),
		markup.A("max", itoa(CornerRadiusMax)),
		markup.A("value", itoa(cfg.CornerRadius)),
		markup.Class("w-full h-1.5 bg-slate-200 rounded-lg appearance-none cursor-pointer accent-blue-600"),
	)...)
	m.Close("div")

	m.Close("div")
	m.Close("section")
}

func contentSection(m *markup.Writer, th theme.WorkspaceTheme, cfg design.Configuration) {
	m.Open("section", markup.A("data-section", "content"))
	sectionHeading(m, th, "Content")
	m.Open("div", markup.Class("space-y-4"))

	m.Open("div", markup.Class("space-y-1.5"))
	label(m, th, "design-title", "Title")
	m.Void("input", attrs(liveControl(liveTextTrigger),
		markup.A("type", "text"),
		markup.A("id", "design-title"),
		markup.A("name", FieldTitle),
		markup.A("value", cfg.Title),
		markup.Class(th.InputClass),
	)...)
	m.Close("div")

	m.Open("div", markup.Class("space-y-1.5"))
	label(m, th, "design-subtitle", "Subtitle")
	m.Open("textarea", attrs(liveControl(liveTextTrigger),
		markup.A("id", "design-subtitle"),
		markup.A("name", FieldSubtitle),
		markup.A("rows", "3"),
		markup.Class(th.InputClass),
	)...)
	m.Text(cfg.Subtitle)
	m.Close("textarea")
	m.Close("div")

	m.Close("div")
	m.Close("section")
}
