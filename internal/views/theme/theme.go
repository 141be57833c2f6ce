package theme

import (
	"strings"

	"designflow/models"
)

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string
	Label string
}

// WorkspaceTheme contains resolved styling primitives for the studio chrome.
// The preview composition is never themed.
type WorkspaceTheme struct {
	Key             string
	BodyClass       string
	HeaderClass     string
	TitleClass      string
	PanelClass      string
	CardClass       string
	CanvasClass     string
	HeadingClass    string
	LabelClass      string
	MutedTextClass  string
	InputClass      string
	OptionClass     string
	ActiveClass     string
	SecondaryButton string
}

var catalogue = map[string]WorkspaceTheme{
	models.ThemeLight: {
		Key:             models.ThemeLight,
		BodyClass:       "flex flex-col h-screen bg-slate-50 overflow-hidden font-sans",
		HeaderClass:     "h-16 bg-white border-b border-slate-200 flex items-center justify-between px-6 z-20 shadow-sm",
		TitleClass:      "text-xl font-bold tracking-tight text-slate-900",
		PanelClass:      "w-[380px] border-r border-slate-200 bg-white overflow-y-auto z-10 shadow-xl",
		CardClass:       "bg-slate-50 border border-slate-200 rounded-xl p-4",
		CanvasClass:     "flex-1 relative bg-[#e2e8f0] overflow-y-auto p-4 md:p-12",
		HeadingClass:    "text-sm font-bold uppercase tracking-widest text-slate-400",
		LabelClass:      "text-xs font-semibold text-slate-500",
		MutedTextClass:  "text-sm text-slate-400 italic",
		InputClass:      "w-full px-3 py-2 bg-slate-50 border border-slate-200 rounded-lg text-sm focus:ring-2 focus:ring-blue-500 outline-none",
		OptionClass:     "border-slate-200 text-slate-600 hover:border-slate-300",
		ActiveClass:     "border-blue-600 bg-blue-50 text-blue-600",
		SecondaryButton: "text-slate-700 bg-slate-100 hover:bg-slate-200",
	},
	models.ThemeDark: {
		Key:             models.ThemeDark,
		BodyClass:       "flex flex-col h-screen bg-slate-950 text-slate-100 overflow-hidden font-sans dark",
		HeaderClass:     "h-16 bg-slate-900 border-b border-slate-800 flex items-center justify-between px-6 z-20 shadow-sm",
		TitleClass:      "text-xl font-bold tracking-tight text-white",
		PanelClass:      "w-[380px] border-r border-slate-800 bg-slate-900 overflow-y-auto z-10 shadow-xl",
		CardClass:       "bg-slate-800 border border-slate-700 rounded-xl p-4",
		CanvasClass:     "flex-1 relative bg-slate-800 overflow-y-auto p-4 md:p-12",
		HeadingClass:    "text-sm font-bold uppercase tracking-widest text-slate-500",
		LabelClass:      "text-xs font-semibold text-slate-400",
		MutedTextClass:  "text-sm text-slate-500 italic",
		InputClass:      "w-full px-3 py-2 bg-slate-800 border border-slate-700 rounded-lg text-sm text-slate-100 focus:ring-2 focus:ring-blue-500 outline-none",
		OptionClass:     "border-slate-700 text-slate-300 hover:border-slate-500",
		ActiveClass:     "border-blue-500 bg-blue-950 text-blue-300",
		SecondaryButton: "text-slate-200 bg-slate-800 hover:bg-slate-700",
	},
}

var options = []Option{
	{Value: models.ThemeLight, Label: "Light"},
	{Value: models.ThemeDark, Label: "Dark"},
}

// Lookup returns the theme registered for key.
func Lookup(key string) (WorkspaceTheme, bool) {
	value, ok := catalogue[strings.ToLower(strings.TrimSpace(key))]
	return value, ok
}

// Resolve returns the registered theme configuration for the provided key,
// falling back to the default theme.
func Resolve(key string) WorkspaceTheme {
	if value, ok := Lookup(key); ok {
		return value
	}
	return catalogue[models.DefaultTheme]
}

// Options exposes the available theme selections for rendering in a form control.
func Options() []Option {
	return options
}
