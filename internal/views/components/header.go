package components

import (
	"context"

	"github.com/a-h/templ"

	"designflow/internal/views/markup"
	"designflow/internal/views/theme"
)

const (
	logoIconPath   = "M12 6V4m0 2a2 2 0 100 4m0-4a2 2 0 110 4m-6 8a2 2 0 100-4m0 4a2 2 0 110-4m0 4v2m0-6V4m6 6v10m6-2a2 2 0 100-4m0 4a2 2 0 110-4m0 4v2m0-6V4"
	uploadIconPath = "M4 16v1a2 2 0 002 2h12a2 2 0 002-2v-1m-5-8l-3-3m0 0l-3 3m3-3v12"
)

// UploadLabel returns the header upload button label.
func UploadLabel(hasImage bool) string {
	if hasImage {
		return "Replace Screenshot"
	}
	return "Upload Image"
}

func icon(m *markup.Writer, class, path string) {
	m.Open("svg", markup.Class(class), markup.A("fill", "none"), markup.A("stroke", "currentColor"), markup.A("viewBox", "0 0 24 24"))
	m.Open("path", markup.A("stroke-linecap", "round"), markup.A("stroke-linejoin", "round"), markup.A("stroke-width", "2"), markup.A("d", path))
	m.Close("path")
	m.Close("svg")
}

// Header renders the brand bar with the upload trigger, the chrome theme
// switch and the export button.
func Header(th theme.WorkspaceTheme, hasImage bool) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("header", markup.Class(th.HeaderClass))

		m.Open("div", markup.Class("flex items-center gap-3"))
		m.Open("div", markup.Class("w-8 h-8 bg-blue-600 rounded-lg flex items-center justify-center"))
		icon(m, "w-5 h-5 text-white", logoIconPath)
		m.Close("div")
		m.Open("h1", markup.Class(th.TitleClass))
		m.Text("DesignFlow ")
		m.Element("span", "v1.2", markup.Class("text-slate-400 font-normal ml-1"))
		m.Close("h1")
		m.Close("div")

		m.Open("div", markup.Class("flex items-center gap-4"))
		themeSwitch(m, th)

		m.Open("form",
			markup.A("id", "upload-form"),
			markup.A("hx-post", UploadPath),
			markup.A("hx-encoding", "multipart/form-data"),
			markup.A("hx-trigger", "change"),
			markup.A("hx-target", "#"+WorkspaceID),
			markup.A("hx-swap", "outerHTML"),
			markup.Class("hidden"),
		)
		m.Void("input",
			markup.A("type", "file"),
			markup.A("id", UploadInputID),
			markup.A("name", UploadFieldKey),
			markup.A("accept", "image/*"),
		)
		m.Close("form")

		m.Open("label",
			markup.A("for", UploadInputID),
			markup.A("id", "upload-trigger"),
			markup.Class("flex items-center gap-2 px-4 py-2 text-sm font-semibold rounded-lg transition-colors cursor-pointer", th.SecondaryButton),
		)
		icon(m, "w-4 h-4", uploadIconPath)
		m.Text(UploadLabel(hasImage))
		m.Close("label")

		m.Element("button", "Export Improvements",
			markup.A("type", "button"),
			markup.A("id", "export-improvements"),
			markup.Class("px-4 py-2 text-sm font-semibold text-white bg-blue-600 hover:bg-blue-700 rounded-lg shadow-md shadow-blue-100 transition-all"),
		)
		m.Close("div")

		m.Close("header")
	})
}

func themeSwitch(m *markup.Writer, th theme.WorkspaceTheme) {
	m.Open("select",
		markup.A("name", FieldTheme),
		markup.A("aria-label", "Studio theme"),
		markup.A("hx-post", PreferencesPath),
		markup.A("hx-trigger", "change"),
		markup.A("hx-swap", "none"),
		markup.Class("text-xs px-2 py-1.5 rounded-lg border border-slate-200 bg-transparent"),
	)
	for _, opt := range theme.Options() {
		m.Element("option", opt.Label, markup.A("value", opt.Value), markup.FlagIf("selected", opt.Value == th.Key))
	}
	m.Close("select")
}
