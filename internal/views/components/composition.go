package components

import (
	"context"

	"github.com/a-h/templ"

	"designflow/internal/design"
	"designflow/internal/views/markup"
	"designflow/internal/views/theme"
)

const (
	checkIconPath = "M5 13l4 4L19 7"
	imageIconPath = "M4 16l4.586-4.586a2 2 0 012.828 0L16 16m-2-2l1.586-1.586a2 2 0 012.828 0L20 14m-6-6h.01M6 20h12a2 2 0 002-2V6a2 2 0 00-2-2H6a2 2 0 00-2 2v12a2 2 0 002 2z"
)

func columnClass(columns int) string {
	return "md:w-" + itoa(columns) + "/12"
}

// Composition renders the live preview of cfg around the uploaded image.
func Composition(cfg design.Configuration, imageURL string) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		arrangement := design.Arrange(cfg.LayoutMode)
		shadow := design.ShadowTreatment(cfg.ShadowIntensity)

		m.Open("div", markup.A("id", CompositionID), markup.Class("w-full max-w-6xl mx-auto"))
		m.Open("div",
			markup.A("data-layout", string(cfg.LayoutMode)),
			markup.A("data-shadow", string(cfg.ShadowIntensity)),
			markup.A("style", design.ContainerStyle(cfg).String()),
			markup.Class("bg-white p-8 md:p-16 relative overflow-hidden flex flex-col md:flex-row gap-12 min-h-[600px] transition-all duration-500"),
		)

		if cfg.UseGradient {
			m.Open("div",
				markup.A("data-role", "gradient"),
				markup.Class("absolute top-0 right-0 w-[500px] h-[500px] bg-blue-50/50 rounded-full blur-[100px] -translate-y-1/2 translate-x-1/2 -z-0 pointer-events-none"),
			)
			m.Close("div")
		}

		m.Open("div",
			markup.A("data-role", "text"),
			markup.A("data-columns", itoa(arrangement.TextColumns)),
			markup.Class("relative z-10 flex flex-col justify-center transition-all duration-500", columnClass(arrangement.TextColumns)),
		)
		m.Open("div", markup.Class("space-y-4"))
		m.Element("span", "Improved Identity",
			markup.Class("inline-block py-1 px-3 bg-blue-100 text-blue-600 text-[10px] font-bold uppercase tracking-widest rounded-full"))
		m.Element("h2", cfg.Title,
			markup.A("data-role", "title"),
			markup.A("style", design.FontPresentation(cfg.FontConfig).String()+" transition: all 0.3s ease;"),
			markup.Class("group cursor-default"),
		)
		if style, ok := design.DividerPresentation(cfg.DividerConfig); ok {
			m.Open("div",
				markup.A("data-role", "divider"),
				markup.A("data-divider", string(cfg.DividerConfig.Type)),
				markup.A("style", style.String()),
			)
			m.Close("div")
		}
		m.Element("p", cfg.Subtitle,
			markup.A("data-role", "subtitle"),
			markup.Class("text-slate-500 text-lg md:text-xl font-light leading-relaxed max-w-md"))
		m.Open("div", markup.Class("pt-8 flex flex-wrap gap-4"))
		m.Element("button", "Get Started Free", markup.A("type", "button"),
			markup.Class("px-8 py-4 bg-slate-900 text-white font-bold rounded-xl hover:bg-slate-800 transition-all hover:scale-105 shadow-lg shadow-slate-200"))
		m.Element("button", "Learn More", markup.A("type", "button"),
			markup.Class("px-8 py-4 bg-white border border-slate-200 text-slate-700 font-bold rounded-xl hover:bg-slate-50 transition-all"))
		m.Close("div")
		m.Close("div")
		m.Close("div")

		m.Open("div",
			markup.A("data-role", "visual"),
			markup.A("data-columns", itoa(arrangement.ImageColumns)),
			markup.Class("relative z-10 transition-all duration-700", columnClass(arrangement.ImageColumns)),
		)
		frame := design.Style{{Property: "border-radius", Value: "24px"}, {Property: "box-shadow", Value: shadow}}
		m.Open("div", markup.A("style", frame.String()), markup.Class("relative group transition-all duration-500 overflow-hidden"))
		m.Void("img",
			markup.A("src", imageURL),
			markup.A("alt", "Layout Improvement"),
			markup.Class("w-full h-full object-cover shadow-2xl transition-transform duration-700 group-hover:scale-110"),
		)
		m.Open("div", markup.Class("absolute inset-0 bg-gradient-to-t from-black/20 to-transparent pointer-events-none"))
		m.Close("div")
		m.Open("div", markup.Class("absolute top-4 right-4 flex gap-2"))
		m.Element("div", "Current Layout", markup.A("data-role", "overlay"),
			markup.Class("bg-white/90 backdrop-blur-sm p-2 rounded-lg text-[10px] font-bold shadow-sm border border-white/20"))
		m.Close("div")
		m.Close("div")

		if arrangement.AccentCard {
			m.Open("div",
				markup.A("data-role", "accent-card"),
				markup.Class("absolute -bottom-6 -left-6 bg-white p-6 rounded-2xl shadow-xl border border-slate-100 max-w-[200px] hidden lg:block animate-bounce-subtle"),
			)
			m.Open("div", markup.Class("w-10 h-10 bg-green-100 rounded-full flex items-center justify-center mb-3"))
			icon(m, "w-6 h-6 text-green-600", checkIconPath)
			m.Close("div")
			m.Element("h4", "Visual Match", markup.Class("font-bold text-slate-900 text-sm"))
			m.Element("p", "Colors and fonts optimized for your specific layout.", markup.Class("text-slate-500 text-[10px] mt-1"))
			m.Close("div")
		}
		m.Close("div")

		m.Close("div")
		m.Open("div", markup.Class("absolute inset-0 -z-10 pointer-events-none opacity-[0.03] canvas-grid"))
		m.Close("div")
		m.Close("div")
	})
}

// EmptyCanvas renders the idle state shown before the first upload.
func EmptyCanvas() templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div",
			markup.A("data-role", "empty-canvas"),
			markup.Class("h-full flex flex-col items-center justify-center text-slate-400 border-2 border-dashed border-slate-300 rounded-3xl m-8 min-h-[400px]"),
		)
		m.Open("div", markup.Class("w-16 h-16 mb-4 bg-slate-200 rounded-full flex items-center justify-center"))
		icon(m, "w-8 h-8 text-slate-400", imageIconPath)
		m.Close("div")
		m.Element("p", "No image uploaded", markup.Class("text-lg font-medium"))
		m.Element("label", "Upload Layout Screenshot",
			markup.A("for", UploadInputID),
			markup.Class("mt-4 px-6 py-2 bg-blue-600 text-white rounded-full font-medium hover:bg-blue-700 transition-colors shadow-lg shadow-blue-200 cursor-pointer"),
		)
		m.Close("div")
	})
}

// Canvas renders the preview area content: the composition once an image is
// uploaded, the idle state before.
func Canvas(cfg design.Configuration, imageURL string) templ.Component {
	if imageURL == "" {
		return EmptyCanvas()
	}
	return Composition(cfg, imageURL)
}

// Notice renders a dismissable error banner, or an empty placeholder.
func Notice(th theme.WorkspaceTheme, message string) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		if message == "" {
			m.Open("div", markup.A("id", NoticeID))
			m.Close("div")
			return
		}
		m.Open("div",
			markup.A("id", NoticeID),
			markup.A("role", "alert"),
			markup.A("data-theme", th.Key),
			markup.Class("mx-6 mt-4 px-4 py-3 rounded-lg border border-orange-200 bg-orange-50 text-sm text-orange-800"),
		)
		m.Text(message)
		m.Close("div")
	})
}
