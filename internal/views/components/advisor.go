package components

import (
	"context"

	"github.com/a-h/templ"

	"designflow/internal/studio"
	"designflow/internal/views/markup"
	"designflow/internal/views/theme"
)

// AdvisorPlaceholder is shown before the first upload.
const AdvisorPlaceholder = "Upload an image to get AI feedback..."

// Advisor renders the suggestion panel. While an analysis is pending it polls
// itself every second; the settled fragment carries no trigger, which stops
// the polling.
func Advisor(th theme.WorkspaceTheme, snap studio.Snapshot) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		root := []markup.Attr{
			markup.A("id", AdvisorID),
			markup.A("data-status", string(snap.Status)),
			markup.Class(th.CardClass),
		}
		if snap.Analyzing() {
			root = append(root,
				markup.A("hx-get", AdvisorPath),
				markup.A("hx-trigger", "every 1s"),
				markup.A("hx-swap", "outerHTML"),
				markup.A("aria-busy", "true"),
			)
		}
		m.Open("div", root...)

		m.Open("div", markup.Class("flex items-center gap-2 mb-2"))
		m.Open("div", markup.Class("w-2 h-2 rounded-full bg-blue-500", markup.When(snap.Analyzing(), "animate-pulse", "")))
		m.Close("div")
		m.Element("h3", "Gemini Design Advisor", markup.Class("text-xs font-bold uppercase tracking-wider text-slate-500"))
		m.Close("div")

		if snap.Feedback != "" {
			m.Element("div", snap.Feedback,
				markup.A("data-role", "feedback"),
				markup.Class("text-sm text-slate-600 leading-relaxed max-h-40 overflow-y-auto pr-2 whitespace-pre-line"),
			)
		} else {
			m.Element("p", AdvisorPlaceholder, markup.Class(th.MutedTextClass))
		}

		m.Close("div")
	})
}
