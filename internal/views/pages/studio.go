package pages

import (
	"context"

	"github.com/a-h/templ"

	"designflow/internal/design"
	"designflow/internal/studio"
	"designflow/internal/views/components"
	"designflow/internal/views/layout"
	"designflow/internal/views/markup"
	"designflow/internal/views/theme"
)

// StudioView aggregates what the studio page needs to render one workspace.
type StudioView struct {
	Snapshot  studio.Snapshot
	Catalogue design.Catalogue
	Theme     theme.WorkspaceTheme
	Notice    string
	// Trigger is the id of the control that sent a live edit.
	Trigger string
}

// NewStudioView resolves the chrome theme and the catalogue for snap.
func NewStudioView(snap studio.Snapshot, themeKey, notice string) StudioView {
	return StudioView{
		Snapshot:  snap,
		Catalogue: design.DefaultCatalogue(),
		Theme:     theme.Resolve(themeKey),
		Notice:    notice,
	}
}

// Studio renders the full HTML document.
func Studio(view StudioView) templ.Component {
	return layout.Page("DesignFlow Studio", view.Theme, Workspace(view))
}

// Workspace renders the swappable application shell: header, controls,
// advisor and canvas.
func Workspace(view StudioView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		snap := view.Snapshot
		th := view.Theme

		m.Open("div",
			markup.A("id", components.WorkspaceID),
			markup.A("data-status", string(snap.Status)),
			markup.Class("flex flex-col h-full"),
		)
		m.Component(ctx, components.Header(th, snap.HasImage()))
		m.Component(ctx, components.Notice(th, view.Notice))

		m.Open("main", markup.Class("flex flex-1 overflow-hidden"))
		m.Open("aside", markup.Class(th.PanelClass))
		m.Open("div", markup.Class("p-6 space-y-8 pb-12"))
		m.Component(ctx, components.Advisor(th, snap))
		m.Component(ctx, components.ControlPanel(th, snap.Design, view.Catalogue))
		m.Close("div")
		m.Close("aside")

		m.Open("section", markup.A("id", components.CanvasID), markup.Class(th.CanvasClass))
		m.Component(ctx, components.Canvas(snap.Design, snap.Image.DataURL))
		m.Close("section")
		m.Close("main")

		m.Close("div")
	})
}

// DesignUpdate renders the canvas content followed by the out-of-band
// fragments a live control edit can change. Paired font inputs other than
// view.Trigger are refreshed so both halves of a pair agree.
func DesignUpdate(view StudioView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		cfg := view.Snapshot.Design
		m.Component(ctx, components.Canvas(cfg, view.Snapshot.Image.DataURL))
		m.Component(ctx, components.ContrastBadge(cfg.FontConfig.Color, true))
		m.Component(ctx, components.PresetBar(view.Theme, view.Catalogue, cfg.FontConfig.Size, true))
		m.Component(ctx, components.PairedFontInputs(cfg.FontConfig, view.Trigger))
	})
}
