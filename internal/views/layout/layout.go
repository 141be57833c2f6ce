package layout

import (
	"context"

	"github.com/a-h/templ"

	"designflow/internal/views/markup"
	"designflow/internal/views/theme"
)

const (
	tailwindSrc = "https://cdn.tailwindcss.com"
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	fontsHref   = "https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&family=Roboto:wght@400;500;700&family=Open+Sans:wght@400;600;700&family=Playfair+Display:wght@400;700&family=Merriweather:wght@400;700&family=Lora:wght@400;700&family=Space+Grotesk:wght@400;500;700&family=Montserrat:wght@400;600;700&family=Bungee&display=swap"
)

// htmxConfig lets rejected edits and uploads swap their re-rendered workspace.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"(400|413|422)","swap":true,"error":true},{"code":"[45]..","swap":false,"error":true}]}`

const pageStyles = `@keyframes bounce-subtle { 0%, 100% { transform: translateY(0); } 50% { transform: translateY(-10px); } }
.animate-bounce-subtle { animation: bounce-subtle 4s ease-in-out infinite; }
.canvas-grid { background-image: radial-gradient(#000 1px, transparent 0); background-size: 32px 32px; }`

// Page renders the HTML document around content.
func Page(title string, th theme.WorkspaceTheme, content templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Raw("<!DOCTYPE html>")
		m.Open("html", markup.A("lang", "en"), markup.A("data-theme", th.Key))
		m.Open("head")
		m.Void("meta", markup.A("charset", "utf-8"))
		m.Void("meta", markup.A("name", "viewport"), markup.A("content", "width=device-width, initial-scale=1"))
		m.Void("meta", markup.A("name", "htmx-config"), markup.A("content", htmxConfig))
		m.Element("title", title)
		m.Void("link", markup.A("rel", "stylesheet"), markup.A("href", fontsHref))
		m.Open("script", markup.A("src", tailwindSrc))
		m.Close("script")
		m.Open("script", markup.A("src", htmxSrc), markup.Flag("defer"))
		m.Close("script")
		m.Open("style")
		m.Raw(pageStyles)
		m.Close("style")
		m.Close("head")
		m.Open("body", markup.Class(th.BodyClass))
		m.Component(ctx, content)
		m.Close("body")
		m.Close("html")
	})
}
