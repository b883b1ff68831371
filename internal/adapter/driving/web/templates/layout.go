// Package templates provides the shared HTML chrome around page components.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps a page component in the site chrome: document head,
// stylesheet link, top bar, and main container.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`+
			templ.EscapeString(title)+
			` | evaldash</title><link rel="stylesheet" href="/static/app.css"></head><body>`+
			`<header class="topbar"><a class="brand" href="/items">evaldash</a><nav><a href="/items">Items</a></nav></header>`+
			`<main class="container">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
