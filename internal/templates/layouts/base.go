// Package layouts holds the page chrome shared by every rendered page.
package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Base wraps page content in the HTML shell. The nav component is nil for
// the login and access-denied pages.
func Base(title string, nav, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>`+templ.EscapeString(title)+`</title>`+
				`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`+
				`<link rel="stylesheet" href="/static/app.css">`+
				`</head><body>`); err != nil {
			return err
		}
		if nav != nil {
			if err := nav.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<main class="page">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
