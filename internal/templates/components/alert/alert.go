// Package alert renders the single user-visible notification for a failed
// backend action. The message comes through from the backend verbatim.
package alert

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Alert(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		_, err := io.WriteString(w,
			`<div class="alert" role="alert">`+templ.EscapeString(message)+`</div>`)
		return err
	})
}
