package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/evaldash/internal/adapter/driving/web/viewmodel"
)

// Error renders the full-page error view.
func Error(vm viewmodel.ErrorPage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="error-page"><h1>`)
		h.text(vm.Title)
		h.raw(`</h1><p>`)
		h.text(vm.Message)
		h.raw(`</p><a class="btn" href="/items">Back to items</a></section>`)
		return h.err
	})
}
