// Package pages holds the page components of the dashboard. Components are
// plain Go writers behind the templ.Component interface; dynamic text is
// escaped at the write site, markdown fields arrive pre-sanitized and are
// written raw.
package pages

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so component bodies can be
// written as straight-line code.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) f(format string, args ...any) {
	if h.err == nil {
		_, h.err = fmt.Fprintf(h.w, format, args...)
	}
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// option writes one <option>, marking it selected when its value matches.
func option(h *htmlWriter, value, label, selected string) {
	h.raw(`<option value="` + esc(value) + `"`)
	if value == selected {
		h.raw(` selected`)
	}
	h.raw(`>` + esc(label) + `</option>`)
}

// hiddenField writes a hidden input, skipping it when the value is empty.
func hiddenField(h *htmlWriter, name, value string) {
	if value == "" {
		return
	}
	h.raw(`<input type="hidden" name="` + esc(name) + `" value="` + esc(value) + `">`)
}
