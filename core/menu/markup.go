package menu

import (
	"io"

	"github.com/a-h/templ"
)

type attr struct {
	name  string
	value string
}

// htmlWriter keeps the first write error and turns later writes into no-ops.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// open writes a start tag. Attributes with empty values are omitted.
func (hw *htmlWriter) open(tag string, attrs []attr) {
	hw.raw("<" + tag)
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		hw.raw(" " + a.name + `="` + templ.EscapeString(a.value) + `"`)
	}
	hw.raw(">")
}

func (hw *htmlWriter) close(tag string) {
	hw.raw("</" + tag + ">")
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}
