package format

import (
	"io"

	"github.com/mithrel/scribe/internal/render"
	"github.com/mithrel/scribe/pkg/api"
)

// WritePrettyDocument renders a single document with glamour.
func WritePrettyDocument(w io.Writer, d api.Document, opts render.TerminalOptions) error {
	out, err := render.Terminal(render.DocumentMarkdown(d), opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
