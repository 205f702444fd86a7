package present

import (
	"io"

	"github.com/mithrel/scribe/internal/present/format"
	"github.com/mithrel/scribe/internal/render"
	"github.com/mithrel/scribe/pkg/api"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
	Terminal   render.TerminalOptions
}

// ParseMode parses "plain", "pretty", "json" or "ndjson".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	default:
		return ModePlain, false
	}
}

// RenderDocuments renders a list of documents according to options.
func RenderDocuments(w io.Writer, docs []api.Document, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONDocuments(w, docs, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONDocuments(w, docs)
	case ModePretty:
		return format.WritePrettyDocuments(w, docs, opts.Headers)
	default:
		return format.WritePlainDocuments(w, docs, opts.Headers)
	}
}

// RenderStats renders the attribute view of d: JSON for the JSON modes,
// an aligned table otherwise.
func RenderStats(w io.Writer, d api.Document, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONStats(w, d, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteJSONStats(w, d, false)
	default:
		return format.WritePlainStats(w, d)
	}
}

// RenderDocument renders a single document according to options.
func RenderDocument(w io.Writer, d api.Document, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONDocument(w, d, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteJSONDocument(w, d, false)
	case ModePretty:
		return format.WritePrettyDocument(w, d, opts.Terminal)
	default:
		return format.WritePlainDocument(w, d)
	}
}
