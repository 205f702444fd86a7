package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/scribe/pkg/api"
)

func WriteJSONDocuments(w io.Writer, docs []api.Document, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if docs == nil {
		docs = []api.Document{}
	}
	return enc.Encode(docs)
}

func WriteJSONDocument(w io.Writer, d api.Document, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(d)
}
