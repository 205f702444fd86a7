package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/scribe/pkg/api"
)

// WriteNDJSONDocuments writes documents as newline-delimited JSON objects.
func WriteNDJSONDocuments(w io.Writer, docs []api.Document) error {
	enc := json.NewEncoder(w)
	for _, d := range docs {
		if err := enc.Encode(d); err != nil {
			return err
		}
	}
	return nil
}
