package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mithrel/scribe/pkg/api"
)

// TSV columns: id, title, updated (RFC3339), words
var headerLine = "id\ttitle\tupdated\twords\n"

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

// WordCount counts whitespace-separated words in s.
func WordCount(s string) int { return len(strings.Fields(s)) }

func plainLine(d api.Document) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d\n",
		esc(d.ID), esc(d.Title), d.UpdatedAt.UTC().Format(time.RFC3339), WordCount(d.Body))
}

func WritePlainDocuments(w io.Writer, docs []api.Document, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, headerLine)
	}
	for _, d := range docs {
		_, _ = io.WriteString(tw, plainLine(d))
	}
	return tw.Flush()
}

// WritePlainDocument prints one document as its raw Markdown body.
func WritePlainDocument(w io.Writer, d api.Document) error {
	body := d.Body
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	_, err := io.WriteString(w, body)
	return err
}
