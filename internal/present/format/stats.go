package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rivo/uniseg"

	"github.com/mithrel/scribe/pkg/api"
)

// Stats describes a document body the way a user counts it.
type Stats struct {
	Characters int `json:"characters"` // grapheme clusters
	Words      int `json:"words"`
	Lines      int `json:"lines"` // a trailing newline opens an empty last line
}

func CountStats(body string) Stats {
	if body == "" {
		return Stats{}
	}
	return Stats{
		Characters: uniseg.GraphemeClusterCount(body),
		Words:      WordCount(body),
		Lines:      strings.Count(body, "\n") + 1,
	}
}

type statsJSON struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Path    string    `json:"path,omitempty"`
	Created time.Time `json:"created_at"`
	Updated time.Time `json:"updated_at"`
	Counts  Stats     `json:"stats"`
}

func WriteJSONStats(w io.Writer, d api.Document, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(statsJSON{
		ID: d.ID, Title: d.Title, Path: d.Path,
		Created: d.CreatedAt.UTC(), Updated: d.UpdatedAt.UTC(),
		Counts: CountStats(d.Body),
	})
}

// WritePlainStats prints a two-column attribute table for d.
func WritePlainStats(w io.Writer, d api.Document) error {
	title := d.Title
	if title == "" {
		title = "Untitled"
	}
	location := d.Path
	if location == "" {
		location = "(not saved to a file)"
	}
	s := CountStats(d.Body)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"title", esc(title)},
		{"location", location},
		{"created", d.CreatedAt.UTC().Format(time.RFC3339)},
		{"updated", d.UpdatedAt.UTC().Format(time.RFC3339)},
		{"characters", fmt.Sprint(s.Characters)},
		{"words", fmt.Sprint(s.Words)},
		{"lines", fmt.Sprint(s.Lines)},
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}
