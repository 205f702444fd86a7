package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/docfile"
	"github.com/mithrel/scribe/internal/mdnorm"
	"github.com/mithrel/scribe/pkg/api"
)

func newDocImportCmd() *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Import Markdown, HTML or JSON (array or NDJSON) files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			imported, skipped := 0, 0
			now := time.Now().UTC()
			for _, path := range args {
				docs, err := readImport(path, now)
				if err != nil {
					app.Log.Printf("import %s: %v", path, err)
					skipped++
					continue
				}
				for _, d := range docs {
					if normalize {
						d.Body, _ = mdnorm.Normalize(d.Body, 0)
					}
					if err := app.Store.UpsertDocument(cmd.Context(), d); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.ID, d.Title)
					imported++
				}
			}
			if imported > 0 {
				if _, err := app.Sync.RequestSync(cmd.Context(), "import"); err != nil {
					app.Log.Printf("sync after import: %v", err)
				}
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Imported: %d\nSkipped: %d\n", imported, skipped)
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "separate adjacent paragraph lines on import")
	return cmd
}

func readImport(path string, now time.Time) ([]api.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".ndjson", ".jsonl":
		return decodeJSONDocuments(src, now)
	case ".html", ".htm":
		return []api.Document{docfile.DecodeHTML(path, src, now)}, nil
	default:
		d, err := docfile.DecodeMarkdown(path, src, now)
		if err != nil {
			return nil, err
		}
		return []api.Document{d}, nil
	}
}

// decodeJSONDocuments accepts a JSON array or a stream of objects, as
// written by doc list --output json|ndjson.
func decodeJSONDocuments(src []byte, now time.Time) ([]api.Document, error) {
	br := bufio.NewReader(bytes.NewReader(src))
	first, err := peekFirstNonSpace(br)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(br)
	var docs []api.Document
	if first == '[' {
		if err := dec.Decode(&docs); err != nil {
			return nil, err
		}
	} else {
		for {
			var d api.Document
			if err := dec.Decode(&d); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, err
			}
			docs = append(docs, d)
		}
	}
	for i := range docs {
		d := &docs[i]
		if !api.ValidID(d.ID) {
			d.ID = api.NewID()
		}
		if d.CreatedAt.IsZero() {
			d.CreatedAt = now
		}
		if d.UpdatedAt.IsZero() {
			d.UpdatedAt = d.CreatedAt
		}
	}
	return docs, nil
}

func peekFirstNonSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == ' ' || b == '\n' || b == '\r' || b == '\t' {
			continue
		}
		// put it back for the decoder
		if err := r.UnreadByte(); err != nil {
			return 0, err
		}
		return b, nil
	}
}
