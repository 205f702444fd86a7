// Package docfile reads and writes documents as standalone files:
// Markdown with optional YAML front matter, HTML pages and JSON.
package docfile

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/mithrel/scribe/internal/textops"
	"github.com/mithrel/scribe/pkg/api"
)

// Meta is the front matter block written ahead of exported Markdown.
type Meta struct {
	ID      string    `yaml:"id,omitempty"`
	Title   string    `yaml:"title,omitempty"`
	Created time.Time `yaml:"created,omitempty"`
	Updated time.Time `yaml:"updated,omitempty"`
}

// EncodeMarkdown returns the document body, prefixed with a YAML front
// matter block when withMeta is set.
func EncodeMarkdown(d api.Document, withMeta bool) ([]byte, error) {
	var buf bytes.Buffer
	if withMeta {
		meta, err := yaml.Marshal(Meta{ID: d.ID, Title: d.Title, Created: d.CreatedAt, Updated: d.UpdatedAt})
		if err != nil {
			return nil, fmt.Errorf("encode front matter: %w", err)
		}
		buf.WriteString("---\n")
		buf.Write(meta)
		buf.WriteString("---\n\n")
	}
	buf.WriteString(d.Body)
	if d.Body != "" && !strings.HasSuffix(d.Body, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// DecodeMarkdown builds a document from a Markdown file. The title comes
// from front matter, else the first heading, else the file name. A valid
// front matter id is kept so re-importing an export updates in place.
func DecodeMarkdown(path string, src []byte, now time.Time) (api.Document, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return api.Document{}, fmt.Errorf("parse front matter: %w", err)
	}
	text := strings.TrimLeft(string(body), "\n")
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = firstHeading(text)
	}
	if title == "" {
		title = baseName(path)
	}
	return newDocument(meta, title, text, path, now), nil
}

// DecodeHTML converts an HTML fragment to Markdown and titles it after
// the file name.
func DecodeHTML(path string, src []byte, now time.Time) api.Document {
	body := textops.HTMLToMarkdown(string(src))
	if body != "" {
		body += "\n"
	}
	return newDocument(Meta{}, baseName(path), body, path, now)
}

func newDocument(meta Meta, title, body, path string, now time.Time) api.Document {
	d := api.NewDocument(title, body, now)
	if api.ValidID(meta.ID) {
		d.ID = strings.TrimSpace(meta.ID)
	}
	if !meta.Created.IsZero() {
		d.CreatedAt = meta.Created.UTC()
	}
	if abs, err := filepath.Abs(path); err == nil {
		d.Path = abs
	} else {
		d.Path = path
	}
	return d
}

func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if !strings.HasPrefix(t, "#") {
			return ""
		}
		return strings.TrimSpace(strings.TrimLeft(t, "#"))
	}
	return ""
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
