package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/mithrel/scribe/pkg/api"
)

const (
	DefaultStyle    = "dracula"
	DefaultWordWrap = 80
)

// TerminalOptions selects the glamour style and wrap width.
type TerminalOptions struct {
	Style    string
	WordWrap int
}

// Terminal renders Markdown for an ANSI terminal.
func Terminal(markdown string, opts TerminalOptions) (string, error) {
	style := opts.Style
	if style == "" {
		style = DefaultStyle
	}
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = DefaultWordWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// DocumentMarkdown lays out a document with a metadata block ahead of its
// body, ready for Terminal.
func DocumentMarkdown(d api.Document) string {
	return fmt.Sprintf(`# %s

> **ID:** %s | **Updated:** %s

---

%s
`, d.Title, d.ID, d.UpdatedAt.Local().Format(time.RFC3339), strings.TrimSpace(d.Body))
}
