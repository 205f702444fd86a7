package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mithrel/scribe/pkg/api"
)

const (
	idWidth      = 8
	titleWidth   = 40
	updatedWidth = 16
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// cell truncates s to width display cells and pads it on the right, so
// CJK and emoji titles keep the columns aligned.
func cell(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// WritePrettyDocuments writes an aligned, styled table of documents.
func WritePrettyDocuments(w io.Writer, docs []api.Document, headers bool) error {
	if headers {
		h := strings.Join([]string{
			cell("ID", idWidth), cell("TITLE", titleWidth), cell("UPDATED", updatedWidth), "WORDS",
		}, "  ")
		if _, err := fmt.Fprintln(w, headerStyle.Render(h)); err != nil {
			return err
		}
	}
	for _, d := range docs {
		title := d.Title
		if strings.TrimSpace(title) == "" {
			title = "(untitled)"
		}
		line := strings.Join([]string{
			cell(api.ShortID(d.ID), idWidth),
			cell(title, titleWidth),
			dimStyle.Render(cell(d.UpdatedAt.Local().Format("2006-01-02 15:04"), updatedWidth)),
			fmt.Sprint(WordCount(d.Body)),
		}, "  ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
