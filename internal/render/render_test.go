package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/scribe/pkg/api"
)

func TestHTMLRendersGFM(t *testing.T) {
	out, err := HTML("# Title\n\n- [x] done\n\n| a | b |\n| - | - |\n| 1 | 2 |\n\nsee https://example.com\n", false)
	require.NoError(t, err)
	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, `type="checkbox"`)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, `<a href="https://example.com">`)
}

func TestHTMLSanitize(t *testing.T) {
	body := "hi <script>alert(1)</script>\n\n```go\nx := 1\n```\n"

	raw, err := HTML(body, false)
	require.NoError(t, err)
	assert.Contains(t, raw, "<script>")

	clean, err := HTML(body, true)
	require.NoError(t, err)
	assert.NotContains(t, clean, "<script>")
	assert.Contains(t, clean, `class="language-go"`)
}

func TestPageEscapesBoundary(t *testing.T) {
	page, err := Page("**bold**", PageOptions{Title: `<Tom & "Jerry">`, BaseDir: "/tmp/a b"})
	require.NoError(t, err)
	assert.Contains(t, page, "<title>&lt;Tom &amp; &#34;Jerry&#34;&gt;</title>")
	assert.Contains(t, page, `<base href="file:///tmp/a%20b/" />`)
	assert.Contains(t, page, "<strong>bold</strong>")
	assert.Contains(t, page, KaTeXAutoRender)
	assert.Contains(t, page, HighlightJS)
	assert.Contains(t, page, `{ left: "$$", right: "$$", display: true }`)
}

func TestPageWithoutBase(t *testing.T) {
	page, err := Page("x", PageOptions{Title: "t"})
	require.NoError(t, err)
	assert.NotContains(t, page, "<base")
	assert.True(t, strings.HasPrefix(page, "<!doctype html>"))
}

func TestTerminal(t *testing.T) {
	out, err := Terminal("# Hello\n\nworld", TerminalOptions{Style: "notty", WordWrap: 40})
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "world")

	_, err = Terminal("x", TerminalOptions{Style: "no-such-style"})
	assert.Error(t, err)
}

func TestDocumentMarkdown(t *testing.T) {
	d := api.Document{ID: "id-1", Title: "T", Body: "\nbody\n\n", UpdatedAt: time.Unix(0, 0)}
	out := DocumentMarkdown(d)
	assert.True(t, strings.HasPrefix(out, "# T\n"))
	assert.Contains(t, out, "**ID:** id-1")
	assert.True(t, strings.HasSuffix(out, "---\n\nbody\n"))
}
