package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/scribe/internal/render"
	"github.com/mithrel/scribe/pkg/api"
)

var docs = []api.Document{
	{ID: "11111111-aaaa", Title: "Tab\there", Body: "one two three", UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
	{ID: "22222222-bbbb", Title: "中文标题非常长中文标题非常长中文标题非常长中文标题非常长", Body: "", UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
}

func TestWritePlainDocuments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlainDocuments(&buf, docs, true))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id"))
	assert.Contains(t, lines[1], `Tab\there`)
	assert.Contains(t, lines[1], "2024-01-02T03:04:05Z")
	assert.True(t, strings.HasSuffix(lines[1], "3"))
}

func TestWritePlainDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlainDocument(&buf, api.Document{Body: "# x"}))
	assert.Equal(t, "# x\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONDocuments(&buf, nil, false))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteNDJSONDocuments(&buf, docs))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var d api.Document
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &d))
	assert.Equal(t, docs[0].ID, d.ID)
}

func TestCellAlignsWideRunes(t *testing.T) {
	c := cell(docs[1].Title, 20)
	assert.Equal(t, 20, runewidth.StringWidth(c))
	assert.True(t, strings.HasSuffix(strings.TrimRight(c, " "), "…"))
	assert.Equal(t, 10, runewidth.StringWidth(cell("a\nb", 10)))
}

func TestWritePrettyDocuments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePrettyDocuments(&buf, docs, false))
	out := buf.String()
	assert.Contains(t, out, "11111111")
	assert.NotContains(t, out, "11111111-aaaa")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestWritePrettyDocument(t *testing.T) {
	var buf bytes.Buffer
	err := WritePrettyDocument(&buf, docs[0], render.TerminalOptions{Style: "notty", WordWrap: 60})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "one two three")
}

func TestCountStats(t *testing.T) {
	tests := []struct {
		body string
		want Stats
	}{
		{"", Stats{}},
		{"one two\nthree", Stats{Characters: 13, Words: 3, Lines: 2}},
		{"a\n", Stats{Characters: 2, Words: 1, Lines: 2}},
		{"中文 e\u0301", Stats{Characters: 4, Words: 2, Lines: 1}},
		{"\n\n", Stats{Characters: 2, Words: 0, Lines: 3}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountStats(tt.body), "%q", tt.body)
	}
}

func TestWriteStats(t *testing.T) {
	d := api.Document{ID: "id-1", Title: "Doc", Body: "a b\nc", UpdatedAt: docs[0].UpdatedAt, CreatedAt: docs[0].UpdatedAt}

	var buf bytes.Buffer
	require.NoError(t, WritePlainStats(&buf, d))
	out := buf.String()
	assert.Contains(t, out, "(not saved to a file)")
	assert.Regexp(t, `(?m)^characters\s+5$`, out)
	assert.Regexp(t, `(?m)^words\s+3$`, out)
	assert.Regexp(t, `(?m)^lines\s+2$`, out)

	buf.Reset()
	require.NoError(t, WriteJSONStats(&buf, d, false))
	var got struct {
		ID    string `json:"id"`
		Stats Stats  `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, Stats{Characters: 5, Words: 3, Lines: 2}, got.Stats)
}
