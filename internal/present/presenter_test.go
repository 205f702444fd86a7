package present

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/scribe/pkg/api"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"plain": ModePlain, "pretty": ModePretty, "json": ModeJSON, "ndjson": ModeNDJSON} {
		got, ok := ParseMode(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	_, ok := ParseMode("tui")
	assert.False(t, ok)
}

func TestRenderDocumentModes(t *testing.T) {
	d := api.Document{ID: "x", Title: "T", Body: "body"}

	var buf bytes.Buffer
	require.NoError(t, RenderDocument(&buf, d, Options{Mode: ModePlain}))
	assert.Equal(t, "body\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderDocument(&buf, d, Options{Mode: ModeJSON}))
	assert.Contains(t, buf.String(), `"id":"x"`)

	buf.Reset()
	require.NoError(t, RenderDocuments(&buf, []api.Document{d}, Options{Mode: ModePlain, Headers: true}))
	assert.Contains(t, buf.String(), "title")
}
