package mdnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in     string
		kind   Kind
		marker string
	}{
		{"", Blank, ""},
		{"   \t", Blank, ""},
		{"```", FenceDelimiter, "```"},
		{"  ```go", FenceDelimiter, "```"},
		{"~~~", FenceDelimiter, "~~~"},
		{"```a|b", FenceDelimiter, "```"},
		{"$$", MathDelimiter, ""},
		{"  $$  ", MathDelimiter, ""},
		{"$$x", Paragraph, ""},
		{"# Title", Heading, ""},
		{"###### six", Heading, ""},
		{"####### seven", Paragraph, ""},
		{"#nospace", Paragraph, ""},
		{"# A | B", Heading, ""},
		{"> quoted", Blockquote, ""},
		{">", Blockquote, ""},
		{"---", HorizontalRule, ""},
		{"* * *", HorizontalRule, ""},
		{"_ _ _ _", HorizontalRule, ""},
		{"__", Paragraph, ""},
		{"-*-", Paragraph, ""},
		{"| a | b |", TableRow, ""},
		{"a | b", TableRow, ""},
		{"- item", ListItemStart, ""},
		{"- [ ] task", ListItemStart, ""},
		{"* [x] done", ListItemStart, ""},
		{"+ [X] done", ListItemStart, ""},
		{"+ plus", ListItemStart, ""},
		{"1. one", ListItemStart, ""},
		{"12) twelve", ListItemStart, ""},
		{"1.5 apples", Paragraph, ""},
		{"1.", Paragraph, ""},
		{"-item", Paragraph, ""},
		{"Hello world", Paragraph, ""},
	}
	for _, tc := range tests {
		got := Classify(tc.in)
		assert.Equal(t, tc.kind, got.Kind, "Classify(%q) kind=%s", tc.in, got.Kind)
		assert.Equal(t, tc.marker, got.Marker, "Classify(%q) marker", tc.in)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "paragraph", Paragraph.String())
	assert.Equal(t, "fence", FenceDelimiter.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestIsParagraph(t *testing.T) {
	assert.True(t, IsParagraph("plain text"))
	assert.False(t, IsParagraph(""))
	assert.False(t, IsParagraph("## heading"))
	assert.False(t, IsParagraph("$$"))
}
