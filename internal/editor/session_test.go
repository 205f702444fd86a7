package editor

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/scribe/internal/db"
	synsvc "github.com/mithrel/scribe/internal/sync"
	"github.com/mithrel/scribe/pkg/api"
)

type recordingSyncer struct {
	reasons []string
	err     error
}

func (r *recordingSyncer) RequestSync(_ context.Context, reason string) (synsvc.Report, error) {
	r.reasons = append(r.reasons, reason)
	return synsvc.Report{Reason: reason}, r.err
}

var (
	created = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	edited  = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
)

func newTestSession(body string) (*Session, db.Store, *recordingSyncer) {
	store := db.NewMemStore()
	syncer := &recordingSyncer{}
	doc := api.Document{ID: "doc-1", Title: "Doc", Body: body, CreatedAt: created, UpdatedAt: created}
	s := NewSession(doc, store, syncer)
	s.SetClock(func() time.Time { return edited })
	return s, store, syncer
}

func TestUpdateBodyIgnoresIdenticalText(t *testing.T) {
	s, _, _ := newTestSession("same")
	s.UpdateBody("same")
	assert.False(t, s.Dirty())
	assert.Equal(t, created, s.Document().UpdatedAt)

	s.UpdateBody("different")
	assert.True(t, s.Dirty())
	assert.Equal(t, edited, s.Document().UpdatedAt)
}

func TestUpdateTitle(t *testing.T) {
	s, _, _ := newTestSession("")
	s.UpdateTitle("Doc")
	assert.False(t, s.Dirty())
	s.UpdateTitle("Renamed")
	assert.True(t, s.Dirty())
	assert.Equal(t, "Renamed", s.Document().Title)
}

func TestReplaceSelection(t *testing.T) {
	s, _, _ := newTestSession("hello world")
	s.UpdateSelection(6, 5)
	s.ReplaceSelection("there")
	assert.Equal(t, "hello there", s.Document().Body)
	assert.Equal(t, api.Selection{Location: 11}, s.Selection())
}

func TestReplaceSelectionOutOfRange(t *testing.T) {
	s, _, _ := newTestSession("short")
	s.UpdateSelection(20, 1)
	s.ReplaceSelection("x")
	assert.Equal(t, "short", s.Document().Body)
	assert.False(t, s.Dirty())

	s.UpdateSelection(-1, 0)
	s.ReplaceSelection("x")
	assert.Equal(t, "short", s.Document().Body)
}

func TestWrapSelectionKeepsTextSelected(t *testing.T) {
	s, _, _ := newTestSession("make bold")
	s.UpdateSelection(5, 4)
	s.WrapSelection("**", "**")
	assert.Equal(t, "make **bold**", s.Document().Body)
	assert.Equal(t, api.Selection{Location: 7, Length: 4}, s.Selection())
	assert.Equal(t, "bold", s.SelectedTextOrEmpty())
}

func TestWrapSelectionMultibyte(t *testing.T) {
	s, _, _ := newTestSession("héllo wörld")
	s.UpdateSelection(6, 5)
	s.WrapSelection("*", "*")
	assert.Equal(t, "héllo *wörld*", s.Document().Body)
}

func TestSelectedText(t *testing.T) {
	s, _, _ := newTestSession("abc")
	assert.Equal(t, "", s.SelectedTextOrEmpty())
	assert.Equal(t, "abc", s.SelectedTextOrAll())
	s.UpdateSelection(1, 1)
	assert.Equal(t, "b", s.SelectedTextOrAll())
}

func TestPrefixLines(t *testing.T) {
	s, _, _ := newTestSession("a\nb\nc")
	s.UpdateSelection(0, 3)
	s.PrefixLines("- ")
	assert.Equal(t, "- a\n- b\nc", s.Document().Body)
	assert.Equal(t, 7, s.Selection().Location)
}

func TestPrefixLinesFallsBackToCurrentLine(t *testing.T) {
	s, _, _ := newTestSession("one\ntwo")
	s.UpdateSelection(5, 99)
	s.PrefixLines("> ")
	assert.Equal(t, "one\n> two", s.Document().Body)
}

func TestIndentOutdent(t *testing.T) {
	s, _, _ := newTestSession("x\ny")
	s.UpdateSelection(0, 3)
	s.IndentLines(2)
	assert.Equal(t, "  x\n  y", s.Document().Body)

	s, _, _ = newTestSession("    x\n y")
	s.UpdateSelection(0, 8)
	s.OutdentLines(2)
	assert.Equal(t, "  x\ny", s.Document().Body)
}

func TestApplyHeading(t *testing.T) {
	s, _, _ := newTestSession("## Old\nnext")
	s.UpdateSelection(2, 0)
	s.ApplyHeading(3)
	assert.Equal(t, "### Old\nnext", s.Document().Body)
	assert.Equal(t, 7, s.Selection().Location)

	s, _, _ = newTestSession("intro\ntitle")
	s.UpdateSelection(8, 0)
	s.ApplyHeading(9)
	assert.Equal(t, "intro\n###### title", s.Document().Body)
	assert.Equal(t, 18, s.Selection().Location)
}

func TestNormalizeBlankLines(t *testing.T) {
	s, _, _ := newTestSession("Line A\nLine B")
	s.UpdateSelection(13, 0)
	require.True(t, s.NormalizeBlankLines())
	assert.Equal(t, "Line A\n\nLine B", s.Document().Body)
	assert.Equal(t, 14, s.Selection().Location)
	assert.True(t, s.Dirty())
	assert.Equal(t, edited, s.Document().UpdatedAt)
}

func TestNormalizeBlankLinesNoop(t *testing.T) {
	for _, body := range []string{"", "Line A\n\nLine B", "```\na\nb\n```", "- a\n- b"} {
		s, _, _ := newTestSession(body)
		s.UpdateSelection(1, 0)
		assert.False(t, s.NormalizeBlankLines(), "%q", body)
		assert.False(t, s.Dirty())
		assert.Equal(t, created, s.Document().UpdatedAt)
		assert.Equal(t, api.Selection{Location: 1}, s.Selection())
	}
}

func TestInsertCJKSpacing(t *testing.T) {
	s, _, _ := newTestSession("中文abc")
	require.True(t, s.InsertCJKSpacing())
	assert.Equal(t, "中文 abc", s.Document().Body)
	assert.False(t, s.InsertCJKSpacing())
}

func TestSavePersistsAndSyncs(t *testing.T) {
	ctx := context.Background()
	s, store, syncer := newTestSession("body")

	require.NoError(t, s.Save(ctx))
	assert.Empty(t, syncer.reasons, "clean session is not written")
	_, err := store.LoadDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, db.ErrNotFound)

	s.UpdateBody("new body")
	syncer.err = errors.New("offline")
	require.NoError(t, s.Save(ctx))
	assert.False(t, s.Dirty())
	assert.Equal(t, []string{"local-save"}, syncer.reasons)

	got, err := store.LoadDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "new body", got.Body)
}

func TestMarkSaved(t *testing.T) {
	s, _, _ := newTestSession("a")
	s.UpdateBody("b")
	s.MarkSaved("/tmp/doc.md")
	assert.False(t, s.Dirty())
	assert.Equal(t, "/tmp/doc.md", s.Document().Path)
}

func TestOpenSession(t *testing.T) {
	ctx := context.Background()
	doc := api.NewDocument("t", "b", created)
	store := db.NewMemStore(doc)

	s, err := Open(ctx, store, nil, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", s.Document().Body)

	_, err = Open(ctx, store, nil, "missing")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestApplyActions(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		sel    api.Selection
		action string
		arg    string
		want   string
	}{
		{"bold", "a b", api.Selection{Location: 2, Length: 1}, "bold", "", "a **b**"},
		{"italic", "a b", api.Selection{Location: 2, Length: 1}, "Italic", "", "a *b*"},
		{"underline", "x", api.Selection{Length: 1}, "underline", "", "<u>x</u>"},
		{"strike", "x", api.Selection{Length: 1}, "strikethrough", "", "~~x~~"},
		{"code block", "x", api.Selection{Length: 1}, "code-block", "", "```\nx\n```"},
		{"math block", "x", api.Selection{Length: 1}, "math-block", "", "$$\nx\n$$"},
		{"comment", "x", api.Selection{Length: 1}, "comment", "", "<!-- x -->"},
		{"rule", "ab", api.Selection{Location: 1}, "rule", "", "a\n---\nb"},
		{"table", "", api.Selection{}, "table", "", tableSnippet},
		{"nbsp", "ab", api.Selection{Location: 1}, "nbsp", "", "a&nbsp;b"},
		{"task", "todo", api.Selection{Length: 4}, "task", "", "- [ ] todo"},
		{"numbered", "x", api.Selection{Length: 1}, "numbered", "", "1. x"},
		{"link", "visit site", api.Selection{Location: 6, Length: 4}, "link", "https://x", "visit [site](https://x)"},
		{"empty link", "", api.Selection{}, "link", "https://x", "[](https://x)"},
		{"image", "", api.Selection{}, "image", "a.png", "![](a.png)"},
		{"h2", "title", api.Selection{}, "h2", "", "## title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestSession(tt.body)
			s.UpdateSelection(tt.sel.Location, tt.sel.Length)
			require.NoError(t, s.Apply(tt.action, tt.arg))
			assert.Equal(t, tt.want, s.Document().Body)
		})
	}
}

func TestApplyUnknownAction(t *testing.T) {
	s, _, _ := newTestSession("x")
	assert.Error(t, s.Apply("blink", ""))
}

func TestActionNames(t *testing.T) {
	names := ActionNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "h6")
	assert.Contains(t, names, "link")
}
