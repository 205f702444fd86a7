package editor

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mithrel/scribe/internal/db"
	"github.com/mithrel/scribe/internal/mdnorm"
	synsvc "github.com/mithrel/scribe/internal/sync"
	"github.com/mithrel/scribe/internal/textops"
	"github.com/mithrel/scribe/pkg/api"
)

// Syncer is notified after a session saves.
type Syncer interface {
	RequestSync(ctx context.Context, reason string) (synsvc.Report, error)
}

// Session holds one open document together with the caret/selection and
// dirty state. Offsets are runes. A Session is owned by a single caller
// and is not safe for concurrent use.
type Session struct {
	doc   api.Document
	sel   api.Selection
	dirty bool

	store db.Store
	sync  Syncer // optional
	now   func() time.Time
}

func NewSession(doc api.Document, store db.Store, sync Syncer) *Session {
	return &Session{doc: doc, store: store, sync: sync, now: time.Now}
}

// Open loads a document from store and starts a session on it.
func Open(ctx context.Context, store db.Store, sync Syncer, id string) (*Session, error) {
	doc, err := store.LoadDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSession(doc, store, sync), nil
}

func (s *Session) Document() api.Document   { return s.doc }
func (s *Session) Selection() api.Selection { return s.sel }
func (s *Session) Dirty() bool              { return s.dirty }

// SetClock replaces the time source used for UpdatedAt.
func (s *Session) SetClock(now func() time.Time) { s.now = now }

// UpdateBody replaces the body. An identical body is ignored so that
// UpdatedAt and the dirty flag only move on real edits.
func (s *Session) UpdateBody(body string) {
	if body == s.doc.Body {
		return
	}
	s.doc.Body = body
	s.doc.Touch(s.now())
	s.dirty = true
}

func (s *Session) UpdateTitle(title string) {
	if title == s.doc.Title {
		return
	}
	s.doc.Title = title
	s.doc.Touch(s.now())
	s.dirty = true
}

func (s *Session) UpdateSelection(location, length int) {
	s.sel = api.Selection{Location: location, Length: length}
}

// ReplaceSelection swaps the selected text for replacement and leaves the
// caret after it. Nothing happens when the selection is out of range.
func (s *Session) ReplaceSelection(replacement string) {
	start, end, ok := byteRange(s.doc.Body, s.sel)
	if !ok {
		return
	}
	s.UpdateBody(s.doc.Body[:start] + replacement + s.doc.Body[end:])
	s.UpdateSelection(s.sel.Location+utf8.RuneCountInString(replacement), 0)
}

// WrapSelection surrounds the selection with prefix and suffix and keeps
// the original text selected.
func (s *Session) WrapSelection(prefix, suffix string) {
	start, end, ok := byteRange(s.doc.Body, s.sel)
	if !ok {
		return
	}
	selected := s.doc.Body[start:end]
	s.UpdateBody(s.doc.Body[:start] + prefix + selected + suffix + s.doc.Body[end:])
	s.UpdateSelection(s.sel.Location+utf8.RuneCountInString(prefix), utf8.RuneCountInString(selected))
}

func (s *Session) SelectedTextOrEmpty() string {
	start, end, ok := byteRange(s.doc.Body, s.sel)
	if !ok {
		return ""
	}
	return s.doc.Body[start:end]
}

func (s *Session) SelectedTextOrAll() string {
	if t := s.SelectedTextOrEmpty(); t != "" {
		return t
	}
	return s.doc.Body
}

// PrefixLines prefixes every line touched by the selection, or the
// current line when the selection is invalid.
func (s *Session) PrefixLines(prefix string) {
	start, end, ok := byteRange(s.doc.Body, s.sel)
	if !ok {
		s.applyToCurrentLine(func(line string) string { return prefix + line })
		return
	}
	lines := strings.Split(s.doc.Body[start:end], "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	s.ReplaceSelection(strings.Join(lines, "\n"))
}

func (s *Session) IndentLines(spaces int) {
	s.PrefixLines(strings.Repeat(" ", max(spaces, 0)))
}

// OutdentLines removes up to spaces leading spaces from each selected line.
func (s *Session) OutdentLines(spaces int) {
	start, end, ok := byteRange(s.doc.Body, s.sel)
	if !ok {
		s.applyToCurrentLine(func(line string) string { return trimLeadingSpaces(line, spaces) })
		return
	}
	lines := strings.Split(s.doc.Body[start:end], "\n")
	for i := range lines {
		lines[i] = trimLeadingSpaces(lines[i], spaces)
	}
	s.ReplaceSelection(strings.Join(lines, "\n"))
}

var headingPrefix = regexp.MustCompile(`^#{1,6}\s+`)

// ApplyHeading turns the current line into a heading of the given level,
// replacing any existing heading marker. Levels are clamped to 1..6.
func (s *Session) ApplyHeading(level int) {
	prefix := strings.Repeat("#", min(max(level, 1), 6)) + " "
	s.applyToCurrentLine(func(line string) string {
		return prefix + headingPrefix.ReplaceAllString(strings.TrimSpace(line), "")
	})
}

// NormalizeBlankLines separates adjacent paragraph lines with blank lines
// and shifts the caret accordingly. It reports whether the body changed;
// when it did not, the document, dirty flag and selection are untouched.
func (s *Session) NormalizeBlankLines() bool {
	body := s.doc.Body
	if body == "" {
		return false
	}
	out, cursor := mdnorm.Normalize(body, s.sel.Location)
	if out == body {
		return false
	}
	s.UpdateBody(out)
	s.UpdateSelection(cursor, s.sel.Length)
	return true
}

// InsertCJKSpacing adds a space between Han characters and adjacent ASCII
// letters or digits across the whole body.
func (s *Session) InsertCJKSpacing() bool {
	out := textops.InsertCJKSpacing(s.doc.Body)
	if out == s.doc.Body {
		return false
	}
	s.UpdateBody(out)
	return true
}

// Save persists a dirty document and asks the sync engine for a pass.
func (s *Session) Save(ctx context.Context) error {
	if !s.dirty {
		return nil
	}
	if err := s.store.UpsertDocument(ctx, s.doc); err != nil {
		return err
	}
	s.dirty = false
	if s.sync != nil {
		// Sync failures surface through the engine state, not the save.
		_, _ = s.sync.RequestSync(ctx, "local-save")
	}
	return nil
}

// MarkSaved clears the dirty flag after an external write, recording the
// file path when one is given.
func (s *Session) MarkSaved(path string) {
	if path != "" {
		s.doc.Path = path
	}
	s.dirty = false
}

// applyToCurrentLine rewrites the line containing the caret (without its
// terminator) and puts the caret at the end of the new line.
func (s *Session) applyToCurrentLine(transform func(string) string) {
	body := s.doc.Body
	loc := min(max(s.sel.Location, 0), utf8.RuneCountInString(body))
	b := byteOffset(body, loc)

	start := strings.LastIndexByte(body[:b], '\n') + 1
	end := len(body)
	if i := strings.IndexByte(body[b:], '\n'); i >= 0 {
		end = b + i
	}
	newLine := transform(body[start:end])
	s.UpdateBody(body[:start] + newLine + body[end:])
	s.UpdateSelection(utf8.RuneCountInString(body[:start])+utf8.RuneCountInString(newLine), 0)
}

func trimLeadingSpaces(line string, n int) string {
	for i := 0; i < n && strings.HasPrefix(line, " "); i++ {
		line = line[1:]
	}
	return line
}

// byteRange converts a rune selection into byte offsets of s. ok is false
// when the selection does not lie within s.
func byteRange(s string, sel api.Selection) (start, end int, ok bool) {
	if sel.Location < 0 || sel.Length < 0 {
		return 0, 0, false
	}
	total := utf8.RuneCountInString(s)
	if sel.End() > total {
		return 0, 0, false
	}
	return byteOffset(s, sel.Location), byteOffset(s, sel.End()), true
}

func byteOffset(s string, runes int) int {
	n := 0
	for i := range s {
		if n == runes {
			return i
		}
		n++
	}
	return len(s)
}
