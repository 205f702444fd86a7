// Package mdnorm separates adjacent plain paragraph lines of a Markdown
// document with blank lines while leaving fenced code, math blocks, lists,
// blockquotes, tables and headings untouched.
package mdnorm

import (
	"strings"
	"unicode/utf8"
)

// Result describes one normalization pass.
type Result struct {
	Text string
	// Cursor is the caller's offset, in runes, shifted past inserted lines.
	Cursor int
	// Inserted counts all blank lines added to the document.
	Inserted int
}

// Changed reports whether the pass altered the text.
func (r Result) Changed() bool { return r.Inserted > 0 }

// Normalize inserts one blank line between every pair of adjacent plain
// paragraph lines that sit outside any structural block. cursor is a rune
// offset into text; it is clamped to [0, len] and returned shifted by the
// number of lines inserted strictly before it.
func Normalize(text string, cursor int) (string, int) {
	r := Run(text, cursor)
	return r.Text, r.Cursor
}

// Run is Normalize with the full pass statistics.
func Run(text string, cursor int) Result {
	cursor = clampInt(cursor, 0, utf8.RuneCountInString(text))
	if text == "" {
		return Result{Text: text, Cursor: cursor}
	}
	cursorByte := byteOffset(text, cursor)

	var (
		out    strings.Builder
		tr     Tracker
		before int
		total  int
	)
	out.Grow(len(text) + len(text)/16)

	for pos := 0; pos < len(text); {
		end, terminated := lineEnd(text, pos)
		trimmed := strings.TrimSpace(text[pos:end])

		next := end
		if terminated {
			next = end + 1
		}
		out.WriteString(text[pos:next])
		tr.Advance(trimmed)

		// Insertion only happens when another non-empty line follows;
		// an existing separator is never doubled.
		if terminated && next < len(text) && text[next] != '\n' {
			nextEnd, _ := lineEnd(text, next)
			if !tr.Structural() && IsParagraph(trimmed) && IsParagraph(strings.TrimSpace(text[next:nextEnd])) {
				out.WriteByte('\n')
				total++
				if end < cursorByte {
					before++
				}
			}
		}
		pos = next
	}

	if total == 0 {
		return Result{Text: text, Cursor: cursor}
	}
	return Result{Text: out.String(), Cursor: cursor + before, Inserted: total}
}

// lineEnd returns the index of the line feed ending the line that starts at
// pos, or len(s) when the line is unterminated.
func lineEnd(s string, pos int) (int, bool) {
	if i := strings.IndexByte(s[pos:], '\n'); i >= 0 {
		return pos + i, true
	}
	return len(s), false
}

// byteOffset converts a rune offset into a byte offset of s.
func byteOffset(s string, runes int) int {
	if runes <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == runes {
			return i
		}
		n++
	}
	return len(s)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
