package mdnorm

import "strings"

// Kind is the structural category of a single Markdown line.
type Kind int

const (
	Blank Kind = iota
	Heading
	ListItemStart
	Blockquote
	HorizontalRule
	TableRow
	FenceDelimiter
	MathDelimiter
	Paragraph
)

var kindNames = [...]string{
	Blank:          "blank",
	Heading:        "heading",
	ListItemStart:  "list-item",
	Blockquote:     "blockquote",
	HorizontalRule: "horizontal-rule",
	TableRow:       "table-row",
	FenceDelimiter: "fence",
	MathDelimiter:  "math",
	Paragraph:      "paragraph",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

const (
	backtickFence = "```"
	tildeFence    = "~~~"
	mathFence     = "$$"
)

// Class is the classification of one line. Marker is set for fence delimiters.
type Class struct {
	Kind   Kind
	Marker string
}

// Classify trims line and returns its category. When several categories
// could match, fences win over math delimiters, then headings, blockquotes,
// horizontal rules, table rows and list items, in that order.
func Classify(line string) Class {
	t := strings.TrimSpace(line)
	if m, ok := FenceMarker(t); ok {
		return Class{Kind: FenceDelimiter, Marker: m}
	}
	switch {
	case IsMathDelimiter(t):
		return Class{Kind: MathDelimiter}
	case IsHeading(t):
		return Class{Kind: Heading}
	case IsBlockquote(t):
		return Class{Kind: Blockquote}
	case IsHorizontalRule(t):
		return Class{Kind: HorizontalRule}
	case IsTableRow(t):
		return Class{Kind: TableRow}
	case IsListItemStart(t):
		return Class{Kind: ListItemStart}
	case t == "":
		return Class{Kind: Blank}
	}
	return Class{Kind: Paragraph}
}

// The predicates below expect a line that has already been trimmed.

// FenceMarker reports whether t opens or closes a fenced code block and
// returns the three-character marker it uses.
func FenceMarker(t string) (string, bool) {
	switch {
	case strings.HasPrefix(t, backtickFence):
		return backtickFence, true
	case strings.HasPrefix(t, tildeFence):
		return tildeFence, true
	}
	return "", false
}

func IsMathDelimiter(t string) bool {
	return strings.TrimSpace(t) == mathFence
}

// IsHeading matches ATX headings: one to six '#' followed by a space.
func IsHeading(t string) bool {
	n := 0
	for n < len(t) && t[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return false
	}
	return n < len(t) && t[n] == ' '
}

func IsBlockquote(t string) bool {
	return strings.HasPrefix(t, ">")
}

// IsHorizontalRule matches three or more of the same '-', '*' or '_',
// ignoring spaces between them.
func IsHorizontalRule(t string) bool {
	compact := strings.ReplaceAll(t, " ", "")
	if len(compact) < 3 {
		return false
	}
	first := compact[0]
	if first != '-' && first != '*' && first != '_' {
		return false
	}
	for i := 1; i < len(compact); i++ {
		if compact[i] != first {
			return false
		}
	}
	return true
}

// IsTableRow treats any line containing a pipe as part of a table.
// Prose with a literal '|' is caught too; that is accepted.
func IsTableRow(t string) bool {
	if !strings.Contains(t, "|") {
		return false
	}
	if _, ok := FenceMarker(t); ok {
		return false
	}
	return !IsMathDelimiter(t)
}

var taskMarkers = []string{
	"- [ ", "- [x]", "- [X]",
	"* [ ", "* [x]", "* [X]",
	"+ [ ", "+ [x]", "+ [X]",
}

// IsListItemStart matches task items, bullets ("- ", "* ", "+ ") and
// ordered items ("1. ", "12) ").
func IsListItemStart(t string) bool {
	for _, m := range taskMarkers {
		if strings.HasPrefix(t, m) {
			return true
		}
	}
	if strings.HasPrefix(t, "- ") || strings.HasPrefix(t, "* ") || strings.HasPrefix(t, "+ ") {
		return true
	}
	digits := 0
	for digits < len(t) && t[digits] >= '0' && t[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return false
	}
	rest := t[digits:]
	return strings.HasPrefix(rest, ". ") || strings.HasPrefix(rest, ") ")
}

// IsParagraph reports whether t is a plain paragraph line, the only kind
// that may receive a separating blank line.
func IsParagraph(t string) bool {
	return Classify(t).Kind == Paragraph
}
