package editor

import (
	"fmt"
	"sort"
	"strings"
)

// Action is a named Markdown formatting command applied to a session.
type Action func(s *Session, arg string)

func wrap(prefix, suffix string) Action {
	return func(s *Session, _ string) { s.WrapSelection(prefix, suffix) }
}

func prefix(p string) Action {
	return func(s *Session, _ string) { s.PrefixLines(p) }
}

func replace(text string) Action {
	return func(s *Session, _ string) { s.ReplaceSelection(text) }
}

func heading(level int) Action {
	return func(s *Session, _ string) { s.ApplyHeading(level) }
}

const tableSnippet = "| Header | Header |\n| --- | --- |\n| Cell | Cell |\n"

var actions = map[string]Action{
	"bold":          wrap("**", "**"),
	"italic":        wrap("*", "*"),
	"underline":     wrap("<u>", "</u>"),
	"strikethrough": wrap("~~", "~~"),
	"code":          wrap("`", "`"),
	"code-block":    wrap("```\n", "\n```"),
	"math":          wrap("$", "$"),
	"math-block":    wrap("$$\n", "\n$$"),
	"comment":       wrap("<!-- ", " -->"),
	"rule":          replace("\n---\n"),
	"table":         replace(tableSnippet),
	"nbsp":          replace("&nbsp;"),
	"paragraph":     replace("\n\n"),
	"bullet":        prefix("- "),
	"numbered":      prefix("1. "),
	"task":          prefix("- [ ] "),
	"quote":         prefix("> "),
	"indent":        func(s *Session, _ string) { s.IndentLines(2) },
	"outdent":       func(s *Session, _ string) { s.OutdentLines(2) },
	"link": func(s *Session, url string) {
		s.ReplaceSelection("[" + s.SelectedTextOrEmpty() + "](" + url + ")")
	},
	"image": func(s *Session, path string) {
		s.ReplaceSelection("![](" + path + ")")
	},
	"h1": heading(1),
	"h2": heading(2),
	"h3": heading(3),
	"h4": heading(4),
	"h5": heading(5),
	"h6": heading(6),
}

// ActionNames lists the registered actions in sorted order.
func ActionNames() []string {
	names := make([]string, 0, len(actions))
	for n := range actions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply runs the named action. arg carries the URL for "link" and the
// path for "image" and is ignored otherwise.
func (s *Session) Apply(name, arg string) error {
	a, ok := actions[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown action %q", name)
	}
	a(s, arg)
	return nil
}
