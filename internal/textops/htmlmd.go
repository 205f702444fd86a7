package textops

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type rewrite struct {
	re   *regexp.Regexp
	repl string
}

var htmlRewrites = []rewrite{
	{regexp.MustCompile(`(?i)<br\s*/?>`), "\n"},
	{regexp.MustCompile(`(?is)<(?:strong|b)>(.*?)</(?:strong|b)>`), "**${1}**"},
	{regexp.MustCompile(`(?is)<(?:em|i)>(.*?)</(?:em|i)>`), "*${1}*"},
	{regexp.MustCompile(`(?is)<code>(.*?)</code>`), "`${1}`"},
	{regexp.MustCompile(`(?is)<a\s+[^>]*href="([^"]+)"[^>]*>(.*?)</a>`), "[${2}](${1})"},
	{regexp.MustCompile(`(?is)</p>`), "\n\n"},
	{regexp.MustCompile(`(?is)<p[^>]*>`), ""},
}

var stripTags = bluemonday.StrictPolicy()

// Entities that cannot open markup are decoded; &lt; and &gt; stay
// encoded so text about tags never turns into tags.
var safeEntities = strings.NewReplacer(
	"&amp;", "&",
	"&#34;", `"`,
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", "\u00a0",
)

// HTMLToMarkdown converts a pasted HTML fragment into rough Markdown.
// Line breaks, paragraphs, emphasis, inline code and links survive; every
// other tag is dropped. Angle-bracket entities are left encoded.
func HTMLToMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	for _, rw := range htmlRewrites {
		s = rw.re.ReplaceAllString(s, rw.repl)
	}
	s = safeEntities.Replace(stripTags.Sanitize(s))
	return strings.TrimSpace(s)
}
