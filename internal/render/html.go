// Package render turns document bodies into HTML preview pages and
// terminal output.
package render

import (
	"bytes"
	"fmt"
	"html"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Asset URLs loaded by the preview page.
const (
	KaTeXCSS        = "https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.css"
	KaTeXJS         = "https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.js"
	KaTeXAutoRender = "https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/contrib/auto-render.min.js"
	HighlightCSS    = "https://cdn.jsdelivr.net/npm/highlight.js@11.9.0/styles/github.min.css"
	HighlightJS     = "https://cdn.jsdelivr.net/npm/highlight.js@11.9.0/highlight.min.js"
)

// PageOptions controls the standalone preview page.
type PageOptions struct {
	Title string
	// BaseDir resolves relative links and images; empty omits <base>.
	BaseDir string
	// Sanitize scrubs raw HTML embedded in the Markdown body.
	Sanitize bool
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.TaskList),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

var langClass = regexp.MustCompile(`^language-[\w+#-]+$`)

func ugcPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(langClass).OnElements("code")
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	return p
}

// HTML renders a Markdown body to an HTML fragment.
func HTML(body string, sanitize bool) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	if sanitize {
		return ugcPolicy().Sanitize(buf.String()), nil
	}
	return buf.String(), nil
}

const pageCSS = `:root { color-scheme: light dark; }
body { margin: 16px; font-family: system-ui, -apple-system, sans-serif; }
pre, code { font-family: ui-monospace, Menlo, Monaco, SFMono-Regular, monospace; }
pre { overflow-x: auto; white-space: pre; }
img { max-width: 100%; height: auto; }
table { border-collapse: collapse; }
th, td { padding: 6px 10px; border: 1px solid rgba(127,127,127,0.35); }
blockquote { margin: 0; padding-left: 12px; border-left: 3px solid rgba(127,127,127,0.35); }
.katex-display { overflow-x: auto; overflow-y: hidden; }`

const bootJS = `(function() {
  function boot() {
    try { if (window.hljs) { window.hljs.highlightAll(); } } catch (e) {}
    try {
      if (window.renderMathInElement) {
        window.renderMathInElement(document.body, {
          delimiters: [
            { left: "$$", right: "$$", display: true },
            { left: "$", right: "$", display: false }
          ],
          throwOnError: false
        });
      }
    } catch (e) {}
  }
  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", boot);
  } else {
    boot();
  }
})();`

// Page renders body and wraps it in a standalone HTML document with code
// highlighting and math rendering.
func Page(body string, opts PageOptions) (string, error) {
	content, err := HTML(body, opts.Sanitize)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\" />\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(opts.Title))
	if href := baseHref(opts.BaseDir); href != "" {
		fmt.Fprintf(&b, "<base href=\"%s\" />\n", html.EscapeString(href))
	}
	fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\" />\n", HighlightCSS)
	fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\" />\n", KaTeXCSS)
	fmt.Fprintf(&b, "<style>\n%s\n</style>\n", pageCSS)
	fmt.Fprintf(&b, "<script src=\"%s\"></script>\n", HighlightJS)
	fmt.Fprintf(&b, "<script defer src=\"%s\"></script>\n", KaTeXJS)
	fmt.Fprintf(&b, "<script defer src=\"%s\"></script>\n", KaTeXAutoRender)
	b.WriteString("</head>\n<body>\n")
	b.WriteString(content)
	fmt.Fprintf(&b, "<script>\n%s\n</script>\n", bootJS)
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func baseHref(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return ""
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(dir)}
	s := u.String()
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s
}
