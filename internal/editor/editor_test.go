package editor

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseEdited(t *testing.T) {
	input := `# comment line
Title: My Title
---
# Body heading

Body line 1
---
Body line 2


`
	title, body := ParseEdited(input)
	if title != "My Title" {
		t.Fatalf("title=%q", title)
	}
	want := "# Body heading\n\nBody line 1\n---\nBody line 2\n"
	if body != want {
		t.Fatalf("body=%q want %q", body, want)
	}
}

func TestParseEditedEmptyBody(t *testing.T) {
	title, body := ParseEdited("Title: only\n---\n\n")
	if title != "only" || body != "" {
		t.Fatalf("title=%q body=%q", title, body)
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("  hello\nworld\n"); got != "hello" {
		t.Fatalf("FirstLine=%q", got)
	}
	if got := FirstLine("## Heading   text\nrest"); got != "Heading text" {
		t.Fatalf("FirstLine=%q", got)
	}
	long := strings.Repeat("字", 130)
	if n := len([]rune(FirstLine(long))); n != 120 {
		t.Fatalf("FirstLine length=%d want 120", n)
	}
}

func TestComposeContentRoundTrip(t *testing.T) {
	content := ComposeContent("Title", "body")
	if !strings.Contains(content, "Title: Title") {
		t.Fatalf("expected title line, got %q", content)
	}
	if !strings.Contains(content, "---\nbody\n") {
		t.Fatalf("expected body separator, got %q", content)
	}
	title, body := ParseEdited(content)
	if title != "Title" || body != "body\n" {
		t.Fatalf("round trip title=%q body=%q", title, body)
	}
}

func TestPathForID(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)
	path, err := PathForID("doc-id")
	if err != nil {
		t.Fatalf("PathForID error: %v", err)
	}
	if path != filepath.Join(dir, "scribe", "doc-id.scribe.md") {
		t.Fatalf("PathForID=%q", path)
	}
}
