package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	TitlePrefix     = "Title: "
	headerSeparator = "---"
)

// ComposeContent creates the text presented to the external editor.
func ComposeContent(title string, body string) string {
	var b bytes.Buffer
	b.WriteString("# scribe document\n")
	b.WriteString("# Lines starting with '#' above the separator are ignored.\n")
	b.WriteString("# Set the Title. After '---', write the Markdown body.\n")
	b.WriteString(TitlePrefix)
	b.WriteString(title)
	b.WriteString("\n" + headerSeparator + "\n")
	if body != "" {
		if !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		b.WriteString(body)
	}
	return b.String()
}

// PreferredEditor finds a suitable editor from env or common defaults.
func PreferredEditor() (string, error) {
	if v := os.Getenv("VISUAL"); v != "" {
		return v, nil
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e, nil
	}
	for _, cand := range []string{"nvim", "vim", "vi", "nano"} {
		if p, err := exec.LookPath(cand); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no editor found; set $EDITOR or $VISUAL")
}

// PathForID returns a temp file path for a document ID.
func PathForID(id string) (string, error) {
	name := id + ".scribe.md"
	if xdg := os.Getenv("XDG_RUNTIME_DIR"); xdg != "" {
		return filepath.Join(xdg, "scribe", name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "scribe", "edit", name), nil
}

func writeFile0600(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, fs.FileMode(0o600))
}

// editorCommand builds the command that edits path. $VISUAL and $EDITOR
// may carry flags, so they run through sh.
func editorCommand(ctx context.Context, path string) (*exec.Cmd, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if ed := strings.TrimSpace(os.Getenv(env)); ed != "" {
			cmd := exec.CommandContext(ctx, "sh", "-c", `$SCRIBE_EDITOR "$SCRIBE_FILE"`)
			cmd.Env = append(os.Environ(), "SCRIBE_EDITOR="+ed, "SCRIBE_FILE="+path)
			return cmd, nil
		}
	}
	prog, err := PreferredEditor()
	if err != nil {
		return nil, err
	}
	return exec.CommandContext(ctx, prog, path), nil
}

// OpenAt writes initial to path, runs the editor on it and returns the
// saved content and whether it differs from initial.
func OpenAt(ctx context.Context, path string, initial []byte) (final []byte, changed bool, err error) {
	if err := writeFile0600(path, initial); err != nil {
		return nil, false, err
	}
	cmd, err := editorCommand(ctx, path)
	if err != nil {
		return nil, false, err
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, false, fmt.Errorf("editor: %w", err)
	}
	final, err = os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return final, !bytes.Equal(final, initial), nil
}

// ParseEdited extracts title and body from the editor output. Everything
// after the first '---' line belongs to the body verbatim, so Markdown
// headings and rules in the body survive.
func ParseEdited(s string) (title string, body string) {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(line, strings.TrimSpace(TitlePrefix)) {
			title = strings.TrimSpace(strings.TrimPrefix(line, strings.TrimSpace(TitlePrefix)))
			continue
		}
		if trimmed == headerSeparator {
			body = strings.Join(lines[i+1:], "\n")
			break
		}
	}
	body = strings.TrimRight(body, "\n")
	if body != "" {
		body += "\n"
	}
	return title, body
}

// FirstLine returns the first non-empty line with heading markers removed,
// squashed and truncated. It is used as a fallback title.
func FirstLine(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(strings.TrimLeft(s, "#"))
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > 120 {
		s = string(r[:120])
	}
	return s
}
