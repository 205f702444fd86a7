package cli

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

const defaultPager = "less -FRSX"

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// pagerCommand returns the shell command used for paging. Setting $PAGER
// to "" or "cat" turns paging off.
func pagerCommand() (string, bool) {
	p, set := os.LookupEnv("PAGER")
	if !set {
		return defaultPager, true
	}
	p = strings.TrimSpace(p)
	if p == "" || p == "cat" {
		return "", false
	}
	return p, true
}

// withPager pipes output through the pager when out is a terminal. If the
// pager cannot start, output goes straight to out.
func withPager(ctx context.Context, out, errOut io.Writer, write func(io.Writer) error) error {
	pager, ok := pagerCommand()
	if !ok || !isTerminal(out) {
		return write(out)
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", pager)
	cmd.Stdout = out
	cmd.Stderr = errOut
	in, err := cmd.StdinPipe()
	if err != nil {
		return write(out)
	}
	if err := cmd.Start(); err != nil {
		return write(out)
	}
	writeErr := write(in)
	_ = in.Close()
	if err := cmd.Wait(); err != nil && writeErr == nil {
		return err
	}
	return writeErr
}
