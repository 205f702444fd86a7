package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newDocsCmd() *cobra.Command {
	var dir string
	var markdown bool
	cmd := &cobra.Command{
		Use:         "docs",
		Short:       "Generate man pages (or Markdown with --markdown)",
		Args:        cobra.NoArgs,
		Hidden:      true,
		Annotations: map[string]string{skipApp: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			root := cmd.Root()
			root.DisableAutoGenTag = true
			if markdown {
				if err := doc.GenMarkdownTree(root, dir); err != nil {
					return err
				}
			} else {
				header := &doc.GenManHeader{Title: "SCRIBE", Section: "1"}
				if err := doc.GenManTree(root, header, dir); err != nil {
					return err
				}
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote docs to %s\n", filepath.Clean(dir))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "./docs/man", "output directory")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "write Markdown instead of man pages")
	return cmd
}
