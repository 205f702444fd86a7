package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/editor"
)

func newDocEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "edit <ref>",
		Short:             "Edit a document in $EDITOR",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			d := s.Document()
			path, err := editor.PathForID(d.ID)
			if err != nil {
				return err
			}
			out, changed, err := editor.OpenAt(cmd.Context(), path, []byte(editor.ComposeContent(d.Title, d.Body)))
			_ = os.Remove(path)
			if err != nil {
				return err
			}
			if !changed {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No edits; document unchanged.")
				return nil
			}
			title, body := editor.ParseEdited(string(out))
			if title == "" {
				title = editor.FirstLine(body)
			}
			if title == "" && strings.TrimSpace(body) == "" {
				return fmt.Errorf("edit aborted: empty content")
			}
			s.UpdateTitle(title)
			s.UpdateBody(body)
			if !s.Dirty() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No edits; document unchanged.")
				return nil
			}
			if err := s.Save(cmd.Context()); err != nil {
				return err
			}
			d = s.Document()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.ID, d.Title)
			return nil
		},
	}
	return cmd
}
