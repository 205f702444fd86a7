package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/editor"
	"github.com/mithrel/scribe/pkg/api"
)

func newDocNewCmd() *cobra.Command {
	var body string
	var edit bool
	cmd := &cobra.Command{
		Use:   "new [title]",
		Short: "Create a document (use --edit to write it in $EDITOR)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			title := strings.TrimSpace(strings.Join(args, " "))
			if body == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				body = string(data)
			}
			d := api.NewDocument(title, body, time.Now())

			if edit {
				path, err := editor.PathForID(d.ID)
				if err != nil {
					return err
				}
				out, _, err := editor.OpenAt(cmd.Context(), path, []byte(editor.ComposeContent(title, body)))
				_ = os.Remove(path)
				if err != nil {
					return err
				}
				d.Title, d.Body = editor.ParseEdited(string(out))
			}
			if d.Title == "" {
				d.Title = editor.FirstLine(d.Body)
			}
			if d.Title == "" && strings.TrimSpace(d.Body) == "" {
				if !edit {
					return fmt.Errorf("empty title and body")
				}
				if app.Cfg.GetBool("editor.delete_empty") {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Document aborted: empty content.")
					return nil
				}
				d.Title = "Untitled"
			}
			if err := saveNew(cmd, d); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.ID, d.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&body, "body", "b", "", "document body (\"-\" reads stdin)")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "open $EDITOR to write the document")
	return cmd
}
