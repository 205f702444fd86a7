package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/pkg/api"
)

func newDocDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:               "delete <ref>...",
		Aliases:           []string{"rm"},
		Short:             "Delete documents",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeDocRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if len(args) > 1 && !yes {
				return fmt.Errorf("deleting %d documents requires --yes", len(args))
			}
			// Resolve everything first so a bad ref deletes nothing. Refs
			// naming the same document collapse to one delete.
			docs := make([]api.Document, 0, len(args))
			seen := make(map[string]bool, len(args))
			for _, ref := range args {
				d, err := resolveDoc(cmd, ref)
				if err != nil {
					return err
				}
				if seen[d.ID] {
					continue
				}
				seen[d.ID] = true
				docs = append(docs, d)
			}
			for _, d := range docs {
				if err := app.Store.DeleteDocument(cmd.Context(), d.ID); err != nil {
					return err
				}
			}
			if _, err := app.Sync.RequestSync(cmd.Context(), "local-delete"); err != nil {
				app.Log.Printf("sync after delete: %v", err)
			}
			if len(docs) == 1 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Document %s deleted.\n", docs[0].ID)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d documents.\n", len(docs))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deleting several documents")
	return cmd
}
