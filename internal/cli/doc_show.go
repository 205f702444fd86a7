package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/present"
)

func newDocShowCmd() *cobra.Command {
	var output string
	var raw, stat bool
	cmd := &cobra.Command{
		Use:               "show <ref>",
		Short:             "Display a document",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDoc(cmd, args[0])
			if err != nil {
				return err
			}
			opts, err := outputOptions(cmd, output, false)
			if err != nil {
				return err
			}
			if stat {
				return present.RenderStats(cmd.OutOrStdout(), d, opts)
			}
			if raw {
				opts.Mode = present.ModePlain
			}
			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				return present.RenderDocument(w, d, opts)
			})
		},
	}
	addOutputFlag(cmd, &output)
	cmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown body without rendering")
	cmd.Flags().BoolVar(&stat, "stat", false, "print title, location, dates and character/word/line counts")
	return cmd
}
