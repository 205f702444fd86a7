package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/render"
)

func newPreviewCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:               "preview <ref>",
		Short:             "Write a standalone HTML preview page",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDoc(cmd, args[0])
			if err != nil {
				return err
			}
			page, err := render.Page(d.Body, pageOptions(cmd, d))
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, []byte(page))
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}
