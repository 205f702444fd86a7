package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/util"
)

func newDocFindCmd() *cobra.Command {
	var output string
	var limit int
	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-match document titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			opts, err := outputOptions(cmd, output, true)
			if err != nil {
				return err
			}
			docs, err := app.Store.ListDocuments(cmd.Context())
			if err != nil {
				return err
			}
			return renderDocuments(cmd, util.MatchTitles(strings.Join(args, " "), docs, limit), opts)
		},
	}
	addOutputFlag(cmd, &output)
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum matches")
	return cmd
}

func newDocSearchCmd() *cobra.Command {
	var output string
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search titles and bodies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			opts, err := outputOptions(cmd, output, true)
			if err != nil {
				return err
			}
			docs, err := app.Store.Search(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			return renderDocuments(cmd, docs, opts)
		},
	}
	addOutputFlag(cmd, &output)
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum results")
	return cmd
}
