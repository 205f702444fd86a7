package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/util"
	"github.com/mithrel/scribe/pkg/api"
)

func newDocListCmd() *cobra.Command {
	var output string
	var limit int
	var noHeaders bool
	var since, until string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List documents, most recently updated first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			opts, err := outputOptions(cmd, output, !noHeaders)
			if err != nil {
				return err
			}
			window, err := util.ParseTimeRange(since, until, time.Now())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = app.Cfg.GetInt("list.limit")
			}

			docs, err := app.Store.ListDocuments(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]api.Document, 0, len(docs))
			for _, d := range docs {
				if !window.Contains(d.UpdatedAt) {
					continue
				}
				out = append(out, d)
				if limit > 0 && len(out) == limit {
					break
				}
			}
			return renderDocuments(cmd, out, opts)
		},
	}
	addOutputFlag(cmd, &output)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum documents to show (0 = all; default from list.limit)")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "omit column headers")
	cmd.Flags().StringVar(&since, "since", "", "only documents updated since (e.g. 2h, 3d, 2w, 1mo, 2024-01-02)")
	cmd.Flags().StringVar(&until, "until", "", "only documents updated until")
	return cmd
}
