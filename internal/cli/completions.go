package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/scribe/internal/config"
	"github.com/mithrel/scribe/internal/db"
	"github.com/mithrel/scribe/internal/util"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "completion",
		Short:       "Generate shell completion scripts",
		Annotations: map[string]string{skipApp: "true"},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "bash",
		Short: "Generate Bash completions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "zsh",
		Short: "Generate Zsh completions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "fish",
		Short: "Generate Fish completions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	return cmd
}

// completeDocRefs suggests document IDs and titles for <ref> arguments.
// Completion runs without the PersistentPreRun hook, so it opens the store
// itself.
func completeDocRefs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	v := viper.New()
	if err := config.Load(cmd.Context(), v); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	store, err := db.Open(cmd.Context(), v.GetString("db_url"))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer store.Close()
	docs, err := store.ListDocuments(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	byTitle := make(map[string]string, len(docs))
	cands := make([]string, 0, 2*len(docs))
	for _, d := range docs {
		cands = append(cands, d.ID)
		if d.Title != "" {
			cands = append(cands, d.Title)
			byTitle[d.Title] = d.ID
		}
	}
	out := make([]string, 0, 20)
	for _, c := range util.ScoreCompletions(toComplete, cands, 20) {
		if id, ok := byTitle[c]; ok {
			out = append(out, id+"\t"+c)
			continue
		}
		out = append(out, c)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
