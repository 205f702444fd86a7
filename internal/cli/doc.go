package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/editor"
	"github.com/mithrel/scribe/internal/present"
	"github.com/mithrel/scribe/internal/render"
	"github.com/mithrel/scribe/internal/util"
	"github.com/mithrel/scribe/pkg/api"
)

// newDocCmd defines the parent "doc" command.
func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doc",
		Aliases: []string{"d"},
		Short:   "Work with documents",
	}
	cmd.AddCommand(newDocNewCmd())
	cmd.AddCommand(newDocListCmd())
	cmd.AddCommand(newDocShowCmd())
	cmd.AddCommand(newDocEditCmd())
	cmd.AddCommand(newDocDeleteCmd())
	cmd.AddCommand(newDocFindCmd())
	cmd.AddCommand(newDocSearchCmd())
	cmd.AddCommand(newDocNormalizeCmd())
	cmd.AddCommand(newDocSpacingCmd())
	cmd.AddCommand(newDocFormatCmd())
	cmd.AddCommand(newDocExportCmd())
	cmd.AddCommand(newDocImportCmd())
	return cmd
}

func resolveDoc(cmd *cobra.Command, ref string) (api.Document, error) {
	return util.ResolveRef(cmd.Context(), getApp(cmd).Store, ref)
}

// openSession resolves ref and starts an editor session on it.
func openSession(cmd *cobra.Command, ref string) (*editor.Session, error) {
	app := getApp(cmd)
	d, err := resolveDoc(cmd, ref)
	if err != nil {
		return nil, err
	}
	return editor.NewSession(d, app.Store, app.Sync), nil
}

// saveNew persists a new document and requests a sync pass.
func saveNew(cmd *cobra.Command, d api.Document) error {
	app := getApp(cmd)
	if err := app.Store.UpsertDocument(cmd.Context(), d); err != nil {
		return err
	}
	if _, err := app.Sync.RequestSync(cmd.Context(), "local-save"); err != nil {
		app.Log.Printf("sync after save: %v", err)
	}
	return nil
}

func terminalOptions(cmd *cobra.Command) render.TerminalOptions {
	v := getApp(cmd).Cfg
	return render.TerminalOptions{
		Style:    v.GetString("preview.style"),
		WordWrap: v.GetInt("preview.word_wrap"),
	}
}

// outputOptions parses --output; an empty value picks pretty output on a
// terminal and plain output otherwise.
func outputOptions(cmd *cobra.Command, output string, headers bool) (present.Options, error) {
	opts := present.Options{Headers: headers, Terminal: terminalOptions(cmd)}
	output = strings.ToLower(strings.TrimSpace(output))
	if output == "" {
		opts.Mode = present.ModePlain
		if isTerminal(cmd.OutOrStdout()) {
			opts.Mode = present.ModePretty
		}
		return opts, nil
	}
	mode, ok := present.ParseMode(output)
	if !ok {
		return opts, fmt.Errorf("invalid --output: %s", output)
	}
	opts.Mode = mode
	return opts, nil
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "", "output mode: plain|pretty|json|ndjson")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "pretty", "json", "ndjson"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func renderDocuments(cmd *cobra.Command, docs []api.Document, opts present.Options) error {
	return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
		return present.RenderDocuments(w, docs, opts)
	})
}
