package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/docfile"
	"github.com/mithrel/scribe/internal/render"
	"github.com/mithrel/scribe/pkg/api"
)

func newDocExportCmd() *cobra.Command {
	var format, out string
	var noFrontMatter bool
	cmd := &cobra.Command{
		Use:               "export <ref>",
		Short:             "Export a document as Markdown or HTML",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			d, err := resolveDoc(cmd, args[0])
			if err != nil {
				return err
			}
			var data []byte
			switch strings.ToLower(format) {
			case "md", "markdown":
				withMeta := app.Cfg.GetBool("export.frontmatter") && !noFrontMatter
				if data, err = docfile.EncodeMarkdown(d, withMeta); err != nil {
					return err
				}
			case "html":
				page, err := render.Page(d.Body, pageOptions(cmd, d))
				if err != nil {
					return err
				}
				data = []byte(page)
			default:
				return fmt.Errorf("invalid --format: %s (want md or html)", format)
			}
			return writeOutput(cmd, out, data)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "md", "export format: md|html")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noFrontMatter, "no-frontmatter", false, "omit the YAML front matter block")
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"md", "html"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func pageOptions(cmd *cobra.Command, d api.Document) render.PageOptions {
	opts := render.PageOptions{
		Title:    d.Title,
		Sanitize: getApp(cmd).Cfg.GetBool("preview.sanitize"),
	}
	if d.Path != "" {
		opts.BaseDir = filepath.Dir(d.Path)
	}
	return opts
}

func writeOutput(cmd *cobra.Command, out string, data []byte) error {
	if out == "" || out == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
	return nil
}
