package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/editor"
)

// finishEdit saves a changed session, or with dryRun prints the new body
// instead.
func finishEdit(cmd *cobra.Command, s *editor.Session, changed, dryRun bool) error {
	if dryRun {
		_, err := io.WriteString(cmd.OutOrStdout(), s.Document().Body)
		return err
	}
	if !changed {
		return nil
	}
	return s.Save(cmd.Context())
}

func newDocNormalizeCmd() *cobra.Command {
	var cursor int
	var dryRun bool
	cmd := &cobra.Command{
		Use:               "normalize <ref>",
		Short:             "Insert blank lines between adjacent paragraph lines",
		Long:              "Separate consecutive plain paragraph lines with a blank line. Code fences, math blocks, lists, blockquotes and tables are left alone. The adjusted cursor offset is reported on stderr.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			s.UpdateSelection(cursor, 0)
			changed := s.NormalizeBlankLines()
			if err := finishEdit(cmd, s, changed, dryRun); err != nil {
				return err
			}
			status := "unchanged"
			if changed {
				status = "normalized"
				if dryRun {
					status = "would normalize"
				}
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s; cursor %d\n", s.Document().ID, status, s.Selection().Location)
			return nil
		},
	}
	cmd.Flags().IntVar(&cursor, "cursor", 0, "caret offset in characters, adjusted for inserted lines")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the result instead of saving")
	return cmd
}

func newDocSpacingCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:               "spacing <ref>",
		Short:             "Insert spaces between Chinese characters and Latin letters or digits",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			changed := s.InsertCJKSpacing()
			if err := finishEdit(cmd, s, changed, dryRun); err != nil {
				return err
			}
			if dryRun {
				return nil
			}
			status := "unchanged"
			if changed {
				status = "updated"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", s.Document().ID, status)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the result instead of saving")
	return cmd
}

func newDocFormatCmd() *cobra.Command {
	var at, length int
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "format <ref> <action> [arg]",
		Short: "Apply a Markdown formatting action to a selection",
		Long: "Apply a named Markdown action to the selection given by --at and --len.\n" +
			"The optional arg is the URL for \"link\" and the path for \"image\".\n\n" +
			"Actions: " + strings.Join(editor.ActionNames(), ", "),
		Args: cobra.RangeArgs(2, 3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return completeDocRefs(cmd, args, toComplete)
			case 1:
				return editor.ActionNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			arg := ""
			if len(args) == 3 {
				arg = args[2]
			}
			s.UpdateSelection(at, length)
			if err := s.Apply(args[1], arg); err != nil {
				return err
			}
			if err := finishEdit(cmd, s, s.Dirty(), dryRun); err != nil {
				return err
			}
			sel := s.Selection()
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "selection %d+%d\n", sel.Location, sel.Length)
			return nil
		},
	}
	cmd.Flags().IntVar(&at, "at", 0, "selection start in characters")
	cmd.Flags().IntVar(&length, "len", 0, "selection length in characters")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the result instead of saving")
	return cmd
}
