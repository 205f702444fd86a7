package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/scribe/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage configuration",
		Annotations: map[string]string{skipApp: "true"},
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := getConfig(cmd)
			w := cmd.OutOrStdout()
			for _, o := range config.GetConfigOptions() {
				_, _ = fmt.Fprintf(w, "%s = %v\n", o.Key, v.Get(o.Key))
			}
			if err := config.CheckConfigValidity(v); err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "\ninvalid configuration:\n%v\n", err)
			}
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file in use (or the default location)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := getConfig(cmd).ConfigFileUsed()
			if path == "" {
				path = config.DefaultConfigPath()
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var out string
	var overwrite, update bool
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"generate"},
		Short:   "Generate a default config.toml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if overwrite && update {
				return fmt.Errorf("choose either --overwrite or --update")
			}
			if out == "" {
				out = config.DefaultConfigPath()
			}
			mode := config.WriteNew
			switch {
			case overwrite:
				mode = config.WriteOverwrite
			case update:
				mode = config.WriteUpdate
			}
			res, err := config.WriteFile(out, mode, time.Now())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if res.Unchanged {
				_, _ = fmt.Fprintf(w, "Config already up to date: %s\n", res.Path)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Wrote %s\n", res.Path)
			if res.Backup != "" {
				_, _ = fmt.Fprintf(w, "Backup: %s\n", res.Backup)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path for config.toml")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing config (creates a backup)")
	cmd.Flags().BoolVar(&update, "update", false, "merge defaults into existing config (creates a backup)")
	return cmd
}
