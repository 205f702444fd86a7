package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/scribe/internal/config"
	"github.com/mithrel/scribe/internal/wire"
)

type ctxKey string

const (
	appKey ctxKey = "app"
	cfgKey ctxKey = "cfg"
)

// skipApp marks commands that only need configuration, not storage.
const skipApp = "scribe/skip-app"

// Execute builds the root command and runs it.
func Execute() error {
	cmd, st := newRootCmd()
	return st.run(cmd)
}

// NewRootCmd constructs the Cobra root command. Callers that execute it
// should go through Execute so the app is released.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

// runState holds the app built for one invocation.
type runState struct {
	app *wire.App
}

// run executes cmd and closes the app even when the command failed.
func (s *runState) run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}

func (s *runState) close() error {
	if s.app == nil {
		return nil
	}
	app := s.app
	s.app = nil
	return app.Close()
}

func newRootCmd() (*cobra.Command, *runState) {
	var cfgPath string
	st := &runState{}

	cmd := &cobra.Command{
		Use:           "scribe",
		Short:         "scribe: a local-first Markdown document library",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), cfgKey, v)
			if needsApp(cmd) {
				if err := config.CheckConfigValidity(v); err != nil {
					return fmt.Errorf("invalid configuration:\n%w", err)
				}
				app, err := wire.BuildApp(ctx, v)
				if err != nil {
					return err
				}
				st.app = app
				ctx = context.WithValue(ctx, appKey, app)
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml|yaml)")

	cmd.AddCommand(newDocCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newDocsCmd())
	cmd.AddCommand(newCompletionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd, st
}

func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipApp] != "" {
			return false
		}
	}
	return true
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}

func getConfig(cmd *cobra.Command) *viper.Viper {
	if v, ok := cmd.Context().Value(cfgKey).(*viper.Viper); ok {
		return v
	}
	return viper.New()
}
