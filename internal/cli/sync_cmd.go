package cli

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run a sync pass and print state transitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			states, cancel := app.Sync.Subscribe()

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				for s := range states {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "sync: %s\n", s)
				}
			}()

			rep, err := app.Sync.RequestSync(cmd.Context(), reason)
			cancel()
			wg.Wait()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d changed, %d removed\n", rep.Changed, rep.Removed)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "manual", "reason recorded in the sync log")
	return cmd
}
