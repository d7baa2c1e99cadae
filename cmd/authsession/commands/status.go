package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"authsession/internal/app"
)

// status: reconcile once and print the session belief.
func statusCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Ask the server whether the session is alive and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				state, err := appCtx.Sessions.Refresh(cmd.Context())
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(state)
			}

			page := app.FromWire(appCtx)
			defer page.Close()
			_, err := page.Start(cmd.Context())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the state as JSON instead of the page")
	return cmd
}
