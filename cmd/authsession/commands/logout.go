package commands

import (
	"github.com/spf13/cobra"

	"authsession/internal/app"
)

// logout: end the session, then reconcile.
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and show the resulting session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := app.FromWire(appCtx)
			defer page.Close()
			return page.Actions.Logout(cmd.Context())
		},
	}
}
