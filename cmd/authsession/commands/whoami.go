package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoami: print the identity the server associates with the stored cookies.
func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the username the server reports for this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := appCtx.API.WhoAmI(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), user)
			return nil
		},
	}
}
