package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"authsession/internal/app"
	"authsession/internal/domain"
)

const shellHelp = "commands: status, login <username>, logout, whoami, help, quit"

// shell: one long-lived page. The store survives between commands.
func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive login page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			in := bufio.NewReader(cmd.InOrStdin())

			page := app.FromWire(appCtx)
			defer page.Close()
			if _, err := page.Start(cmd.Context()); err != nil {
				fmt.Fprintln(out, "server unreachable; state unknown")
			}

			for {
				line, err := prompt(out, in, "> ")
				if err != nil || cmd.Context().Err() != nil {
					// EOF ends the session like closing the page.
					return nil
				}

				fields := strings.Fields(line)
				if len(fields) == 0 {
					continue
				}
				switch fields[0] {
				case "quit", "exit":
					return nil
				case "help":
					fmt.Fprintln(out, shellHelp)
				case "status":
					if _, err := page.Sessions.Refresh(cmd.Context()); err != nil {
						fmt.Fprintln(out, "server unreachable; state unchanged")
					}
				case "login":
					if len(fields) != 2 {
						fmt.Fprintln(out, "usage: login <username>")
						continue
					}
					pw, err := prompt(out, in, "Password: ")
					if err != nil {
						return nil
					}
					creds := domain.Credentials{Username: domain.Username(fields[1]), Password: pw}
					if err := page.Actions.Submit(cmd.Context(), creds); err != nil {
						logger().Debug("submit", zap.Error(err))
					}
				case "logout":
					_ = page.Actions.Logout(cmd.Context())
				case "whoami":
					user, err := appCtx.API.WhoAmI(cmd.Context())
					if err != nil {
						fmt.Fprintln(out, "whoami:", err)
						continue
					}
					fmt.Fprintln(out, user)
				default:
					fmt.Fprintln(out, shellHelp)
				}
			}
		},
	}
}
