package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"authsession/internal/app"
	"authsession/internal/domain"
)

// login <username>: submit credentials, then reconcile.
func loginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in with a username and password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("password") {
				pw, err := prompt(cmd.OutOrStdout(), bufio.NewReader(cmd.InOrStdin()), "Password: ")
				if err != nil {
					return err
				}
				password = pw
			}

			page := app.FromWire(appCtx)
			defer page.Close()
			return page.Actions.Submit(cmd.Context(), domain.Credentials{
				Username: domain.Username(args[0]),
				Password: password,
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password (prompted on stdin when omitted)")
	return cmd
}

// prompt writes label and reads one line from in. A final line without a
// newline is accepted.
func prompt(out io.Writer, in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
