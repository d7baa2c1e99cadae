package commands

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"authsession/internal/app"
	sessionsvc "authsession/internal/services/session"
)

// watch: reconcile on an interval and redraw after every refresh.
func watchCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the session and redraw on every refresh until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("interval") {
				interval = cfg.WatchInterval
			}
			page := app.FromWire(appCtx)
			defer page.Close()

			poller := sessionsvc.NewPoller(page.Sessions, clockwork.NewRealClock(), interval, appCtx.Log.Named("poller"))
			err := poller.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", sessionsvc.DefaultPollInterval, "time between refreshes")
	return cmd
}
