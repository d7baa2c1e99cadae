package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"authsession/internal/app"
	"authsession/internal/logging"
)

var (
	server     string
	home       string
	passphrase string
	loginPath  string
	logLevel   string
	envFile    string
	ephemeral  bool

	cfg    app.Config
	appCtx *app.Wire
)

// Execute runs the CLI until completion or interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "authsession",
		Short:         "Log in and out of a cookie-session auth server and track the session state",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			if cfg, err = app.LoadConfig(files...); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("server") {
				cfg.Server = server
			}
			if flags.Changed("home") {
				cfg.Home = home
			}
			if flags.Changed("login-path") {
				cfg.LoginPath = loginPath
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			cfg.Passphrase = passphrase
			cfg.Ephemeral = ephemeral

			log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, log, cmd.OutOrStdout())
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&server, "server", "", "auth server base URL (default http://localhost:8080)")
	pf.StringVar(&home, "home", "", "config dir holding the cookie jar (default ~/.authsession)")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal the stored cookie jar")
	pf.StringVar(&loginPath, "login-path", "", "path credentials are posted to (default /session)")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default info)")
	pf.StringVar(&envFile, "env-file", "", "read settings from this env file instead of ./.env")
	pf.BoolVar(&ephemeral, "ephemeral", false, "keep cookies in memory only")

	root.AddCommand(statusCmd(), loginCmd(), logoutCmd(), whoamiCmd(), watchCmd(), shellCmd())
	return root
}

// logger returns the wired logger, or a no-op one before wiring.
func logger() *zap.Logger {
	if appCtx == nil {
		return zap.NewNop()
	}
	return appCtx.Log
}
