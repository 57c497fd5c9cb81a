// Package commands implements the prospect command line client. It runs the
// same lookup as the HTTP service without starting a server.
package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"prospect-finder/internal/app"
	"prospect-finder/internal/common/logging"
	"prospect-finder/internal/config"
)

var (
	logLevel string
	appCtx   *app.App
)

// Execute runs the root command
func Execute() error {
	root := &cobra.Command{
		Use:           "prospect",
		Short:         "Look up LinkedIn prospects through HorizonDataWave",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg := config.Load()
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// stdout carries the result, so logs go to stderr
			logger, err := logging.NewZapLogger(logging.LogConfig{
				Level:  logging.ParseLevel(cfg.LogLevel),
				Output: os.Stderr,
			})
			if err != nil {
				return err
			}
			logging.SetGlobalLogger(logger)

			appCtx, err = app.New(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				appCtx.Cleanup()
			}
			logging.MustSync()
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default LOG_LEVEL or info)")

	root.AddCommand(lookupCmd())
	return root.Execute()
}
