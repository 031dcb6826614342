// Package cli implements the hivebudget command.
package cli

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/internal/config"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options are shared by all commands.
type options struct {
	cfg config.Config
}

// NewRootCommand creates the root command. Without a subcommand, the
// server is started.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "hivebudget",
		Short:         "HiveBudget backend",
		Long:          "The backend for HiveBudget, a budgeting app for families and households.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogging(cmd.ErrOrStderr())

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	serve := NewServeCommand(opts)
	cmd.RunE = serve.RunE
	cmd.Flags().AddFlagSet(serve.Flags())

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewSeedPlansCommand(opts))

	return cmd
}

// configureLogging sets the gin mode and the global logger.
func configureLogging(out io.Writer) {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		out = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(out).With().Timestamp().Logger()
}

// connect opens and migrates the configured database.
func (o *options) connect() error {
	return models.Open(o.cfg.Database)
}
