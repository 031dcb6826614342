package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			err := opts.connect()
			if err != nil {
				return err
			}

			log.Info().Msg("database migrated")
			return nil
		},
	}
}
