package cli

import (
	"fmt"
	"time"

	"github.com/hivebudget/backend/internal/types"
	"github.com/hivebudget/backend/pkg/jobs"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/spf13/cobra"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(opts *options) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create the pending transactions of a month for all budgets",
		Long: `Create the pending transactions for the recurring bills and income
sources of all budgets that are not archived.

Occurrences that already have a transaction are skipped, so the command
can be run any number of times.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := types.MonthOf(time.Now().In(time.UTC))
			if month != "" {
				var err error
				m, err = types.ParseMonth(month)
				if err != nil {
					return err
				}
			}

			err := opts.connect()
			if err != nil {
				return err
			}

			result := jobs.New(models.DB, opts.cfg.JobInterval, opts.cfg.JobWorkers).Generate(cmd.Context(), m)
			fmt.Fprintf(cmd.OutOrStdout(), "created %d pending transactions for %d budgets in %s\n", result.Created, result.Budgets, m)

			if result.Failed > 0 {
				return fmt.Errorf("generation failed for %d budgets", result.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to generate as YYYY-MM (default: current month)")
	return cmd
}
