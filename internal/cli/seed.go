package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hivebudget/backend/pkg/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// planCatalog is the file format read by seed-plans.
type planCatalog struct {
	Plans []catalogPlan `yaml:"plans"`
}

type catalogPlan struct {
	Code          string `yaml:"code"`
	Name          string `yaml:"name"`
	StripePriceID string `yaml:"stripePriceId"`
	MaxBudgets    int    `yaml:"maxBudgets"`
	MaxMembers    int    `yaml:"maxMembers"`
	Archived      bool   `yaml:"archived"`
}

// NewSeedPlansCommand creates the seed-plans command.
func NewSeedPlansCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-plans <file.yaml>",
		Short: "Create or update subscription plans from a YAML file",
		Long: `Create or update the subscription plans listed in a YAML file.

Plans are matched by their code. Plans in the database that are not
listed in the file are left untouched.

Example:

  plans:
    - code: free
      name: Free
      maxBudgets: 1
      maxMembers: 2
    - code: family
      name: Family
      stripePriceId: price_123
      maxBudgets: 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			err = opts.connect()
			if err != nil {
				return err
			}

			created, updated, err := seedPlans(models.DB, f)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %d plans, updated %d plans\n", created, updated)
			return nil
		},
	}
}

// seedPlans upserts the plans of the catalog in r. Either all plans are
// written or none.
func seedPlans(db *gorm.DB, r io.Reader) (created, updated int, err error) {
	var catalog planCatalog
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err = decoder.Decode(&catalog)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid plan file: %w", err)
	}

	if len(catalog.Plans) == 0 {
		return 0, 0, errors.New("invalid plan file: no plans listed")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i, p := range catalog.Plans {
			plan := models.Plan{
				Code:          strings.ToLower(strings.TrimSpace(p.Code)),
				Name:          strings.TrimSpace(p.Name),
				StripePriceID: strings.TrimSpace(p.StripePriceID),
				MaxBudgets:    p.MaxBudgets,
				MaxMembers:    p.MaxMembers,
				Archived:      p.Archived,
			}

			if plan.Code == "" || plan.Name == "" {
				return fmt.Errorf("plan %d: %w", i+1, models.ErrNameEmpty)
			}

			var existing models.Plan
			err := tx.Where(&models.Plan{Code: plan.Code}).First(&existing).Error
			if errors.Is(err, models.ErrResourceNotFound) {
				err = tx.Create(&plan).Error
				if err != nil {
					return fmt.Errorf("plan %q: %w", p.Code, err)
				}
				created++
				continue
			} else if err != nil {
				return err
			}

			err = tx.Model(&existing).
				Select("Name", "StripePriceID", "MaxBudgets", "MaxMembers", "Archived").
				Updates(plan).Error
			if err != nil {
				return fmt.Errorf("plan %q: %w", p.Code, err)
			}
			updated++
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return created, updated, nil
}
