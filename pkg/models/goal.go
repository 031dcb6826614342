package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target of a budget.
type Goal struct {
	DefaultModel
	BudgetID     uuid.UUID `gorm:"type:uuid;uniqueIndex:goal_budget_name,where:deleted_at IS NULL"`
	Budget       Budget    `json:"-"`
	Name         string    `gorm:"uniqueIndex:goal_budget_name,where:deleted_at IS NULL"`
	Note         string
	TargetAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TargetDate   *time.Time
	Archived     bool
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	if g.TargetDate != nil {
		if g.TargetDate.IsZero() {
			g.TargetDate = nil
		} else {
			utc := g.TargetDate.In(time.UTC)
			g.TargetDate = &utc
		}
	}

	if g.Name == "" {
		return ErrNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// Contributions returns all contributions to the goal, oldest first.
func (g Goal) Contributions(db *gorm.DB) ([]GoalContribution, error) {
	var contributions []GoalContribution
	err := db.
		Where(&GoalContribution{GoalID: g.ID}).
		Order("date ASC, created_at ASC").
		Find(&contributions).Error

	return contributions, err
}

// Metrics calculates the progress of the goal at the time now.
func (g Goal) Metrics(db *gorm.DB, now time.Time) (GoalMetrics, error) {
	contributions, err := g.Contributions(db)
	if err != nil {
		return GoalMetrics{}, err
	}

	return ComputeGoalMetrics(g, contributions, now), nil
}

// GoalContribution is money put towards a goal. Negative amounts are
// withdrawals.
type GoalContribution struct {
	DefaultModel
	GoalID   uuid.UUID       `gorm:"type:uuid;index"`
	Goal     Goal            `json:"-"`
	MemberID *uuid.UUID      `gorm:"type:uuid"`
	Member   Member          `json:"-"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date     time.Time
	Note     string
}

func (c *GoalContribution) AfterFind(tx *gorm.DB) (err error) {
	err = c.DefaultModel.AfterFind(tx)
	c.Date = c.Date.In(time.UTC)
	return
}

func (c *GoalContribution) BeforeSave(tx *gorm.DB) error {
	c.Note = strings.TrimSpace(c.Note)
	c.MemberID = nilIfEmpty(c.MemberID)

	if c.Date.IsZero() {
		c.Date = time.Now().In(time.UTC)
	} else {
		c.Date = c.Date.In(time.UTC)
	}

	if c.Amount.IsZero() {
		return ErrContributionZero
	}

	if c.MemberID == nil {
		return nil
	}

	var goal Goal
	err := tx.Select("budget_id").Where("id = ?", c.GoalID).Take(&goal).Error
	if err != nil {
		return err
	}

	return checkReferences(tx, goal.BudgetID, reference{&Member{}, c.MemberID})
}
