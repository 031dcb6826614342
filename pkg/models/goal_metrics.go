package models

import (
	"time"

	"github.com/hivebudget/backend/internal/types"
	"github.com/shopspring/decimal"
)

// GoalMetrics describes the progress of a goal.
type GoalMetrics struct {
	Saved           decimal.Decimal `json:"saved" example:"1200"`          // Sum of all contributions
	Remaining       decimal.Decimal `json:"remaining" example:"3800"`      // Amount still missing to reach the target, never negative
	Progress        decimal.Decimal `json:"progress" example:"24"`         // Percentage of the target saved, between 0 and 100
	Completed       bool            `json:"completed" example:"false"`     // Is the target reached?
	MonthsLeft      int             `json:"monthsLeft" example:"8"`        // Months until the target date, the current and target month included
	MonthlyRequired decimal.Decimal `json:"monthlyRequired" example:"475"` // Amount to save per month to reach the target in time
	OnTrack         bool            `json:"onTrack" example:"true"`        // Is the saved amount at least the linearly expected amount?
}

var hundred = decimal.NewFromInt(100)

// ComputeGoalMetrics calculates the metrics of the goal at the time now.
func ComputeGoalMetrics(goal Goal, contributions []GoalContribution, now time.Time) GoalMetrics {
	var m GoalMetrics

	for _, c := range contributions {
		m.Saved = m.Saved.Add(c.Amount)
	}

	target := goal.TargetAmount
	m.Remaining = decimal.Max(target.Sub(m.Saved), decimal.Zero)
	m.Completed = m.Saved.GreaterThanOrEqual(target)

	if target.IsPositive() {
		progress := m.Saved.Div(target).Mul(hundred)
		m.Progress = decimal.Min(decimal.Max(progress, decimal.Zero), hundred).Round(2)
	}

	if goal.TargetDate == nil {
		m.OnTrack = true
		return m
	}

	current := types.MonthOf(now.In(time.UTC))
	targetMonth := types.MonthOf(goal.TargetDate.In(time.UTC))

	m.MonthsLeft = max(current.MonthsUntil(targetMonth)+1, 0)

	if m.MonthsLeft == 0 {
		m.MonthlyRequired = m.Remaining
	} else {
		m.MonthlyRequired = m.Remaining.Div(decimal.NewFromInt(int64(m.MonthsLeft))).RoundCeil(2)
	}

	if m.Completed {
		m.OnTrack = true
		return m
	}

	created := types.MonthOf(goal.CreatedAt.In(time.UTC))
	total := max(created.MonthsUntil(targetMonth)+1, 1)
	elapsed := min(max(created.MonthsUntil(current)+1, 0), total)

	expected := target.Mul(decimal.NewFromInt(int64(elapsed))).Div(decimal.NewFromInt(int64(total)))
	m.OnTrack = m.Saved.GreaterThanOrEqual(expected)

	return m
}
