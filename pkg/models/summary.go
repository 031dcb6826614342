package models

import (
	"github.com/google/uuid"
	"github.com/hivebudget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthSummary is the overview of a budget for one month.
type MonthSummary struct {
	Month           types.Month
	Income          decimal.Decimal // Sum of paid income
	Expenses        decimal.Decimal // Sum of paid expenses
	PendingIncome   decimal.Decimal
	PendingExpenses decimal.Decimal
	Net             decimal.Decimal // Income minus expenses
	Categories      []CategorySummary
	Pending         []Transaction // Pending transactions, ordered by date
}

// CategorySummary is the spending of a category in a month.
type CategorySummary struct {
	Category  Category
	Spent     decimal.Decimal
	Pending   decimal.Decimal
	Remaining *decimal.Decimal // Only set when the category has a monthly limit
}

// BuildMonthSummary calculates the summary of the budget for the month.
func BuildMonthSummary(db *gorm.DB, budgetID uuid.UUID, month types.Month) (MonthSummary, error) {
	summary := MonthSummary{
		Month:      month,
		Categories: make([]CategorySummary, 0),
		Pending:    make([]Transaction, 0),
	}

	var categories []Category
	err := db.
		Where(&Category{BudgetID: budgetID}).
		Where("archived = ?", false).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return MonthSummary{}, err
	}

	var transactions []Transaction
	err = db.
		Where(&Transaction{BudgetID: budgetID, Month: month}).
		Order("date ASC, created_at ASC").
		Find(&transactions).Error
	if err != nil {
		return MonthSummary{}, err
	}

	type sums struct {
		spent, pending decimal.Decimal
	}
	byCategory := make(map[uuid.UUID]*sums)

	for _, t := range transactions {
		paid := t.Status == StatusPaid

		switch {
		case t.Kind == KindIncome && paid:
			summary.Income = summary.Income.Add(t.Amount)
		case t.Kind == KindIncome:
			summary.PendingIncome = summary.PendingIncome.Add(t.Amount)
		case paid:
			summary.Expenses = summary.Expenses.Add(t.Amount)
		default:
			summary.PendingExpenses = summary.PendingExpenses.Add(t.Amount)
		}

		if !paid {
			summary.Pending = append(summary.Pending, t)
		}

		if t.CategoryID == nil {
			continue
		}

		s, ok := byCategory[*t.CategoryID]
		if !ok {
			s = &sums{}
			byCategory[*t.CategoryID] = s
		}

		if paid {
			s.spent = s.spent.Add(t.Amount)
		} else {
			s.pending = s.pending.Add(t.Amount)
		}
	}

	summary.Net = summary.Income.Sub(summary.Expenses)

	for _, c := range categories {
		cs := CategorySummary{Category: c}
		if s, ok := byCategory[c.ID]; ok {
			cs.Spent = s.spent
			cs.Pending = s.pending
		}

		if c.MonthlyLimit.IsPositive() {
			remaining := c.MonthlyLimit.Sub(cs.Spent).Sub(cs.Pending)
			cs.Remaining = &remaining
		}

		summary.Categories = append(summary.Categories, cs)
	}

	return summary, nil
}
