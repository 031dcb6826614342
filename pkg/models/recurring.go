package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeSource is income that is expected every month, e.g. a salary.
type IncomeSource struct {
	DefaultModel
	BudgetID   uuid.UUID       `gorm:"type:uuid;uniqueIndex:income_source_budget_name,where:deleted_at IS NULL"`
	Budget     Budget          `json:"-"`
	MemberID   *uuid.UUID      `gorm:"type:uuid"`
	Member     Member          `json:"-"`
	AccountID  *uuid.UUID      `gorm:"type:uuid"`
	Account    Account         `json:"-"`
	CategoryID *uuid.UUID      `gorm:"type:uuid"`
	Category   Category        `json:"-"`
	Name       string          `gorm:"uniqueIndex:income_source_budget_name,where:deleted_at IS NULL"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DayOfMonth int
	StartMonth types.Month
	EndMonth   *types.Month
	Active     bool
}

func (i *IncomeSource) BeforeSave(tx *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.MemberID = nilIfEmpty(i.MemberID)
	i.AccountID = nilIfEmpty(i.AccountID)
	i.CategoryID = nilIfEmpty(i.CategoryID)

	err := validateSchedule(i.Name, i.Amount, i.DayOfMonth, &i.StartMonth, &i.EndMonth)
	if err != nil {
		return err
	}

	return checkReferences(tx, i.BudgetID,
		reference{&Member{}, i.MemberID},
		reference{&Account{}, i.AccountID},
		reference{&Category{}, i.CategoryID},
	)
}

// RecurringBill is an expense that is due every month, e.g. rent.
type RecurringBill struct {
	DefaultModel
	BudgetID   uuid.UUID       `gorm:"type:uuid;uniqueIndex:recurring_bill_budget_name,where:deleted_at IS NULL"`
	Budget     Budget          `json:"-"`
	AccountID  *uuid.UUID      `gorm:"type:uuid"`
	Account    Account         `json:"-"`
	CategoryID *uuid.UUID      `gorm:"type:uuid"`
	Category   Category        `json:"-"`
	Name       string          `gorm:"uniqueIndex:recurring_bill_budget_name,where:deleted_at IS NULL"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDay     int
	StartMonth types.Month
	EndMonth   *types.Month
	Active     bool
}

func (b *RecurringBill) BeforeSave(tx *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.AccountID = nilIfEmpty(b.AccountID)
	b.CategoryID = nilIfEmpty(b.CategoryID)

	err := validateSchedule(b.Name, b.Amount, b.DueDay, &b.StartMonth, &b.EndMonth)
	if err != nil {
		return err
	}

	return checkReferences(tx, b.BudgetID,
		reference{&Account{}, b.AccountID},
		reference{&Category{}, b.CategoryID},
	)
}

// validateSchedule validates the fields shared by income sources and
// recurring bills. The start month defaults to the current month.
func validateSchedule(name string, amount decimal.Decimal, day int, start *types.Month, end **types.Month) error {
	if name == "" {
		return ErrNameEmpty
	}

	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if day < 1 || day > 31 {
		return ErrDayOfMonth
	}

	if start.IsZero() {
		*start = types.MonthOf(time.Now().In(time.UTC))
	}

	if *end != nil && (*end).IsZero() {
		*end = nil
	}

	if *end != nil && (*end).Before(*start) {
		return ErrMonthRange
	}

	return nil
}

// activeIn returns the scope for schedules that are active in the month.
func activeIn(budgetID uuid.UUID, month types.Month) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("budget_id = ? AND active = ?", budgetID, true).
			Where("start_month <= ?", month).
			Where("(end_month IS NULL OR end_month >= ?)", month)
	}
}
