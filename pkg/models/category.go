package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Kind is the direction of money: spent or earned.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

func (k Kind) valid() bool {
	return k == KindExpense || k == KindIncome
}

// Category groups transactions of a budget.
type Category struct {
	DefaultModel
	BudgetID     uuid.UUID `gorm:"type:uuid;uniqueIndex:category_budget_name,where:deleted_at IS NULL"`
	Budget       Budget    `json:"-"`
	Name         string    `gorm:"uniqueIndex:category_budget_name,where:deleted_at IS NULL"`
	Note         string
	Kind         Kind
	Color        string
	MonthlyLimit decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Zero means no limit
	Archived     bool
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)
	c.Color = strings.TrimSpace(c.Color)

	if c.Kind == "" {
		c.Kind = KindExpense
	}

	if !c.Kind.valid() {
		return ErrCategoryKind
	}

	if c.Name == "" {
		return ErrNameEmpty
	}

	if c.MonthlyLimit.IsNegative() {
		return ErrNegativeLimit
	}

	return nil
}
