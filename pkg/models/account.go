package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountKind string

const (
	AccountChecking   AccountKind = "checking"
	AccountSavings    AccountKind = "savings"
	AccountCash       AccountKind = "cash"
	AccountCreditCard AccountKind = "credit_card"
)

// Account is where money is kept: a bank account, a wallet or a credit card.
type Account struct {
	DefaultModel
	BudgetID       uuid.UUID `gorm:"type:uuid;uniqueIndex:account_budget_name,where:deleted_at IS NULL"`
	Budget         Budget    `json:"-"`
	Name           string    `gorm:"uniqueIndex:account_budget_name,where:deleted_at IS NULL"`
	Note           string
	Kind           AccountKind
	InitialBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ClosingDay     int             // Day the credit card statement closes
	DueDay         int             // Day the credit card statement is due
	Archived       bool
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if a.Kind == "" {
		a.Kind = AccountChecking
	}

	switch a.Kind {
	case AccountChecking, AccountSavings, AccountCash:
		a.ClosingDay = 0
		a.DueDay = 0
	case AccountCreditCard:
		if a.ClosingDay < 1 || a.ClosingDay > 31 || a.DueDay < 1 || a.DueDay > 31 {
			return ErrCreditCardDays
		}
	default:
		return ErrAccountKind
	}

	if a.Name == "" {
		return ErrNameEmpty
	}

	return nil
}

// Balance is the initial balance plus all paid income minus all paid
// expenses of the account.
func (a Account) Balance(db *gorm.DB) (decimal.Decimal, error) {
	var transactions []Transaction
	err := db.
		Select("kind", "amount").
		Where(&Transaction{AccountID: &a.ID, Status: StatusPaid}).
		Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	balance := a.InitialBalance
	for _, t := range transactions {
		if t.Kind == KindIncome {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}
	}

	return balance, nil
}
