package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionStatus string

const (
	StatusPaid    TransactionStatus = "paid"
	StatusPending TransactionStatus = "pending"
)

// Transaction is money spent or earned.
//
// Transactions generated for recurring bills and income sources are
// unique per month, deleted ones included, so that they are never
// generated twice.
type Transaction struct {
	DefaultModel
	BudgetID           uuid.UUID     `gorm:"type:uuid;index"`
	Budget             Budget        `json:"-"`
	AccountID          *uuid.UUID    `gorm:"type:uuid;index"`
	Account            Account       `json:"-"`
	CategoryID         *uuid.UUID    `gorm:"type:uuid;index"`
	Category           Category      `json:"-"`
	MemberID           *uuid.UUID    `gorm:"type:uuid"`
	Member             Member        `json:"-"`
	RecurringBillID    *uuid.UUID    `gorm:"type:uuid;uniqueIndex:transaction_bill_month"`
	RecurringBill      RecurringBill `json:"-"`
	IncomeSourceID     *uuid.UUID    `gorm:"type:uuid;uniqueIndex:transaction_income_month"`
	IncomeSource       IncomeSource  `json:"-"`
	Kind               Kind
	Status             TransactionStatus
	Amount             decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date               time.Time
	Month              types.Month `gorm:"uniqueIndex:transaction_bill_month;uniqueIndex:transaction_income_month"` // Month the transaction is accounted in
	Description        string
	InstallmentGroupID *uuid.UUID `gorm:"type:uuid;index"`
	InstallmentNumber  int
	InstallmentCount   int
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date for UTC
//   - defaults the accounting month to the month of the date
//   - verifies that referenced resources are in the same budget
func (t *Transaction) BeforeSave(tx *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)

	t.AccountID = nilIfEmpty(t.AccountID)
	t.CategoryID = nilIfEmpty(t.CategoryID)
	t.MemberID = nilIfEmpty(t.MemberID)
	t.RecurringBillID = nilIfEmpty(t.RecurringBillID)
	t.IncomeSourceID = nilIfEmpty(t.IncomeSourceID)
	t.InstallmentGroupID = nilIfEmpty(t.InstallmentGroupID)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Month.IsZero() {
		t.Month = types.MonthOf(t.Date)
	}

	if t.Kind == "" {
		t.Kind = KindExpense
	}
	if !t.Kind.valid() {
		return ErrTransactionKind
	}

	if t.Status == "" {
		t.Status = StatusPaid
	}
	if t.Status != StatusPaid && t.Status != StatusPending {
		return ErrTransactionStatus
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return checkReferences(tx, t.BudgetID,
		reference{&Account{}, t.AccountID},
		reference{&Category{}, t.CategoryID},
		reference{&Member{}, t.MemberID},
	)
}
