package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EnsurePendingTransactions creates the pending transactions for all
// recurring bills and income sources of the budget that are active in
// the month and returns how many were created.
//
// An occurrence that already has a transaction, even a deleted one, is
// skipped. This makes the operation idempotent and safe to run
// concurrently.
func EnsurePendingTransactions(db *gorm.DB, budgetID uuid.UUID, month types.Month) (int, error) {
	created := 0

	var bills []RecurringBill
	err := db.Scopes(activeIn(budgetID, month)).Find(&bills).Error
	if err != nil {
		return 0, err
	}

	for _, bill := range bills {
		billID := bill.ID
		ok, err := ensureOccurrence(db, "recurring_bill_id", billID, month, Transaction{
			BudgetID:        budgetID,
			AccountID:       bill.AccountID,
			CategoryID:      bill.CategoryID,
			RecurringBillID: &billID,
			Kind:            KindExpense,
			Status:          StatusPending,
			Amount:          bill.Amount,
			Date:            month.Day(bill.DueDay),
			Month:           month,
			Description:     bill.Name,
		})
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	var incomes []IncomeSource
	err = db.Scopes(activeIn(budgetID, month)).Find(&incomes).Error
	if err != nil {
		return created, err
	}

	for _, income := range incomes {
		incomeID := income.ID
		ok, err := ensureOccurrence(db, "income_source_id", incomeID, month, Transaction{
			BudgetID:       budgetID,
			AccountID:      income.AccountID,
			CategoryID:     income.CategoryID,
			MemberID:       income.MemberID,
			IncomeSourceID: &incomeID,
			Kind:           KindIncome,
			Status:         StatusPending,
			Amount:         income.Amount,
			Date:           month.Day(income.DayOfMonth),
			Month:          month,
			Description:    income.Name,
		})
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	return created, nil
}

// ensureOccurrence creates the transaction unless one exists for the
// source in the month. It reports whether the transaction was created.
func ensureOccurrence(db *gorm.DB, column string, sourceID uuid.UUID, month types.Month, transaction Transaction) (bool, error) {
	var count int64
	err := db.
		Unscoped().
		Model(&Transaction{}).
		Where(column+" = ? AND month = ?", sourceID, month).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	if count > 0 {
		return false, nil
	}

	err = db.Create(&transaction).Error

	// A concurrent run created the transaction
	if errors.Is(err, ErrOccurrenceNotUnique) {
		return false, nil
	}

	// The account, category or member has been deleted since the schedule
	// was set up
	if errors.Is(err, ErrResourceNotFound) || errors.Is(err, ErrCrossBudget) {
		log.Warn().Err(err).Str("source", sourceID.String()).Str("month", month.String()).Msg("skipping occurrence with invalid references")
		return false, nil
	}

	return err == nil, err
}
