package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxInstallments is the maximum number of installments for a purchase.
const MaxInstallments = 72

// minInstallment is the smallest amount of a single installment.
var minInstallment = decimal.New(1, -2)

// Installment is one part of a purchase paid in installments.
type Installment struct {
	Number int
	Amount decimal.Decimal
	Date   time.Time
	Month  types.Month
}

// InstallmentSchedule splits the amount into count installments.
//
// Each installment is the amount divided by the count, rounded down to
// the cent. The first installment also carries the remainder so that
// the installments sum up to the amount.
//
// For credit cards, installments are due on the card's due day. A
// purchase after the closing day is billed on the next statement.
// For all other accounts, installments are due every month on the day
// of the purchase.
func InstallmentSchedule(date time.Time, amount decimal.Decimal, count int, account *Account) ([]Installment, error) {
	if count < 1 || count > MaxInstallments {
		return nil, ErrInstallmentCount
	}

	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	n := decimal.NewFromInt(int64(count))
	if amount.LessThan(minInstallment.Mul(n)) {
		return nil, ErrInstallmentAmount
	}

	per := amount.Div(n).RoundFloor(2)
	first := amount.Sub(per.Mul(n.Sub(decimal.NewFromInt(1))))

	purchaseMonth := types.MonthOf(date)
	creditCard := account != nil && account.Kind == AccountCreditCard

	// Statement month and payment month of the first installment
	statement := purchaseMonth
	payment := purchaseMonth
	if creditCard {
		if date.Day() > purchaseMonth.Day(account.ClosingDay).Day() {
			statement = statement.AddDate(0, 1)
		}

		payment = statement
		if account.DueDay <= account.ClosingDay {
			payment = payment.AddDate(0, 1)
		}
	}

	installments := make([]Installment, 0, count)
	for i := 0; i < count; i++ {
		installment := Installment{
			Number: i + 1,
			Amount: per,
		}
		if i == 0 {
			installment.Amount = first
		}

		if creditCard {
			installment.Month = statement.AddDate(0, i)
			installment.Date = payment.AddDate(0, i).Day(account.DueDay)
		} else {
			installment.Date = purchaseMonth.AddDate(0, i).Day(date.Day())
			installment.Month = types.MonthOf(installment.Date)
		}

		installments = append(installments, installment)
	}

	return installments, nil
}

// CreateInstallments creates one transaction per installment of the
// purchase described by base. Installments due up to now are paid, later
// ones are pending.
func CreateInstallments(db *gorm.DB, base Transaction, count int, now time.Time) ([]Transaction, error) {
	var transactions []Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		var account *Account
		if base.AccountID != nil {
			account = &Account{}
			err := tx.First(account, "id = ?", *base.AccountID).Error
			if err != nil {
				return err
			}
		}

		if base.Date.IsZero() {
			base.Date = now
		}

		schedule, err := InstallmentSchedule(base.Date.In(time.UTC), base.Amount, count, account)
		if err != nil {
			return err
		}

		groupID := uuid.New()
		for _, installment := range schedule {
			t := base
			t.DefaultModel = DefaultModel{}
			t.Kind = KindExpense
			t.Amount = installment.Amount
			t.Date = installment.Date
			t.Month = installment.Month
			t.Description = fmt.Sprintf("%s (%d/%d)", base.Description, installment.Number, count)
			t.InstallmentGroupID = &groupID
			t.InstallmentNumber = installment.Number
			t.InstallmentCount = count

			t.Status = StatusPending
			if !installment.Date.After(now) {
				t.Status = StatusPaid
			}

			err = tx.Create(&t).Error
			if err != nil {
				return err
			}

			transactions = append(transactions, t)
		}

		return nil
	})

	return transactions, err
}
