package models

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Budget is a shared household budget. Every budget has exactly one
// member with the owner role.
type Budget struct {
	DefaultModel
	Name     string
	Note     string
	Currency string
	OwnerID  uuid.UUID `gorm:"type:uuid;index"`
	Owner    User      `json:"-"`
	Archived bool
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))

	if b.Name == "" {
		return ErrNameEmpty
	}

	if b.Currency == "" {
		b.Currency = "USD"
	}

	if _, err := currency.ParseISO(b.Currency); err != nil {
		return ErrInvalidCurrency
	}

	return nil
}

// CreateBudget creates the budget with the user as owner and adds the
// owner member.
func CreateBudget(db *gorm.DB, owner User, budget *Budget) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := CheckBudgetLimit(tx, owner.ID)
		if err != nil {
			return err
		}

		budget.OwnerID = owner.ID
		err = tx.Create(budget).Error
		if err != nil {
			return err
		}

		return tx.Create(&Member{
			BudgetID: budget.ID,
			UserID:   &owner.ID,
			Name:     memberName(owner, RoleOwner),
			Role:     RoleOwner,
		}).Error
	})
}

// DeleteBudget soft deletes the budget and its members.
func DeleteBudget(db *gorm.DB, budget Budget) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Member{BudgetID: budget.ID}).Delete(&Member{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("budget_id = ?", budget.ID).Delete(&Invite{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&budget).Error
	})
}
