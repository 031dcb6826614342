package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Permission is an action a member can take on a budget.
type Permission int

const (
	// PermissionRead allows to view the budget and all its resources.
	PermissionRead Permission = iota

	// PermissionContribute allows to record transactions and goal contributions.
	PermissionContribute

	// PermissionWrite allows to change the budget's configuration: categories,
	// accounts, goals, income sources, recurring bills and rules.
	PermissionWrite

	// PermissionManage allows to delete the budget and to manage members and invites.
	PermissionManage
)

// Allows reports if a member with the role may perform actions
// requiring the permission.
func (r Role) Allows(p Permission) bool {
	switch r {
	case RoleOwner:
		return true
	case RolePartner:
		return p <= PermissionWrite
	case RoleChild:
		return p <= PermissionContribute
	}

	return false
}

// Authorize checks that the user is an active member of the budget whose
// role allows the permission.
//
// If the user is not a member, the budget is reported as not found so
// that the existence of other budgets is not disclosed.
func Authorize(db *gorm.DB, userID, budgetID uuid.UUID, p Permission) (Member, error) {
	var member Member
	err := db.
		Joins("JOIN budgets ON budgets.id = members.budget_id AND budgets.deleted_at IS NULL").
		Where("members.budget_id = ? AND members.user_id = ? AND members.archived = ?", budgetID, userID, false).
		First(&member).Error

	if errors.Is(err, ErrResourceNotFound) {
		return Member{}, fmt.Errorf("%w budget matching your query", ErrResourceNotFound)
	} else if err != nil {
		return Member{}, err
	}

	if !member.Role.Allows(p) {
		return Member{}, ErrForbidden
	}

	return member, nil
}

// MemberBudgetIDs returns a subquery selecting the IDs of all budgets
// the user is an active member of.
func MemberBudgetIDs(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.
		Model(&Member{}).
		Select("budget_id").
		Where("user_id = ? AND archived = ?", userID, false)
}

// reference is an optional foreign key to a resource that must belong
// to the same budget as the referencing resource.
type reference struct {
	model any
	id    *uuid.UUID
}

// checkReferences verifies that all set references exist and belong
// to the budget.
func checkReferences(tx *gorm.DB, budgetID uuid.UUID, references ...reference) error {
	for _, r := range references {
		if r.id == nil {
			continue
		}

		var owner struct {
			BudgetID uuid.UUID
		}

		err := tx.Model(r.model).Select("budget_id").Where("id = ?", *r.id).Take(&owner).Error
		if err != nil {
			return err
		}

		if owner.BudgetID != budgetID {
			return ErrCrossBudget
		}
	}

	return nil
}
