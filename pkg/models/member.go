package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner   Role = "owner"
	RolePartner Role = "partner"
	RoleChild   Role = "child"
	RolePet     Role = "pet"
)

func (r Role) valid() bool {
	switch r {
	case RoleOwner, RolePartner, RoleChild, RolePet:
		return true
	}
	return false
}

// Member is a person (or pet) belonging to a budget. Members with a
// user can access the budget according to their role.
type Member struct {
	DefaultModel
	BudgetID uuid.UUID  `gorm:"type:uuid;uniqueIndex:member_budget_user,where:deleted_at IS NULL"`
	Budget   Budget     `json:"-"`
	UserID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:member_budget_user,where:deleted_at IS NULL"`
	User     User       `json:"-"`
	Name     string
	Role     Role
	Archived bool
}

func (m *Member) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.UserID = nilIfEmpty(m.UserID)

	if m.Role == "" {
		m.Role = RoleChild
	}

	if !m.Role.valid() {
		return ErrInvalidRole
	}

	if m.Role == RolePet && m.UserID != nil {
		return ErrPetWithUser
	}

	if m.Name == "" {
		return ErrNameEmpty
	}

	return nil
}

// memberName is the name of a new member for the user. Users without
// name and email are named after their role.
func memberName(user User, role Role) string {
	if user.Name != "" {
		return user.Name
	}

	if user.Email != "" {
		return user.Email
	}

	return string(role)
}

// AddMember adds a member to a budget, enforcing the member limit of the
// plan of the budget owner.
func AddMember(db *gorm.DB, member *Member) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if member.Role == RoleOwner {
			return ErrOwnerRole
		}

		err := CheckMemberLimit(tx, member.BudgetID)
		if err != nil {
			return err
		}

		return tx.Create(member).Error
	})
}
