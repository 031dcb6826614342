package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteValidity is how long an invite can be accepted by default.
const InviteValidity = 7 * 24 * time.Hour

// Invite allows a user to join a budget with a specific role.
type Invite struct {
	DefaultModel
	BudgetID     uuid.UUID `gorm:"type:uuid;index"`
	Budget       Budget    `json:"-"`
	Token        string    `gorm:"uniqueIndex:invite_token"`
	Role         Role
	Email        string // If set, only the user with this email can accept the invite
	ExpiresAt    time.Time
	InvitedByID  uuid.UUID  `gorm:"type:uuid"`
	InvitedBy    User       `json:"-"`
	AcceptedByID *uuid.UUID `gorm:"type:uuid"`
	AcceptedBy   User       `json:"-"`
	AcceptedAt   *time.Time
}

// NewToken returns a random token for invites and access links.
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (i *Invite) BeforeSave(_ *gorm.DB) error {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.AcceptedByID = nilIfEmpty(i.AcceptedByID)

	if i.Token == "" {
		i.Token = NewToken()
	}

	if i.ExpiresAt.IsZero() {
		i.ExpiresAt = time.Now().In(time.UTC).Add(InviteValidity)
	}

	if i.Role != RolePartner && i.Role != RoleChild {
		return ErrInviteRole
	}

	return nil
}

// AcceptInvite adds the user to the budget of the invite.
func AcceptInvite(db *gorm.DB, user User, token string, now time.Time) (Member, error) {
	var member Member

	err := db.Transaction(func(tx *gorm.DB) error {
		var invite Invite
		err := tx.Where(&Invite{Token: strings.TrimSpace(token)}).First(&invite).Error
		if err != nil {
			return err
		}

		if invite.AcceptedAt != nil || !now.Before(invite.ExpiresAt) {
			return ErrInviteInvalid
		}

		if invite.Email != "" && invite.Email != user.Email {
			return ErrInviteEmail
		}

		var existing int64
		err = tx.Model(&Member{}).Where("budget_id = ? AND user_id = ?", invite.BudgetID, user.ID).Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyMember
		}

		member = Member{
			BudgetID: invite.BudgetID,
			UserID:   &user.ID,
			Name:     memberName(user, invite.Role),
			Role:     invite.Role,
		}

		err = AddMember(tx, &member)
		if err != nil {
			return err
		}

		acceptedAt := now.In(time.UTC)
		return tx.Model(&invite).Select("AcceptedByID", "AcceptedAt").Updates(Invite{
			AcceptedByID: &user.ID,
			AcceptedAt:   &acceptedAt,
		}).Error
	})

	return member, err
}
