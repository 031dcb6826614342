package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PlatformTelegram = "telegram"

	// BotLinkCodeValidity is how long a link code can be used.
	BotLinkCodeValidity = 15 * time.Minute
)

// BotLink connects a chat on a messaging platform to a user and budget.
//
// It is created with a one-time code which the user sends to the bot
// from the chat to complete the link.
type BotLink struct {
	DefaultModel
	UserID        uuid.UUID  `gorm:"type:uuid;index"`
	User          User       `json:"-"`
	BudgetID      *uuid.UUID `gorm:"type:uuid"`
	Budget        Budget     `json:"-"`
	Platform      string     `gorm:"uniqueIndex:bot_link_chat,where:deleted_at IS NULL"`
	ChatID        *int64     `gorm:"uniqueIndex:bot_link_chat,where:deleted_at IS NULL"`
	Code          string     `gorm:"uniqueIndex:bot_link_code"`
	CodeExpiresAt time.Time
	LinkedAt      *time.Time
}

func (l *BotLink) BeforeSave(_ *gorm.DB) error {
	l.BudgetID = nilIfEmpty(l.BudgetID)

	if l.Platform == "" {
		l.Platform = PlatformTelegram
	}

	if l.Code == "" {
		l.Code = strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	}

	if l.CodeExpiresAt.IsZero() {
		l.CodeExpiresAt = time.Now().In(time.UTC).Add(BotLinkCodeValidity)
	}

	return nil
}

// LinkChat completes the link for the code with the chat. An existing
// link for the chat is replaced.
func LinkChat(db *gorm.DB, platform, code string, chatID int64, now time.Time) (BotLink, error) {
	var link BotLink

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&BotLink{Platform: platform, Code: strings.ToUpper(strings.TrimSpace(code))}).First(&link).Error
		if err != nil {
			return err
		}

		if link.LinkedAt != nil || !now.Before(link.CodeExpiresAt) {
			return ErrCodeExpired
		}

		err = tx.Where("platform = ? AND chat_id = ?", platform, chatID).Delete(&BotLink{}).Error
		if err != nil {
			return err
		}

		linkedAt := now.In(time.UTC)
		link.ChatID = &chatID
		link.LinkedAt = &linkedAt
		return tx.Model(&link).Select("ChatID", "LinkedAt").Updates(BotLink{ChatID: &chatID, LinkedAt: &linkedAt}).Error
	})

	return link, err
}

// LinkedChat returns the active link for the chat.
func LinkedChat(db *gorm.DB, platform string, chatID int64) (BotLink, error) {
	var link BotLink
	err := db.
		Where("platform = ? AND chat_id = ? AND linked_at IS NOT NULL", platform, chatID).
		First(&link).Error

	return link, err
}
