package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// User is a person signed in through the identity provider.
type User struct {
	DefaultModel
	Subject    string `gorm:"uniqueIndex:user_subject"` // The "sub" claim of the identity provider
	Email      string `gorm:"index"`
	Name       string
	SuperAdmin bool
	BetaAccess bool
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Subject = strings.TrimSpace(u.Subject)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	return nil
}

// UserForSubject returns the user for the subject, creating it if it
// does not exist yet. Email and name are refreshed when they changed.
//
// Users that have been deleted are not recreated, ErrUnauthorized is
// returned for them.
func UserForSubject(db *gorm.DB, subject, email, name string) (User, error) {
	var user User
	err := db.Unscoped().Where(&User{Subject: subject}).First(&user).Error
	if errors.Is(err, ErrResourceNotFound) {
		user = User{Subject: subject, Email: email, Name: name}
		err = db.Create(&user).Error

		// A concurrent request created the user
		if errors.Is(err, ErrSubjectNotUnique) {
			err = db.Where(&User{Subject: subject}).First(&user).Error
		}
		return user, err
	} else if err != nil {
		return User{}, err
	}

	if user.DeletedAt != nil && user.DeletedAt.Valid {
		return User{}, ErrUnauthorized
	}

	// The name is only taken from the token until the user sets one
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || email == user.Email {
		email = user.Email
	}
	if user.Name != "" {
		name = user.Name
	}

	if email != user.Email || name != user.Name {
		user.Email = email
		user.Name = name
		err = db.Model(&user).Select("Email", "Name").Updates(User{Email: email, Name: name}).Error
	}

	return user, err
}

// DeleteUser soft deletes the user together with their memberships and
// all budgets they own.
func DeleteUser(db *gorm.DB, user User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var owned []Budget
		err := tx.Where(&Budget{OwnerID: user.ID}).Find(&owned).Error
		if err != nil {
			return err
		}

		for _, b := range owned {
			err = DeleteBudget(tx, b)
			if err != nil {
				return err
			}
		}

		err = tx.Where("user_id = ?", user.ID).Delete(&Member{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("user_id = ?", user.ID).Delete(&BotLink{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}
