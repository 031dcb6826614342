package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivateStripeSubscription activates the plan for the user after a
// successful checkout.
func ActivateStripeSubscription(db *gorm.DB, userID, planID uuid.UUID, customerID, subscriptionID string) (Subscription, error) {
	var subscription Subscription

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&Plan{}, "id = ?", planID).Error
		if err != nil {
			return err
		}

		err = tx.First(&User{}, "id = ?", userID).Error
		if err != nil {
			return err
		}

		err = tx.Where(&Subscription{UserID: userID}).First(&subscription).Error
		if err != nil && !errors.Is(err, ErrResourceNotFound) {
			return err
		}

		subscription.UserID = userID
		subscription.PlanID = planID
		subscription.Status = SubscriptionActive
		subscription.Source = SourceStripe
		subscription.Lifetime = false
		subscription.ExpiresAt = nil
		subscription.StripeCustomerID = customerID
		subscription.StripeSubscriptionID = subscriptionID

		return tx.Save(&subscription).Error
	})

	return subscription, err
}

// SetStripeSubscriptionStatus updates the status of the subscription with
// the Stripe subscription ID.
func SetStripeSubscriptionStatus(db *gorm.DB, stripeSubscriptionID string, status SubscriptionStatus) (Subscription, error) {
	var subscription Subscription
	err := db.Where(&Subscription{StripeSubscriptionID: stripeSubscriptionID}).First(&subscription).Error
	if err != nil {
		return Subscription{}, err
	}

	if subscription.Status == status {
		return subscription, nil
	}

	err = db.Model(&subscription).Select("Status").Updates(Subscription{Status: status}).Error
	if err != nil {
		return Subscription{}, err
	}

	subscription.Status = status
	return subscription, nil
}

// ExpireSubscriptions marks all active subscriptions whose expiry has
// passed as expired and returns how many were changed.
func ExpireSubscriptions(db *gorm.DB, now time.Time) (int64, error) {
	result := db.
		Model(&Subscription{}).
		Where("status = ? AND lifetime = ? AND expires_at IS NOT NULL AND expires_at <= ?", SubscriptionActive, false, now.In(time.UTC)).
		UpdateColumn("status", SubscriptionExpired)

	return result.RowsAffected, result.Error
}
