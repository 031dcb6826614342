package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// grant is what redeeming a code entitles the user to.
type grant struct {
	planID   *uuid.UUID
	source   SubscriptionSource
	lifetime bool
	days     int
	beta     bool
}

// Redeem redeems a coupon code or an access link token for the user.
//
// Coupon codes are matched case-insensitively. The redemption counter
// is incremented atomically so that it never exceeds the maximum.
func Redeem(db *gorm.DB, user User, code string, now time.Time) (Subscription, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Subscription{}, fmt.Errorf("%w coupon or access link matching your code", ErrResourceNotFound)
	}

	var subscription Subscription
	err := db.Transaction(func(tx *gorm.DB) error {
		g, err := redeemCoupon(tx, user, code, now)
		if errors.Is(err, ErrResourceNotFound) {
			g, err = redeemAccessLink(tx, user, code, now)
		}

		if errors.Is(err, ErrResourceNotFound) {
			return fmt.Errorf("%w coupon or access link matching your code", ErrResourceNotFound)
		} else if err != nil {
			return err
		}

		if g.beta && !user.BetaAccess {
			err = tx.Model(&user).Select("BetaAccess").Updates(User{BetaAccess: true}).Error
			if err != nil {
				return err
			}
		}

		subscription, err = applyGrant(tx, user.ID, g, now)
		return err
	})

	return subscription, err
}

func redeemCoupon(tx *gorm.DB, user User, code string, now time.Time) (grant, error) {
	var coupon Coupon
	err := tx.Where(&Coupon{Code: strings.ToUpper(code)}).First(&coupon).Error
	if err != nil {
		return grant{}, err
	}

	err = coupon.Usable(now)
	if err != nil {
		return grant{}, err
	}

	var redeemed int64
	err = tx.Model(&Redemption{}).Where(&Redemption{UserID: user.ID, CouponID: &coupon.ID}).Count(&redeemed).Error
	if err != nil {
		return grant{}, err
	}
	if redeemed > 0 {
		return grant{}, ErrAlreadyRedeemed
	}

	result := tx.Model(&Coupon{}).
		Where("id = ? AND (max_redemptions = 0 OR redemptions < max_redemptions)", coupon.ID).
		UpdateColumn("redemptions", gorm.Expr("redemptions + 1"))
	if result.Error != nil {
		return grant{}, result.Error
	}
	if result.RowsAffected == 0 {
		return grant{}, ErrCodeExhausted
	}

	err = tx.Create(&Redemption{UserID: user.ID, CouponID: &coupon.ID}).Error
	if err != nil {
		return grant{}, err
	}

	return grant{
		planID:   &coupon.PlanID,
		source:   SourceCoupon,
		lifetime: coupon.Lifetime,
		days:     coupon.DurationDays,
	}, nil
}

func redeemAccessLink(tx *gorm.DB, user User, token string, now time.Time) (grant, error) {
	var link AccessLink
	err := tx.Where(&AccessLink{Token: token}).First(&link).Error
	if err != nil {
		return grant{}, err
	}

	if link.Archived {
		return grant{}, ErrCodeArchived
	}

	if link.ExpiresAt != nil && !now.Before(*link.ExpiresAt) {
		return grant{}, ErrCodeExpired
	}

	var redeemed int64
	err = tx.Model(&Redemption{}).Where(&Redemption{UserID: user.ID, AccessLinkID: &link.ID}).Count(&redeemed).Error
	if err != nil {
		return grant{}, err
	}
	if redeemed > 0 {
		return grant{}, ErrAlreadyRedeemed
	}

	result := tx.Model(&AccessLink{}).
		Where("id = ? AND redemptions < max_redemptions", link.ID).
		UpdateColumn("redemptions", gorm.Expr("redemptions + 1"))
	if result.Error != nil {
		return grant{}, result.Error
	}
	if result.RowsAffected == 0 {
		return grant{}, ErrCodeExhausted
	}

	err = tx.Create(&Redemption{UserID: user.ID, AccessLinkID: &link.ID}).Error
	if err != nil {
		return grant{}, err
	}

	return grant{
		planID:   link.PlanID,
		source:   SourceAccessLink,
		lifetime: link.Lifetime,
		days:     link.DurationDays,
		beta:     link.Beta,
	}, nil
}

// applyGrant activates the subscription of the user with the granted plan.
//
// Durations extend the current expiry when the subscription is still
// valid. A lifetime subscription stays lifetime. Plans cannot be granted
// while a Stripe subscription is valid.
func applyGrant(tx *gorm.DB, userID uuid.UUID, g grant, now time.Time) (Subscription, error) {
	var subscription Subscription
	err := tx.Where(&Subscription{UserID: userID}).First(&subscription).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return Subscription{}, err
	}

	// Grants without a plan only unlock beta access
	if g.planID == nil {
		return subscription, nil
	}

	valid := err == nil && subscription.Valid(now)

	// Stripe owns the plan and the expiry of paid subscriptions
	if valid && subscription.Source == SourceStripe {
		return Subscription{}, ErrAlreadySubscribed
	}

	subscription.UserID = userID
	subscription.PlanID = *g.planID
	subscription.Status = SubscriptionActive
	subscription.Source = g.source

	switch {
	case g.lifetime || (valid && subscription.Lifetime):
		subscription.Lifetime = true
		subscription.ExpiresAt = nil
	default:
		base := now
		if valid && subscription.ExpiresAt != nil && subscription.ExpiresAt.After(now) {
			base = *subscription.ExpiresAt
		}

		expires := base.Add(time.Duration(g.days) * 24 * time.Hour).In(time.UTC)
		subscription.Lifetime = false
		subscription.ExpiresAt = &expires
	}

	err = tx.Save(&subscription).Error
	return subscription, err
}
