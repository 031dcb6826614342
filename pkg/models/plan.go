package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FreePlanCode is the code of the plan used when a user has no
// active subscription.
const FreePlanCode = "free"

// Plan is a subscription plan. Limits of 0 mean unlimited.
type Plan struct {
	DefaultModel
	Code          string `gorm:"uniqueIndex:plan_code"`
	Name          string
	StripePriceID string
	MaxBudgets    int
	MaxMembers    int
	Archived      bool
}

func (p *Plan) BeforeSave(_ *gorm.DB) error {
	p.Code = strings.ToLower(strings.TrimSpace(p.Code))
	p.Name = strings.TrimSpace(p.Name)
	p.StripePriceID = strings.TrimSpace(p.StripePriceID)

	if p.Code == "" || p.Name == "" {
		return ErrNameEmpty
	}

	if p.MaxBudgets < 0 {
		p.MaxBudgets = 0
	}

	if p.MaxMembers < 0 {
		p.MaxMembers = 0
	}

	return nil
}

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

type SubscriptionSource string

const (
	SourceStripe     SubscriptionSource = "stripe"
	SourceCoupon     SubscriptionSource = "coupon"
	SourceAccessLink SubscriptionSource = "access_link"
)

// Subscription grants a user a plan. Every user has at most one.
type Subscription struct {
	DefaultModel
	UserID               uuid.UUID `gorm:"type:uuid;uniqueIndex:subscription_user"`
	User                 User      `json:"-"`
	PlanID               uuid.UUID `gorm:"type:uuid"`
	Plan                 Plan      `json:"-"`
	Status               SubscriptionStatus
	Source               SubscriptionSource
	Lifetime             bool
	ExpiresAt            *time.Time
	StripeCustomerID     string
	StripeSubscriptionID string `gorm:"index"`
}

func (s *Subscription) BeforeSave(_ *gorm.DB) error {
	switch s.Status {
	case SubscriptionActive, SubscriptionPastDue, SubscriptionCanceled, SubscriptionExpired:
	default:
		return ErrSubscriptionStatus
	}

	if s.Lifetime {
		s.ExpiresAt = nil
	}

	return nil
}

// Valid reports if the subscription grants its plan at the time now.
func (s Subscription) Valid(now time.Time) bool {
	return s.Status == SubscriptionActive && (s.Lifetime || s.ExpiresAt == nil || s.ExpiresAt.After(now))
}

// Coupon grants a plan for a duration or for lifetime when redeemed.
// A Stripe coupon ID makes it usable as a discount at checkout.
type Coupon struct {
	DefaultModel
	Code           string    `gorm:"uniqueIndex:coupon_code"`
	PlanID         uuid.UUID `gorm:"type:uuid"`
	Plan           Plan      `json:"-"`
	DurationDays   int
	Lifetime       bool
	MaxRedemptions int // 0 means unlimited
	Redemptions    int
	ExpiresAt      *time.Time
	StripeCouponID string
	Archived       bool
}

func (c *Coupon) BeforeSave(_ *gorm.DB) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.StripeCouponID = strings.TrimSpace(c.StripeCouponID)

	if c.Code == "" {
		return ErrNameEmpty
	}

	if c.PlanID == uuid.Nil {
		return ErrPlanRequired
	}

	if c.MaxRedemptions < 0 {
		c.MaxRedemptions = 0
	}

	return nil
}

// Usable returns an error if the coupon cannot be used at the time now.
func (c Coupon) Usable(now time.Time) error {
	if c.Archived {
		return ErrCodeArchived
	}

	if c.ExpiresAt != nil && !now.Before(*c.ExpiresAt) {
		return ErrCodeExpired
	}

	if c.MaxRedemptions > 0 && c.Redemptions >= c.MaxRedemptions {
		return ErrCodeExhausted
	}

	return nil
}

// AccessLink is a shareable link granting beta access and optionally a plan.
type AccessLink struct {
	DefaultModel
	Token          string     `gorm:"uniqueIndex:access_link_token"`
	PlanID         *uuid.UUID `gorm:"type:uuid"`
	Plan           Plan       `json:"-"`
	Beta           bool
	Lifetime       bool
	DurationDays   int
	MaxRedemptions int
	Redemptions    int
	ExpiresAt      *time.Time
	Note           string
	Archived       bool
}

func (a *AccessLink) BeforeSave(_ *gorm.DB) error {
	a.Note = strings.TrimSpace(a.Note)
	a.PlanID = nilIfEmpty(a.PlanID)

	if a.Token == "" {
		a.Token = NewToken()
	}

	if a.MaxRedemptions < 1 {
		a.MaxRedemptions = 1
	}

	return nil
}

// Redemption records that a user redeemed a coupon or an access link.
type Redemption struct {
	DefaultModel
	UserID       uuid.UUID  `gorm:"type:uuid;uniqueIndex:redemption_user_coupon;uniqueIndex:redemption_user_access_link"`
	User         User       `json:"-"`
	CouponID     *uuid.UUID `gorm:"type:uuid;uniqueIndex:redemption_user_coupon"`
	Coupon       Coupon     `json:"-"`
	AccessLinkID *uuid.UUID `gorm:"type:uuid;uniqueIndex:redemption_user_access_link"`
	AccessLink   AccessLink `json:"-"`
}

// EffectivePlan returns the plan the user is entitled to at the time now.
//
// Without a valid subscription, this is the free plan. If no free plan
// exists, nil is returned and no limits apply.
func EffectivePlan(db *gorm.DB, userID uuid.UUID, now time.Time) (*Plan, error) {
	var subscription Subscription
	err := db.Where(&Subscription{UserID: userID}).First(&subscription).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return nil, err
	}

	var plan Plan
	if err == nil && subscription.Valid(now) {
		err = db.First(&plan, "id = ?", subscription.PlanID).Error
		if err == nil {
			return &plan, nil
		} else if !errors.Is(err, ErrResourceNotFound) {
			return nil, err
		}
	}

	err = db.Where(&Plan{Code: FreePlanCode}).First(&plan).Error
	if errors.Is(err, ErrResourceNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &plan, nil
}

// CheckBudgetLimit returns ErrPlanLimit if the user cannot own another budget.
func CheckBudgetLimit(db *gorm.DB, userID uuid.UUID) error {
	plan, err := EffectivePlan(db, userID, time.Now())
	if err != nil || plan == nil || plan.MaxBudgets == 0 {
		return err
	}

	var owned int64
	err = db.Model(&Budget{}).Where(&Budget{OwnerID: userID}).Count(&owned).Error
	if err != nil {
		return err
	}

	if owned >= int64(plan.MaxBudgets) {
		return ErrPlanLimit
	}

	return nil
}

// CheckMemberLimit returns ErrPlanLimit if the plan of the budget owner
// does not allow another member.
func CheckMemberLimit(db *gorm.DB, budgetID uuid.UUID) error {
	var budget Budget
	err := db.First(&budget, "id = ?", budgetID).Error
	if err != nil {
		return err
	}

	plan, err := EffectivePlan(db, budget.OwnerID, time.Now())
	if err != nil || plan == nil || plan.MaxMembers == 0 {
		return err
	}

	var members int64
	err = db.Model(&Member{}).Where(&Member{BudgetID: budgetID}).Count(&members).Error
	if err != nil {
		return err
	}

	if members >= int64(plan.MaxMembers) {
		return ErrPlanLimit
	}

	return nil
}
