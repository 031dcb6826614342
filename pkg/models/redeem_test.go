package models_test

import (
	"time"

	"github.com/hivebudget/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestRedeemCoupon() {
	plan := suite.createTestPlan(models.Plan{Code: "family", MaxBudgets: 5})
	user := suite.createTestUser(models.User{})

	coupon := models.Coupon{Code: " spring26 ", PlanID: plan.ID, DurationDays: 30, MaxRedemptions: 2}
	suite.Require().Nil(models.DB.Create(&coupon).Error)
	suite.Assert().Equal("SPRING26", coupon.Code)

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	subscription, err := models.Redeem(models.DB, user, "Spring26", now)
	suite.Require().Nil(err)

	suite.Assert().Equal(plan.ID, subscription.PlanID)
	suite.Assert().Equal(models.SubscriptionActive, subscription.Status)
	suite.Assert().Equal(models.SourceCoupon, subscription.Source)
	suite.Require().NotNil(subscription.ExpiresAt)
	suite.Assert().Equal(now.AddDate(0, 0, 30), *subscription.ExpiresAt)

	_, err = models.Redeem(models.DB, user, "SPRING26", now)
	suite.Assert().ErrorIs(err, models.ErrAlreadyRedeemed)

	suite.Require().Nil(models.DB.First(&coupon, "id = ?", coupon.ID).Error)
	suite.Assert().Equal(1, coupon.Redemptions)

	effective, err := models.EffectivePlan(models.DB, user.ID, now)
	suite.Require().Nil(err)
	suite.Assert().Equal(plan.ID, effective.ID)

	// After expiry, the free plan applies again
	free := suite.createTestPlan(models.Plan{Code: models.FreePlanCode, MaxBudgets: 1})
	effective, err = models.EffectivePlan(models.DB, user.ID, now.AddDate(0, 0, 31))
	suite.Require().Nil(err)
	suite.Assert().Equal(free.ID, effective.ID)
}

func (suite *TestSuiteStandard) TestRedeemExtendsValidSubscription() {
	plan := suite.createTestPlan(models.Plan{Code: "family"})
	user := suite.createTestUser(models.User{})

	for _, code := range []string{"FIRST", "SECOND"} {
		suite.Require().Nil(models.DB.Create(&models.Coupon{Code: code, PlanID: plan.ID, DurationDays: 10}).Error)
	}

	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := models.Redeem(models.DB, user, "first", now)
	suite.Require().Nil(err)

	subscription, err := models.Redeem(models.DB, user, "second", now.AddDate(0, 0, 5))
	suite.Require().Nil(err)
	suite.Assert().Equal(now.AddDate(0, 0, 20), *subscription.ExpiresAt)
}

func (suite *TestSuiteStandard) TestRedeemLifetime() {
	plan := suite.createTestPlan(models.Plan{Code: "family"})
	user := suite.createTestUser(models.User{})

	suite.Require().Nil(models.DB.Create(&models.Coupon{Code: "FOREVER", PlanID: plan.ID, Lifetime: true}).Error)
	suite.Require().Nil(models.DB.Create(&models.Coupon{Code: "MONTH", PlanID: plan.ID, DurationDays: 30}).Error)

	now := time.Now()
	subscription, err := models.Redeem(models.DB, user, "forever", now)
	suite.Require().Nil(err)
	suite.Assert().True(subscription.Lifetime)
	suite.Assert().Nil(subscription.ExpiresAt)

	// A duration does not downgrade a lifetime subscription
	subscription, err = models.Redeem(models.DB, user, "month", now)
	suite.Require().Nil(err)
	suite.Assert().True(subscription.Lifetime)
	suite.Assert().Nil(subscription.ExpiresAt)
}

func (suite *TestSuiteStandard) TestRedeemFailures() {
	plan := suite.createTestPlan(models.Plan{Code: "family"})
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	now := time.Now().UTC()
	past := now.Add(-time.Hour)

	for _, coupon := range []models.Coupon{
		{Code: "EXPIRED", PlanID: plan.ID, DurationDays: 1, ExpiresAt: &past},
		{Code: "ARCHIVED", PlanID: plan.ID, DurationDays: 1, Archived: true},
		{Code: "ONCE", PlanID: plan.ID, DurationDays: 1, MaxRedemptions: 1},
	} {
		suite.Require().Nil(models.DB.Create(&coupon).Error)
	}

	_, err := models.Redeem(models.DB, other, "once", now)
	suite.Require().Nil(err)

	tests := []struct {
		code string
		err  error
	}{
		{"EXPIRED", models.ErrCodeExpired},
		{"archived", models.ErrCodeArchived},
		{"once", models.ErrCodeExhausted},
		{"does-not-exist", models.ErrResourceNotFound},
		{"  ", models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		_, err := models.Redeem(models.DB, user, tt.code, now)
		suite.Assert().ErrorIs(err, tt.err, tt.code)
	}

	// Failed redemptions leave no subscription behind
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Subscription{}).Where(&models.Subscription{UserID: user.ID}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestRedeemAccessLink() {
	plan := suite.createTestPlan(models.Plan{Code: "beta"})
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	link := models.AccessLink{PlanID: &plan.ID, Beta: true, Lifetime: true}
	suite.Require().Nil(models.DB.Create(&link).Error)
	suite.Assert().NotEmpty(link.Token)
	suite.Assert().Equal(1, link.MaxRedemptions)

	subscription, err := models.Redeem(models.DB, user, link.Token, time.Now())
	suite.Require().Nil(err)
	suite.Assert().Equal(models.SourceAccessLink, subscription.Source)
	suite.Assert().True(subscription.Lifetime)

	suite.Require().Nil(models.DB.First(&user, "id = ?", user.ID).Error)
	suite.Assert().True(user.BetaAccess)

	_, err = models.Redeem(models.DB, other, link.Token, time.Now())
	suite.Assert().ErrorIs(err, models.ErrCodeExhausted)
}

func (suite *TestSuiteStandard) TestRedeemBetaOnlyAccessLink() {
	user := suite.createTestUser(models.User{})

	link := models.AccessLink{Beta: true, MaxRedemptions: 10}
	suite.Require().Nil(models.DB.Create(&link).Error)

	_, err := models.Redeem(models.DB, user, link.Token, time.Now())
	suite.Require().Nil(err)

	suite.Require().Nil(models.DB.First(&user, "id = ?", user.ID).Error)
	suite.Assert().True(user.BetaAccess)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Subscription{}).Where(&models.Subscription{UserID: user.ID}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestStripeSubscriptionLifecycle() {
	plan := suite.createTestPlan(models.Plan{Code: "family", StripePriceID: "price_123"})
	user := suite.createTestUser(models.User{})

	subscription, err := models.ActivateStripeSubscription(models.DB, user.ID, plan.ID, "cus_1", "sub_1")
	suite.Require().Nil(err)
	suite.Assert().Equal(models.SourceStripe, subscription.Source)
	suite.Assert().Equal(models.SubscriptionActive, subscription.Status)

	subscription, err = models.SetStripeSubscriptionStatus(models.DB, "sub_1", models.SubscriptionPastDue)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.SubscriptionPastDue, subscription.Status)

	suite.Assert().False(subscription.Valid(time.Now()))

	_, err = models.SetStripeSubscriptionStatus(models.DB, "sub_unknown", models.SubscriptionCanceled)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRedeemWithStripeSubscription() {
	premium := suite.createTestPlan(models.Plan{Code: "premium", StripePriceID: "price_premium"})
	basic := suite.createTestPlan(models.Plan{Code: "basic"})
	user := suite.createTestUser(models.User{})

	_, err := models.ActivateStripeSubscription(models.DB, user.ID, premium.ID, "cus_1", "sub_1")
	suite.Require().Nil(err)

	coupon := models.Coupon{Code: "TRIAL", PlanID: basic.ID, DurationDays: 7}
	suite.Require().Nil(models.DB.Create(&coupon).Error)

	now := time.Now().UTC()
	_, err = models.Redeem(models.DB, user, "trial", now)
	suite.Assert().ErrorIs(err, models.ErrAlreadySubscribed)

	// The code is not used up
	suite.Require().Nil(models.DB.First(&coupon, "id = ?", coupon.ID).Error)
	suite.Assert().Equal(0, coupon.Redemptions)

	var subscription models.Subscription
	suite.Require().Nil(models.DB.Where(&models.Subscription{UserID: user.ID}).First(&subscription).Error)
	suite.Assert().Equal(premium.ID, subscription.PlanID)
	suite.Assert().Equal(models.SourceStripe, subscription.Source)
	suite.Assert().Nil(subscription.ExpiresAt)

	expired, err := models.ExpireSubscriptions(models.DB, now.AddDate(0, 0, 8))
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), expired)

	effective, err := models.EffectivePlan(models.DB, user.ID, now.AddDate(0, 0, 8))
	suite.Require().Nil(err)
	suite.Require().NotNil(effective)
	suite.Assert().Equal(premium.ID, effective.ID)

	// Beta access can still be granted
	link := models.AccessLink{Beta: true}
	suite.Require().Nil(models.DB.Create(&link).Error)
	_, err = models.Redeem(models.DB, user, link.Token, now)
	suite.Require().Nil(err)
	suite.Require().Nil(models.DB.First(&user, "id = ?", user.ID).Error)
	suite.Assert().True(user.BetaAccess)

	// Once Stripe cancels the subscription, codes work again
	_, err = models.SetStripeSubscriptionStatus(models.DB, "sub_1", models.SubscriptionCanceled)
	suite.Require().Nil(err)
	subscription, err = models.Redeem(models.DB, user, "TRIAL", now)
	suite.Require().Nil(err)
	suite.Assert().Equal(basic.ID, subscription.PlanID)
	suite.Assert().Equal(models.SourceCoupon, subscription.Source)
}

func (suite *TestSuiteStandard) TestExpireSubscriptions() {
	plan := suite.createTestPlan(models.Plan{Code: "family"})
	now := time.Now().UTC()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	for _, s := range []models.Subscription{
		{ExpiresAt: &past},
		{ExpiresAt: &future},
		{Lifetime: true},
		{ExpiresAt: &past, Status: models.SubscriptionCanceled},
	} {
		s.UserID = suite.createTestUser(models.User{}).ID
		s.PlanID = plan.ID
		if s.Status == "" {
			s.Status = models.SubscriptionActive
		}
		suite.Require().Nil(models.DB.Create(&s).Error)
	}

	expired, err := models.ExpireSubscriptions(models.DB, now)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), expired)

	expired, err = models.ExpireSubscriptions(models.DB, now)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), expired)
}
