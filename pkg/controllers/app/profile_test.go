package app_test

import (
	"net/http"
	"time"

	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
)

func (suite *TestSuiteStandard) TestProfile() {
	r := test.Request(suite.T(), http.MethodGet, baseURL+"/account", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var profile app.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &profile)
	suite.Assert().Equal("ada@example.com", profile.Data.User.Email)
	suite.Assert().False(profile.Data.User.SuperAdmin)
	suite.Assert().Nil(profile.Data.Subscription)
	suite.Assert().Nil(profile.Data.Plan, "no limits apply without a free plan")

	free := models.Plan{Code: models.FreePlanCode, Name: "Free", MaxBudgets: 1, MaxMembers: 3}
	suite.Require().Nil(models.DB.Create(&free).Error)

	r = test.Request(suite.T(), http.MethodPatch, baseURL+"/account", map[string]any{"name": " Ada Lovelace "}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &profile)
	suite.Assert().Equal("Ada Lovelace", profile.Data.User.Name)
	suite.Require().NotNil(profile.Data.Plan)
	suite.Assert().Equal(free.ID, profile.Data.Plan.ID)
	suite.Assert().Equal(1, profile.Data.Plan.MaxBudgets)
}

func (suite *TestSuiteStandard) TestProfileDelete() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "grace", budget, models.RolePartner)

	r := test.Request(suite.T(), http.MethodDelete, baseURL+"/account", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleted users cannot sign in again with the same subject
	r = test.Request(suite.T(), http.MethodGet, baseURL+"/account", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	// Owned budgets are deleted with the user
	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProfileRedeem() {
	plan := models.Plan{Code: "family", Name: "Family", MaxBudgets: 5}
	suite.Require().Nil(models.DB.Create(&plan).Error)
	suite.Require().Nil(models.DB.Create(&models.Coupon{Code: "SPRING26", PlanID: plan.ID, DurationDays: 30}).Error)

	link := models.AccessLink{Beta: true, MaxRedemptions: 5}
	suite.Require().Nil(models.DB.Create(&link).Error)

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/account/redeem", app.Redemption{Code: "spring26"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var profile app.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &profile)
	suite.Require().NotNil(profile.Data.Subscription)
	suite.Assert().Equal(models.SourceCoupon, profile.Data.Subscription.Source)
	suite.Require().NotNil(profile.Data.Subscription.ExpiresAt)
	suite.Assert().WithinDuration(time.Now().AddDate(0, 0, 30), *profile.Data.Subscription.ExpiresAt, time.Minute)
	suite.Require().NotNil(profile.Data.Plan)
	suite.Assert().Equal("family", profile.Data.Plan.Code)

	r = test.Request(suite.T(), http.MethodPost, baseURL+"/account/redeem", app.Redemption{Code: "SPRING26"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, baseURL+"/account/redeem", app.Redemption{Code: "WINTER"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Access links grant beta access
	r = test.Request(suite.T(), http.MethodPost, baseURL+"/account/redeem", app.Redemption{Code: link.Token}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &profile)
	suite.Assert().True(profile.Data.User.BetaAccess)
}

func (suite *TestSuiteStandard) TestProfileCheckoutDisabled() {
	plan := models.Plan{Code: "family", Name: "Family", StripePriceID: "price_123"}
	suite.Require().Nil(models.DB.Create(&plan).Error)

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/account/checkout", app.CheckoutRequest{PlanID: plan.ID}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)

	var response app.CheckoutResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "payments are not configured")
}

func (suite *TestSuiteStandard) TestProfileBotLink() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "kid", budget, models.RoleChild)
	foreign := createTestBudget(suite.T(), "grace", app.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/account/bot-link", app.BotLinkRequest{BudgetID: budget.Data.ID}, as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response app.BotLinkResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.Code, 8)
	suite.Assert().WithinDuration(time.Now().Add(models.BotLinkCodeValidity), response.Data.ExpiresAt, time.Minute)

	link, err := models.LinkChat(models.DB, models.PlatformTelegram, response.Data.Code, 42, time.Now())
	suite.Require().Nil(err)
	suite.Assert().Equal(budget.Data.ID, *link.BudgetID)

	r = test.Request(suite.T(), http.MethodPost, baseURL+"/account/bot-link", app.BotLinkRequest{BudgetID: foreign.Data.ID}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
