package admin_test

import (
	"net/http"

	"github.com/hivebudget/backend/pkg/controllers/admin"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
)

func (suite *TestSuiteStandard) TestStats() {
	family := models.Plan{Code: "family", Name: "Family"}
	pro := models.Plan{Code: "pro", Name: "Pro"}
	suite.Require().Nil(models.DB.Create(&family).Error)
	suite.Require().Nil(models.DB.Create(&pro).Error)

	for _, s := range []models.Subscription{
		{PlanID: family.ID, Status: models.SubscriptionActive},
		{PlanID: family.ID, Status: models.SubscriptionActive},
		{PlanID: pro.ID, Status: models.SubscriptionActive},
		{PlanID: pro.ID, Status: models.SubscriptionCanceled},
	} {
		user := suite.createTestUser(models.User{})
		s.UserID = user.ID
		suite.Require().Nil(models.DB.Create(&s).Error)

		budget := models.Budget{Name: "Household"}
		suite.Require().Nil(models.CreateBudget(models.DB, user, &budget))
	}

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/stats", "", asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response admin.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Four subscribers and the admin
	suite.Assert().Equal(int64(5), response.Data.Users)
	suite.Assert().Equal(int64(4), response.Data.Budgets)
	suite.Assert().Equal(int64(3), response.Data.ActiveSubscriptions)

	suite.Require().Len(response.Data.Plans, 2)
	suite.Assert().Equal("family", response.Data.Plans[0].Code)
	suite.Assert().Equal(int64(2), response.Data.Plans[0].Subscriptions)
	suite.Assert().Equal("pro", response.Data.Plans[1].Code)
	suite.Assert().Equal(int64(1), response.Data.Plans[1].Subscriptions)
}

func (suite *TestSuiteStandard) TestStatsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, baseURL+"/stats", "", asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response admin.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(int64(1), response.Data.Users)
	suite.Assert().NotNil(response.Data.Plans)
}
