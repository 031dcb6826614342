package admin_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/controllers/admin"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestUser(user models.User) models.User {
	if user.Subject == "" {
		user.Subject = uuid.NewString()
	}

	err := models.DB.Create(&user).Error
	if err != nil {
		suite.Assert().FailNow("User could not be saved", "Error: %s, User: %#v", err, user)
	}

	return user
}

func (suite *TestSuiteStandard) TestUsersGetFilter() {
	suite.createTestUser(models.User{Email: "ada@example.com", Name: "Ada"})
	suite.createTestUser(models.User{Email: "grace@example.com", Name: "Grace", BetaAccess: true})
	suite.createTestUser(models.User{Email: "linus@example.org", Name: "Linus", SuperAdmin: true})

	// The admin is created with the first request
	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Email", "email=example.com", 3},
		{"Search name", "search=grace", 1},
		{"Search email", "search=.org", 1},
		{"Beta access", "betaAccess=true", 1},
		{"Super admin", "superAdmin=true", 1},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s/users?%s", baseURL, tt.query), "", asAdmin(t))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response admin.UserListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestUsersSubscription() {
	user := suite.createTestUser(models.User{Email: "ada@example.com"})
	plan := models.Plan{Code: "family", Name: "Family"}
	suite.Require().Nil(models.DB.Create(&plan).Error)

	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.Require().Nil(models.DB.Create(&models.Subscription{
		UserID:    user.ID,
		PlanID:    plan.ID,
		Status:    models.SubscriptionActive,
		Source:    models.SourceCoupon,
		ExpiresAt: &expires,
	}).Error)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/users/%s", baseURL, user.ID), "", asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response admin.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data.Subscription)
	suite.Assert().Equal(plan.ID, response.Data.Subscription.PlanID)
	suite.Assert().Equal(models.SourceCoupon, response.Data.Subscription.Source)
	suite.Assert().True(expires.Equal(*response.Data.Subscription.ExpiresAt))
}

func (suite *TestSuiteStandard) TestUsersUpdate() {
	user := suite.createTestUser(models.User{Email: "ada@example.com", Name: "Ada"})
	path := fmt.Sprintf("%s/users/%s", baseURL, user.ID)

	r := test.Request(suite.T(), http.MethodPatch, path, map[string]any{"betaAccess": true}, asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response admin.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.BetaAccess)
	suite.Assert().False(response.Data.SuperAdmin)
	suite.Assert().Equal("Ada", response.Data.Name)
	suite.Assert().Nil(response.Data.Subscription)

	r = test.Request(suite.T(), http.MethodPatch, path, map[string]any{"superAdmin": true, "betaAccess": false}, asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.BetaAccess)
	suite.Assert().True(response.Data.SuperAdmin)

	// The promoted user can now use the administration endpoints
	r = test.Request(suite.T(), http.MethodGet, baseURL+"/stats", "", test.Authorization(suite.T(), user.Subject, user.Email))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestUsersDetail() {
	user := suite.createTestUser(models.User{})

	tests := []struct {
		name   string
		method string
		id     string
		body   any
		status int
	}{
		{"OPTIONS existing", http.MethodOptions, user.ID.String(), "", http.StatusNoContent},
		{"OPTIONS invalid", http.MethodOptions, "nope", "", http.StatusBadRequest},
		{"GET missing", http.MethodGet, uuid.NewString(), "", http.StatusNotFound},
		{"PATCH missing", http.MethodPatch, uuid.NewString(), map[string]any{"betaAccess": true}, http.StatusNotFound},
		{"PATCH invalid body", http.MethodPatch, user.ID.String(), `{"betaAccess": "yes"}`, http.StatusBadRequest},
		{"DELETE not allowed", http.MethodDelete, user.ID.String(), "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("%s/users/%s", baseURL, tt.id), tt.body, asAdmin(t))
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.method == http.MethodOptions && tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH", r.Header().Get("allow"))
			}
		})
	}
}
