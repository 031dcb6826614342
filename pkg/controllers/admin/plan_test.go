package admin_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/controllers/admin"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestPlan(t *testing.T, plan admin.PlanEditable, expectedStatus ...int) admin.PlanResponse {
	if plan.Name == "" {
		plan.Name = "Plan " + plan.Code
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, baseURL+"/plans", []admin.PlanEditable{plan}, asAdmin(t))
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response admin.PlanCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return admin.PlanResponse{}
}

func (suite *TestSuiteStandard) TestSuperAdminRequired() {
	paths := []string{"/stats", "/users", "/plans", "/coupons", "/access-links"}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, baseURL+path, "", test.Authorization(t, "someone", "someone@example.com"))
			test.AssertHTTPStatus(t, &r, http.StatusForbidden)

			r = test.Request(t, http.MethodGet, baseURL+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestSuperAdminFlag() {
	user := models.User{Subject: "flagged", Email: "flagged@example.com", SuperAdmin: true}
	suite.Require().Nil(models.DB.Create(&user).Error)

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/plans", "", test.Authorization(suite.T(), "flagged", "flagged@example.com"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestPlansCreate() {
	plan := createTestPlan(suite.T(), admin.PlanEditable{Code: " Family ", MaxBudgets: 3, MaxMembers: 6})
	suite.Assert().Equal("family", plan.Data.Code)
	suite.Assert().Equal(fmt.Sprintf("%s/plans/%s", baseURL, plan.Data.ID), plan.Data.Links.Self)

	// Codes are unique
	createTestPlan(suite.T(), admin.PlanEditable{Code: "FAMILY"}, http.StatusBadRequest)

	// Names are required
	r := test.Request(suite.T(), http.MethodPost, baseURL+"/plans", []admin.PlanEditable{{Code: "nameless"}}, asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPlansGetFilter() {
	createTestPlan(suite.T(), admin.PlanEditable{Code: "free", Name: "Free"})
	createTestPlan(suite.T(), admin.PlanEditable{Code: "family", Name: "Family"})
	createTestPlan(suite.T(), admin.PlanEditable{Code: "family-2025", Name: "Family (2025)", Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 3, 3},
		{"Code", "code=family", 1, 1},
		{"Name", "name=Family", 2, 2},
		{"Archived", "archived=true", 1, 1},
		{"Not archived", "archived=false", 2, 2},
		{"Search", "search=ree", 1, 1},
		{"Limit", "limit=2", 2, 3},
		{"Offset", "offset=2", 1, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s/plans?%s", baseURL, tt.query), "", asAdmin(t))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response admin.PlanListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestPlansUpdate() {
	plan := createTestPlan(suite.T(), admin.PlanEditable{Code: "family", MaxMembers: 4})

	r := test.Request(suite.T(), http.MethodPatch, plan.Data.Links.Self, map[string]any{"maxMembers": 8, "stripePriceId": "price_123"}, asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated admin.PlanResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(8, updated.Data.MaxMembers)
	suite.Assert().Equal("price_123", updated.Data.StripePriceID)
	suite.Assert().Equal("family", updated.Data.Code)

	r = test.Request(suite.T(), http.MethodPatch, plan.Data.Links.Self, map[string]any{"name": ""}, asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, plan.Data.Links.Self, "", asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPlansDetail() {
	plan := createTestPlan(suite.T(), admin.PlanEditable{Code: "family"})

	tests := []struct {
		name   string
		method string
		id     string
		status int
	}{
		{"OPTIONS existing", http.MethodOptions, plan.Data.ID.String(), http.StatusNoContent},
		{"OPTIONS missing", http.MethodOptions, uuid.NewString(), http.StatusNotFound},
		{"GET existing", http.MethodGet, plan.Data.ID.String(), http.StatusOK},
		{"GET nil UUID", http.MethodGet, uuid.Nil.String(), http.StatusBadRequest},
		{"GET invalid ID", http.MethodGet, "23", http.StatusBadRequest},
		{"DELETE missing", http.MethodDelete, uuid.NewString(), http.StatusNotFound},
		{"DELETE existing", http.MethodDelete, plan.Data.ID.String(), http.StatusNoContent},
		{"GET deleted", http.MethodGet, plan.Data.ID.String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("%s/plans/%s", baseURL, tt.id), "", asAdmin(t))
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.method == http.MethodOptions && tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestPlansDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/plans", "", asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
